package spatialmine

import "strings"

// renderFlat renders a closed-form flat pattern (every itemset, including
// the last, followed by sentinel) as the textual list of its items with
// "-1" between itemsets and a trailing "-1", per spec §6's canonical
// pattern rendering. This string is both the pattern-store key and the
// external save() format.
func renderFlat(p flatSeq) string {
	var b strings.Builder
	for _, tok := range p {
		if tok == sentinel {
			b.WriteString("-1 ")
			continue
		}
		b.WriteString(string(tok))
		b.WriteByte(' ')
	}
	return strings.TrimRight(b.String(), " ")
}
