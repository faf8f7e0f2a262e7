package spatialmine

import (
	"bufio"
	"io"
	"sort"
	"strings"
)

// TabularSource supplies a pre-tokenized sequence database, modeling the
// data-frame "Transactions" column of spec §4.1/§6: each sequence is a
// list of itemsets, each itemset a list of item tokens.
type TabularSource interface {
	Transactions() [][][]string
}

// NeighborTabularSource supplies a pre-tokenized neighborhood map, modeling
// the data-frame "items"/"Neighbours" columns of spec §4.1/§6.
type NeighborTabularSource interface {
	Items() []string
	Neighbours() [][]string
}

// DecodeDatabase parses a sequence database from UTF-8 text: one sequence
// per line, itemsets separated by the literal delimiter "-1", items within
// an itemset separated by whitespace and sorted ascending, per spec §4.1.
// Lines that parse to zero itemsets are malformed and skipped; the count
// is reported rather than returned as an error (spec §7).
func DecodeDatabase(r io.Reader) (Database, DecodeReport, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var db Database
	var report DecodeReport
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			report.SkippedLines++
			continue
		}
		seq := parseSequenceLine(line)
		if len(seq) == 0 {
			report.SkippedLines++
			continue
		}
		db = append(db, seq)
	}
	if err := scanner.Err(); err != nil {
		return nil, report, sourceUnavailable("reading database", "<reader>", err)
	}
	return db, report, nil
}

func parseSequenceLine(line string) Sequence {
	chunks := strings.Split(line, "-1")
	if len(chunks) > 0 && strings.TrimSpace(chunks[len(chunks)-1]) == "" {
		chunks = chunks[:len(chunks)-1]
	}
	var seq Sequence
	for _, chunk := range chunks {
		items := strings.Fields(chunk)
		if len(items) == 0 {
			continue
		}
		seq = append(seq, sortedItemset(items))
	}
	return seq
}

func sortedItemset(tokens []string) Itemset {
	sort.Strings(tokens)
	out := make(Itemset, 0, len(tokens))
	seen := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, Item(t))
	}
	return out
}

// DatabaseFromTabular builds a Database from a TabularSource, bypassing
// the text format entirely (spec §4.1's data-frame input).
func DatabaseFromTabular(src TabularSource) Database {
	rows := src.Transactions()
	db := make(Database, 0, len(rows))
	for _, row := range rows {
		var seq Sequence
		for _, itemset := range row {
			if len(itemset) == 0 {
				continue
			}
			seq = append(seq, sortedItemset(itemset))
		}
		db = append(db, seq)
	}
	return db
}

// DecodeNeighborhood parses a neighborhood map from UTF-8 text: one item
// per line, the first field (split on sep) is the key and the remaining
// non-empty fields are its neighbors, per spec §4.1.
func DecodeNeighborhood(r io.Reader, sep string) (Neighborhood, DecodeReport, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	n := make(Neighborhood)
	var report DecodeReport
	for scanner.Scan() {
		line := scanner.Text()
		fields := splitNonEmpty(line, sep)
		if len(fields) == 0 {
			report.SkippedLines++
			continue
		}
		key := Item(fields[0])
		neighbors := make(map[Item]struct{}, len(fields)-1)
		for _, f := range fields[1:] {
			neighbors[Item(f)] = struct{}{}
		}
		n[key] = neighbors
	}
	if err := scanner.Err(); err != nil {
		return nil, report, sourceUnavailable("reading neighborhood", "<reader>", err)
	}
	return n, report, nil
}

func splitNonEmpty(line, sep string) []string {
	raw := strings.Split(line, sep)
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		f = strings.TrimRight(f, "\r\n")
		if f == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}

// NeighborhoodFromTabular builds a Neighborhood from a NeighborTabularSource,
// bypassing the text format entirely (spec §4.1's data-frame input).
func NeighborhoodFromTabular(src NeighborTabularSource) Neighborhood {
	items := src.Items()
	rows := src.Neighbours()
	n := make(Neighborhood, len(items))
	for i, key := range items {
		if i >= len(rows) {
			break
		}
		neighbors := make(map[Item]struct{}, len(rows[i]))
		for _, nb := range rows[i] {
			neighbors[Item(nb)] = struct{}{}
		}
		n[Item(key)] = neighbors
	}
	return n
}
