package spatialmine

// The recursive projection/extension engine works on a flat token
// representation, scoped to this package, that mirrors the original
// algorithm's own representation closely enough to preserve its
// gap-accounting and same-itemset quirks exactly (see the Open Questions
// in spec.md §9). Nothing outside this file and project.go, engine.go,
// filter.go and render.go ever sees a sentinel value; decode.go and the
// public Engine API exchange only
// structured Sequence/Itemset values.

// sentinel separates itemsets within a flat sequence. It cannot collide
// with a decoded item because it contains a NUL byte, which the decoder
// never produces from split text tokens.
const sentinel Item = "\x00-1\x00"

// flatSeq is a single sequence flattened to items interleaved with
// sentinel, or a prefix/suffix fragment of one. A *database* flatSeq has a
// sentinel after every itemset, including the last ("closed" form). A
// *prefix* flatSeq omits the sentinel after its final, still-open itemset
// ("open" form) — this is the representation makeNext/makeNextSame hand to
// recursive calls, and it is what makes canonical keys grow by rolling
// back and re-appending the trailing sentinel.
type flatSeq []Item

// flattenClosed renders a full database sequence to closed flat form.
func flattenClosed(seq Sequence) flatSeq {
	out := make(flatSeq, 0, len(seq)*2)
	for _, set := range seq {
		out = append(out, set...)
		out = append(out, sentinel)
	}
	return out
}

// flattenDatabase converts a whole structured Database to closed flat form.
func flattenDatabase(db Database) []flatSeq {
	out := make([]flatSeq, len(db))
	for i, seq := range db {
		out[i] = flattenClosed(seq)
	}
	return out
}

// lastItemsetItems returns the items of the prefix's still-open itemset,
// i.e. everything after the last sentinel (or from the start, if none).
func lastItemsetItems(p flatSeq) []Item {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == sentinel {
			return append([]Item(nil), p[i+1:]...)
		}
	}
	return append([]Item(nil), p...)
}

// lastItemsetSet is lastItemsetItems as a membership set.
func lastItemsetSet(p flatSeq) map[Item]struct{} {
	items := lastItemsetItems(p)
	out := make(map[Item]struct{}, len(items))
	for _, it := range items {
		out[it] = struct{}{}
	}
	return out
}

// itemsetCount returns the number of itemsets represented by an open-form
// prefix: the number of sentinels already closed, plus one for the
// currently open itemset.
func itemsetCount(p flatSeq) int {
	n := 1
	for _, tok := range p {
		if tok == sentinel {
			n++
		}
	}
	return n
}

// union returns the set of non-sentinel items anywhere in a flat sequence.
func union(p flatSeq) map[Item]struct{} {
	out := make(map[Item]struct{})
	for _, tok := range p {
		if tok != sentinel {
			out[tok] = struct{}{}
		}
	}
	return out
}

// orderedItemMap maps items to suffix lists, preserving first-insertion
// order for deterministic candidate iteration.
type orderedItemMap struct {
	keys []Item
	data map[Item][]flatSeq
}

func newOrderedItemMap() *orderedItemMap {
	return &orderedItemMap{data: make(map[Item][]flatSeq)}
}

func (m *orderedItemMap) append(item Item, suffix flatSeq) {
	if _, ok := m.data[item]; !ok {
		m.keys = append(m.keys, item)
	}
	m.data[item] = append(m.data[item], suffix)
}

func (m *orderedItemMap) set(item Item, suffixes []flatSeq) {
	if _, ok := m.data[item]; !ok {
		m.keys = append(m.keys, item)
	}
	m.data[item] = suffixes
}

func (m *orderedItemMap) len() int { return len(m.keys) }
