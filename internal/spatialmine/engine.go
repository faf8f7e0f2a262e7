package spatialmine

// miningEngine is the recursive extension driver: spec §4.4's makeNext /
// makeNextSame pair plus the outer first-level driver. It owns the
// neighborhood relation, thresholds and the pattern store for one mining
// run; it does not own the database, which is read-only and passed in.
type miningEngine struct {
	neighborhood Neighborhood
	minSup       int
	maxLength    int
	maxGap       int
	store        *store
}

func newMiningEngine(n Neighborhood, minSup, maxLength, maxGap int) *miningEngine {
	return &miningEngine{
		neighborhood: n,
		minSup:       minSup,
		maxLength:    maxLength,
		maxGap:       maxGap,
		store:        newStore(),
	}
}

// run mines the flattened database to completion, populating the store.
func (e *miningEngine) run(db []flatSeq) {
	if len(db) == 0 {
		return
	}
	root := projectFirst(db)
	e.extendNew(root, flatSeq{})
}

// extendNew is makeNext: new-itemset extensions. candidates come from a
// new-itemset map (either the root projection or Jn from buildSameAndNew).
func (e *miningEngine) extendNew(candidates *orderedItemMap, prefix flatSeq) {
	checkrow := union(prefix)
	for _, h := range candidates.keys {
		if _, ok := e.neighborhood[h]; !ok {
			continue
		}
		suffixes := candidates.data[h]
		if len(suffixes) < e.minSup || !e.neighborhood.Subset(checkrow, h) {
			continue
		}

		open := prefix
		if len(open) > 0 {
			open = appendTokens(open, sentinel)
		}
		open = appendTokens(open, h)
		key := renderFlat(appendTokens(open, sentinel))

		if !e.store.insertOrImprove(key, len(suffixes)) {
			continue
		}
		filtered := filterSuffixes(suffixes, e.minSup, map[Item]struct{}{h: {}})
		e.extendFrom(filtered, open)
	}
}

// extendSame is makeNextSame: same-itemset extensions, growing the current
// open itemset of prefix. candidates come from Js.
func (e *miningEngine) extendSame(candidates *orderedItemMap, prefix flatSeq) {
	checkrow := union(prefix)
	for _, h := range candidates.keys {
		if _, ok := e.neighborhood[h]; !ok {
			continue
		}
		suffixes := candidates.data[h]
		if len(suffixes) < e.minSup || !e.neighborhood.Subset(checkrow, h) {
			continue
		}

		open := appendTokens(prefix, h)
		key := renderFlat(appendTokens(open, sentinel))

		if !e.store.insertOrImprove(key, len(suffixes)) {
			continue
		}
		mustKeep := lastItemsetSet(prefix)
		mustKeep[h] = struct{}{}
		filtered := filterSuffixes(suffixes, e.minSup, mustKeep)
		e.extendFrom(filtered, open)
	}
}

// extendFrom is makeSeqDatabaseSame: builds Jn/Js from the (already
// support-filtered) projected database and recurses new-itemset
// extensions before same-itemset extensions, per the determinism rule.
func (e *miningEngine) extendFrom(proj []flatSeq, prefix flatSeq) {
	jn, js := e.buildSameAndNew(proj, prefix)
	if jn.len() > 0 {
		e.extendNew(jn, prefix)
	}
	if js.len() > 0 {
		e.extendSame(js, prefix)
	}
}

func appendTokens(p flatSeq, toks ...Item) flatSeq {
	out := make(flatSeq, len(p)+len(toks))
	copy(out, p)
	copy(out[len(p):], toks)
	return out
}
