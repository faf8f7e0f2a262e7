package spatialmine

// projectFirst builds the root-level projection: for each sequence and each
// distinct item x in it, the suffix right after x's first occurrence in
// that sequence (spec §4.3 project_first). One projection per (item,
// sequence) keeps support counts correct.
func projectFirst(db []flatSeq) *orderedItemMap {
	m := newOrderedItemMap()
	for _, line := range db {
		seen := make(map[Item]bool)
		for i, tok := range line {
			if tok == sentinel || seen[tok] {
				continue
			}
			seen[tok] = true
			m.append(tok, line[i+1:])
		}
	}
	return m
}

// searchSameLine scans one projected suffix for the earliest itemset in
// which h co-occurs with every item of give, per spec §4.3's search_same
// contract. Branch one: h appears before the first sentinel (still inside
// the itemset the prefix's last match left open). Branch two: scan forward
// itemset by itemset for one containing both h and all of give.
func searchSameLine(line flatSeq, h Item, give map[Item]struct{}) (flatSeq, bool) {
	if len(line) <= 1 {
		return nil, false
	}
	i := 0
	for i < len(line) && line[i] != sentinel {
		if line[i] == h {
			return line[i+1:], true
		}
		i++
	}
	matched := make(map[Item]struct{})
	for i < len(line) {
		tok := line[i]
		if tok == sentinel {
			matched = make(map[Item]struct{})
			i++
			continue
		}
		if tok == h {
			matched[h] = struct{}{}
		}
		if _, ok := give[tok]; ok {
			matched[tok] = struct{}{}
		}
		if len(matched) == 1+len(give) {
			return line[i+1:], true
		}
		i++
	}
	return nil, false
}

// buildSameAndNew constructs the new-itemset map Jn and the same-itemset
// map Js for a projected database proj under the current (open-form)
// prefix, per spec §4.3's project_same. maxLength/maxGap bound how far Jn
// collection advances into each sequence.
func (e *miningEngine) buildSameAndNew(proj []flatSeq, prefix flatSeq) (jn, js *orderedItemMap) {
	jn = newOrderedItemMap()
	js = newOrderedItemMap()
	give := lastItemsetSet(prefix)
	lastItem := prefix[len(prefix)-1]
	seqLength := itemsetCount(prefix)

	done := make(map[Item]bool)
	ensureJS := func(h Item) {
		if done[h] {
			return
		}
		done[h] = true
		var suffixes []flatSeq
		for _, line := range proj {
			if suf, ok := searchSameLine(line, h, give); ok {
				suffixes = append(suffixes, suf)
			}
		}
		if len(suffixes) > 0 {
			js.set(h, suffixes)
		}
	}

	for _, line := range proj {
		if len(line) <= 1 {
			continue
		}
		i := 0
		for i < len(line) && line[i] != sentinel {
			ensureJS(line[i])
			i++
		}
		if e.maxLength <= seqLength {
			continue
		}
		alreadyInLine := make(map[Item]bool)
		same := false
		seqCount := 0
		for i < len(line) && e.maxGap > seqCount {
			tok := line[i]
			if tok != sentinel {
				if !alreadyInLine[tok] {
					jn.append(tok, line[i+1:])
					alreadyInLine[tok] = true
				}
				if tok == lastItem {
					same = true
				} else if same {
					ensureJS(tok)
				}
			} else {
				same = false
				seqCount++
			}
			i++
		}
	}
	return jn, js
}
