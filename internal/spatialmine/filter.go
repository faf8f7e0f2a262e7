package spatialmine

// filterSuffixes implements the support filter of spec §4.2: items whose
// sequence-count falls below minSup are dropped from every suffix unless
// they are in mustKeep, consecutive sentinels collapse, and a leading
// sentinel is dropped. One increment per item per suffix, not per
// occurrence, since support is sequence-count.
func filterSuffixes(suffixes []flatSeq, minSup int, mustKeep map[Item]struct{}) []flatSeq {
	itemSupport := make(map[Item]int)
	for _, line := range suffixes {
		seen := make(map[Item]bool)
		for _, tok := range line {
			if tok == sentinel || seen[tok] {
				continue
			}
			seen[tok] = true
			itemSupport[tok]++
		}
	}

	out := make([]flatSeq, len(suffixes))
	for idx, line := range suffixes {
		var rebuilt flatSeq
		for _, tok := range line {
			if tok == sentinel {
				if len(rebuilt) == 0 || rebuilt[len(rebuilt)-1] == sentinel {
					continue
				}
				rebuilt = append(rebuilt, sentinel)
				continue
			}
			_, keep := mustKeep[tok]
			if keep || itemSupport[tok] >= minSup {
				rebuilt = append(rebuilt, tok)
			}
		}
		out[idx] = rebuilt
	}
	return out
}
