package domain

import "sort"

// RankBySize selects the topN largest objects by estimated diameter,
// largest first. The sort is stable: objects with equal diameters keep
// their relative input order. The input slice is not modified.
func RankBySize(neos []NearEarthObject, topN int) []NearEarthObject {
	ranked := make([]NearEarthObject, len(neos))
	copy(ranked, neos)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DiameterKM > ranked[j].DiameterKM
	})

	if topN < 0 {
		topN = 0
	}
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
