package vsort

import "sort"

// SortVersions orders parsed versions in place according to mode.
// The sort is stable: equal versions keep their relative input order,
// so sorting an already sorted slice is a no-op.
func SortVersions(vers []Semver, mode SortMode) {
	if mode == SortNone || len(vers) < 2 {
		return
	}

	sort.SliceStable(vers, func(i, j int) bool {
		c := vers[i].Compare(vers[j])
		if mode == SortAsc {
			return c < 0
		}

		return c > 0 // SortDesc
	})
}
