package vsort

import "fmt"

// Range clips versions to [Min, Max] with optional exclusive ends.
// Bounds are version strings parsed with the same Options as the input
// lines; an empty bound means unbounded on that side.
type Range struct {
	Min string // empty => no lower bound
	Max string // empty => no upper bound

	// When true => exclusive bound. Default false => inclusive.
	MinExclusive bool
	MaxExclusive bool
}

// Enabled reports whether any bound is set.
func (r Range) Enabled() bool {
	return r.Min != "" || r.Max != ""
}

// clipRange drops versions outside the bounds. A bound that fails to
// parse fails the whole run; range errors are never ignorable.
func clipRange(vers []Semver, r Range, opt Options) ([]Semver, error) {
	var lo, hi Semver
	hasLo, hasHi := false, false

	if r.Min != "" {
		v, err := Parse(r.Min, opt)
		if err != nil {
			return nil, fmt.Errorf("range min %q: %w", r.Min, err)
		}

		lo, hasLo = v, true
	}

	if r.Max != "" {
		v, err := Parse(r.Max, opt)
		if err != nil {
			return nil, fmt.Errorf("range max %q: %w", r.Max, err)
		}

		hi, hasHi = v, true
	}

	keep := vers[:0]
	for _, v := range vers {
		if hasLo {
			if c := v.Compare(lo); c < 0 || (c == 0 && r.MinExclusive) {
				continue
			}
		}

		if hasHi {
			if c := v.Compare(hi); c > 0 || (c == 0 && r.MaxExclusive) {
				continue
			}
		}

		keep = append(keep, v)
	}

	return keep, nil
}
