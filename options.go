package vsort

import "regexp"

// Options configures parsing and the Select pipeline.
// The zero value is the stock behavior: strict recognition, plain
// counters, abort on the first bad line, originals out, ascending sort.
type Options struct {
	// Lenient accepts any alphabetic marker text by bypassing the
	// recognition gate. Unmatched tokens still classify as Stable.
	Lenient bool

	// CountIsChar treats a single trailing letter preceded by a
	// non-letter as an ordinal build counter ("1.2a" < "1.2b")
	// instead of a release-marker token.
	CountIsChar bool

	// Ignore drops unparseable lines instead of failing the whole run.
	Ignore bool

	// Canonical outputs each version's canonical rendering instead of
	// the original input line.
	Canonical bool

	// Sort defines output ordering. The zero value is SortAsc.
	Sort SortMode

	// Limit caps the number of output lines (<=0 = unlimited).
	Limit int

	// Include keeps only raw lines matching the regexp (applied before
	// parsing).
	Include *regexp.Regexp

	// Exclude drops raw lines matching the regexp (applied before
	// parsing).
	Exclude *regexp.Regexp

	// Range clips parsed versions to [Min, Max].
	Range Range
}

// DefaultOptions returns the stock pipeline preset. It equals the zero
// Options value and exists for call-site readability.
func DefaultOptions() Options {
	return Options{Sort: SortAsc}
}

// SortMode controls the final output ordering.
type SortMode uint8

const (
	// SortAsc sorts ascending by version (the default).
	SortAsc SortMode = iota
	// SortDesc sorts descending by version.
	SortDesc
	// SortNone preserves the input order.
	SortNone
)

// String returns a stable textual representation for SortMode.
func (m SortMode) String() string {
	switch m {
	case SortDesc:
		return "descending"
	case SortNone:
		return "none"
	default:
		return "ascending"
	}
}

// ParseSort maps free-form tokens to SortMode.
// Supported aliases (case-insensitive):
//
//	asc:  "", "asc","ascending","inc","increase","up"
//	desc: "desc","descending","dec","decrease","down","rev","reverse"
//	none: "none","asis","keep"
func ParseSort(s string) SortMode {
	switch toTok(s) {
	// ascending (low -> high)
	case "", "asc", "ascending", "inc", "increase", "up":
		return SortAsc

	// descending (high -> low)
	case "desc", "descending", "dec", "decrease", "down", "rev", "reverse":
		return SortDesc

	// as is
	case "none", "asis", "keep":
		return SortNone

	default:
		return SortAsc
	}
}
