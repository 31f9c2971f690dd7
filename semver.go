package vsort

// ReleaseKind classifies the textual release marker of a version.
// The declaration order is the sort order: every pre-release kind ranks
// below Stable (the unmarked version), and Patch ranks above it.
type ReleaseKind int

const (
	// Dev is a development snapshot ("1.0.0-dev").
	Dev ReleaseKind = iota
	// Pre is a generic pre-release ("1.0.0-pre2").
	Pre
	// Next is an upcoming release ("1.0.0-next").
	Next
	// Alpha is an alpha release ("1.0.0-alpha", "1.0.0a1").
	Alpha
	// Beta is a beta release ("1.0.0-beta", "1.0.0b3").
	Beta
	// ReleaseCandidate is a release candidate ("1.0.0-rc1", "1.0.0c2").
	ReleaseCandidate
	// Stable is the unmarked release ("1.0.0").
	Stable
	// Patch is a post-release patch ("1.0.0p1"); ranks above Stable.
	Patch
)

// String returns a stable textual representation for ReleaseKind.
func (k ReleaseKind) String() string {
	switch k {
	case Dev:
		return "dev"
	case Pre:
		return "pre"
	case Next:
		return "next"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case ReleaseCandidate:
		return "rc"
	case Patch:
		return "patch"
	default:
		return "stable"
	}
}

// Opt is an optional non-negative number. The zero value is "absent".
// Absent sorts before any present value.
type Opt struct {
	Val uint64
	Has bool
}

// NewOpt returns a present Opt holding v.
func NewOpt(v uint64) Opt {
	return Opt{Val: v, Has: true}
}

// Compare orders o against x: absent < present, then by value.
func (o Opt) Compare(x Opt) int {
	if o.Has != x.Has {
		if x.Has {
			return -1
		}

		return 1
	}

	switch {
	case o.Val < x.Val:
		return -1
	case o.Val > x.Val:
		return 1
	default:
		return 0
	}
}

// Semver is the structured form of one parsed version string.
// Minor/Patch/Ident are present only when the corresponding dot-separated
// numeric segment existed in the input. Count is the marker counter
// ("rc2" -> 2, bare "rc" -> 1) or, in count-is-char mode, the code point
// of the trailing build letter.
type Semver struct {
	Original string // raw input string, kept for output selection
	Major    uint64
	Minor    Opt
	Patch    Opt
	Ident    Opt
	Kind     ReleaseKind
	Count    Opt
}

// Compare returns -1, 0 or 1 ordering v against x.
// The order is lexicographic over (Major, Minor, Patch, Ident, Kind,
// Count); optional fields compare absent-first, Kind by declared rank.
// Original does not participate, so equal versions compare equal
// regardless of input spelling.
func (v Semver) Compare(x Semver) int {
	switch {
	case v.Major < x.Major:
		return -1
	case v.Major > x.Major:
		return 1
	}

	if c := v.Minor.Compare(x.Minor); c != 0 {
		return c
	}

	if c := v.Patch.Compare(x.Patch); c != 0 {
		return c
	}

	if c := v.Ident.Compare(x.Ident); c != 0 {
		return c
	}

	switch {
	case v.Kind < x.Kind:
		return -1
	case v.Kind > x.Kind:
		return 1
	}

	return v.Count.Compare(x.Count)
}
