package vsort

import (
	"strconv"
	"strings"
)

// Format renders v canonically: numeric segments joined with dots, a
// release-kind suffix ("-rc", "-beta", "p", nothing for Stable), then
// the counter. In count-is-char mode the counter is rendered as the
// single character with that code point, otherwise as a decimal.
//
// The meaning of Count is not stored on the value, so round-tripping
// requires formatting with the same countIsChar the value was parsed
// under; mismatched flags produce a different (still deterministic)
// spelling.
func (v Semver) Format(countIsChar bool) string {
	var b strings.Builder

	b.WriteString(strconv.FormatUint(v.Major, 10))
	if v.Minor.Has {
		b.WriteByte('.')
		b.WriteString(strconv.FormatUint(v.Minor.Val, 10))
	}

	if v.Patch.Has {
		b.WriteByte('.')
		b.WriteString(strconv.FormatUint(v.Patch.Val, 10))
	}

	if v.Ident.Has {
		b.WriteByte('.')
		b.WriteString(strconv.FormatUint(v.Ident.Val, 10))
	}

	switch v.Kind {
	case Dev:
		b.WriteString("-dev")
	case Pre:
		b.WriteString("-pre")
	case Next:
		b.WriteString("-next")
	case Alpha:
		b.WriteString("-alpha")
	case Beta:
		b.WriteString("-beta")
	case ReleaseCandidate:
		b.WriteString("-rc")
	case Patch:
		b.WriteByte('p')
	case Stable:
		// no marker
	}

	if v.Count.Has {
		if countIsChar {
			b.WriteRune(rune(v.Count.Val))
		} else {
			b.WriteString(strconv.FormatUint(v.Count.Val, 10))
		}
	}

	return b.String()
}

// String renders v with plain decimal counters; see Format.
func (v Semver) String() string {
	return v.Format(false)
}
