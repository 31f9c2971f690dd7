package vsort

import (
	"strconv"
	"strings"
)

// sepStrip removes dash/underscore separator noise from a version string.
var sepStrip = strings.NewReplacer("-", "", "_", "")

// Parse converts one raw version string into its structured form.
// Parsing is a pure function of (raw, opt); only Options.Lenient and
// Options.CountIsChar participate.
//
// The input is lowercased, the release marker (if any) must pass the
// recognition gate unless Lenient is set, separators are normalized so
// "1.0.0-rc1", "1.0.0_rc1", "1.0.0rc1" and "1.0.0-rc.1" all read the
// same, and up to four numeric segments are consumed left to right.
//
// Returns ErrUnrecognizedText when alphabetic content fails the gate,
// and ErrMissingMajor when no numeric segment exists at all.
func Parse(raw string, opt Options) (Semver, error) {
	s := strings.ToLower(raw)

	if idx := indexLetter(s); idx >= 0 {
		if !recognized(s, opt) {
			return Semver{}, ErrUnrecognizedText
		}

		// drop a dot that directly follows the last letter,
		// so "rc.1" reads as "rc1"
		if li := lastLetter(s); li >= 0 && strings.LastIndexByte(s, '.') == li+1 {
			s = s[:li+1] + s[li+2:]
		}

		// split the marker into its own segment: "1.0.0rc1" -> "1.0.0.rc1"
		s = s[:idx] + "." + s[idx:]
	}

	// "1.0.0-.rc1" / "1.0.0_.rc1" -> "1.0.0.rc1"
	s = sepStrip.Replace(s)

	parts := strings.Split(s, ".")

	nums := make([]uint64, 0, 4)
	for _, p := range parts {
		if len(nums) == 4 {
			break
		}

		if n, err := strconv.ParseUint(p, 10, 64); err == nil {
			nums = append(nums, n)
		}
	}

	if len(nums) == 0 {
		return Semver{}, ErrMissingMajor
	}

	v := Semver{Major: nums[0], Kind: Stable}
	if len(nums) > 1 {
		v.Minor = NewOpt(nums[1])
	}

	if len(nums) > 2 {
		v.Patch = NewOpt(nums[2])
	}

	if len(nums) > 3 {
		v.Ident = NewOpt(nums[3])
	}

	// the trailing segment, when non-numeric, is the marker token
	// (or the build letter in count-is-char mode)
	last := parts[len(parts)-1]
	if _, err := strconv.ParseUint(last, 10, 64); err != nil {
		var m []string
		if opt.CountIsChar {
			m = countCharRe.FindStringSubmatch(s)
		}

		if m != nil {
			v.Count = NewOpt(uint64(m[1][0]))
		} else {
			v.Kind = classifyKind(last)
		}
	}

	if v.Kind == Stable {
		return v, nil
	}

	// marker counter: whatever follows the last letter;
	// a bare marker counts as 1
	if li := lastLetter(s); li >= 0 {
		rest := s[li+1:]
		if rest == "" {
			v.Count = NewOpt(1)
		} else if n, err := strconv.ParseUint(rest, 10, 64); err == nil {
			v.Count = NewOpt(n)
		}
	}

	return v, nil
}

// recognized is the gate deciding whether alphabetic content plausibly
// is a release marker. Lenient bypasses the gate entirely.
func recognized(s string, opt Options) bool {
	if opt.Lenient {
		return true
	}

	if opt.CountIsChar {
		return countCharRe.MatchString(s)
	}

	return recognizedRe.MatchString(s)
}

// classifyKind maps a trailing marker token to its ReleaseKind.
// Checks run in fixed priority order; the first match wins, and an
// unmatched token falls through to Stable.
func classifyKind(token string) ReleaseKind {
	switch {
	case strings.Contains(token, "dev"):
		return Dev
	case strings.Contains(token, "pre"):
		return Pre
	case strings.Contains(token, "next"):
		return Next
	case alphaRe.MatchString(token):
		return Alpha
	case betaRe.MatchString(token):
		return Beta
	case rcRe.MatchString(token):
		return ReleaseCandidate
	case patchRe.MatchString(token):
		return Patch
	default:
		return Stable
	}
}
