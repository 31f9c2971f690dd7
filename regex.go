package vsort

import "regexp"

var (
	// Recognition gate: a digit, an optional separator, then something
	// that looks like a release marker. Single-letter markers (a/b/p)
	// must follow a non-letter so words are not misread as markers.
	recognizedRe = regexp.MustCompile(`[0-9][-_.]?(dev|pre|next|alpha|[^a-z]a|beta|[^a-z]b|r?c|patch|[^a-z]p)`)

	// Count-is-char: exactly one trailing lowercase letter preceded by
	// a non-letter, e.g. "1.2a". The capture is the build letter.
	countCharRe = regexp.MustCompile(`[^a-z]([a-z])$`)

	// Anchored marker-token classifiers, each with an optional counter.
	alphaRe = regexp.MustCompile(`^(alpha|a)([0-9]+)?$`)
	betaRe  = regexp.MustCompile(`^(beta|b)([0-9]+)?$`)
	rcRe    = regexp.MustCompile(`^r?c([0-9]+)?$`)
	patchRe = regexp.MustCompile(`^(patch|p)([0-9]+)?$`)
)
