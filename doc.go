/*
Package vsort provides "natural" version sorting for loosely formatted
version strings, beyond lexicographic or purely numeric ordering.

The package is I/O-agnostic: it operates purely on a slice of version
strings. Typical flow:

 1. Collect raw lines elsewhere (stdin, a tag list, a changelog).
 2. Call Select with desired Options (leniency, count-is-char, range, sort).
 3. Use the resulting list.

Version notes:
  - Up to four dot-separated numeric segments are read
    (major.minor.patch.ident); absent segments sort before present ones,
    so "2.0" < "2.0.0".
  - A trailing marker token classifies the release kind. Pre-release
    kinds (dev, pre, next, alpha, beta, rc) sort below the unmarked
    stable version; a patch marker ("p"/"patch") sorts above it:
    1.0.0-rc1 < 1.0.0 < 1.0.0p1.
  - Dashes and underscores before the marker are separator noise:
    "1.0.0-rc1", "1.0.0_rc1" and "1.0.0rc1" parse identically, and
    "rc.1" is read as "rc1". Between digits they are stripped outright,
    so "1_2" reads as "12".
  - Marker counters compare numerically: beta2 < beta10.
  - In count-is-char mode a single trailing letter is an ordinal build
    counter ("1.2a" < "1.2b") rather than a marker token.

Usage example:

	raw := []string{"1.0.0", "1.0.0-rc1", "1.0.0-alpha", "1.0.0p1"}

	res, err := vsort.Select(raw, vsort.Options{})
	if err != nil {
		// a line failed recognition; set Ignore or Lenient to taste
	}

	fmt.Println(res) // [1.0.0-alpha 1.0.0-rc1 1.0.0 1.0.0p1]
*/
package vsort
