package vsort

import (
	"fmt"
	"strings"
)

// Select parses, filters, sorts, and renders version lines in one call.
// Simple, readable pipeline:
//  1. blank lines and Include/Exclude-filtered lines are dropped
//  2. every remaining line is parsed (failures abort unless Ignore)
//  3. Range clipping (when enabled)
//  4. stable sort per Options.Sort
//  5. originals out, or canonical renderings when Canonical
//  6. Limit caps the result
//
// Either every accepted line parses and a full result is returned, or
// the first failure aborts with an error naming the line and kind; no
// partial output exists.
func Select(in []string, opt Options) ([]string, error) {
	vers := make([]Semver, 0, len(in))
	for _, raw := range in {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		// regex gates on the raw line, before any parsing
		if opt.Include != nil && !opt.Include.MatchString(raw) {
			continue
		}

		if opt.Exclude != nil && opt.Exclude.MatchString(raw) {
			continue
		}

		v, err := Parse(raw, opt)
		if err != nil {
			if opt.Ignore {
				continue
			}

			return nil, fmt.Errorf("parse %q: %w", raw, err)
		}

		// keep original for output selection
		v.Original = raw
		vers = append(vers, v)
	}

	if opt.Range.Enabled() {
		clipped, err := clipRange(vers, opt.Range, opt)
		if err != nil {
			return nil, err
		}

		vers = clipped
	}

	SortVersions(vers, opt.Sort)

	out := make([]string, 0, len(vers))
	for _, v := range vers {
		if opt.Canonical {
			out = append(out, v.Format(opt.CountIsChar))
		} else {
			out = append(out, v.Original)
		}
	}

	return capStrings(out, opt.Limit), nil
}

// Sorted returns the lines in ascending version order under the stock
// strict options. Equivalent to Select(in, DefaultOptions()).
func Sorted(in []string) ([]string, error) {
	return Select(in, DefaultOptions())
}

// Canonical is like Sorted but renders each version canonically
// instead of echoing the original line.
func Canonical(in []string) ([]string, error) {
	opt := DefaultOptions()
	opt.Canonical = true

	return Select(in, opt)
}
