package vsort

import "testing"

func TestOptCompare(t *testing.T) {
	t.Parallel()

	absent := Opt{}
	zero := NewOpt(0)
	one := NewOpt(1)

	if c := absent.Compare(zero); c != -1 {
		t.Fatalf("absent vs present(0) = %d; want -1", c)
	}

	if c := zero.Compare(absent); c != 1 {
		t.Fatalf("present(0) vs absent = %d; want 1", c)
	}

	if c := absent.Compare(absent); c != 0 {
		t.Fatalf("absent vs absent = %d; want 0", c)
	}

	if c := zero.Compare(one); c != -1 {
		t.Fatalf("0 vs 1 = %d; want -1", c)
	}

	if c := one.Compare(one); c != 0 {
		t.Fatalf("1 vs 1 = %d; want 0", c)
	}
}

func TestReleaseKind_Rank(t *testing.T) {
	t.Parallel()

	// ascending rank; Patch deliberately above Stable
	order := []ReleaseKind{Dev, Pre, Next, Alpha, Beta, ReleaseCandidate, Stable, Patch}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Fatalf("rank %v >= %v; want strictly ascending", order[i-1], order[i])
		}
	}
}

func TestReleaseKind_String(t *testing.T) {
	t.Parallel()

	cases := map[ReleaseKind]string{
		Dev:              "dev",
		Pre:              "pre",
		Next:             "next",
		Alpha:            "alpha",
		Beta:             "beta",
		ReleaseCandidate: "rc",
		Stable:           "stable",
		Patch:            "patch",
	}

	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("%d.String() = %q; want %q", k, got, want)
		}
	}
}

func TestSemverCompare_IgnoresOriginal(t *testing.T) {
	t.Parallel()

	a := Semver{Original: "1.0.0", Major: 1, Minor: NewOpt(0), Patch: NewOpt(0), Kind: Stable}
	b := Semver{Original: "1_0_0", Major: 1, Minor: NewOpt(0), Patch: NewOpt(0), Kind: Stable}

	if c := a.Compare(b); c != 0 {
		t.Fatalf("Compare = %d; want 0 regardless of spelling", c)
	}
}

// TestSemverCompare_TotalOrder exercises reflexivity, antisymmetry, and
// transitivity over a parsed corpus covering every field transition.
func TestSemverCompare_TotalOrder(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"0.9", "1", "1.0", "1.0.0", "1.0.0.1",
		"1.0.0-dev", "1.0.0-pre", "1.0.0-next",
		"1.0.0-alpha", "1.0.0-alpha2", "1.0.0-beta", "1.0.0-beta2",
		"1.0.0-beta10", "1.0.0-rc1", "1.0.0-rc2", "1.0.0p1", "1.0.0p2",
		"1.9.9", "2.0", "2.0.0", "10.0.0",
	}

	vers := make([]Semver, 0, len(inputs))
	for _, s := range inputs {
		v, err := Parse(s, Options{})
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		vers = append(vers, v)
	}

	for i, a := range vers {
		if c := a.Compare(a); c != 0 {
			t.Fatalf("Compare(%q, %q) = %d; want 0", inputs[i], inputs[i], c)
		}

		for j, b := range vers {
			ab, ba := a.Compare(b), b.Compare(a)
			if ab != -ba {
				t.Fatalf("antisymmetry broken for %q vs %q: %d vs %d", inputs[i], inputs[j], ab, ba)
			}

			for k, c := range vers {
				if ab <= 0 && b.Compare(c) <= 0 && a.Compare(c) > 0 {
					t.Fatalf("transitivity broken for %q <= %q <= %q", inputs[i], inputs[j], inputs[k])
				}
			}
		}
	}
}
