package editdist

import (
	"testing"
)

func TestDeletesDepth1(t *testing.T) {
	got := Deletes("abc", 1)
	want := map[string]struct{}{"bc": {}, "ac": {}, "ab": {}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for k := range want {
		if _, ok := got[k]; !ok {
			t.Errorf("missing delete %q", k)
		}
	}
}

func TestDeletesDepth2(t *testing.T) {
	got := Deletes("abcd", 2)
	// depth-1 deletes: bcd, acd, abd, abc
	// depth-2 deletes of each (deduplicated): cd, bd, bc, ad, ac, ab
	for _, want := range []string{"bcd", "acd", "abd", "abc", "cd", "bd", "bc", "ad", "ac", "ab"} {
		if _, ok := got[want]; !ok {
			t.Errorf("missing delete %q in %v", want, got)
		}
	}
	if _, ok := got["abcd"]; ok {
		t.Errorf("original word must not appear in its own delete set")
	}
}

func TestDeletesShortWord(t *testing.T) {
	if got := Deletes("a", 2); len(got) != 0 {
		t.Errorf("expected no deletes from a single-rune word, got %v", got)
	}
	if got := Deletes("", 2); len(got) != 0 {
		t.Errorf("expected no deletes from the empty word, got %v", got)
	}
}

func TestDeletesSymmetryBound(t *testing.T) {
	const k = 2
	for d := range Deletes("spelling", k) {
		diff := len([]rune("spelling")) - len([]rune(d))
		if diff < 1 || diff > k {
			t.Errorf("delete %q has out-of-range length diff %d", d, diff)
		}
	}
}

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"hello", "hello", 0},
		{"bank", "bnak", 1}, // adjacent transposition is unit cost
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"ca", "abc", 3},
	}
	for _, c := range cases {
		if got := Distance(c.a, c.b); got != c.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestDistanceBoundedRejectsOverCap(t *testing.T) {
	if got := DistanceBounded("kitten", "sitting", 2); got != -1 {
		t.Errorf("expected -1 (over cap), got %d", got)
	}
	if got := DistanceBounded("kitten", "sitting", 3); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

func TestDistanceIsSymmetric(t *testing.T) {
	pairs := [][2]string{{"whereis", "where is"}, {"couqdn't", "couldn't"}, {"sixthgrade", "sixth grade"}}
	for _, p := range pairs {
		if Distance(p[0], p[1]) != Distance(p[1], p[0]) {
			t.Errorf("Distance not symmetric for %q, %q", p[0], p[1])
		}
	}
}
