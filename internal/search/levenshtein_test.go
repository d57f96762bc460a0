package search

import "testing"

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"alphabet", "albhabet", 1},
		{"abc song", "abc songs", 1},
		{"a", "b", 1},
	}
	for _, c := range cases {
		if got := Distance(c.a, c.b); got != c.want {
			t.Errorf("Distance(%q,%q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestDistance_MetricProperties(t *testing.T) {
	words := []string{"", "abc", "alphabet", "albhabet", "counting", "song"}

	// identity and symmetry
	for _, a := range words {
		if Distance(a, a) != 0 {
			t.Errorf("Distance(%q,%q) != 0", a, a)
		}
		for _, b := range words {
			if Distance(a, b) != Distance(b, a) {
				t.Errorf("Distance(%q,%q) not symmetric", a, b)
			}
		}
	}

	// triangle inequality
	for _, a := range words {
		for _, b := range words {
			for _, c := range words {
				if Distance(a, c) > Distance(a, b)+Distance(b, c) {
					t.Errorf("triangle inequality violated for %q,%q,%q", a, b, c)
				}
			}
		}
	}
}

func TestSimilarity(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"", "", 1},
		{"abc", "abc", 1},
		{"abc", "", 0},
		{"", "abc", 0},
		{"alphabet", "albhabet", 1 - 1.0/8},
		{"abcd", "wxyz", 0},
	}
	for _, c := range cases {
		if got := Similarity(c.a, c.b); got != c.want {
			t.Errorf("Similarity(%q,%q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestSimilarity_Bounds(t *testing.T) {
	words := []string{"", "a", "abc song", "completely unrelated text here"}
	for _, a := range words {
		for _, b := range words {
			s := Similarity(a, b)
			if s < 0 || s > 1 {
				t.Errorf("Similarity(%q,%q) = %v out of [0,1]", a, b, s)
			}
		}
	}
}
