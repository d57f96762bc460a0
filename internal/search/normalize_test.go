package search

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"   ", ""},
		{"Hello World", "hello world"},
		{"ABC Song!!! (for Kids)", "abc song for kids"},
		{"one,two;three", "one two three"},
		{"  spaced\t\tout\n text ", "spaced out text"},
		{"already normal", "already normal"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"the and or", []string{}},
		{"The Alphabet Song for Kids", []string{"alphabet", "song", "kids"}},
		{"Counting to 10 with Fun", []string{"counting", "10", "fun"}},
	}
	for _, c := range cases {
		got := Tokenize(c.in)
		if len(got) == 0 && len(c.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestExtractKeywords(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a an to", nil},
		// short tokens (<=2 chars) are dropped even when not stop-words
		{"Go 4 It", nil},
		{"The Alphabet Song for Toddlers", []string{"alphabet", "song", "toddlers"}},
		// capped at five keywords, source order preserved
		{
			"amazing colorful learning numbers counting shapes letters words",
			[]string{"amazing", "colorful", "learning", "numbers", "counting"},
		},
	}
	for _, c := range cases {
		got := ExtractKeywords(c.in)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("ExtractKeywords(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
