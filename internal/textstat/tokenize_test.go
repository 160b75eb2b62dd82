package textstat

import (
	"reflect"
	"regexp"
	"testing"
)

func TestTokenizeWords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Hi!! 😀 so GOOD 😀😀", []string{"hi", "so", "good"}},
		{"", nil},
		{"!!! ...", nil},
		{"don't stop", []string{"don't", "stop"}},
		{"'quoted'", []string{"quoted"}},
		{"café au lait", []string{"au", "lait"}},
		{"snake_case word", []string{"word"}},
		{"a a A", []string{"a", "a", "a"}},
		{"route66 and 42", []string{"route66", "and", "42"}},
		{"日本語 text", []string{"text"}},
		{"rock'n'roll!", []string{"rock'n'roll"}},
	}
	for _, tc := range tests {
		if got := TokenizeWords(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("TokenizeWords(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

var tokenShape = regexp.MustCompile(`^[a-z0-9']+$`)

func TestTokenizeWordsShape(t *testing.T) {
	inputs := []string{
		"The QUICK brown fox's den, 2024!",
		"Ünïcödé MIXED with ASCII_words and 'quotes'",
		"emoji 😀 between👍words",
		"tabs\tand\nnewlines",
	}
	for _, in := range inputs {
		for _, tok := range TokenizeWords(in) {
			if !tokenShape.MatchString(tok) {
				t.Errorf("TokenizeWords(%q) produced %q", in, tok)
			}
		}
	}
}
