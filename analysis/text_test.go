package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"headline", "Breaking: NASA's Rover Finds WATER!!", "breaking nasas rover finds water"},
		{"whitespace runs", "a\t\n b   c", "a b c"},
		{"digits stripped", "covid19 in 2020", "covid in"},
		{"non latin stripped", "café über 北京", "caf ber"},
		{"empty", "", ""},
		{"only punctuation", "?!... ---", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Breaking: NASA's Rover Finds WATER!!",
		"already normalized text",
		"  MIXED case,   with; punctuation!  ",
		"",
	}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once))
	}
}
