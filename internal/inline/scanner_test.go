package inline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanner_Find(t *testing.T) {
	tests := []struct {
		name    string
		trigger string
		doc     string
		want    []Match
	}{
		{
			name: "single span",
			doc:  "This is sugar: {C6H12O6}",
			want: []Match{{Start: 15, End: 24, Formula: "C6H12O6"}},
		},
		{
			name: "two spans",
			doc:  "{H2} and {O2}",
			want: []Match{
				{Start: 0, End: 4, Formula: "H2"},
				{Start: 9, End: 13, Formula: "O2"},
			},
		},
		{
			name: "empty braces",
			doc:  "a{}b",
			want: []Match{{Start: 1, End: 3, Formula: ""}},
		},
		{
			name: "first closing brace ends the span",
			doc:  "{a{b}c}",
			want: []Match{{Start: 0, End: 5, Formula: "a{b"}},
		},
		{
			name: "unterminated",
			doc:  "{H2O",
		},
		{
			name: "no braces",
			doc:  "plain text",
		},
		{
			name:    "trigger",
			trigger: "chem",
			doc:     "{x} chem{H2O} {y}",
			want:    []Match{{Start: 4, End: 13, Formula: "H2O"}},
		},
		{
			name:    "trigger must touch the brace",
			trigger: "chem",
			doc:     "chem {H2O}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewScanner(tt.trigger).Find(tt.doc)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanner_MatchAt(t *testing.T) {
	s := NewScanner("")

	m, ok := s.MatchAt("x{H2}", 1)
	assert.True(t, ok)
	assert.Equal(t, Match{Start: 1, End: 5, Formula: "H2"}, m)

	_, ok = s.MatchAt("x{H2}", 0)
	assert.False(t, ok)

	_, ok = s.MatchAt("x{H2", 1)
	assert.False(t, ok)
}
