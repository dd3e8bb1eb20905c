package formula

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpan_HTML(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"C6H12O6", `<span class="simplechem">C<sub>6</sub>H<sub>12</sub>O<sub>6</sub></span>`},
		{"2KOH + H2SO4 -> K2SO4 + H2O", `<span class="simplechem">2KOH + H<sub>2</sub>SO<sub>4</sub> → K<sub>2</sub>SO<sub>4</sub> + H<sub>2</sub>O</span>`},
		{"2K^+ + O^(2-)", `<span class="simplechem">2K<sup>+</sup> + O<sup>2-</sup></span>`},
		{"* -> <-> <> hnu", `<span class="simplechem">· → ⇄ ⇌ hν</span>`},
		{"1/2H2 + 0.5Cl2", `<span class="simplechem">1/2H<sub>2</sub> + 0.5Cl<sub>2</sub></span>`},
		{"", `<span class="simplechem"></span>`},
		{"A < B & C", `<span class="simplechem">A &lt; B &amp; C</span>`},
		{"O^\u2003x", "<span class=\"simplechem\">O^\u2003x</span>"},
		{`say "H2" 'O'`, `<span class="simplechem">say "H<sub>2</sub>" 'O'</span>`},
		{"^(<b>)", `<span class="simplechem"><sup>&lt;b&gt;</sup></span>`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			span, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, span.HTML())
		})
	}
}

func TestSpan_WriteHTML_NoClass(t *testing.T) {
	span, err := Parse("H2O", WithClass(""), WithTag("abbr"))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, span.WriteHTML(&sb))
	assert.Equal(t, `<abbr>H<sub>2</sub>O</abbr>`, sb.String())
}
