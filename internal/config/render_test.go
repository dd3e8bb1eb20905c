package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRender(t *testing.T) {
	t.Run("empty document keeps defaults", func(t *testing.T) {
		cfg, err := ParseRender(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, "span", cfg.Tag)
		assert.Equal(t, "simplechem", cfg.ClassName())
		assert.Empty(t, cfg.Trigger)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := ParseRender(strings.NewReader(`
tag: abbr
class: chem
trigger: ce
`))
		require.NoError(t, err)
		assert.Equal(t, "abbr", cfg.Tag)
		assert.Equal(t, "chem", cfg.ClassName())
		assert.Equal(t, "ce", cfg.Trigger)
	})

	t.Run("explicit empty class", func(t *testing.T) {
		cfg, err := ParseRender(strings.NewReader(`class: ""`))
		require.NoError(t, err)
		assert.Empty(t, cfg.ClassName())
	})

	t.Run("invalid tag", func(t *testing.T) {
		_, err := ParseRender(strings.NewReader(`tag: "<b>"`))
		assert.Error(t, err)
	})

	t.Run("raw text and void tags", func(t *testing.T) {
		for _, tag := range []string{"script", "STYLE", "textarea", "title", "br", "img"} {
			_, err := ParseRender(strings.NewReader("tag: " + tag))
			assert.Error(t, err, "tag %q", tag)
		}
	})

	t.Run("invalid trigger", func(t *testing.T) {
		_, err := ParseRender(strings.NewReader(`trigger: "a{"`))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := ParseRender(strings.NewReader("tag: [unclosed"))
		assert.Error(t, err)
	})
}

func TestLoadRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simplechem.yaml")
	require.NoError(t, os.WriteFile(path, []byte("class: from-file\ntrigger: chem\n"), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SIMPLECHEM_TAG", "")
	t.Setenv("SIMPLECHEM_CLASS", "from-env")
	t.Setenv("SIMPLECHEM_TRIGGER", "")
	require.NoError(t, os.Unsetenv("SIMPLECHEM_TRIGGER"))

	cfg, err := LoadRender()
	require.NoError(t, err)
	assert.Equal(t, "span", cfg.Tag)
	assert.Equal(t, "from-env", cfg.ClassName())
	assert.Equal(t, "chem", cfg.Trigger)
}

func TestLoadRender_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := LoadRender()
	assert.Error(t, err)
}

func TestRender_Transformer(t *testing.T) {
	cfg, err := ParseRender(strings.NewReader("class: chem\ntrigger: ce\n"))
	require.NoError(t, err)

	out, err := cfg.Transformer().Transform("ce{H2O} {O2}")
	require.NoError(t, err)
	assert.Equal(t, `<span class="chem">H<sub>2</sub>O</span> {O2}`, out)
}
