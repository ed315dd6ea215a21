package rules

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EchoTools/textpatch/pkg/patch"
)

func TestLoad(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		src := `rules:
  - name: greeting
    old: |-
      Hello,
        World
    new: |-
      Hi
  - old: "a"
    new: "b"
`
		rs, err := Load(strings.NewReader(src))
		require.NoError(t, err)
		assert.Equal(t, patch.RuleSet{
			{Name: "greeting", Old: "Hello,\n  World", New: "Hi"},
			{Name: "rule-2", Old: "a", New: "b"},
		}, rs)
	})

	t.Run("EmptyDocument", func(t *testing.T) {
		_, err := Load(strings.NewReader(""))
		require.ErrorIs(t, err, ErrNoRules)
	})

	t.Run("NoRules", func(t *testing.T) {
		_, err := Load(strings.NewReader("rules: []\n"))
		require.ErrorIs(t, err, ErrNoRules)
	})

	t.Run("EmptyOld", func(t *testing.T) {
		_, err := Load(strings.NewReader("rules:\n  - name: x\n    new: y\n"))
		require.ErrorIs(t, err, patch.ErrEmptyOld)
	})

	t.Run("UnknownField", func(t *testing.T) {
		_, err := Load(strings.NewReader("rules:\n  - name: x\n    old: a\n    replace: b\n"))
		require.Error(t, err)
	})
}

func TestDumpLoadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, EmojiHeaders()))

	rs, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, EmojiHeaders(), rs)
}

func TestLoadFile(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte("rules:\n  - name: x\n    old: a\n    new: b\n"), 0o644))

		rs, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"x"}, rs.Names())
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
