package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/squarewave-background/internal/config"
)

func TestBuiltin_Lookup(t *testing.T) {
	p := config.Builtin()
	o, err := p.Lookup("login")
	require.NoError(t, err)
	require.NotNil(t, o.Count)
	assert.Equal(t, 91, *o.Count)
	assert.Equal(t, 1985.0, *o.Color)

	r, err := p.Lookup("random")
	require.NoError(t, err)
	assert.Nil(t, r.Count)
	assert.Nil(t, r.Thickness)

	_, err = p.Lookup("nope")
	assert.ErrorIs(t, err, config.ErrUnknownPreset)
}

func TestBuiltin_Names(t *testing.T) {
	assert.Equal(t, []string{"index", "login", "random", "signup"}, config.Builtin().Names())
}

func TestDecodePresets_Partial(t *testing.T) {
	doc := `
calm:
  count: 12
  frequency: 2.5
loud:
  thickness: 140
`
	p, err := config.DecodePresets(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, p, 2)

	calm := p["calm"]
	require.NotNil(t, calm.Count)
	assert.Equal(t, 12, *calm.Count)
	assert.Equal(t, 2.5, *calm.Frequency)
	assert.Nil(t, calm.Color)

	assert.Equal(t, 140.0, *p["loud"].Thickness)
}

func TestDecodePresets_Empty(t *testing.T) {
	p, err := config.DecodePresets(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, p)
}

func TestDecodePresets_Malformed(t *testing.T) {
	_, err := config.DecodePresets(strings.NewReader("calm: [1, 2"))
	assert.Error(t, err)
}

func TestEncodeDecode_PresetFile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, config.EncodePresets(&buf, config.Presets{
		"wide": config.Fixed(5, 1, 2000, 300, 1, 1, 7, 60),
	}))

	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	p, err := config.LoadPresets(path)
	require.NoError(t, err)
	wide, err := p.Lookup("wide")
	require.NoError(t, err)
	assert.Equal(t, 2000.0, *wide.XAmplitude)

	_, err = p.Lookup("index")
	assert.NoError(t, err, "built-ins stay available")
}

func TestLoadPresets_MissingFile(t *testing.T) {
	_, err := config.LoadPresets(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
