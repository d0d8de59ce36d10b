package dttm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneTableDefaults(t *testing.T) {
	zt := NewZoneTable()

	for abbr, want := range map[string]int{
		"UTC": 0,
		"GMT": 0,
		"EST": -5 * 60,
		"MST": -7 * 60,
		"CET": 60,
	} {
		got, ok := zt.Offset(abbr)
		require.True(t, ok, "abbr %s", abbr)
		assert.Equal(t, want, got, "abbr %s", abbr)
	}

	// Matching ignores case and padding.
	got, ok := zt.Offset(" est ")
	require.True(t, ok)
	assert.Equal(t, -300, got)

	_, ok = zt.Offset("NOTAZONE")
	assert.False(t, ok)
	_, ok = zt.Offset("")
	assert.False(t, ok)
}

func TestLoadZoneTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zones.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[zones]
xst = "+03:30"
est = "+1000"
nst = "-03:30"
utc = "+00"
`), 0o644))

	zt, err := LoadZoneTable(path)
	require.NoError(t, err)

	// New abbreviations resolve, whatever the case.
	got, ok := zt.Offset("xst")
	require.True(t, ok)
	assert.Equal(t, 210, got)

	got, ok = zt.Offset("NST")
	require.True(t, ok)
	assert.Equal(t, -210, got)

	// Overrides shadow the bundled database.
	got, ok = zt.Offset("EST")
	require.True(t, ok)
	assert.Equal(t, 600, got)

	got, ok = zt.Offset("UTC")
	require.True(t, ok)
	assert.Equal(t, 0, got)

	// Abbreviations not overridden still fall through to the bundled set.
	got, ok = zt.Offset("MST")
	require.True(t, ok)
	assert.Equal(t, -420, got)
}

func TestLoadZoneTableErrors(t *testing.T) {
	_, err := LoadZoneTable(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[zones]\nxst = \"sideways\"\n"), 0o644))
	_, err = LoadZoneTable(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad offset")

	notToml := filepath.Join(t.TempDir(), "not.toml")
	require.NoError(t, os.WriteFile(notToml, []byte("zones = ["), 0o644))
	_, err = LoadZoneTable(notToml)
	assert.Error(t, err)
}
