package tablebase

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
}

func TestInit(t *testing.T) {
	var dir1, dir2 = t.TempDir(), t.TempDir()
	touch(t, dir1, "KQvK.rtbw", "KQvK.rtbz", "KRvK.rtbw", "readme.txt")
	touch(t, dir2, "KRPvKR.rtbw")

	var tables = New(zerolog.Nop())
	var path = strings.Join([]string{dir1, dir2, filepath.Join(dir1, "missing")}, string(os.PathListSeparator))
	assert.Equal(t, 4, tables.Init(path))
	assert.Equal(t, []string{dir1, dir2, filepath.Join(dir1, "missing")}, tables.Paths())
	assert.Equal(t, 5, tables.Cardinality())

	tables.SetProbeLimit(4)
	assert.Equal(t, 4, tables.Cardinality())
}

func TestInitEmpty(t *testing.T) {
	var dir = t.TempDir()
	touch(t, dir, "KQvK.rtbw")

	var tables = New(zerolog.Nop())
	require.Equal(t, 1, tables.Init(dir))
	for _, path := range []string{EmptyPath, ""} {
		assert.Equal(t, 0, tables.Init(path))
		assert.Empty(t, tables.Paths())
		assert.Equal(t, 0, tables.Cardinality())
	}
}

func TestSettings(t *testing.T) {
	var tables = New(zerolog.Nop())
	assert.True(t, tables.Rule50())
	assert.Equal(t, 1, tables.ProbeDepth())

	tables.SetRule50(false)
	tables.SetProbeDepth(10)
	assert.False(t, tables.Rule50())
	assert.Equal(t, 10, tables.ProbeDepth())
}

func TestPieceCount(t *testing.T) {
	assert.Equal(t, 3, pieceCount("KQvK.rtbw"))
	assert.Equal(t, 6, pieceCount("KRPPvKR.rtbz"))
}
