package save

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printdex/printdex/pkg/catalog"
)

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "printers.json")
	printers := []catalog.Printer{
		{Brand: "Creality", Model: "Ender 3", Technology: catalog.TechnologyFDM, Volume: catalog.Volume{X: 220, Y: 220, Z: 250}, Source: "OrcaSlicer"},
	}

	require.NoError(t, JSON(path, printers))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "\n"), "output ends with a newline")

	var decoded []catalog.Printer
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, printers, decoded)
}

func TestJSONOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.json")
	require.NoError(t, JSON(path, map[string]int{"total_printers": 1}))
	require.NoError(t, JSON(path, map[string]int{"total_printers": 2}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]int
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 2, decoded["total_printers"])
}

func TestJSONLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, JSON(filepath.Join(dir, "printers.json"), []string{"x"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "printers.json", entries[0].Name())
}

func TestJSONUnwritableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	err := JSON(filepath.Join(dir, "sub", "printers.json"), []string{"x"})
	require.Error(t, err)
}
