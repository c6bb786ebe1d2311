package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xTibor/segdisplay"
)

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-kind", "16", "-style", "amber", "-metrics", "wide",
		"-height", "32", "-dots=false", "-output", "out.svg", "12:34", "AB",
	})
	require.NoError(t, err)

	assert.Equal(t, segdisplay.SixteenSegment, cfg.kind)
	assert.Equal(t, segdisplay.StyleAmber, cfg.style)
	assert.Equal(t, segdisplay.MetricsWide, cfg.metrics)
	assert.Equal(t, 32.0, cfg.height)
	assert.False(t, cfg.decorations.Dots)
	assert.True(t, cfg.decorations.Colons)
	assert.Equal(t, "svg", cfg.backend)
	assert.Equal(t, []string{"12:34", "AB"}, cfg.lines)
}

func TestParseFlagsErrors(t *testing.T) {
	tests := [][]string{
		{},
		{"-kind", "twelve", "1"},
		{"-style", "neon", "1"},
		{"-metrics", "huge", "1"},
		{"-height", "0", "1"},
	}
	for _, args := range tests {
		_, err := parseFlags(args)
		assert.Error(t, err, "%v", args)
	}
}

func TestBackendForPath(t *testing.T) {
	assert.Equal(t, "svg", backendForPath("a/b.SVG"))
	assert.Equal(t, "raster", backendForPath("a/b.png"))
	assert.Equal(t, "raster", backendForPath("noext"))
}

func TestRunWritesFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"rows.png", "rows.svg"} {
		out := filepath.Join(dir, name)
		require.NoError(t, run([]string{"-output", out, "12:34.5", "-8'"}))
		info, err := os.Stat(out)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestRunSheet(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sheet.png")
	require.NoError(t, run([]string{"-sheet", "-height", "16", "-output", out}))
	_, err := os.Stat(out)
	assert.NoError(t, err)
}

func TestRunUnknownBackend(t *testing.T) {
	err := run([]string{"-backend", "pdf", "-output", filepath.Join(t.TempDir(), "x"), "1"})
	assert.Error(t, err)
}
