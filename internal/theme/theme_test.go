package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MergesOverBase(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".diffpane"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".diffpane", "theme.json"),
		[]byte(`{"addColor":"42","highlightBgColor":"100"}`), 0o644))

	got := Load(dir, "light")
	want := Named("light")
	want.AddColor = "42"
	want.HighlightBgColor = "100"
	require.Equal(t, want, got)
}

func TestLoad_FallsBackOnBadFile(t *testing.T) {
	dir := t.TempDir()
	require.Equal(t, Named("dark"), Load(dir, "dark"))

	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".diffpane"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".diffpane", "theme.json"), []byte("{"), 0o644))
	require.Equal(t, Named("dark"), Load(dir, "dark"))
}

func TestNamed(t *testing.T) {
	require.Equal(t, darkTheme(), Named("anything"))
	require.Equal(t, lightTheme(), Named("light"))
}
