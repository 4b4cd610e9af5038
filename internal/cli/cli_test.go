package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBlocks_Text(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.txt", "a\nold\nb\n")
	revised := writeFile(t, dir, "revised.txt", "a\nnew\nb\n")

	out, err := execute(t, "blocks", base, revised)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "change-0  removed  L2 +1  old", lines[0])
	assert.Equal(t, "change-1  added    L3 +1  new", lines[1])
	assert.Equal(t, "2 changes, 1 added, 1 removed, 2 unchanged", lines[2])
}

func TestBlocks_JSON(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.txt", "keep\n")
	revised := writeFile(t, dir, "revised.txt", "keep\nmore\nlines\n")

	out, err := execute(t, "blocks", "--json", base, revised)
	require.NoError(t, err)

	var got struct {
		Blocks []struct {
			ID        string `json:"id"`
			Kind      string `json:"kind"`
			LineStart int    `json:"lineStart"`
			LineCount int    `json:"lineCount"`
			Preview   string `json:"preview"`
		} `json:"blocks"`
		Stats struct {
			Added  int `json:"added"`
			Blocks int `json:"blocks"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Blocks, 1)
	assert.Equal(t, "change-0", got.Blocks[0].ID)
	assert.Equal(t, "added", got.Blocks[0].Kind)
	assert.Equal(t, 1, got.Blocks[0].LineStart)
	assert.Equal(t, 2, got.Blocks[0].LineCount)
	assert.Equal(t, "more", got.Blocks[0].Preview)
	assert.Equal(t, 2, got.Stats.Added)
	assert.Equal(t, 1, got.Stats.Blocks)
}

func TestBlocks_IdenticalFiles(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "same.txt", "x\ny\n")

	out, err := execute(t, "blocks", p, p)
	require.NoError(t, err)
	assert.Equal(t, "0 changes, 0 added, 0 removed, 2 unchanged\n", out)
}

func TestBlocks_MissingFile(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "a.txt", "x\n")

	_, err := execute(t, "blocks", p, filepath.Join(dir, "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read revised")
}

func TestView_RejectsUnknownMode(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "a.txt", "x\n")

	_, err := execute(t, "--mode", "diagonal", "view", p, p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown view mode")
}

func TestView_RejectsBadLogLevel(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "a.txt", "x\n")

	_, err := execute(t, "--log-level", "loud", "view", p, p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
}

func TestArgsValidation(t *testing.T) {
	_, err := execute(t, "view", "only-one")
	require.Error(t, err)

	_, err = execute(t, "patch", "a", "b")
	require.Error(t, err)
}

func TestRefreshInterval(t *testing.T) {
	cmd := newViewCmd()
	require.NoError(t, cmd.ParseFlags(nil))
	assert.Zero(t, refreshInterval(cmd))

	cmd = newHeadCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--watch"}))
	assert.Equal(t, time.Second, refreshInterval(cmd))

	cmd = newViewCmd()
	require.NoError(t, cmd.ParseFlags([]string{"-w", "--interval", "250ms"}))
	assert.Equal(t, 250*time.Millisecond, refreshInterval(cmd))

	// patch reads stdin once and has no watch flags
	assert.Nil(t, newPatchCmd().Flags().Lookup("watch"))
}

func TestPatch_ParseError(t *testing.T) {
	dir := t.TempDir()
	long := "@@ -1 +1 @@\n+" + strings.Repeat("x", 11*1024*1024) + "\n"
	p := writeFile(t, dir, "huge.patch", long)

	_, err := execute(t, "patch", p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse patch")
}
