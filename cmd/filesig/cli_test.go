package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tridgewood/filesig/fuzzy"
)

func TestCompressUncompressRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.txt")
	compressed := filepath.Join(dir, "input.Z")
	restored := filepath.Join(dir, "restored.txt")

	require.NoError(t, os.WriteFile(src, []byte("round trip through the CLI, round trip through the CLI"), 0o644))

	root := newRootCmd()
	root.SetArgs([]string{"compress", src, compressed})
	require.NoError(t, root.Execute())

	root = newRootCmd()
	root.SetArgs([]string{"uncompress", compressed, restored})
	require.NoError(t, root.Execute())

	want, err := os.ReadFile(src)
	require.NoError(t, err)
	got, err := os.ReadFile(restored)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestHashAndCmpCommands(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte("hashing sample content for the CLI smoke test"), 0o644))

	root := newRootCmd()
	root.SetArgs([]string{"hash", path})
	require.NoError(t, root.Execute())

	sig, err := fuzzy.HashFile(path, 0)
	require.NoError(t, err)
	root = newRootCmd()
	root.SetArgs([]string{"cmp", sig, sig})
	require.NoError(t, root.Execute())
}

func TestCmpRejectsMismatchedSignatures(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"cmp", "3:abc:def", "196608:xyz:uvw"})
	require.NoError(t, root.Execute())
}
