package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeExecutable(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0755))
	return path
}

func TestLookPath(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	writeExecutable(t, first, "tool")
	writeExecutable(t, second, "tool")
	writeExecutable(t, second, "other")
	require.NoError(t, os.WriteFile(filepath.Join(first, "plain"), []byte("data"), 0644))

	dirs := []string{first, second}

	path, ok := lookPath(dirs, "tool")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(first, "tool"), path, "directory order is the tie-break")

	path, ok = lookPath(dirs, "other")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(second, "other"), path)

	_, ok = lookPath(dirs, "plain")
	assert.False(t, ok, "non-executable files do not resolve")

	_, ok = lookPath(dirs, "missing")
	assert.False(t, ok)

	_, ok = lookPath(nil, "tool")
	assert.False(t, ok, "empty search path resolves nothing")
}

func TestExecutablesIn(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	writeExecutable(t, first, "xyz_b")
	writeExecutable(t, first, "xyz_a")
	writeExecutable(t, second, "xyz_a") // duplicate across dirs
	writeExecutable(t, second, "abc")
	require.NoError(t, os.WriteFile(filepath.Join(first, "xyz_plain"), []byte("data"), 0644))

	dirs := []string{first, "/does/not/exist", second}

	names := executablesIn(dirs, "xyz")
	assert.Equal(t, []string{"xyz_a", "xyz_b"}, names)

	names = executablesIn(dirs, "")
	assert.Equal(t, []string{"abc", "xyz_a", "xyz_b"}, names)

	assert.Empty(t, executablesIn(dirs, "zzz"))
}
