package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirIdempotent(t *testing.T) {
	fs := NewMemFs()

	require.NoError(t, EnsureDir(fs, "/a/b/c", PermDirShared))
	require.NoError(t, EnsureDir(fs, "/a/b/c", PermDirShared))

	ok, err := fs.DirExists("/a/b/c")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEnsureDirFileInTheWay(t *testing.T) {
	fs := NewMemFs()
	require.NoError(t, fs.WriteFile("/a", []byte("x"), PermFileShared))

	err := EnsureDir(fs, "/a", PermDirShared)
	assert.Error(t, err)
}

func TestWriteFileAtomicReplaces(t *testing.T) {
	fs := NewMemFs()
	require.NoError(t, fs.MkdirAll("/p", PermDirShared))
	require.NoError(t, fs.WriteFile("/p/README.md", nil, PermFileShared))

	require.NoError(t, WriteFileAtomic(fs, "/p/README.md", []byte("# hello\n"), PermDirShared, PermFileShared))

	b, err := fs.ReadFile("/p/README.md")
	require.NoError(t, err)
	assert.Equal(t, "# hello\n", string(b))

	entries, err := fs.ReadDir("/p")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestWriteFileAtomicCreatesParents(t *testing.T) {
	dir := t.TempDir()
	fs := NewOsFs()
	target := filepath.Join(dir, "x", "y", "file.txt")

	require.NoError(t, WriteFileAtomic(fs, target, []byte("data"), PermDirShared, PermFileShared))

	b, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "data", string(b))
}

func TestDryRunFsLeavesBaseUntouched(t *testing.T) {
	dir := t.TempDir()
	dry := NewDryRunFs(NewOsFs())
	target := filepath.Join(dir, "sub", "file.txt")

	require.NoError(t, EnsureDir(dry, filepath.Join(dir, "sub"), PermDirShared))
	require.NoError(t, WriteFileAtomic(dry, target, []byte("data"), PermDirShared, PermFileShared))

	assert.True(t, Exists(dry, target))
	_, err := os.Stat(filepath.Join(dir, "sub"))
	assert.True(t, os.IsNotExist(err))
}

func TestAbsExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := Abs("~/projects")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "projects"), got)
}

func TestWriteFileAtomicSetsFinalMode(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "file.txt")

	require.NoError(t, WriteFileAtomic(NewOsFs(), target, []byte("data"), PermDirShared, PermFileShared))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, PermFileShared, info.Mode().Perm())
}

func TestRel(t *testing.T) {
	assert.Equal(t, "Demo/lucid-engine", Rel("/work", "/work/Demo/lucid-engine"))
	assert.Equal(t, "relative/path", Rel("/work", "relative/path"))
}

func TestConfigDirName(t *testing.T) {
	assert.Equal(t, "lucid-scaffold", filepath.Base(ConfigDir()))
}
