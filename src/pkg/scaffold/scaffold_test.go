package scaffold

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucid-engine/lucid-scaffold/src/pkg/infrastructure/fs"
	"github.com/lucid-engine/lucid-scaffold/src/pkg/scaffold/layout"
	"github.com/lucid-engine/lucid-scaffold/src/pkg/scaffold/tree"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func diskPaths(t *testing.T, root string) []string {
	t.Helper()
	var paths []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	sort.Strings(paths)
	return paths
}

func layoutPaths() []string {
	var paths []string
	for _, e := range tree.Flatten(layout.LucidEngine()) {
		paths = append(paths, e.Path)
	}
	sort.Strings(paths)
	return paths
}

func TestScaffoldDemo(t *testing.T) {
	dir := t.TempDir()

	result, err := Scaffold(fs.NewOsFs(), dir, "Demo")
	require.NoError(t, err)

	root := filepath.Join(dir, "Demo")
	assert.Equal(t, root, result.Root)
	assert.True(t, filepath.IsAbs(result.Root))

	assert.True(t, strings.HasPrefix(readFile(t, filepath.Join(root, "lucid-engine", "README.md")), "# Lucid Engine"))
	assert.Equal(t, "// TODO: Implement lib.rs\n",
		readFile(t, filepath.Join(root, "lucid-engine", "workspaces", "meta", "unicity", "src", "lib.rs")))
	assert.Equal(t, "", readFile(t, filepath.Join(root, "lucid-engine", "build", "CMakeLists.txt")))
	assert.Equal(t, "", readFile(t, filepath.Join(root, "lucid-engine", "build", "Cargo.toml")))
	assert.Equal(t, "", readFile(t, filepath.Join(root, "lucid-engine", "build", "platform", "vulkan-cmake")))
	assert.Equal(t, "// TODO: Implement LD_PhysicsDebugger.py\n",
		readFile(t, filepath.Join(root, "lucid-engine", "stacks", "Lucid-Disassembly", "src", "pipelines", "LD_PhysicsDebugger.py")))

	assert.Len(t, result.Overwritten, 4)
	for _, o := range layout.Overwrites() {
		assert.Equal(t, o.Content, readFile(t, filepath.Join(root, filepath.FromSlash(o.Path))), o.Path)
	}
}

func TestScaffoldPathSetMatchesLayout(t *testing.T) {
	dir := t.TempDir()

	result, err := Scaffold(fs.NewOsFs(), dir, "Demo")
	require.NoError(t, err)

	if diff := deep.Equal(diskPaths(t, result.Root), layoutPaths()); diff != nil {
		t.Error(strings.Join(diff, "\n"))
	}

	dirs, files := tree.Count(layout.LucidEngine())
	assert.Equal(t, dirs, result.Report.DirsCreated)
	assert.Equal(t, files, result.Report.FilesCreated)
}

func TestScaffoldTwice(t *testing.T) {
	dir := t.TempDir()
	afs := fs.NewOsFs()

	_, err := Scaffold(afs, dir, "Demo")
	require.NoError(t, err)

	result, err := Scaffold(afs, dir, "Demo")
	require.NoError(t, err)

	assert.Equal(t, 0, result.Report.DirsCreated)
	assert.Equal(t, 0, result.Report.FilesCreated)

	if diff := deep.Equal(diskPaths(t, result.Root), layoutPaths()); diff != nil {
		t.Error(strings.Join(diff, "\n"))
	}

	assert.Equal(t, "", readFile(t, filepath.Join(result.Root, "lucid-engine", "build", "CMakeLists.txt")))
	assert.Equal(t, "", readFile(t, filepath.Join(result.Root, "examples", "lucid-mp-demo", "Cargo.toml")))
	for _, o := range layout.Overwrites() {
		assert.Equal(t, o.Content, readFile(t, filepath.Join(result.Root, filepath.FromSlash(o.Path))), o.Path)
	}
}

func TestScaffoldKeepsEditedPlaceholders(t *testing.T) {
	dir := t.TempDir()
	afs := fs.NewOsFs()

	result, err := Scaffold(afs, dir, "Demo")
	require.NoError(t, err)

	lib := filepath.Join(result.Root, "lucid-engine", "workspaces", "meta", "sdk", "src", "lib.rs")
	require.NoError(t, os.WriteFile(lib, []byte("pub mod templates;\n"), 0o644))
	readme := filepath.Join(result.Root, "lucid-engine", "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("edited"), 0o644))

	_, err = Scaffold(afs, dir, "Demo")
	require.NoError(t, err)

	assert.Equal(t, "pub mod templates;\n", readFile(t, lib))
	assert.True(t, strings.HasPrefix(readFile(t, readme), "# Lucid Engine"))
}

func TestScaffoldInMemory(t *testing.T) {
	afs := fs.NewMemFs()

	result, err := Scaffold(afs, "/work", layout.DefaultProjectName)
	require.NoError(t, err)
	assert.Equal(t, "/work/MyLucidGame", result.Root)

	b, err := afs.ReadFile("/work/MyLucidGame/.gitignore")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "# Builds\n"))
}

func TestScaffoldDryRunTouchesNothing(t *testing.T) {
	dir := t.TempDir()
	dry := fs.NewDryRunFs(fs.NewOsFs())

	result, err := Scaffold(dry, dir, "Demo")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Report.Created)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestScaffoldRejectsBadNames(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"", " ", ".", "..", "a/b", `a\b`} {
		_, err := Scaffold(fs.NewOsFs(), dir, name)
		assert.Error(t, err, "name %q", name)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestScaffoldFailsOnFileInTheWay(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Demo"), []byte("x"), 0o644))

	_, err := Scaffold(fs.NewOsFs(), dir, "Demo")
	assert.Error(t, err)
}
