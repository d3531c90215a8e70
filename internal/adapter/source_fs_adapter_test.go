package adapter

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/marauders/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.rs"), "fn main() {}\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.rs"), "fn child() {}\n")

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		for _, forbidden := range []string{nestedDir, filepath.Join(nestedDir, "child.rs")} {
			assert.Falsef(t, containsPath(visited, forbidden), "Walk() unexpectedly visited %s when recursive is false", forbidden)
		}

		assert.True(t, containsPath(visited, filepath.Join(root, "main.rs")), "Walk() did not visit top-level file")
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.rs")
		writeTestFile(t, child, "fn child() {}\n")

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.True(t, containsPath(visited, child), "Walk() did not visit nested file when recursive")
	})
}

func TestLocalSourceFSAdapter_ReadWriteFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "lib.v")
	content := "(*! x *)\nDefinition x := 1.\n(* !*)\n"

	require.NoError(t, adapter.WriteFile(m.Path(path), []byte(content), 0o644))

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, content, string(got))

	info, err := adapter.FileInfo(m.Path(path))
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, int64(len(content)), info.Size())
}

func TestLocalSourceFSAdapter_FindProjectRoot(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	t.Run("finds configuration in a parent directory", func(t *testing.T) {
		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "marauder.toml"), "languages = []\n")

		nested := filepath.Join(root, "src", "deep")
		require.NoError(t, os.MkdirAll(nested, 0o755))
		file := filepath.Join(nested, "lib.rs")
		writeTestFile(t, file, "")

		got, err := adapter.FindProjectRoot(m.Path(file))
		require.NoError(t, err)
		assert.Equal(t, m.Path(root), got)

		got, err = adapter.FindProjectRoot(m.Path(nested))
		require.NoError(t, err)
		assert.Equal(t, m.Path(root), got)
	})

	t.Run("yaml configuration counts", func(t *testing.T) {
		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "marauder.yml"), "ignore: []\n")

		got, err := adapter.FindProjectRoot(m.Path(root))
		require.NoError(t, err)
		assert.Equal(t, m.Path(root), got)
	})

	t.Run("reports missing configuration", func(t *testing.T) {
		_, err := adapter.FindProjectRoot(m.Path(t.TempDir()))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrProjectRootNotFound))
	})
}

func TestLocalSourceFSAdapter_Collect(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	setup := func(t *testing.T) string {
		t.Helper()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.rs"), "")
		writeTestFile(t, filepath.Join(root, "notes.txt"), "")
		mustMkdir(t, filepath.Join(root, "src"))
		writeTestFile(t, filepath.Join(root, "src", "lib.rs"), "")
		writeTestFile(t, filepath.Join(root, "src", "BST.v"), "")
		mustMkdir(t, filepath.Join(root, "src", "gen"))
		writeTestFile(t, filepath.Join(root, "src", "gen", "out.rs"), "")
		mustMkdir(t, filepath.Join(root, ".hidden"))
		writeTestFile(t, filepath.Join(root, ".hidden", "h.rs"), "")
		mustMkdir(t, filepath.Join(root, "target"))
		writeTestFile(t, filepath.Join(root, "target", "build.rs"), "")

		return root
	}

	t.Run("recursive with extension filter", func(t *testing.T) {
		root := setup(t)

		got, err := adapter.Collect(m.Path(root), true, CollectOptions{Extensions: []string{"rs", ".v"}})
		require.NoError(t, err)

		assert.Equal(t, []m.Path{
			m.Path(filepath.Join(root, "main.rs")),
			m.Path(filepath.Join(root, "src", "BST.v")),
			m.Path(filepath.Join(root, "src", "gen", "out.rs")),
			m.Path(filepath.Join(root, "src", "lib.rs")),
		}, got)
	})

	t.Run("non recursive keeps top level", func(t *testing.T) {
		root := setup(t)

		got, err := adapter.Collect(m.Path(root), false, CollectOptions{Extensions: []string{"rs"}})
		require.NoError(t, err)
		assert.Equal(t, []m.Path{m.Path(filepath.Join(root, "main.rs"))}, got)
	})

	t.Run("ignore patterns", func(t *testing.T) {
		root := setup(t)

		got, err := adapter.Collect(m.Path(root), true, CollectOptions{
			Extensions: []string{"rs", "v"},
			Ignore:     []string{"src/gen", "**/*.v"},
		})
		require.NoError(t, err)

		assert.Equal(t, []m.Path{
			m.Path(filepath.Join(root, "main.rs")),
			m.Path(filepath.Join(root, "src", "lib.rs")),
		}, got)
	})

	t.Run("invalid ignore pattern", func(t *testing.T) {
		root := setup(t)

		_, err := adapter.Collect(m.Path(root), true, CollectOptions{Ignore: []string{"src/[a"}})
		require.Error(t, err)
	})

	t.Run("file root", func(t *testing.T) {
		root := setup(t)
		file := filepath.Join(root, "src", "lib.rs")

		got, err := adapter.Collect(m.Path(file), false, CollectOptions{Extensions: []string{"rs"}})
		require.NoError(t, err)
		assert.Equal(t, []m.Path{m.Path(file)}, got)

		got, err = adapter.Collect(m.Path(file), false, CollectOptions{Extensions: []string{"py"}})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := adapter.Collect(m.Path("/path/does/not/exist"), true, CollectOptions{})
		require.Error(t, err)
	})

	t.Run("gitignore", func(t *testing.T) {
		if _, err := exec.LookPath("git"); err != nil {
			t.Skip("git not available")
		}

		root := setup(t)
		gitInit := exec.Command("git", "init", "-q")
		gitInit.Dir = root
		require.NoError(t, gitInit.Run())
		writeTestFile(t, filepath.Join(root, ".gitignore"), "src/gen/\n")

		got, err := adapter.Collect(m.Path(root), true, CollectOptions{
			Extensions:   []string{"rs"},
			UseGitignore: true,
		})
		require.NoError(t, err)

		assert.Contains(t, got, m.Path(filepath.Join(root, "src", "lib.rs")))
		assert.NotContains(t, got, m.Path(filepath.Join(root, "src", "gen", "out.rs")))
	})

	t.Run("gitignore falls back to walking outside a repository", func(t *testing.T) {
		root := setup(t)

		got, err := adapter.Collect(m.Path(root), false, CollectOptions{
			Extensions:   []string{"rs"},
			UseGitignore: true,
		})
		require.NoError(t, err)
		assert.Equal(t, []m.Path{m.Path(filepath.Join(root, "main.rs"))}, got)
	})
}

func TestLocalSourceFSAdapter_ResolveRoot(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "nested"))
	t.Chdir(root)

	wd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		in        string
		path      string
		recursive bool
	}{
		{in: "./...", path: wd, recursive: true},
		{in: "...", path: wd, recursive: true},
		{in: ".", path: wd, recursive: false},
		{in: "", path: wd, recursive: false},
		{in: "./nested/...", path: filepath.Join(wd, "nested"), recursive: true},
		{in: "nested", path: filepath.Join(wd, "nested"), recursive: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			path, recursive, err := adapter.ResolveRoot(tt.in)
			require.NoError(t, err)
			assert.Equal(t, m.Path(tt.path), path)
			assert.Equal(t, tt.recursive, recursive)
		})
	}
}

func TestLocalSourceFSAdapter_PathHelpers(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	rel, err := adapter.RelPath(m.Path("/project"), m.Path("/project/src/lib.rs"))
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join("src", "lib.rs")), rel)

	assert.Equal(t, m.Path(filepath.Join("a", "b", "c.v")), adapter.JoinPath("a", "b", "c.v"))
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
