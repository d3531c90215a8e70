package domain

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mouse-blink/marauders/internal/adapter"
	"github.com/mouse-blink/marauders/internal/logging"
	m "github.com/mouse-blink/marauders/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const libSource = `fn add(a: i32, b: i32) -> i32 {
    /*| add [arith] */
    a + b
    /*|| add_sub */
    /*|
    a - b
    */
    /*|| add_mul */
    /*|
    a * b
    */
    /* |*/
}
`

const opsSource = `def neg(x):
    """! neg [arith, sign] """
    return -x
    """!! neg_id """
    """!
    return x
    """
    """ !"""
`

const anonymousSource = `/*| */
a
/*|| anon_a */
/*|
b
*/
/* |*/
`

const plainConfig = "use_gitignore = false\n"

// writeProject creates a project in a temporary directory. Missing a
// marauder.toml entry, a configuration that does not consult git is written.
func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	if _, ok := files["marauder.toml"]; !ok {
		files["marauder.toml"] = plainConfig
	}

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	return dir
}

func sampleProject(t *testing.T) string {
	t.Helper()

	return writeProject(t, map[string]string{
		"lib.rs":       libSource,
		"ops.py":       opsSource,
		"plain.rs":     "fn plain() {}\n",
		"README.md":    "# sample\n",
		"sub/other.rs": anonymousSource,
	})
}

func newTestLoader() ProjectLoader {
	return NewProjectLoader(adapter.NewLocalSourceFSAdapter(), adapter.NewConfigStore(), logging.Discard())
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func TestProjectLoader_LoadRecursive(t *testing.T) {
	dir := sampleProject(t)

	project, err := newTestLoader().Load(dir + "/...")
	require.NoError(t, err)

	assert.Equal(t, m.Path(dir), project.Root)
	assert.Equal(t, m.Path(filepath.Join(dir, "marauder.toml")), project.ConfigPath)
	assert.False(t, project.Config.UseGitignore)

	paths := make([]m.Path, 0, len(project.Files))
	for _, f := range project.Files {
		paths = append(paths, f.Path)
	}

	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(dir, "lib.rs")),
		m.Path(filepath.Join(dir, "ops.py")),
		m.Path(filepath.Join(dir, "sub", "other.rs")),
	}, paths)

	assert.Equal(t, []string{"add_sub", "add_mul", "neg_id", "anon_a"}, project.VariantNames())
	assert.True(t, project.AllBase())
	assert.Empty(t, project.ActiveVariations())

	variations := project.Variations()
	require.Len(t, variations, 3)
	assert.Equal(t, 2, variations[0].Line)
	assert.Equal(t, filepath.Join(dir, "ops.py")+":2", variations[1].Location())
}

func TestProjectLoader_LoadNonRecursive(t *testing.T) {
	dir := sampleProject(t)

	project, err := newTestLoader().Load(dir)
	require.NoError(t, err)

	assert.Len(t, project.Files, 2)
	assert.NotContains(t, project.VariantNames(), "anon_a")
}

func TestProjectLoader_LoadSingleFile(t *testing.T) {
	dir := sampleProject(t)

	project, err := newTestLoader().Load(filepath.Join(dir, "ops.py"))
	require.NoError(t, err)

	assert.Equal(t, m.Path(dir), project.Root)
	require.Len(t, project.Files, 1)
	assert.Equal(t, []string{"neg_id"}, project.VariantNames())
}

func TestProjectLoader_UnsupportedFile(t *testing.T) {
	dir := sampleProject(t)

	_, err := newTestLoader().Load(filepath.Join(dir, "README.md"))

	var unsupported *UnsupportedLanguageError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, m.Path(filepath.Join(dir, "README.md")), unsupported.Path)
}

func TestProjectLoader_MissingPath(t *testing.T) {
	_, err := newTestLoader().Load(filepath.Join(t.TempDir(), "missing"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "root path error")
}

func TestProjectLoader_IgnorePatterns(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"marauder.toml": plainConfig + "ignore = [\"sub/**\"]\n",
		"lib.rs":        libSource,
		"sub/other.rs":  anonymousSource,
	})

	project, err := newTestLoader().Load(dir + "/...")
	require.NoError(t, err)

	assert.Equal(t, []string{"add_sub", "add_mul"}, project.VariantNames())
}

func TestProjectLoader_LanguagesRestrictFiles(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"marauder.toml": plainConfig + "languages = [\"python\"]\n",
		"lib.rs":        libSource,
		"ops.py":        opsSource,
	})

	project, err := newTestLoader().Load(dir + "/...")
	require.NoError(t, err)

	assert.Equal(t, []string{"neg_id"}, project.VariantNames())
}

func TestProjectLoader_InvalidConfiguration(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"marauder.toml": plainConfig + "languages = [\"cobol\"]\n",
		"lib.rs":        libSource,
	})

	_, err := newTestLoader().Load(dir + "/...")

	var unknown *UnknownLanguageError
	require.ErrorAs(t, err, &unknown)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestProjectLoader_ParseError(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"broken.rs": "/*| v */\na\n/*|| w */\n/*| b */\n",
	})

	_, err := newTestLoader().Load(dir + "/...")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
	assert.Contains(t, err.Error(), "broken.rs")
}

func TestProjectLoader_SaveWritesActiveBodies(t *testing.T) {
	dir := sampleProject(t)
	loader := newTestLoader()

	project, err := loader.Load(dir + "/...")
	require.NoError(t, err)

	lib := project.Files[0]
	require.NoError(t, lib.Code.Variations()[0].Activate(2))
	require.NoError(t, loader.Save(lib))

	saved := readFile(t, filepath.Join(dir, "lib.rs"))
	assert.Contains(t, saved, "    /*|| add_mul */\n    a * b\n")
	assert.Contains(t, saved, "    /*|\n    a + b\n    */\n")
	assert.Equal(t, opsSource, readFile(t, filepath.Join(dir, "ops.py")))

	reloaded, err := loader.Load(dir + "/...")
	require.NoError(t, err)
	assert.False(t, reloaded.AllBase())

	active := reloaded.ActiveVariations()
	require.Len(t, active, 1)
	assert.Equal(t, "add", active[0].Variation)
	assert.Equal(t, "add_mul", active[0].Variant)
	assert.True(t, strings.HasSuffix(active[0].String(), "lib.rs:2 add=add_mul"))

	require.NoError(t, lib.Code.Variations()[0].Activate(0))
	require.NoError(t, loader.Save(lib))
	assert.Equal(t, libSource, readFile(t, filepath.Join(dir, "lib.rs")))
}
