package confset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptionsMissing(t *testing.T) {
	t.Setenv(EnvSearchPath, "")

	o, err := LoadOptions(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, Options{SearchPath: DefaultDirs}, o)
	assert.Equal(t, DefaultDirs, o.Locator().Dirs())
}

func TestLoadOptionsFile(t *testing.T) {
	t.Setenv(EnvSearchPath, "")

	fn := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(fn, []byte(`search_path = ["/srv/default", " /srv/sysconfig ", ""]
sort = true
`), 0o644))

	o, err := LoadOptions(fn)
	require.NoError(t, err)
	assert.Equal(t, Options{
		SearchPath: []string{"/srv/default", "/srv/sysconfig"},
		Sort:       true,
	}, o)
}

func TestLoadOptionsEnv(t *testing.T) {
	t.Setenv(EnvSearchPath, "/a"+string(os.PathListSeparator)+"/b")

	fn := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(fn, []byte("search_path = [\"/srv\"]\ninfo = true\n"), 0o644))

	o, err := LoadOptions(fn)
	require.NoError(t, err)
	assert.Equal(t, []string{"/a", "/b"}, o.SearchPath)
	assert.True(t, o.Info)
}

func TestLoadOptionsInvalid(t *testing.T) {
	t.Parallel()

	fn := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(fn, []byte("search_path = [\n"), 0o644))

	_, err := LoadOptions(fn)
	require.Error(t, err)
}

func TestDefaultOptionsFile(t *testing.T) {
	t.Parallel()

	fn := DefaultOptionsFile()
	assert.Equal(t, "config.toml", filepath.Base(fn))
	assert.Equal(t, "confset", filepath.Base(filepath.Dir(fn)))
}
