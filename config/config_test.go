package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	require.Equal(t, "", c.CleanBasePath())
	require.Equal(t, "content.json", c.ContentURL)
}

func TestDecode(t *testing.T) {
	c, err := Decode(`
base_path = "/app/"
addr = ":9000"
prerender = false
`)
	require.NoError(t, err)
	require.Equal(t, "/app", c.CleanBasePath())
	require.Equal(t, ":9000", c.Addr)
	require.False(t, c.Prerender)
	require.Equal(t, "content.yaml", c.ArticlesFile)

	_, err = Decode(`base_pth = "/"`)
	require.EqualError(t, err, "config: unknown keys: base_pth")

	_, err = Decode(`base_path = "app"`)
	require.Error(t, err)

	_, err = Decode(`content_url = ""`)
	require.Error(t, err)

	_, err = Decode(`base_path = `)
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "tinyui.toml")
	require.NoError(t, os.WriteFile(fname, []byte(`content_url = "/api/content.json"`), 0o644))

	c, err := Load(fname)
	require.NoError(t, err)
	require.Equal(t, "/api/content.json", c.ContentURL)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
