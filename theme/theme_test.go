package theme

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowade/tinyui/dom"
	"github.com/gowade/tinyui/dom/htmldom"
)

func TestTheme(t *testing.T) {
	require.Equal(t, "theme-light", Light.Class())
	require.Equal(t, "theme-dark", Dark.Class())
	require.Equal(t, Dark, Light.Toggled())
	require.Equal(t, Light, Light.Toggled().Toggled())
	require.Equal(t, "dark", Dark.String())
}

func TestProviderApply(t *testing.T) {
	doc := htmldom.MustNewDocument(`<body><div id="app" class="stale other"></div></body>`)
	root, _ := doc.ElementByID("app")

	p := NewProvider(Light).Toggle()
	require.Equal(t, Dark, p.Current)
	require.NoError(t, p.Apply(root))
	require.Equal(t, "theme-dark", root.ClassName())

	require.NoError(t, p.Toggle().Apply(root))
	require.Equal(t, "theme-light", root.ClassName())

	require.ErrorIs(t, p.Apply(nil), dom.ErrNotElement)
}
