package htmlutils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAndRender(t *testing.T) {
	root, err := ParseDocument("")
	require.NoError(t, err)
	require.Equal(t, "<html><head></head><body></body></html>", Render(root))

	root, err = ParseDocument(`  <div id="a"><b>x</b>y</div>  `)
	require.NoError(t, err)
	body := root.FirstChild.LastChild
	require.Equal(t, "body", body.Data)
	require.Equal(t, `<b>x</b>y`, RenderChildren(body.FirstChild))
}
