package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	for _, name := range []string{"Info", "Success", "Warning", "Error", "Path"} {
		_, ok := StyleRegistry[name]
		assert.True(t, ok, "missing style %s", name)
	}
	assert.True(t, GetStyle("Error").GetBold())
	assert.Equal(t, 2, GetStyle("Path").GetPaddingLeft())
}

func TestLoadStylesFromData(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, LoadStylesFromData(embeddedStyles)) })

	data := []byte(`
colors:
  accent: {light: "#000000", dark: "#FFFFFF"}
styles:
  Custom:
    italic: true
    foreground: accent
`)
	require.NoError(t, LoadStylesFromData(data))
	assert.True(t, GetStyle("Custom").GetItalic())

	assert.Error(t, LoadStylesFromData([]byte("styles: [")))
}

func TestGetStyleUnknown(t *testing.T) {
	style := GetStyle("Nope")
	assert.Equal(t, "x", style.Render("x"))
}
