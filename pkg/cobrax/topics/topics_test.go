package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"help/dry-run.txt":        {Data: []byte("Information about dry-run mode")},
		"help/architecture.md":    {Data: []byte("# Architecture\n\nDetails")},
		"help/option-class.txt":   {Data: []byte("The class option")},
		"help/config.txxt":        {Data: []byte("Configuration Guide")},
		"help/nested/ignore.json": {Data: []byte("{}")},
	}
}

func TestScan(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFS(), Options{})
		require.NoError(t, tm.Scan())

		tests := []struct {
			name     string
			expected bool
			content  string
		}{
			{"dry-run", true, "Information about dry-run mode"},
			{"architecture", true, "# Architecture\n\nDetails"},
			{"config", false, ""},
			{"ignore", false, ""},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, ok := tm.GetTopic(tt.name)
				assert.Equal(t, tt.expected, ok)
				if ok {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := New(testFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.Scan())
		assert.Equal(t, []string{"config"}, tm.ListTopics())
	})
}

func TestGetTopic_FlagStyle(t *testing.T) {
	tm := New(testFS(), Options{})
	require.NoError(t, tm.Scan())

	topic, ok := tm.GetTopic("--class")
	require.True(t, ok)
	assert.Equal(t, "option-class", topic.Name)

	_, ok = tm.GetTopic("--missing")
	assert.False(t, ok)
}

type upperRenderer struct{}

func (upperRenderer) Render(content, format string) string {
	return strings.ToUpper(content) + format
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "app", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "sub", Short: "a subcommand", Run: func(*cobra.Command, []string) {}})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)

	_, err := Initialize(root, testFS(), Options{Renderer: upperRenderer{}})
	require.NoError(t, err)
	return root, &out
}

func TestHelpCommand_Topic(t *testing.T) {
	root, out := newRoot(t)
	root.SetArgs([]string{"help", "dry-run"})
	require.NoError(t, root.Execute())

	assert.Equal(t, "INFORMATION ABOUT DRY-RUN MODE.txt", out.String())
}

func TestHelpCommand_List(t *testing.T) {
	root, out := newRoot(t)
	root.SetArgs([]string{"help", "topics"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "General topics:\n  architecture\n  dry-run\n")
	assert.Contains(t, out.String(), "Option topics:\n  --class\n")
	assert.Contains(t, out.String(), "Use 'app help <topic>'")
}

func TestHelpCommand_FallsBackToCommandHelp(t *testing.T) {
	root, out := newRoot(t)
	root.SetArgs([]string{"help", "sub"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "a subcommand")
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# x", r.Render("# x", ".md"))
}

func TestGlamourRenderer_NonMarkdownUnchanged(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain", r.Render("plain", ".txt"))
}
