package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"dry-run.txt":            {Data: []byte("Information about dry-run mode")},
		"architecture.md":        {Data: []byte("# Architecture\n\nDetails")},
		"nested/option-store.md": {Data: []byte("store option")},
		"ignore.json":            {Data: []byte("{}")},
	}
}

func TestTopicManager_Scan(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.Scan())

	tests := []struct {
		name     string
		expected bool
		content  string
	}{
		{"dry-run", true, "Information about dry-run mode"},
		{"architecture", true, "# Architecture\n\nDetails"},
		{"--store", true, "store option"},
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

	assert.Equal(t, []string{"architecture", "dry-run", "option-store"}, tm.ListTopics())
}

func TestTopicManager_CustomExtensions(t *testing.T) {
	tm := NewWithOptions(testFS(), Options{Extensions: []string{".json"}})
	require.NoError(t, tm.Scan())

	assert.Equal(t, []string{"ignore"}, tm.ListTopics())
}

func TestEmbeddedContent(t *testing.T) {
	tm := New(Content())
	require.NoError(t, tm.Scan())

	for _, name := range []string{"references", "status", "tables", "config", "--no-reboot"} {
		_, ok := tm.GetTopic(name)
		assert.True(t, ok, name)
	}
}

func TestInitialize(t *testing.T) {
	root := &cobra.Command{Use: "fontproxy"}
	root.AddCommand(&cobra.Command{Use: "status", Short: "Show status", Run: func(*cobra.Command, []string) {}})

	_, err := Initialize(root, testFS(), Options{})
	require.NoError(t, err)

	run := func(args ...string) string {
		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetArgs(append([]string{"help"}, args...))
		require.NoError(t, root.Execute())
		return buf.String()
	}

	assert.Equal(t, "Information about dry-run mode", run("dry-run"))

	list := run("topics")
	assert.Contains(t, list, "General topics:")
	assert.Contains(t, list, "  architecture")
	assert.Contains(t, list, "  --store")

	assert.Contains(t, run("status"), "Show status")
}

func TestGlamourRenderer_NonMarkdownUntouched(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))

	out := (&GlamourRenderer{Style: "notty", Width: 40}).Render("# Title", ".md")
	assert.Contains(t, out, "Title")
}
