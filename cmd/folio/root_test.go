package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "folio", cmd.Use)
	assert.Contains(t, cmd.Long, "portfolio and blog")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"serve", "validate", "posts", "version"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err, "command %s should exist", name)
			require.NotNil(t, sub)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)
	assert.Equal(t, "", configFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestServeCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	serve, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)

	addr := serve.Flags().Lookup("addr")
	require.NotNil(t, addr)
	assert.Equal(t, "", addr.DefValue)

	staticDir := serve.Flags().Lookup("static-dir")
	require.NotNil(t, staticDir)
	assert.Equal(t, "", staticDir.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"version", "--format", "yaml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "yaml"`)
}

func TestVersion(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewVersionCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "folio dev")
}

func TestValidateEmbeddedContent(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "ok: ")
	assert.Contains(t, buf.String(), " posts")
}

func TestValidateEmbeddedContentJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())

	var result ValidationResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.True(t, result.Valid)
	assert.Positive(t, result.Posts)
	assert.Empty(t, result.Errors)
}

func TestValidateDuplicateSlug(t *testing.T) {
	dir := writeContent(t, `
- id: "1"
  slug: same
  title: First
  excerpt: one
  content: "# One"
  publishedAt: 2024-01-02
  readTime: 3
- id: "2"
  slug: same
  title: Second
  excerpt: two
  content: "# Two"
  publishedAt: 2024-01-01
  readTime: 4
`)
	t.Setenv("FOLIO_CONTENT_DIR", dir)

	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs(nil)

	err := cmd.Execute()
	require.ErrorIs(t, err, errInvalidContent)
	assert.Contains(t, buf.String(), `slug "same" is defined more than once`)
	assert.NotContains(t, buf.String(), "ok:")
}

func TestValidateMissingContentDir(t *testing.T) {
	t.Setenv("FOLIO_CONTENT_DIR", filepath.Join(t.TempDir(), "missing"))

	cmd := NewValidateCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs(nil)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load content")
}

func TestPostsJSON(t *testing.T) {
	dir := writeContent(t, `
- id: "1"
  slug: newest
  title: Newest
  excerpt: first in order
  content: "text"
  publishedAt: 2024-02-01
  readTime: 2
  tags: [Go]
  featured: true
- id: "2"
  slug: older
  title: Older
  excerpt: second in order
  content: "text"
  publishedAt: 2024-01-01
  readTime: 7
`)
	t.Setenv("FOLIO_CONTENT_DIR", dir)

	buf := &bytes.Buffer{}
	cmd := NewPostsCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	var posts []postSummary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &posts))
	require.Len(t, posts, 2)
	assert.Equal(t, "newest", posts[0].Slug)
	assert.Equal(t, "2024-02-01", posts[0].PublishedAt)
	assert.True(t, posts[0].Featured)
	assert.Equal(t, []string{"Go"}, posts[0].Tags)
	assert.Equal(t, "older", posts[1].Slug)
	assert.Equal(t, 7, posts[1].ReadTime)
}

func TestPostsText(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewPostsCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "SLUG")
	assert.Contains(t, out, "min read")
}

// writeContent creates a content directory with a minimal site.yaml and the
// given posts.yaml body.
func writeContent(t *testing.T, posts string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.yaml"), []byte("name: Test Author\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "posts.yaml"), []byte(posts), 0o644))
	return dir
}
