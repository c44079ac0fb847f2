package folio

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPost(id, slug, title string) BlogPost {
	return BlogPost{
		ID:          id,
		Slug:        slug,
		Title:       title,
		Excerpt:     title + " excerpt",
		Content:     "# " + title + "\n\nBody of " + title + ".",
		PublishedAt: MustDate("2024-01-15"),
		ReadTime:    5,
		Image:       "https://images.example.com/" + slug + ".jpg",
		Tags:        []string{"Go", "Web", "Testing", "Echo"},
	}
}

func TestLookupFindsExactSlug(t *testing.T) {
	store := NewContentStore([]BlogPost{testPost("1", "hello-world", "Hello World")})

	got, ok := store.Lookup("hello-world")
	require.True(t, ok)
	assert.Equal(t, "Hello World", got.Title)

	_, ok = store.Lookup("Hello-World")
	assert.False(t, ok, "lookup must be case-sensitive")

	_, ok = store.Lookup("missing")
	assert.False(t, ok)
}

func TestLookupEverySlug(t *testing.T) {
	posts := []BlogPost{
		testPost("1", "a", "A"),
		testPost("2", "b", "B"),
		testPost("3", "c", "C"),
	}
	store := NewContentStore(posts)

	for _, p := range posts {
		got, ok := store.Lookup(p.Slug)
		require.True(t, ok, "slug %q", p.Slug)
		assert.Equal(t, p.Slug, got.Slug)
		assert.Equal(t, p.ID, got.ID)
	}
}

func TestLookupDoesNotNormalize(t *testing.T) {
	store := NewContentStore([]BlogPost{testPost("1", "hello-world", "Hello World")})

	tests := []string{"", " hello-world", "hello-world ", "hello-world/", "HELLO-WORLD", "hello_world"}
	for _, slug := range tests {
		_, ok := store.Lookup(slug)
		assert.False(t, ok, "Lookup(%q) should not match", slug)
	}
}

func TestLookupFirstMatchWins(t *testing.T) {
	store := NewContentStore([]BlogPost{
		testPost("1", "dup", "First"),
		testPost("2", "other", "Other"),
		testPost("3", "dup", "Second"),
	})

	got, ok := store.Lookup("dup")
	require.True(t, ok)
	assert.Equal(t, "First", got.Title)
	assert.Equal(t, []string{"dup"}, store.DuplicateSlugs())
}

func TestDuplicateSlugsNone(t *testing.T) {
	store := NewContentStore([]BlogPost{testPost("1", "a", "A"), testPost("2", "b", "B")})
	assert.Empty(t, store.DuplicateSlugs())
}

func TestPostsKeepsInsertionOrder(t *testing.T) {
	store := NewContentStore([]BlogPost{testPost("1", "a", "A"), testPost("2", "b", "B")})

	posts := store.Posts()
	require.Len(t, posts, 2)
	assert.Equal(t, "a", posts[0].Slug)
	assert.Equal(t, "b", posts[1].Slug)
	assert.Equal(t, 2, store.Len())
}

func TestStoreIsolatedFromCaller(t *testing.T) {
	input := []BlogPost{testPost("1", "a", "A")}
	store := NewContentStore(input)

	input[0].Title = "changed"
	input[0].Tags[0] = "changed"

	got, ok := store.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "A", got.Title)
	assert.Equal(t, "Go", got.Tags[0])

	// Appending to the returned slice must not grow the store.
	_ = append(store.Posts(), testPost("2", "b", "B"))
	assert.Equal(t, 1, store.Len())
	_, ok = store.Lookup("b")
	assert.False(t, ok)
}

const testSiteYAML = `
name: Test Author
headline: Full Stack Engineer
tagline: Builds things.
role: Developer
story:
  - First paragraph.
connect: Say hello.
skills:
  - title: Backend
    description: Go services.
    icon: backend
companies:
  - name: Acme
    logo: AC
    role: Engineer
    duration: Q1 2024
    description: Widgets.
    technologies: [Go]
    achievements: [Shipped]
socials:
  - label: GitHub
    url: https://github.com/example
`

const testPostsYAML = `
- id: "7"
  slug: second-first
  title: Second Written
  excerpt: Listed first.
  content: |
    # Heading

    Body.
  publishedAt: 2024-01-16
  readTime: 12
  image: https://images.example.com/a.jpg
  tags: [Firebase, Backend]
  featured: true
- id: "1"
  slug: first-written
  title: First Written
  excerpt: Listed second.
  content: Body.
  publishedAt: "2024-01-15"
  readTime: 8
  image: https://images.example.com/b.jpg
  tags: [AWS]
  featured: false
`

func TestLoadContent(t *testing.T) {
	fsys := fstest.MapFS{
		"site.yaml":  {Data: []byte(testSiteYAML)},
		"posts.yaml": {Data: []byte(testPostsYAML)},
	}

	content, err := LoadContent(fsys)
	require.NoError(t, err)

	assert.Equal(t, "Test Author", content.Profile.Name)
	require.Len(t, content.Profile.Companies, 1)
	assert.Equal(t, []string{"Go"}, content.Profile.Companies[0].Technologies)

	posts := content.Store.Posts()
	require.Len(t, posts, 2)
	assert.Equal(t, "second-first", posts[0].Slug)
	assert.Equal(t, "first-written", posts[1].Slug)
	assert.Equal(t, "2024-01-16", posts[0].PublishedAt.String())
	assert.Equal(t, "2024-01-15", posts[1].PublishedAt.String())
	assert.Equal(t, 12, posts[0].ReadTime)
	assert.True(t, posts[0].Featured)
	assert.Equal(t, []string{"Firebase", "Backend"}, posts[0].Tags)
	assert.Equal(t, "# Heading\n\nBody.\n", posts[0].Content)
}

func TestLoadContentErrors(t *testing.T) {
	tests := []struct {
		name  string
		posts string
		want  string
	}{
		{"unknown field", "- slug: a\n  readTime: 1\n  author: someone\n", "author"},
		{"bad date", "- slug: a\n  readTime: 1\n  publishedAt: 15/01/2024\n", "parse date"},
		{"missing slug", "- title: A\n  readTime: 1\n", "slug is required"},
		{"zero read time", "- slug: a\n  readTime: 0\n", "readTime must be a positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"site.yaml":  {Data: []byte(testSiteYAML)},
				"posts.yaml": {Data: []byte(tt.posts)},
			}
			_, err := LoadContent(fsys)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadContentMissingFile(t *testing.T) {
	_, err := LoadContent(fstest.MapFS{"site.yaml": {Data: []byte(testSiteYAML)}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "posts.yaml")
}

func TestDefaultContentLoads(t *testing.T) {
	content, err := LoadContent(DefaultContentFS())
	require.NoError(t, err)
	assert.NotEmpty(t, content.Profile.Name)
	assert.Positive(t, content.Store.Len())
	assert.Empty(t, content.Store.DuplicateSlugs())
}
