package folio

import (
	"errors"
	"sync"

	"github.com/eringen/folio/markdown"
)

// ErrNotFound is returned when a slug does not resolve to a post.
var ErrNotFound = errors.New("post not found")

// RenderCache memoises per-slug render output: the post body as HTML and the
// social card PNG. Posts are immutable, so entries never expire.
type RenderCache struct {
	mu    sync.RWMutex
	store *ContentStore
	html  map[string]string
	cards map[string][]byte

	renderCard func(BlogPost, string) ([]byte, error)
	siteName   string
}

// NewRenderCache creates a RenderCache over store. siteName is stamped on
// social cards.
func NewRenderCache(store *ContentStore, siteName string) *RenderCache {
	return &RenderCache{
		store:      store,
		html:       make(map[string]string),
		cards:      make(map[string][]byte),
		renderCard: RenderCard,
		siteName:   siteName,
	}
}

// Body returns the post for slug and its content rendered as HTML.
func (c *RenderCache) Body(slug string) (BlogPost, string, error) {
	post, ok := c.store.Lookup(slug)
	if !ok {
		return BlogPost{}, "", ErrNotFound
	}

	c.mu.RLock()
	body, hit := c.html[slug]
	c.mu.RUnlock()
	if hit {
		return post, body, nil
	}

	body = markdown.HTML(post.Content)
	c.mu.Lock()
	c.html[slug] = body
	c.mu.Unlock()
	return post, body, nil
}

// Card returns the PNG social card for slug.
func (c *RenderCache) Card(slug string) ([]byte, error) {
	post, ok := c.store.Lookup(slug)
	if !ok {
		return nil, ErrNotFound
	}

	c.mu.RLock()
	png, hit := c.cards[slug]
	c.mu.RUnlock()
	if hit {
		return png, nil
	}

	png, err := c.renderCard(post, c.siteName)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.cards[slug] = png
	c.mu.Unlock()
	return png, nil
}

// Warm renders every post body up front.
func (c *RenderCache) Warm() {
	for _, p := range c.store.Posts() {
		_, _, _ = c.Body(p.Slug)
	}
}

// Len returns the number of cached bodies and cards.
func (c *RenderCache) Len() (bodies, cards int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.html), len(c.cards)
}
