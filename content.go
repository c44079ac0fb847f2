package folio

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// Content files expected at the root of a content directory.
const (
	siteFile  = "site.yaml"
	postsFile = "posts.yaml"
)

// Content is the immutable bundle the site is rendered from.
type Content struct {
	Profile Profile
	Store   *ContentStore
}

// ContentStore is the fixed, ordered sequence of blog posts. It has no
// mutation API; the order of construction is the display order.
type ContentStore struct {
	posts []BlogPost
}

// NewContentStore builds a store from posts. The slice is copied so later
// changes by the caller are not visible through the store.
func NewContentStore(posts []BlogPost) *ContentStore {
	owned := make([]BlogPost, len(posts))
	for i, p := range posts {
		p.Tags = append([]string(nil), p.Tags...)
		owned[i] = p
	}
	return &ContentStore{posts: owned}
}

// Posts returns every post in store order. The returned slice is shared
// with the store and must be treated as read-only; its capacity is clipped
// so appends never write into the store.
func (s *ContentStore) Posts() []BlogPost {
	return s.posts[:len(s.posts):len(s.posts)]
}

// Len returns the number of posts in the store.
func (s *ContentStore) Len() int {
	return len(s.posts)
}

// Lookup returns the first post whose slug equals slug exactly. The match is
// case-sensitive and the input is not normalized. The boolean is false when
// no post matches.
func (s *ContentStore) Lookup(slug string) (BlogPost, bool) {
	for _, p := range s.posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return BlogPost{}, false
}

// DuplicateSlugs returns every slug defined more than once, in the order the
// duplicates are first seen. Lookup keeps returning the first definition.
func (s *ContentStore) DuplicateSlugs() []string {
	seen := make(map[string]int, len(s.posts))
	var dups []string
	for _, p := range s.posts {
		seen[p.Slug]++
		if seen[p.Slug] == 2 {
			dups = append(dups, p.Slug)
		}
	}
	return dups
}

// LoadContent decodes site.yaml and posts.yaml from fsys. Unknown keys are
// rejected so typos in the content files fail at start-up.
func LoadContent(fsys fs.FS) (*Content, error) {
	var profile Profile
	if err := decodeStrict(fsys, siteFile, &profile); err != nil {
		return nil, err
	}
	var posts []BlogPost
	if err := decodeStrict(fsys, postsFile, &posts); err != nil {
		return nil, err
	}
	for i, p := range posts {
		if err := validatePost(p); err != nil {
			return nil, fmt.Errorf("%s: post %d: %w", postsFile, i+1, err)
		}
	}
	return &Content{
		Profile: profile,
		Store:   NewContentStore(posts),
	}, nil
}

func decodeStrict(fsys fs.FS, name string, out interface{}) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

var (
	errMissingSlug     = errors.New("slug is required")
	errInvalidReadTime = errors.New("readTime must be a positive number of minutes")
)

func validatePost(p BlogPost) error {
	if strings.TrimSpace(p.Slug) == "" {
		return errMissingSlug
	}
	if p.ReadTime <= 0 {
		return fmt.Errorf("%q: %w", p.Slug, errInvalidReadTime)
	}
	return nil
}
