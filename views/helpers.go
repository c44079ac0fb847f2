package views

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/folio"
)

// html accumulates the first write error so components can emit markup in
// straight-line code and check once at the end.
type html struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTML(ctx context.Context, w io.Writer) *html {
	return &html{ctx: ctx, w: w}
}

func (h *html) raw(parts ...string) {
	for _, s := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, s)
	}
}

// text writes s HTML-escaped. It is safe in element bodies and in
// double-quoted attribute values.
func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

// url writes a sanitized, escaped URL for href and src attributes.
func (h *html) url(s string) {
	h.text(string(templ.URL(s)))
}

func (h *html) render(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// component adapts a write function to templ.Component.
func component(fn func(h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(ctx, w)
		fn(h)
		return h.err
	})
}

// tags writes a tag list; every tag is one <li class="tag">.
func (h *html) tags(tags []string) {
	if len(tags) == 0 {
		return
	}
	h.raw(`<ul class="tags">`)
	for _, t := range tags {
		h.raw(`<li class="tag">`)
		h.text(t)
		h.raw(`</li>`)
	}
	h.raw(`</ul>`)
}

// postMeta writes the date and read time line shared by cards and posts.
func (h *html) postMeta(p folio.BlogPost) {
	h.raw(`<div class="post-meta"><time datetime="`)
	h.text(p.PublishedAt.String())
	h.raw(`">`)
	h.text(folio.FormatDate(p.PublishedAt))
	h.raw(`</time><span class="dot" aria-hidden="true">·</span><span>`)
	h.text(folio.ReadTimeLabel(p.ReadTime))
	h.raw(`</span></div>`)
}

// FilterRelatedPosts returns posts that share at least one tag with the
// current post, in store order.
func FilterRelatedPosts(current folio.BlogPost, posts []folio.BlogPost) []folio.BlogPost {
	tagSet := make(map[string]struct{})
	for _, t := range current.Tags {
		tag := strings.ToLower(strings.TrimSpace(t))
		if tag != "" {
			tagSet[tag] = struct{}{}
		}
	}
	var related []folio.BlogPost
	for _, p := range posts {
		if p.Slug == current.Slug {
			continue
		}
		for _, t := range p.Tags {
			tag := strings.ToLower(strings.TrimSpace(t))
			if _, ok := tagSet[tag]; ok {
				related = append(related, p)
				break
			}
		}
	}
	return related
}

// NavClass returns the CSS classes for a header link.
func NavClass(active bool) string {
	if active {
		return "nav-link active"
	}
	return "nav-link"
}

// cssDuration formats d for a CSS time value, e.g. "5s" or "2.5s".
func cssDuration(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}
