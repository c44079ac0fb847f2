package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/folio"
)

// Post renders the detail page of post. body is the post content already
// converted to HTML.
func (s *Site) Post(post folio.BlogPost, body templ.Component) templ.Component {
	meta := folio.PageMeta{
		Title:       post.Title + " | " + s.Config.Name,
		Description: post.Excerpt,
		URL:         folio.BuildURL(s.Config.URL, "blog", post.Slug),
		OGType:      "article",
		Image:       s.Config.URL + "/blog/" + post.Slug + "/card.png",
	}

	content := component(func(h *html) {
		h.raw(`<article class="post"><a class="back-link" href="/#posts">← Back to posts</a>`)
		h.raw(`<header class="post-header">`)
		h.tags(post.Tags)
		h.raw(`<h1 class="post-title">`)
		h.text(post.Title)
		h.raw(`</h1>`)
		h.postMeta(post)
		h.raw(`</header>`)
		if post.Image != "" {
			h.raw(`<img class="post-hero" src="`)
			h.url(post.Image)
			h.raw(`" alt="`)
			h.text(post.Title)
			h.raw(`">`)
		}
		h.raw(`<div class="prose">`)
		h.render(body)
		h.raw(`</div>`)

		if related := FilterRelatedPosts(post, s.Posts); len(related) > 0 {
			h.raw(`<aside class="related"><h2 class="section-title">Related posts</h2><ul>`)
			for _, r := range related {
				h.raw(`<li><a href="`)
				h.url(r.Link())
				h.raw(`">`)
				h.text(r.Title)
				h.raw(`</a></li>`)
			}
			h.raw(`</ul></aside>`)
		}
		h.raw(`</article>`)
	})
	return s.Layout(meta, NavHome, folio.BlogPostingJSONLD(post, s.Config), content)
}
