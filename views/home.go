package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/folio"
)

// cardTagLimit caps the tags shown on a summary card.
const cardTagLimit = 3

// Home renders the hero followed by one summary card per post, in the
// order given.
func (s *Site) Home(posts []folio.BlogPost) templ.Component {
	p := s.Profile
	meta := s.pageMeta("", p.Tagline)
	meta.Title = s.Config.Name + " | " + p.Headline

	body := component(func(h *html) {
		h.raw(`<section class="hero"><h1 class="hero-title">`)
		h.text(p.Headline)
		h.raw(`</h1><p class="hero-tagline">`)
		h.text(p.Tagline)
		h.raw(`</p><a class="button" href="#posts">Explore Posts</a></section>`)

		h.raw(`<section id="posts" class="posts"><h2 class="section-title">Latest Posts</h2>`)
		if len(posts) == 0 {
			h.raw(`<p class="empty">No posts yet.</p>`)
		} else {
			h.raw(`<div class="post-grid">`)
			for _, post := range posts {
				h.render(PostCard(post))
			}
			h.raw(`</div>`)
		}
		h.raw(`</section>`)
	})
	return s.Layout(meta, NavHome, folio.WebsiteJSONLD(s.Config), body)
}

// PostCard renders the summary card of post: image, title, excerpt, date,
// read time and at most three tags.
func PostCard(post folio.BlogPost) templ.Component {
	return component(func(h *html) {
		h.raw(`<article class="post-card" data-slug="`)
		h.text(post.Slug)
		h.raw(`"><a class="post-card-link" href="`)
		h.url(post.Link())
		h.raw(`">`)
		if post.Image != "" {
			h.raw(`<img class="post-card-image" loading="lazy" src="`)
			h.url(post.Image)
			h.raw(`" alt="`)
			h.text(post.Title)
			h.raw(`">`)
		}
		h.raw(`<div class="post-card-body">`)
		if post.Featured {
			h.raw(`<span class="badge badge-featured">Featured</span>`)
		}
		h.raw(`<h3 class="post-card-title">`)
		h.text(post.Title)
		h.raw(`</h3><p class="post-card-excerpt">`)
		h.text(post.Excerpt)
		h.raw(`</p>`)
		h.postMeta(post)
		h.tags(folio.LeadingTags(post.Tags, cardTagLimit))
		h.raw(`</div></a></article>`)
	})
}
