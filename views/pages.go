package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/folio"
)

// About renders the introduction, story, skills and connect sections.
func (s *Site) About() templ.Component {
	p := s.Profile
	body := component(func(h *html) {
		h.raw(`<section class="page-intro"><div class="avatar" aria-hidden="true">`)
		h.text(folio.Initials(p.Name))
		h.raw(`</div><h1 class="page-title">Hi, I'm `)
		h.text(p.Name)
		h.raw(`</h1><p class="page-subtitle">`)
		h.text(p.Role)
		h.raw(`</p></section>`)

		h.raw(`<section class="card story"><h2 class="section-title">My Story</h2>`)
		for _, para := range p.Story {
			h.raw(`<p>`)
			h.text(para)
			h.raw(`</p>`)
		}
		h.raw(`</section>`)

		if len(p.Skills) > 0 {
			h.raw(`<section class="skills"><h2 class="section-title">What I Do</h2><div class="skill-grid">`)
			for _, sk := range p.Skills {
				h.raw(`<div class="card skill skill-`)
				h.text(sk.Icon)
				h.raw(`"><h3>`)
				h.text(sk.Title)
				h.raw(`</h3><p>`)
				h.text(sk.Description)
				h.raw(`</p></div>`)
			}
			h.raw(`</div></section>`)
		}

		if p.Connect != "" {
			h.raw(`<section class="card connect"><h2 class="section-title">Let's Connect</h2><p>`)
			h.text(p.Connect)
			h.raw(`</p><a class="button" href="/contact/">Get in touch</a></section>`)
		}
	})
	return s.Layout(s.pageMeta("About", p.Tagline, "about"), NavAbout, "", body)
}

// Portfolio renders one card per company in profile order.
func (s *Site) Portfolio() templ.Component {
	body := component(func(h *html) {
		h.raw(`<section class="page-intro"><h1 class="page-title">Portfolio</h1>`)
		h.raw(`<p class="page-subtitle">Companies and products I've helped build.</p></section>`)
		h.raw(`<div class="company-list">`)
		for _, co := range s.Profile.Companies {
			h.raw(`<article class="card company"><div class="company-header"><div class="avatar" aria-hidden="true">`)
			h.text(co.Logo)
			h.raw(`</div><div><h2 class="company-name">`)
			h.text(co.Name)
			h.raw(`</h2><p class="company-role">`)
			h.text(co.Role)
			h.raw(`</p></div><span class="company-duration">`)
			h.text(co.Duration)
			h.raw(`</span></div><p class="company-description">`)
			h.text(co.Description)
			h.raw(`</p>`)
			if len(co.Technologies) > 0 {
				h.raw(`<ul class="chips">`)
				for _, tech := range co.Technologies {
					h.raw(`<li class="chip">`)
					h.text(tech)
					h.raw(`</li>`)
				}
				h.raw(`</ul>`)
			}
			if len(co.Achievements) > 0 {
				h.raw(`<h3>Key Achievements</h3><ul class="achievements">`)
				for _, a := range co.Achievements {
					h.raw(`<li>`)
					h.text(a)
					h.raw(`</li>`)
				}
				h.raw(`</ul>`)
			}
			h.raw(`</article>`)
		}
		h.raw(`</div>`)
	})
	return s.Layout(s.pageMeta("Portfolio", "", "portfolio"), NavPortfolio, "", body)
}

// NotFound renders the 404 page.
func (s *Site) NotFound() templ.Component {
	body := component(func(h *html) {
		h.raw(`<section class="error-page"><p class="error-code">404</p><h1 class="page-title">Page not found</h1>`)
		h.raw(`<p>The page you're looking for doesn't exist or has been moved.</p>`)
		h.raw(`<a class="button" href="/">Back home</a></section>`)
	})
	return s.Layout(s.pageMeta("Not found", ""), "", "", body)
}

// ServerError renders the 5xx page.
func (s *Site) ServerError() templ.Component {
	body := component(func(h *html) {
		h.raw(`<section class="error-page"><p class="error-code">500</p><h1 class="page-title">Something went wrong</h1>`)
		h.raw(`<p>Please try again in a moment.</p><a class="button" href="/">Back home</a></section>`)
	})
	return s.Layout(s.pageMeta("Error", ""), "", "", body)
}
