package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/folio"
)

var navItems = []struct {
	key, label, href string
}{
	{NavHome, "Home", "/"},
	{NavAbout, "About", "/about/"},
	{NavPortfolio, "Portfolio", "/portfolio/"},
	{NavContact, "Contact", "/contact/"},
}

// Layout wraps body in the document shell: head metadata, header
// navigation and footer. active names the highlighted nav item; jsonLD is
// written verbatim into a ld+json script when non-empty.
func (s *Site) Layout(meta folio.PageMeta, active, jsonLD string, body templ.Component) templ.Component {
	return component(func(h *html) {
		h.raw(`<!doctype html><html lang="en"><head>`)
		h.head(s, meta, jsonLD)
		h.raw(`</head><body>`)
		h.header(s, active)
		h.raw(`<main class="container">`)
		h.render(body)
		h.raw(`</main>`)
		h.footer(s)
		h.raw(`</body></html>`)
	})
}

func (h *html) head(s *Site, meta folio.PageMeta, jsonLD string) {
	cfg := s.Config
	if meta.OGType == "" {
		meta.OGType = "website"
	}
	h.raw(`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
	h.raw(`<title>`)
	h.text(meta.Title)
	h.raw(`</title><meta name="description" content="`)
	h.text(meta.Description)
	h.raw(`"><link rel="canonical" href="`)
	h.url(meta.URL)
	h.raw(`"><meta property="og:title" content="`)
	h.text(meta.Title)
	h.raw(`"><meta property="og:description" content="`)
	h.text(meta.Description)
	h.raw(`"><meta property="og:url" content="`)
	h.url(meta.URL)
	h.raw(`"><meta property="og:type" content="`)
	h.text(meta.OGType)
	h.raw(`"><meta property="og:site_name" content="`)
	h.text(cfg.Name)
	h.raw(`"><meta property="og:locale" content="`)
	h.text(cfg.Locale)
	h.raw(`">`)
	if meta.Image != "" {
		h.raw(`<meta property="og:image" content="`)
		h.url(meta.Image)
		h.raw(`"><meta name="twitter:card" content="summary_large_image">`)
	}
	h.raw(`<link rel="icon" href="/favicon.svg" type="image/svg+xml">`)
	h.raw(`<link rel="stylesheet" href="/public/site.css">`)
	h.raw(`<link rel="alternate" type="application/rss+xml" title="`)
	h.text(cfg.Name)
	h.raw(`" href="/feed.xml">`)
	if jsonLD != "" {
		// encoding/json escapes <, > and &, so the payload cannot close the tag.
		h.raw(`<script type="application/ld+json">`, jsonLD, `</script>`)
	}
}

func (h *html) header(s *Site, active string) {
	h.raw(`<header class="site-header"><nav class="nav container"><a class="brand" href="/">`)
	h.text(s.Profile.Name)
	h.raw(`</a><ul class="nav-links">`)
	for _, item := range navItems {
		h.raw(`<li><a class="`, NavClass(item.key == active), `" href="`, item.href, `"`)
		if item.key == active {
			h.raw(` aria-current="page"`)
		}
		h.raw(`>`, item.label, `</a></li>`)
	}
	h.raw(`</ul></nav></header>`)
}

func (h *html) footer(s *Site) {
	h.raw(`<footer class="site-footer"><div class="container">`)
	if len(s.Profile.Socials) > 0 {
		h.raw(`<ul class="socials">`)
		for _, link := range s.Profile.Socials {
			h.raw(`<li><a href="`)
			h.url(link.URL)
			h.raw(`" target="_blank" rel="noopener noreferrer">`)
			h.text(link.Label)
			h.raw(`</a></li>`)
		}
		h.raw(`</ul>`)
	}
	h.raw(`<p class="copyright">© `, strconv.Itoa(s.Now().Year()), ` `)
	h.text(s.Profile.Name)
	h.raw(`. All rights reserved.</p></div></footer>`)
}

// pageMeta builds metadata for a top-level page at path.
func (s *Site) pageMeta(title, description string, path ...string) folio.PageMeta {
	full := s.Config.Name
	if title != "" {
		full = title + " | " + s.Config.Name
	}
	if description == "" {
		description = s.Config.Description
	}
	return folio.PageMeta{
		Title:       full,
		Description: description,
		URL:         folio.BuildURL(s.Config.URL, path...),
		OGType:      "website",
	}
}
