// Package views holds the site's page components. They are plain
// templ.Components so handlers can render them through folio.Render.
package views

import (
	"time"

	"github.com/eringen/folio"
)

// Navigation targets highlighted in the header.
const (
	NavHome      = "home"
	NavAbout     = "about"
	NavPortfolio = "portfolio"
	NavContact   = "contact"
)

// Site carries the configuration and content every page needs.
type Site struct {
	Config  folio.SiteConfig
	Profile folio.Profile
	Posts   []folio.BlogPost

	// Now reports the current time for the footer year.
	Now func() time.Time
}

// New returns the default views for cfg and content.
func New(cfg folio.SiteConfig, content *folio.Content) folio.ViewFuncs {
	s := &Site{
		Config:  cfg,
		Profile: content.Profile,
		Posts:   content.Store.Posts(),
		Now:     time.Now,
	}
	return folio.ViewFuncs{
		Home:        s.Home,
		Post:        s.Post,
		About:       s.About,
		Portfolio:   s.Portfolio,
		Contact:     s.Contact,
		NotFound:    s.NotFound,
		ServerError: s.ServerError,
	}
}
