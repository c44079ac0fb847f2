package folio

import (
	"encoding/xml"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// staticPages are the profile pages listed in the sitemap after the home page.
var staticPages = []string{"about", "portfolio", "contact"}

func (a *App) buildSitemap(posts []BlogPost) sitemapURLSet {
	base := a.Config.URL
	urls := make([]sitemapURL, 0, 1+len(staticPages)+len(posts))
	urls = append(urls, sitemapURL{Loc: BuildURL(base)})
	for _, page := range staticPages {
		urls = append(urls, sitemapURL{Loc: BuildURL(base, page)})
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:     BuildURL(base, "blog", p.Slug),
			LastMod: p.PublishedAt.String(),
		})
	}
	return sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
}

func (a *App) renderSitemap(c echo.Context, posts []BlogPost) error {
	return writeXML(c, "application/xml; charset=utf-8", a.buildSitemap(posts))
}
