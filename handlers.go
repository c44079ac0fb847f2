package folio

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

func (a *App) handleHome(c echo.Context) error {
	return Render(c, a.Views.Home(a.Content.Store.Posts()))
}

func (a *App) handlePost(c echo.Context) error {
	post, body, err := a.Cache.Body(c.Param("slug"))
	if errors.Is(err, ErrNotFound) {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
	}
	if err != nil {
		return err
	}
	return Render(c, a.Views.Post(post, templ.Raw(body)))
}

func (a *App) handleAbout(c echo.Context) error {
	return Render(c, a.Views.About())
}

func (a *App) handlePortfolio(c echo.Context) error {
	return Render(c, a.Views.Portfolio())
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.Content.Store.Posts())
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, a.Content.Store.Posts())
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nAllow: /\n\nSitemap: " + a.Config.URL + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}

func (a *App) handleHealth(c echo.Context) error {
	bodies, cards := a.Cache.Len()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"posts":    a.Content.Store.Len(),
		"rendered": bodies,
		"cards":    cards,
	})
}

func handleBlogRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
