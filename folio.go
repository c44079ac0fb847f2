// Package folio is a personal portfolio and blog site built with Go, Echo,
// and templ. It serves static profile pages, a read-only blog backed by an
// immutable content bundle, RSS and sitemap feeds, and a contact form whose
// submissions are logged and acknowledged.
//
// Callers supply templ components via the ViewFuncs struct; folio owns the
// handler logic, middleware and content access.
package folio

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// ShutdownTimeout bounds how long Start waits for in-flight requests once
// its context is cancelled.
const ShutdownTimeout = 10 * time.Second

// ViewFuncs holds the templ components the App calls when rendering pages.
type ViewFuncs struct {
	Home        func(posts []BlogPost) templ.Component
	Post        func(post BlogPost, body templ.Component) templ.Component
	About       func() templ.Component
	Portfolio   func() templ.Component
	Contact     func(page ContactPage) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

func (v ViewFuncs) missing() []string {
	checks := []struct {
		name string
		set  bool
	}{
		{"Home", v.Home != nil},
		{"Post", v.Post != nil},
		{"About", v.About != nil},
		{"Portfolio", v.Portfolio != nil},
		{"Contact", v.Contact != nil},
		{"NotFound", v.NotFound != nil},
		{"ServerError", v.ServerError != nil},
	}
	var names []string
	for _, chk := range checks {
		if !chk.set {
			names = append(names, chk.name)
		}
	}
	return names
}

// App is the central folio application. It wires together the content
// bundle, render cache, handlers, middleware and views.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Content  *Content
	Cache    *RenderCache
	Views    ViewFuncs
	Registry *prometheus.Registry

	limiter      *SubmitLimiter
	validate     *validator.Validate
	submissions  *prometheus.CounterVec
	customRoutes []func(*App)
}

// New creates an App serving content with the given views. Middleware and
// routes are registered immediately so the returned App.Echo can be used as
// an http.Handler without calling Start.
func New(cfg SiteConfig, content *Content, views ViewFuncs, opts ...Option) (*App, error) {
	if content == nil || content.Store == nil {
		return nil, errors.New("folio: content is required")
	}
	if missing := views.missing(); len(missing) > 0 {
		return nil, fmt.Errorf("folio: views not set: %s", strings.Join(missing, ", "))
	}
	cfg.setDefaults()

	a := &App{
		Config:   cfg,
		Echo:     echo.New(),
		Content:  content,
		Cache:    NewRenderCache(content.Store, cfg.Name),
		Views:    views,
		Registry: prometheus.NewRegistry(),
		validate: newValidator(),
	}
	for _, opt := range opts {
		opt(a)
	}

	e := a.Echo
	e.HideBanner = true
	lvl, err := ParseLogLevel(a.Config.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("folio: %w", err)
	}
	e.Logger.SetLevel(lvl)

	if a.Config.SessionSecret == "" {
		a.Config.SessionSecret = randomSecret()
		e.Logger.Warn("session.secret not set; using a random key, flashes will not survive restarts")
	}
	if dups := content.Store.DuplicateSlugs(); len(dups) > 0 {
		e.Logger.Warnf("duplicate post slugs, the first definition wins: %s", strings.Join(dups, ", "))
	}

	a.submissions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "folio",
		Name:      "contact_submissions_total",
		Help:      "Contact form submissions by outcome.",
	}, []string{"outcome"})
	if err := a.Registry.Register(a.submissions); err != nil {
		return nil, fmt.Errorf("folio: register metrics: %w", err)
	}

	a.limiter = NewSubmitLimiter(a.Config.ContactRateLimit, a.Config.ContactRateWindow)

	if err := a.setupMiddleware(); err != nil {
		a.limiter.Stop()
		return nil, fmt.Errorf("folio: middleware: %w", err)
	}
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}

	a.Cache.Warm()
	return a, nil
}

// Start serves HTTP on Config.Addr until ctx is cancelled, then shuts the
// server down gracefully.
func (a *App) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("folio: shutdown: %w", err)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Framework assets (site.css) ship inside the binary and take precedence
	// over the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/site.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.Static("/public", a.Config.StaticDir)
	e.FileFS("/favicon.svg", "favicon.svg", embeddedFS)

	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/healthz", a.handleHealth)
	if a.Config.MetricsEnabled {
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: a.Registry,
		}))
	}

	e.GET("/", a.handleHome)
	e.GET("/about/", a.handleAbout)
	e.GET("/portfolio/", a.handlePortfolio)
	e.GET("/contact/", a.handleContact)
	e.POST("/contact/", a.handleContactSubmit)
	e.GET("/blog/", handleBlogRedirect)
	e.GET("/blog/:slug/", a.handlePost)
	e.GET("/blog/:slug/card.png", a.handleCard)
}

// Close releases background resources. Call it when the app is shutting down.
func (a *App) Close() error {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	return nil
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("folio: read random: %v", err))
	}
	return hex.EncodeToString(b)
}
