// Package folio is a personal-portfolio engine built with Go, Echo, and templ.
// It renders a single-page portfolio (hero, about, skills, projects, social
// links) from a JSON content document and handles the contact form's
// validation and simulated delivery, with a small admin inbox on top.
//
// Users provide their own templ components via the ViewFuncs struct; the
// views package ships a default set. folio owns the handler logic,
// middleware, content reloading, and inbox storage.
package folio

import (
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// ViewFuncs holds the templ components the engine calls when rendering
// pages. This is the inversion-of-control mechanism that lets users own and
// customize all templates.
type ViewFuncs struct {
	Home           func(cfg SiteConfig, data SiteData, form ContactForm, csrfToken string) templ.Component
	ContactPartial func(data SiteData, form ContactForm, csrfToken string) templ.Component
	AdminLogin     func(showError bool, csrfToken string) templ.Component
	AdminInbox     func(msgs []Message, unread int, message string, csrfToken string) templ.Component
	AdminImages    func(images []Image, csrfToken string) templ.Component
	NotFound       func() templ.Component
	ServerError    func() templ.Component
}

// App is the central folio application. It wires together the content
// holder, store, handlers, middleware, and user-provided templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Views  ViewFuncs

	content        *contentHolder
	loginLimiter   *RateLimiter
	contactLimiter *RateLimiter
	reload         *reloadHub
	customRoutes   []func(*App)
	staticDir      string
}

// New creates a new folio App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		content:   &contentHolder{},
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// SiteData returns the current site content.
func (a *App) SiteData() SiteData {
	return a.content.get()
}

// SetSiteData swaps in new site content atomically.
func (a *App) SetSiteData(data SiteData) {
	a.content.set(data)
}

// Start initializes the content, store, middleware, and routes, and starts
// the server.
func (a *App) Start() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("folio: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("folio: SessionSecret is required")
	}

	// Load site content. A malformed or missing document is not fatal: the
	// page renders placeholder copy until the document is fixed. With the
	// watcher running, fixing the file heals the site without a restart.
	data, err := LoadSiteData(a.Config.ContentPath)
	if err != nil {
		log.Printf("folio: content unavailable, serving placeholders: %v", err)
	}
	a.content.set(data)

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("folio: init store: %w", err)
	}
	a.Store = store

	a.loginLimiter = NewRateLimiter(5, time.Minute)
	a.contactLimiter = NewRateLimiter(5, time.Minute)

	if a.Config.LiveReload {
		a.reload = newReloadHub()
	}

	stopWatch, err := a.watchContent()
	if err != nil {
		log.Printf("folio: content watcher disabled: %v", err)
	} else {
		defer stopWatch()
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Serve the embedded page script under /public/ ahead of the user's
	// static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/page.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	// User's static assets
	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	// Public routes
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.POST("/contact/", a.handleContact)

	if a.reload != nil {
		e.GET("/livereload", a.handleLiveReload)
	}

	// Admin routes
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.POST("/admin/message/:id/read/", a.handleMessageRead)
	e.POST("/admin/message/:id/delete/", a.handleMessageDelete)
	e.GET("/admin/images/", a.handleImageList)
	e.POST("/admin/images/upload/", a.handleImageUpload)
	e.POST("/admin/images/:filename/delete/", a.handleImageDelete)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("folio: required environment variable %s is not set", key)
	}
	return v
}
