package folio

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// serveThroughStack runs a request through the full middleware chain and
// registered routes, the way a browser would hit the server.
func serveThroughStack(a *App, method, target string) *httptest.ResponseRecorder {
	a.setupMiddleware()
	a.setupRoutes()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func TestExtensionedPathsSkipTrailingSlashRedirect(t *testing.T) {
	a := newTestApp(t)

	// These routes serve files or XML directly; a 301 to the slashed form
	// would 404 them.
	for _, target := range []string{"/favicon.svg", "/robots.txt", "/sitemap.xml", "/feed.xml"} {
		rec := serveThroughStack(newTestApp(t), http.MethodGet, target)
		assert.NotEqual(t, http.StatusMovedPermanently, rec.Code, "%s must not redirect", target)
	}

	rec := serveThroughStack(a, http.MethodGet, "/robots.txt")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHomeServedThroughStack(t *testing.T) {
	a := newTestApp(t)

	rec := serveThroughStack(a, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "home sent=false")
}
