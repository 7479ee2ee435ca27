package folio

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withSession wraps a handler with the cookie-session middleware so the
// admin session helpers work outside the full middleware chain.
func withSession(a *App, h echo.HandlerFunc) echo.HandlerFunc {
	return session.Middleware(a.newSessionStore())(h)
}

func postLogin(a *App, password string) *httptest.ResponseRecorder {
	form := url.Values{"password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)
	_ = withSession(a, a.handleAdminLogin)(c)
	return rec
}

func TestAdminLoginSuccess(t *testing.T) {
	a := newTestApp(t)

	rec := postLogin(a, "password")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/", rec.Header().Get("Location"))
	assert.NotEmpty(t, rec.Header().Get("Set-Cookie"), "successful login sets the session cookie")
}

func TestAdminLoginWrongPassword(t *testing.T) {
	a := newTestApp(t)

	rec := postLogin(a, "wrong")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "login error=true")
}

func TestAdminLoginRateLimited(t *testing.T) {
	a := newTestApp(t)
	a.loginLimiter = NewRateLimiter(2, time.Minute)

	postLogin(a, "wrong")
	postLogin(a, "wrong")
	rec := postLogin(a, "password")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestAdminPageRequiresLogin(t *testing.T) {
	a := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/", nil)
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)
	require.NoError(t, withSession(a, a.handleAdmin)(c))

	assert.Contains(t, rec.Body.String(), "login error=false")
}

func TestAdminInboxAfterLogin(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.Store.SaveMessage(testMessage("m1")))

	// Log in, then replay the session cookie on the inbox request.
	loginRec := postLogin(a, "password")
	cookie := loginRec.Header().Get("Set-Cookie")
	require.NotEmpty(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/admin/", nil)
	req.Header.Set("Cookie", cookie)
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)
	require.NoError(t, withSession(a, a.handleAdmin)(c))

	assert.Contains(t, rec.Body.String(), "inbox n=1 unread=1")
}

func TestMessageDelete(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.Store.SaveMessage(testMessage("doomed")))

	loginRec := postLogin(a, "password")
	cookie := loginRec.Header().Get("Set-Cookie")
	require.NotEmpty(t, cookie)

	req := httptest.NewRequest(http.MethodPost, "/admin/message/doomed/delete/", nil)
	req.Header.Set("Cookie", cookie)
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("doomed")
	require.NoError(t, withSession(a, a.handleMessageDelete)(c))

	assert.Contains(t, rec.Body.String(), `inbox n=0 unread=0 msg="deleted"`)

	msgs, err := a.Store.ListMessages()
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestImageDelete(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.Store.SaveImage(Image{
		Filename:     "shot.jpg",
		OriginalName: "Shot.png",
		Width:        800,
		Height:       500,
		Size:         100,
		UploadedAt:   "2026-06-01T00:00:00Z",
	}))

	loginRec := postLogin(a, "password")
	cookie := loginRec.Header().Get("Set-Cookie")
	require.NotEmpty(t, cookie)

	req := httptest.NewRequest(http.MethodPost, "/admin/images/shot.jpg/delete/", nil)
	req.Header.Set("Cookie", cookie)
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)
	c.SetParamNames("filename")
	c.SetParamValues("shot.jpg")
	require.NoError(t, withSession(a, a.handleImageDelete)(c))

	assert.Contains(t, rec.Body.String(), "images n=0")

	imgs, err := a.Store.ListImages()
	require.NoError(t, err)
	assert.Empty(t, imgs)
}

func TestMessageDeleteRequiresLogin(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.Store.SaveMessage(testMessage("kept")))

	req := httptest.NewRequest(http.MethodPost, "/admin/message/kept/delete/", nil)
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("kept")
	require.NoError(t, withSession(a, a.handleMessageDelete)(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)

	msgs, err := a.Store.ListMessages()
	require.NoError(t, err)
	assert.Len(t, msgs, 1, "unauthenticated delete must not touch the inbox")
}

func TestMessageReadNotFound(t *testing.T) {
	a := newTestApp(t)

	loginRec := postLogin(a, "password")
	cookie := loginRec.Header().Get("Set-Cookie")

	req := httptest.NewRequest(http.MethodPost, "/admin/message/missing/read/", nil)
	req.Header.Set("Cookie", cookie)
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	require.NoError(t, withSession(a, a.handleMessageRead)(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
