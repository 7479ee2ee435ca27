package folio

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func (a *App) handleHome(c echo.Context) error {
	form := ContactForm{Sent: c.QueryParam("sent") == "1"}
	return Render(c, a.Views.Home(a.Config, a.content.get(), form, CsrfToken(c)))
}

// handleContact runs one submission attempt: trim, validate every field,
// then either re-render the form with all errors at once, or simulate
// delivery and record the message to the inbox.
func (a *App) handleContact(c echo.Context) error {
	if !a.contactLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many messages. Try again later.")
	}

	sub := NewContactSubmission(c.FormValue("name"), c.FormValue("email"), c.FormValue("message"))
	if errs := sub.Validate(); len(errs) > 0 {
		// No delivery delay starts for an invalid submission.
		return a.renderContact(c, ContactForm{
			Name:    sub.Name,
			Email:   sub.Email,
			Message: sub.Message,
			Errors:  errs,
		})
	}

	// Simulated delivery: nothing leaves the process. The wait parks only
	// this request's goroutine; the server keeps handling other requests.
	time.Sleep(a.Config.DeliveryDelay)

	msg := Message{
		ID:         uuid.NewString(),
		Name:       sub.Name,
		Email:      sub.Email,
		Body:       sub.Message,
		ReceivedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := a.Store.SaveMessage(msg); err != nil {
		c.Logger().Errorf("record message: %v", err)
		// Failure path: surface it and keep the form populated.
		return a.renderContact(c, ContactForm{
			Name:    sub.Name,
			Email:   sub.Email,
			Message: sub.Message,
			Failure: "Something went wrong. Your message was not sent.",
		})
	}

	if isHXRequest(c) {
		return Render(c, a.Views.ContactPartial(a.content.get(), ContactForm{Sent: true}, CsrfToken(c)))
	}
	// Redirect-after-post clears the form and survives a reload.
	return c.Redirect(http.StatusSeeOther, "/?sent=1#contact")
}

func (a *App) renderContact(c echo.Context, form ContactForm) error {
	if isHXRequest(c) {
		return Render(c, a.Views.ContactPartial(a.content.get(), form, CsrfToken(c)))
	}
	return Render(c, a.Views.Home(a.Config, a.content.get(), form, CsrfToken(c)))
}

func isHXRequest(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

// handleRobots generates robots.txt dynamically from the configured URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
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
