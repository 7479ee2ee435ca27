package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnevik/folio"
)

func testData() folio.SiteData {
	return folio.SiteData{
		Name:     "Ada Lovelace",
		Role:     "Engineer",
		Tagline:  "I build engines",
		Bio:      "Hello **world**",
		Email:    "ada@example.com",
		Location: "London",
		Skills: []folio.Skill{
			{Name: "Go", Level: 80},
			{Name: "SQL", Level: 60},
		},
		Projects: []folio.Project{
			{Title: "Engine", Description: "An engine", Tech: "Go, SQLite", Repo: "https://example.com/repo"},
		},
		SocialLinks: []folio.SocialLink{
			{Platform: "GitHub", URL: "https://github.com/ada"},
			{Platform: "Mastodon", URL: "https://example.social/@ada"},
		},
	}
}

func testConfig() folio.SiteConfig {
	return folio.SiteConfig{Name: "Folio", URL: "https://example.com"}
}

func renderHome(t *testing.T, data folio.SiteData, form folio.ContactForm) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Home(testConfig(), data, form, "tok").Render(context.Background(), &buf))
	return buf.String()
}

func TestHomeRendersAllSections(t *testing.T) {
	out := renderHome(t, testData(), folio.ContactForm{})

	for _, id := range []string{`id="home"`, `id="about"`, `id="skills"`, `id="projects"`, `id="contact"`} {
		assert.Contains(t, out, id)
	}
	assert.Contains(t, out, `id="hero-name">Ada Lovelace<`)
	assert.Contains(t, out, `id="hero-role">Engineer<`)
	assert.Contains(t, out, `<strong>world</strong>`, "bio renders as markdown")
	assert.Contains(t, out, `mailto:ada@example.com`)
	assert.Contains(t, out, `/public/page.js`)
}

func TestHomeUsesPlaceholdersWhenContentEmpty(t *testing.T) {
	out := renderHome(t, folio.SiteData{}, folio.ContactForm{})

	assert.Contains(t, out, `id="hero-name">Your Name<`)
	assert.Contains(t, out, `id="hero-role">What you do<`)
	assert.Contains(t, out, `Tell visitors about yourself.`)
	assert.NotContains(t, out, `id="about-email"`, "email line omitted when absent")
	assert.NotContains(t, out, `id="about-location"`)
}

func TestHomeSkillBars(t *testing.T) {
	out := renderHome(t, testData(), folio.ContactForm{})

	assert.Equal(t, 2, strings.Count(out, `class="skill-bar-fill"`))
	assert.Contains(t, out, `data-level="80"`)
	assert.Contains(t, out, `data-level="60"`)
	assert.Contains(t, out, `>80%<`)
	assert.Contains(t, out, `>60%<`)
	assert.NotContains(t, out, `style="width`, "bar width is applied client-side on reveal")
}

func TestHomeProjects(t *testing.T) {
	out := renderHome(t, testData(), folio.ContactForm{})

	assert.Contains(t, out, `<h3>Engine</h3>`)
	assert.Contains(t, out, `<li>Go</li>`)
	assert.Contains(t, out, `<li>SQLite</li>`)
	assert.Contains(t, out, `rel="noopener noreferrer">Code</a>`)
	assert.NotContains(t, out, `>Live</a>`, "live link omitted when URL absent")
	assert.NotContains(t, out, `<img`, "image omitted when absent")
}

func TestHomeEscapesContent(t *testing.T) {
	data := testData()
	data.Name = `<script>alert("x")</script>`
	out := renderHome(t, data, folio.ContactForm{})

	assert.NotContains(t, out, `<script>alert`)
	assert.Contains(t, out, `&lt;script&gt;`)
}

func TestHomeRenderIsDeterministic(t *testing.T) {
	a := renderHome(t, testData(), folio.ContactForm{})
	b := renderHome(t, testData(), folio.ContactForm{})
	assert.Equal(t, a, b, "same inputs must render byte-identical output")
}

func TestSocialIconClass(t *testing.T) {
	assert.Equal(t, "icon icon-github", SocialIconClass("GitHub"))
	assert.Equal(t, "icon icon-linkedin", SocialIconClass("LinkedIn"))
	assert.Equal(t, "icon icon-link", SocialIconClass("Mastodon"))
	assert.Equal(t, "icon icon-link", SocialIconClass(""))
}

func TestContactSectionErrorDecorations(t *testing.T) {
	form := folio.ContactForm{
		Name:  "A",
		Email: "bad",
		Errors: map[string]string{
			"name":  "Enter at least 2 characters",
			"email": "Enter a valid email",
		},
	}
	var buf bytes.Buffer
	require.NoError(t, ContactSection(testData(), form, "tok").Render(context.Background(), &buf))
	out := buf.String()

	assert.Equal(t, 2, strings.Count(out, `style="border-color:#dc3545"`))
	assert.Contains(t, out, `<span class="field-error">Enter at least 2 characters</span>`)
	assert.Contains(t, out, `<span class="field-error">Enter a valid email</span>`)
	assert.Contains(t, out, `value="A"`, "submitted values stay in the fields")
	assert.Contains(t, out, `value="bad"`)
	assert.NotContains(t, out, "form-success")
}

func TestContactSectionClearsOldDecorations(t *testing.T) {
	withErrors := folio.ContactForm{Errors: map[string]string{"name": "Enter at least 2 characters"}}
	var buf bytes.Buffer
	require.NoError(t, ContactSection(testData(), withErrors, "tok").Render(context.Background(), &buf))
	require.Contains(t, buf.String(), "field-error")

	buf.Reset()
	require.NoError(t, ContactSection(testData(), folio.ContactForm{}, "tok").Render(context.Background(), &buf))
	out := buf.String()
	assert.NotContains(t, out, "field-error")
	assert.NotContains(t, out, "border-color")
}

func TestContactSectionAcknowledgments(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ContactSection(testData(), folio.ContactForm{Sent: true}, "tok").Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), `class="form-success"`)

	buf.Reset()
	form := folio.ContactForm{Name: "Al", Failure: "Delivery failed, try again"}
	require.NoError(t, ContactSection(testData(), form, "tok").Render(context.Background(), &buf))
	out := buf.String()
	assert.Contains(t, out, `class="form-failure"`)
	assert.Contains(t, out, `value="Al"`, "failed submission keeps the form populated")
}

func TestContactSectionIncludesCSRFToken(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ContactSection(testData(), folio.ContactForm{}, "secret-token").Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), `name="_csrf" value="secret-token"`)
}

func TestPersonJsonLD(t *testing.T) {
	out := PersonJsonLD(testConfig(), testData())

	assert.Contains(t, out, `"@type":"Person"`)
	assert.Contains(t, out, `"name":"Ada Lovelace"`)
	assert.Contains(t, out, `"jobTitle":"Engineer"`)
	assert.Contains(t, out, `"email":"mailto:ada@example.com"`)
	assert.Contains(t, out, `https://github.com/ada`)
}

func TestWebsiteJsonLD(t *testing.T) {
	out := WebsiteJsonLD(testConfig(), testData())
	assert.Contains(t, out, `"@type":"WebSite"`)
	assert.Contains(t, out, `"url":"https://example.com"`)
	assert.Contains(t, out, `"name":"Ada Lovelace"`)
}

func TestPersonJsonLDFallsBackToConfig(t *testing.T) {
	out := PersonJsonLD(testConfig(), folio.SiteData{})
	assert.Contains(t, out, `"name":"Folio"`)
	assert.NotContains(t, out, "jobTitle")
	assert.NotContains(t, out, "sameAs")
}

func TestAdminInboxRendersActions(t *testing.T) {
	msgs := []folio.Message{
		{ID: "m-unread", Name: "Al", Email: "al@example.com", Body: "Hello there!", ReceivedAt: "2026-06-01T00:00:00Z"},
		{ID: "m-read", Name: "Bo", Email: "bo@example.com", Body: "Hi again!", ReceivedAt: "2026-05-01T00:00:00Z", Read: true},
	}
	var buf bytes.Buffer
	require.NoError(t, AdminInbox(msgs, 1, "", "tok").Render(context.Background(), &buf))
	out := buf.String()

	assert.Contains(t, out, `action="/admin/message/m-unread/read/"`)
	assert.NotContains(t, out, `action="/admin/message/m-read/read/"`, "read messages get no mark-read form")
	// Every message can be deleted.
	assert.Contains(t, out, `action="/admin/message/m-unread/delete/"`)
	assert.Contains(t, out, `action="/admin/message/m-read/delete/"`)
}

func TestAdminImagesRendersDelete(t *testing.T) {
	images := []folio.Image{
		{Filename: "shot.jpg", OriginalName: "Shot.png", Width: 800, Height: 500},
	}
	var buf bytes.Buffer
	require.NoError(t, AdminImages(images, "tok").Render(context.Background(), &buf))
	out := buf.String()

	assert.Contains(t, out, `src="/public/uploads/shot.jpg"`)
	assert.Contains(t, out, `action="/admin/images/shot.jpg/delete/"`)
}

func TestErrorPages(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NotFound().Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), "404")

	buf.Reset()
	require.NoError(t, ServerError().Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), "500")
}

func TestBioMarkdown(t *testing.T) {
	out := Bio("Hello **world**\n\nwith [a link](https://example.com)")
	assert.Contains(t, out, "<strong>world</strong>")
	assert.Contains(t, out, `<a href="https://example.com">a link</a>`)
}
