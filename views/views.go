// Package views renders the default folio page components. Components are
// plain templ.ComponentFunc builders writing escaped HTML into a buffer, so
// sites can replace any of them via folio.ViewFuncs without a template
// compile step.
package views

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/arnevik/folio"
)

// Default returns the stock view set for a folio site.
func Default() folio.ViewFuncs {
	return folio.ViewFuncs{
		Home:           Home,
		ContactPartial: ContactSection,
		AdminLogin:     AdminLogin,
		AdminInbox:     AdminInbox,
		AdminImages:    AdminImages,
		NotFound:       NotFound,
		ServerError:    ServerError,
	}
}

func component(write func(buf *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		write(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func esc(s string) string {
	return html.EscapeString(s)
}

// orDefault keeps placeholder copy in place when a content field is absent.
func orDefault(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

// Home renders the full portfolio page.
func Home(cfg folio.SiteConfig, data folio.SiteData, form folio.ContactForm, csrfToken string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, cfg, data)
		buf.WriteString(`<body`)
		if cfg.LiveReload {
			buf.WriteString(` data-livereload="true"`)
		}
		buf.WriteString(`>`)
		writeNav(buf, data)
		buf.WriteString(`<main>`)
		writeHero(buf, data)
		writeAbout(buf, data)
		writeSkills(buf, data)
		writeProjects(buf, data)
		writeContact(buf, data, form, csrfToken)
		buf.WriteString(`</main>`)
		writeFooter(buf, data)
		buf.WriteString(`<script src="/public/page.js" defer></script>`)
		buf.WriteString(`</body></html>`)
	})
}

// ContactSection re-renders only the contact section, for partial swaps.
func ContactSection(data folio.SiteData, form folio.ContactForm, csrfToken string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeContact(buf, data, form, csrfToken)
	})
}

func writeHead(buf *bytes.Buffer, cfg folio.SiteConfig, data folio.SiteData) {
	title := orDefault(data.Name, cfg.Name)
	buf.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
	buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	buf.WriteString(`<title>` + esc(title) + `</title>`)
	if desc := orDefault(data.Tagline, cfg.Description); desc != "" {
		buf.WriteString(`<meta name="description" content="` + esc(desc) + `">`)
	}
	buf.WriteString(`<link rel="stylesheet" href="/public/styles.css">`)
	buf.WriteString(`<script type="application/ld+json">` + PersonJsonLD(cfg, data) + `</script>`)
	buf.WriteString(`<script type="application/ld+json">` + WebsiteJsonLD(cfg, data) + `</script>`)
	buf.WriteString(`</head>`)
}

func writeNav(buf *bytes.Buffer, data folio.SiteData) {
	buf.WriteString(`<header class="nav"><a class="nav-logo" href="#home">` + esc(orDefault(data.Name, "Portfolio")) + `</a>`)
	buf.WriteString(`<button id="nav-toggle" class="nav-toggle" aria-label="Menu"><span></span><span></span><span></span></button>`)
	buf.WriteString(`<nav id="nav-menu" class="nav-menu"><a href="#home">Home</a><a href="#about">About</a><a href="#skills">Skills</a><a href="#projects">Projects</a><a href="#contact">Contact</a></nav>`)
	buf.WriteString(`<button id="theme-toggle" class="theme-toggle" aria-label="Toggle theme"><span class="theme-icon">&#9790;</span></button>`)
	buf.WriteString(`</header>`)
}

func writeHero(buf *bytes.Buffer, data folio.SiteData) {
	buf.WriteString(`<section id="home" class="hero">`)
	buf.WriteString(`<h1 id="hero-name">` + esc(orDefault(data.Name, "Your Name")) + `</h1>`)
	buf.WriteString(`<p id="hero-role">` + esc(orDefault(data.Role, "What you do")) + `</p>`)
	buf.WriteString(`<p id="hero-tagline">` + esc(orDefault(data.Tagline, "A line about your work")) + `</p>`)
	buf.WriteString(`<a class="hero-cta" href="#contact">Get in touch</a>`)
	buf.WriteString(`</section>`)
}

func writeAbout(buf *bytes.Buffer, data folio.SiteData) {
	buf.WriteString(`<section id="about"><h2>About</h2>`)
	buf.WriteString(`<div id="about-bio">`)
	if data.Bio != "" {
		buf.WriteString(Bio(data.Bio))
	} else {
		buf.WriteString(`<p>Tell visitors about yourself.</p>`)
	}
	buf.WriteString(`</div>`)
	if data.Email != "" {
		buf.WriteString(`<p id="about-email"><a href="mailto:` + esc(data.Email) + `">` + esc(data.Email) + `</a></p>`)
	}
	if data.Location != "" {
		buf.WriteString(`<p id="about-location">` + esc(data.Location) + `</p>`)
	}
	buf.WriteString(`</section>`)
}

// writeSkills emits one labeled progress bar per skill. The fill carries its
// target percent only as data-level; page.js applies the width on reveal.
func writeSkills(buf *bytes.Buffer, data folio.SiteData) {
	buf.WriteString(`<section id="skills"><h2>Skills</h2><div class="skills">`)
	for _, s := range data.Skills {
		level := strconv.Itoa(s.Level)
		buf.WriteString(`<div class="skill"><div class="skill-label"><span class="skill-name">` + esc(s.Name) + `</span>`)
		buf.WriteString(`<span class="skill-percent">` + level + `%</span></div>`)
		buf.WriteString(`<div class="skill-bar"><div class="skill-bar-fill" data-level="` + level + `"></div></div>`)
		buf.WriteString(`</div>`)
	}
	buf.WriteString(`</div></section>`)
}

func writeProjects(buf *bytes.Buffer, data folio.SiteData) {
	buf.WriteString(`<section id="projects"><h2>Projects</h2><div class="projects">`)
	for _, p := range data.Projects {
		buf.WriteString(`<article class="project-card">`)
		if p.Image != "" {
			buf.WriteString(`<img src="` + esc(p.Image) + `" alt="` + esc(p.Title) + `" loading="lazy">`)
		}
		buf.WriteString(`<h3>` + esc(p.Title) + `</h3>`)
		buf.WriteString(`<p>` + esc(p.Description) + `</p>`)
		tags := p.TechTags()
		if len(tags) > 0 {
			buf.WriteString(`<ul class="project-tags">`)
			for _, t := range tags {
				buf.WriteString(`<li>` + esc(t) + `</li>`)
			}
			buf.WriteString(`</ul>`)
		}
		buf.WriteString(`<div class="project-links">`)
		if p.Repo != "" {
			buf.WriteString(`<a href="` + esc(p.Repo) + `" target="_blank" rel="noopener noreferrer">Code</a>`)
		}
		if p.Live != "" {
			buf.WriteString(`<a href="` + esc(p.Live) + `" target="_blank" rel="noopener noreferrer">Live</a>`)
		}
		buf.WriteString(`</div></article>`)
	}
	buf.WriteString(`</div></section>`)
}

func writeSocialList(buf *bytes.Buffer, links []folio.SocialLink, class string) {
	buf.WriteString(`<ul class="` + class + `">`)
	for _, l := range links {
		buf.WriteString(`<li><a href="` + esc(l.URL) + `" target="_blank" rel="noopener noreferrer" aria-label="` + esc(l.Platform) + `">`)
		buf.WriteString(`<i class="` + SocialIconClass(l.Platform) + `"></i></a></li>`)
	}
	buf.WriteString(`</ul>`)
}

func writeFooter(buf *bytes.Buffer, data folio.SiteData) {
	buf.WriteString(`<footer>`)
	writeSocialList(buf, data.SocialLinks, "social-links social-footer")
	buf.WriteString(`<p>&copy; <span id="year">` + strconv.Itoa(Year()) + `</span> ` + esc(orDefault(data.Name, "Portfolio")) + `</p>`)
	buf.WriteString(`</footer>`)
}

// Year returns the current year for the footer.
func Year() int {
	return time.Now().Year()
}

// NotFound renders the 404 page.
func NotFound() templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeErrorPage(buf, "404", "Page not found")
	})
}

// ServerError renders the 500 page.
func ServerError() templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeErrorPage(buf, "500", "Something went wrong")
	})
}

func writeErrorPage(buf *bytes.Buffer, code, text string) {
	buf.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>` + code + `</title>`)
	buf.WriteString(`<link rel="stylesheet" href="/public/styles.css"></head><body class="error-page">`)
	fmt.Fprintf(buf, `<main><h1>%s</h1><p>%s</p><a href="/">Back home</a></main>`, code, text)
	buf.WriteString(`</body></html>`)
}
