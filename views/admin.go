package views

import (
	"bytes"
	"fmt"

	"github.com/a-h/templ"

	"github.com/arnevik/folio"
)

// AdminLogin renders the password prompt.
func AdminLogin(showError bool, csrfToken string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeAdminHead(buf, "Admin")
		buf.WriteString(`<main class="admin"><h1>Admin</h1>`)
		if showError {
			buf.WriteString(`<p class="form-failure" role="alert">Wrong password.</p>`)
		}
		buf.WriteString(`<form method="post" action="/admin/login/">`)
		buf.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `">`)
		buf.WriteString(`<input type="password" name="password" placeholder="Password" autofocus>`)
		buf.WriteString(`<button type="submit">Log in</button>`)
		buf.WriteString(`</form></main></body></html>`)
	})
}

// AdminInbox renders the contact inbox.
func AdminInbox(msgs []folio.Message, unread int, message string, csrfToken string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeAdminHead(buf, "Inbox")
		buf.WriteString(`<main class="admin">`)
		writeAdminNav(buf, csrfToken)
		fmt.Fprintf(buf, `<h1>Inbox</h1><p class="inbox-count">%d message(s), %d unread</p>`, len(msgs), unread)
		if message != "" {
			buf.WriteString(`<p class="admin-msg">` + esc(message) + `</p>`)
		}
		if len(msgs) == 0 {
			buf.WriteString(`<p>No messages yet.</p>`)
		}
		for _, m := range msgs {
			class := "inbox-item"
			if !m.Read {
				class += " unread"
			}
			buf.WriteString(`<article class="` + class + `">`)
			buf.WriteString(`<header><strong>` + esc(m.Name) + `</strong> &lt;` + esc(m.Email) + `&gt; <time>` + esc(m.ReceivedAt) + `</time></header>`)
			buf.WriteString(`<p>` + esc(m.Body) + `</p>`)
			if !m.Read {
				buf.WriteString(`<form method="post" action="/admin/message/` + esc(m.ID) + `/read/" class="inline">`)
				buf.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `">`)
				buf.WriteString(`<button type="submit">Mark read</button></form>`)
			}
			buf.WriteString(`<form method="post" action="/admin/message/` + esc(m.ID) + `/delete/" class="inline">`)
			buf.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `">`)
			buf.WriteString(`<button type="submit">Delete</button></form>`)
			buf.WriteString(`</article>`)
		}
		buf.WriteString(`</main></body></html>`)
	})
}

// AdminImages renders the uploaded project screenshots.
func AdminImages(images []folio.Image, csrfToken string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeAdminHead(buf, "Images")
		buf.WriteString(`<main class="admin">`)
		writeAdminNav(buf, csrfToken)
		buf.WriteString(`<h1>Images</h1>`)
		buf.WriteString(`<form method="post" action="/admin/images/upload/" enctype="multipart/form-data">`)
		buf.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `">`)
		buf.WriteString(`<input type="file" name="image" accept="image/*">`)
		buf.WriteString(`<button type="submit">Upload</button></form>`)
		if len(images) == 0 {
			buf.WriteString(`<p>No images yet.</p>`)
		}
		buf.WriteString(`<ul class="image-list">`)
		for _, img := range images {
			fmt.Fprintf(buf, `<li><img src="/public/uploads/%s" alt="%s" loading="lazy"><code>/public/uploads/%s</code> %dx%d`,
				esc(img.Filename), esc(img.OriginalName), esc(img.Filename), img.Width, img.Height)
			buf.WriteString(`<form method="post" action="/admin/images/` + esc(img.Filename) + `/delete/" class="inline">`)
			buf.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `">`)
			buf.WriteString(`<button type="submit">Delete</button></form></li>`)
		}
		buf.WriteString(`</ul></main></body></html>`)
	})
}

func writeAdminHead(buf *bytes.Buffer, title string) {
	buf.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>` + esc(title) + `</title>`)
	buf.WriteString(`<link rel="stylesheet" href="/public/styles.css"></head><body>`)
}

func writeAdminNav(buf *bytes.Buffer, csrfToken string) {
	buf.WriteString(`<nav class="admin-nav"><a href="/admin/">Inbox</a> <a href="/admin/images/">Images</a>`)
	buf.WriteString(`<form method="post" action="/admin/logout/" class="inline">`)
	buf.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `">`)
	buf.WriteString(`<button type="submit">Log out</button></form></nav>`)
}
