package views

import (
	"bytes"

	"github.com/arnevik/folio"
)

// errorBorder is the alert color applied to a failing field's border.
const errorBorder = "#dc3545"

func writeContact(buf *bytes.Buffer, data folio.SiteData, form folio.ContactForm, csrfToken string) {
	buf.WriteString(`<section id="contact"><h2>Contact</h2>`)
	writeSocialList(buf, data.SocialLinks, "social-links social-contact")
	writeContactForm(buf, form, csrfToken)
	buf.WriteString(`</section>`)
}

// writeContactForm renders the form with the submitted values and any
// per-field errors. Building from scratch each time is what clears previous
// decorations: only the current error map is ever rendered.
func writeContactForm(buf *bytes.Buffer, form folio.ContactForm, csrfToken string) {
	if form.Sent {
		buf.WriteString(`<p class="form-success" role="alert">Thanks! Your message has been received.</p>`)
	}
	if form.Failure != "" {
		buf.WriteString(`<p class="form-failure" role="alert">` + esc(form.Failure) + `</p>`)
	}

	buf.WriteString(`<form id="contact-form" method="post" action="/contact/">`)
	buf.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `">`)

	writeField(buf, form, "name", "Name", `<input type="text" id="name" name="name" value="`+esc(form.Name)+`"`)
	writeField(buf, form, "email", "Email", `<input type="text" id="email" name="email" value="`+esc(form.Email)+`"`)
	writeTextarea(buf, form)

	buf.WriteString(`<button type="submit">Send Message</button>`)
	buf.WriteString(`</form>`)
}

func writeField(buf *bytes.Buffer, form folio.ContactForm, field, label, openTag string) {
	buf.WriteString(`<div class="form-group"><label for="` + field + `">` + label + `</label>`)
	buf.WriteString(openTag)
	if _, bad := form.Errors[field]; bad {
		buf.WriteString(` style="border-color:` + errorBorder + `"`)
	}
	buf.WriteString(`>`)
	writeFieldError(buf, form, field)
	buf.WriteString(`</div>`)
}

func writeTextarea(buf *bytes.Buffer, form folio.ContactForm) {
	buf.WriteString(`<div class="form-group"><label for="message">Message</label>`)
	buf.WriteString(`<textarea id="message" name="message" rows="5"`)
	if _, bad := form.Errors["message"]; bad {
		buf.WriteString(` style="border-color:` + errorBorder + `"`)
	}
	buf.WriteString(`>` + esc(form.Message) + `</textarea>`)
	writeFieldError(buf, form, "message")
	buf.WriteString(`</div>`)
}

// writeFieldError inserts the inline message element directly after its field.
func writeFieldError(buf *bytes.Buffer, form folio.ContactForm, field string) {
	if msg, ok := form.Errors[field]; ok {
		buf.WriteString(`<span class="field-error">` + esc(msg) + `</span>`)
	}
}
