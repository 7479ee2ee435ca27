package folio

// Message is one accepted contact-form submission, recorded to the local
// inbox. Nothing is ever sent off-process; delivery is simulated.
type Message struct {
	ID         string
	Name       string
	Email      string
	Body       string
	ReceivedAt string
	Read       bool
}

// Image is metadata for an uploaded project screenshot.
type Image struct {
	Filename     string
	OriginalName string
	Width        int
	Height       int
	Size         int
	UploadedAt   string
}

// ContactForm is the view state for the contact form: submitted values plus
// the per-field error map rebuilt from scratch on every validation pass.
type ContactForm struct {
	Name    string
	Email   string
	Message string

	Errors  map[string]string // field name -> message
	Sent    bool              // success acknowledgment
	Failure string            // failure acknowledgment, form left populated
}
