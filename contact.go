package folio

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// reEmail is the normative address check: no whitespace, exactly one "@",
// at least one "." in the domain part. Looser than RFC 5322 on purpose.
var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactSubmission carries the trimmed contact form fields through
// validation and into the inbox.
type ContactSubmission struct {
	Name    string `validate:"min=2"`
	Email   string `validate:"contact_email"`
	Message string `validate:"min=10"`
}

// fieldMessages maps a failing field to its inline error text. Every field
// has exactly one message regardless of which rule tripped.
var fieldMessages = map[string]string{
	"Name":    "Enter at least 2 characters",
	"Email":   "Enter a valid email",
	"Message": "Message too short",
}

// formFields maps struct field names to form input names.
var formFields = map[string]string{
	"Name":    "name",
	"Email":   "email",
	"Message": "message",
}

var contactValidate = newContactValidator()

func newContactValidator() *validator.Validate {
	v := validator.New()
	// Never fails registration: the tag name is static and the fn is non-nil.
	_ = v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		return reEmail.MatchString(fl.Field().String())
	})
	return v
}

// NewContactSubmission builds a submission from raw form values,
// trimming surrounding whitespace.
func NewContactSubmission(name, email, message string) ContactSubmission {
	return ContactSubmission{
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Message: strings.TrimSpace(message),
	}
}

// Validate evaluates every rule and reports all failing fields at once.
// The returned map is keyed by form input name; it is empty (nil) when the
// submission is valid.
func (s ContactSubmission) Validate() map[string]string {
	err := contactValidate.Struct(s)
	if err == nil {
		return nil
	}
	fieldErrs := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Not reachable with a well-formed struct, but degrade visibly.
		fieldErrs["message"] = "Something went wrong, try again"
		return fieldErrs
	}
	for _, fe := range verrs {
		field := formFields[fe.StructField()]
		if field == "" {
			field = strings.ToLower(fe.StructField())
		}
		fieldErrs[field] = fieldMessages[fe.StructField()]
	}
	return fieldErrs
}
