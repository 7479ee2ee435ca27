package views

import (
	"bytes"
	"log"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// bioMarkdown renders the about bio. GFM covers the links and emphasis a bio
// realistically uses; raw HTML in the source is omitted by default, which is
// what we want for a field edited outside the repo.
var bioMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Bio converts the markdown bio to HTML. On a conversion error the text is
// dropped rather than rendered unescaped.
func Bio(md string) string {
	var buf bytes.Buffer
	if err := bioMarkdown.Convert([]byte(md), &buf); err != nil {
		log.Printf("views: render bio: %v", err)
		return ""
	}
	return buf.String()
}
