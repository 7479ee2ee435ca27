package views

import (
	"encoding/json"

	"github.com/arnevik/folio"
)

// socialIcons maps a platform name to its icon class. Lookup is exact;
// anything else gets the generic link glyph.
var socialIcons = map[string]string{
	"GitHub":    "icon icon-github",
	"LinkedIn":  "icon icon-linkedin",
	"Twitter":   "icon icon-twitter",
	"Instagram": "icon icon-instagram",
}

// SocialIconClass returns the icon class for a platform.
func SocialIconClass(platform string) string {
	if class, ok := socialIcons[platform]; ok {
		return class
	}
	return "icon icon-link"
}

// PersonJsonLD produces a Schema.org Person JSON-LD block from the site
// content, falling back to config values for absent fields.
func PersonJsonLD(cfg folio.SiteConfig, data folio.SiteData) string {
	person := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     orDefault(data.Name, cfg.Name),
		"url":      cfg.URL,
	}
	if data.Role != "" {
		person["jobTitle"] = data.Role
	}
	if data.Email != "" {
		person["email"] = "mailto:" + data.Email
	}
	if data.Location != "" {
		person["address"] = data.Location
	}
	if len(data.SocialLinks) > 0 {
		sameAs := make([]string, 0, len(data.SocialLinks))
		for _, l := range data.SocialLinks {
			sameAs = append(sameAs, l.URL)
		}
		person["sameAs"] = sameAs
	}
	b, err := json.Marshal(person)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block.
func WebsiteJsonLD(cfg folio.SiteConfig, data folio.SiteData) string {
	site := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        orDefault(data.Name, cfg.Name),
		"url":         cfg.URL,
		"description": orDefault(data.Tagline, cfg.Description),
	}
	if data.Name != "" {
		site["author"] = map[string]string{
			"@type": "Person",
			"name":  data.Name,
		}
	}
	b, err := json.Marshal(site)
	if err != nil {
		return "{}"
	}
	return string(b)
}
