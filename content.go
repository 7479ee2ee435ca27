package folio

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

// SiteData is the content document for the whole site: identity fields plus
// the skills, projects, and social links rendered on the single page.
// It is loaded once at startup from a JSON file and treated as immutable;
// the content watcher swaps in a fresh copy atomically on change.
type SiteData struct {
	Name        string       `json:"name"`
	Role        string       `json:"role"`
	Tagline     string       `json:"tagline"`
	Bio         string       `json:"bio"`
	Email       string       `json:"email"`
	Location    string       `json:"location"`
	Skills      []Skill      `json:"skills"`
	Projects    []Project    `json:"projects"`
	SocialLinks []SocialLink `json:"socialLinks"`
}

// Skill is a named proficiency rendered as a progress bar.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"` // percent, clamped to [0,100] at load
}

// Project is one portfolio card. Tech is a comma-separated tag string,
// split and trimmed at render time.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Repo        string `json:"repo"`
	Live        string `json:"live"`
	Tech        string `json:"tech"`
}

// SocialLink points at a profile on an external platform. Platform is used
// for icon lookup; unrecognized platforms get a generic link glyph.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// LoadSiteData reads and parses the site content document at path.
// On any read or parse error it returns a zero SiteData alongside the error,
// so callers can log and keep serving placeholder content.
func LoadSiteData(path string) (SiteData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return SiteData{}, fmt.Errorf("read content %s: %w", path, err)
	}
	return ParseSiteData(raw)
}

// ParseSiteData decodes a SiteData JSON document and normalizes it.
func ParseSiteData(raw []byte) (SiteData, error) {
	var data SiteData
	if err := json.Unmarshal(raw, &data); err != nil {
		return SiteData{}, fmt.Errorf("parse content: %w", err)
	}
	for i := range data.Skills {
		data.Skills[i].Level = clampLevel(data.Skills[i].Level)
	}
	return data, nil
}

// clampLevel bounds a skill level to [0,100].
func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return level
}

// TechTags splits a comma-separated tech string into trimmed tags,
// dropping empty segments from stray commas.
func (p Project) TechTags() []string {
	return FilterEmpty(strings.Split(p.Tech, ","))
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// contentHolder guards the current SiteData. Reads vastly outnumber writes;
// writes happen only when the watcher reloads the content document.
type contentHolder struct {
	mu   sync.RWMutex
	data SiteData
}

func (h *contentHolder) get() SiteData {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.data
}

func (h *contentHolder) set(data SiteData) {
	h.mu.Lock()
	h.data = data
	h.mu.Unlock()
}
