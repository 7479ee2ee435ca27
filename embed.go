package folio

import "embed"

// EmbeddedAssets contains static assets shipped with the engine:
// page.js (navigation, theme, reveal, and contact-form behaviors)
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
