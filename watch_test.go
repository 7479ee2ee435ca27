package folio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReloadContentSwapsOnValidDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "Before"}`), 0o644))

	a := New(SiteConfig{
		ContentPath:   path,
		AdminPassword: "password",
		SessionSecret: "secret",
	}, stubViews())
	a.SetSiteData(SiteData{Name: "Before"})

	require.NoError(t, os.WriteFile(path, []byte(`{"name": "After"}`), 0o644))
	a.reloadContent()

	assert.Equal(t, "After", a.SiteData().Name)
}

func TestReloadContentKeepsPreviousOnBrokenDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.json")

	a := New(SiteConfig{
		ContentPath:   path,
		AdminPassword: "password",
		SessionSecret: "secret",
	}, stubViews())
	a.SetSiteData(SiteData{Name: "Good"})

	require.NoError(t, os.WriteFile(path, []byte(`{"name": `), 0o644))
	a.reloadContent()

	assert.Equal(t, "Good", a.SiteData().Name, "broken document must not evict serving content")
}
