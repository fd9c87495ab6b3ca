package links_test

import (
	"path/filepath"
	"testing"

	"github.com/lintgate/lintgate/internal/adapters/outbound/links"
	"github.com/stretchr/testify/assert"
)

func TestFileRenderer_RelativePath(t *testing.T) {
	root := t.TempDir()
	r := links.New(root)

	got := r.Render("build/reports/detekt.html")
	want := "file://" + filepath.ToSlash(filepath.Join(root, "build", "reports", "detekt.html"))
	assert.Equal(t, want, got)
}

func TestFileRenderer_AbsolutePath(t *testing.T) {
	r := links.New("/ignored")
	assert.Equal(t, "file:///tmp/report.xml", r.Render("/tmp/report.xml"))
}

func TestFileRenderer_URLsPassThrough(t *testing.T) {
	r := links.New("/project")
	assert.Equal(t, "https://ci.example.com/lint.html", r.Render("https://ci.example.com/lint.html"))
	assert.Equal(t, "file:///x/y.html", r.Render("file:///x/y.html"))
}

func TestFileRenderer_Empty(t *testing.T) {
	assert.Empty(t, links.New("/project").Render("  "))
}

func TestFileRenderer_EscapesSpaces(t *testing.T) {
	r := links.New("/project")
	assert.Equal(t, "file:///project/my%20reports/lint.html", r.Render("my reports/lint.html"))
}
