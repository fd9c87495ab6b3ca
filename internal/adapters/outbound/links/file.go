// Package links renders report locations as URLs a terminal can open.
package links

import (
	"net/url"
	"path/filepath"
	"strings"
)

// FileRenderer implements domain.LinkRenderer by turning report paths into
// file:// URLs most terminals make clickable.
type FileRenderer struct {
	Root string
}

// New creates a FileRenderer resolving relative paths against root.
func New(root string) *FileRenderer {
	return &FileRenderer{Root: root}
}

// Render returns location unchanged when it already is a URL, otherwise the
// absolute file URL. Empty input renders nothing.
func (r *FileRenderer) Render(location string) string {
	location = strings.TrimSpace(location)
	if location == "" {
		return ""
	}
	if hasScheme(location) {
		return location
	}

	p := location
	if !filepath.IsAbs(p) {
		p = filepath.Join(r.Root, p)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return location
	}

	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	if !strings.HasPrefix(u.Path, "/") {
		// Windows drive letters need the extra slash: file:///C:/...
		u.Path = "/" + u.Path
	}
	return u.String()
}

func hasScheme(location string) bool {
	u, err := url.Parse(location)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "file":
		return true
	}
	return false
}
