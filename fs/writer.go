// Package fs writes generated listicles as markdown files.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	listicle "github.com/lars154/ecom-listicle-writer"
)

var slugCleanRe = regexp.MustCompile(`[^a-z0-9]+`)

// SlugFromURL derives a file slug from a product URL, preferring the
// last path segment.
// Example: https://shop.example.com/products/glow-serum → glow-serum
func SlugFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", listicle.Errorf(listicle.EINVALID, "invalid source URL: %v", err)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	last := segments[len(segments)-1]
	if last == "" {
		last = u.Hostname()
	}

	slug := slugCleanRe.ReplaceAllString(strings.ToLower(last), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "", listicle.Errorf(listicle.EINVALID, "cannot derive a slug from %q", rawURL)
	}
	return slug, nil
}

// FormatListicle formats a generated listicle with YAML frontmatter.
func FormatListicle(gl *listicle.GeneratedListicle) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(gl.SourceURL)
	b.WriteString("\ntitle: ")
	b.WriteString(gl.Title)
	b.WriteString("\nmode: ")
	b.WriteString(string(gl.Mode))
	b.WriteString("\ngenerated: ")
	b.WriteString(gl.CreatedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(gl.Markdown)
	return b.String()
}

// Writer writes generated listicles as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteListicle writes a listicle to disk and returns the file path.
// An existing file for the same product is overwritten.
func (w *Writer) WriteListicle(ctx context.Context, gl *listicle.GeneratedListicle) (string, error) {
	if gl == nil {
		return "", listicle.Errorf(listicle.EINVALID, "listicle required")
	}

	slug, err := SlugFromURL(gl.SourceURL)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, slug+".md")
	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	content := FormatListicle(gl)
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
