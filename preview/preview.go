// Package preview renders the main content of a page as markdown so an
// operator can see what a thin brief was extracted from.
package preview

import (
	"bytes"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/go-shiori/go-readability"
	listicle "github.com/lars154/ecom-listicle-writer"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ listicle.Previewer = (*Previewer)(nil)

// Previewer isolates a page's main content and converts it to markdown.
// Trafilatura does the isolation; readability is the fallback for pages
// it cannot handle.
type Previewer struct {
	conv *converter.Converter
}

// NewPreviewer creates a new Previewer.
func NewPreviewer() *Previewer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Previewer{conv: conv}
}

// Preview returns the page's main content as markdown.
func (p *Previewer) Preview(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", listicle.Errorf(listicle.EINVALID, "empty HTML input")
	}

	contentHTML, err := isolate(rawHTML)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(contentHTML) == "" {
		return "", nil
	}

	markdown, err := p.conv.ConvertString(contentHTML)
	if err != nil {
		return "", listicle.Errorf(listicle.EINTERNAL, "markdown conversion: %v", err)
	}

	return strings.TrimSpace(markdown), nil
}

// isolate strips boilerplate and returns the main content HTML.
func isolate(rawHTML string) (string, error) {
	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err == nil && result.ContentNode != nil {
		return renderNode(result.ContentNode)
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", listicle.Errorf(listicle.EINTERNAL, "content isolation: %v", err)
	}
	return article.Content, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
