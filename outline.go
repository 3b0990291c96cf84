package listicle

import (
	"regexp"
	"strings"
)

// Section is a heading in generated listicle markdown.
type Section struct {
	Level int    `json:"level"`
	Title string `json:"title"`
}

var (
	headingRe      = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	fencedBlockRe  = regexp.MustCompile("(?s)```.*?```")
	indentedCodeRe = regexp.MustCompile(`(?m)^( {4}|\t).*$`)
)

// OutlineSections parses markdown and returns its headings in document
// order. Code blocks are stripped first so # inside code is not
// mistaken for a heading. Generated listicles use ## per copyable
// section, so the outline doubles as a copy-paste index.
func OutlineSections(markdown string) []Section {
	if markdown == "" {
		return nil
	}

	cleaned := fencedBlockRe.ReplaceAllString(markdown, "")
	cleaned = indentedCodeRe.ReplaceAllString(cleaned, "")

	matches := headingRe.FindAllStringSubmatch(cleaned, -1)
	if len(matches) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(matches))
	for _, match := range matches {
		sections = append(sections, Section{
			Level: len(match[1]),
			Title: strings.TrimSpace(match[2]),
		})
	}
	return sections
}
