package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	listicle "github.com/lars154/ecom-listicle-writer"
)

// extractCategoryHints infers domain context for the prompt builder so
// downstream generation stays on-topic. Keyword matches contribute both
// the category label and the keyword that matched; metadata and
// breadcrumb values are added verbatim.
func (e *BriefExtractor) extractCategoryHints(doc *goquery.Document, title, description string) []string {
	var hints []string

	analyzed := strings.ToLower(title + " " + description)
	for _, pattern := range e.config.CategoryPatterns {
		for _, keyword := range pattern.Keywords {
			if strings.Contains(analyzed, keyword) {
				hints = append(hints, pattern.Label, keyword)
				break
			}
		}
	}

	productType, ok := doc.Find(`meta[property="product:category"]`).Attr("content")
	if !ok || productType == "" {
		productType, _ = doc.Find(`meta[property="og:type"]`).Attr("content")
	}
	if productType != "" {
		hints = append(hints, productType)
	}

	doc.Find(`.breadcrumb a, .breadcrumbs a, [itemtype="https://schema.org/BreadcrumbList"] a`).
		Each(func(_ int, sel *goquery.Selection) {
			crumb := strings.ToLower(trimmedText(sel))
			if len(crumb) > 2 && len(crumb) < 30 {
				hints = append(hints, crumb)
			}
		})

	hints = capped(dedupe(hints), listicle.MaxCategoryHints)
	if len(hints) == 0 {
		return nil
	}
	return hints
}
