package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	listicle "github.com/lars154/ecom-listicle-writer"
)

// classifyPage assigns a page type from the URL path and document
// metadata, first match wins. Every path terminates in product or
// landing; landing is the permissive default for anything unrecognized.
func (e *BriefExtractor) classifyPage(sourceURL string, doc *goquery.Document) listicle.PageType {
	if strings.Contains(sourceURL, "/products/") {
		return listicle.PageTypeProduct
	}
	if strings.Contains(sourceURL, "/pages/") {
		return listicle.PageTypeLanding
	}

	// Shopify-style product meta.
	if ogType, _ := doc.Find(`meta[property="og:type"]`).Attr("content"); ogType == "product" {
		return listicle.PageTypeProduct
	}

	// Embedded product schema anywhere in the document.
	ldJSON := doc.Find(`script[type="application/ld+json"]`).Text()
	if strings.Contains(ldJSON, `"@type":"Product"`) {
		return listicle.PageTypeProduct
	}

	return listicle.PageTypeLanding
}
