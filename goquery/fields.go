package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const untitledProduct = "Untitled Product"

// titleSuffixRe strips trailing "- Store Name" style suffixes from a
// document title.
var titleSuffixRe = regexp.MustCompile(`\s*[-–|]\s*.+$`)

// extractTitle runs the title cascade, first result longer than three
// characters wins. The placeholder guarantees a non-empty title on any
// input.
func (e *BriefExtractor) extractTitle(doc *goquery.Document) string {
	productTitle := trimmedText(doc.Find(
		`.product-title, .product__title, [itemprop="name"], ` +
			`.product-name, .product__name, [class*="product-title"]`,
	).First())
	if len(productTitle) > 3 {
		return productTitle
	}

	h1 := trimmedText(doc.Find("h1").First())
	if len(h1) > 3 {
		return h1
	}

	if ogTitle, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && len(ogTitle) > 3 {
		return ogTitle
	}

	if pageTitle := trimmedText(doc.Find("title")); pageTitle != "" {
		if cleaned := strings.TrimSpace(titleSuffixRe.ReplaceAllString(pageTitle, "")); cleaned != "" {
			return cleaned
		}
		return pageTitle
	}

	return untitledProduct
}

// brandJSONRe scrapes a brand field out of embedded structured data
// without a full JSON parse, so malformed JSON-LD still yields a brand.
var brandJSONRe = regexp.MustCompile(`"brand":\s*"([^"]+)"`)

func (e *BriefExtractor) extractBrand(doc *goquery.Document) string {
	if brand, ok := doc.Find(`meta[property="og:brand"]`).Attr("content"); ok && brand != "" {
		return brand
	}

	ldJSON := doc.Find(`script[type="application/ld+json"]`).Text()
	if m := brandJSONRe.FindStringSubmatch(ldJSON); m != nil {
		return m[1]
	}

	return trimmedText(doc.Find(`.product-vendor, .product__vendor, [itemprop="brand"]`).First())
}

func (e *BriefExtractor) extractPrice(doc *goquery.Document) string {
	if amount, ok := doc.Find(`meta[property="og:price:amount"]`).Attr("content"); ok && amount != "" {
		currency, _ := doc.Find(`meta[property="og:price:currency"]`).Attr("content")
		if currency == "" {
			currency = "USD"
		}
		return currency + " " + amount
	}

	return trimmedText(doc.Find(
		`.product-price, .price, .product__price, [itemprop="price"], .money`,
	).First())
}

const (
	descriptionFloor    = 30
	descriptionMaxRunes = 1000
)

// extractDescription accumulates candidates across strategies rather
// than short-circuiting, then joins and truncates. Anything at or
// below the 30-character floor is treated as not found.
func (e *BriefExtractor) extractDescription(doc *goquery.Document) string {
	var candidates []string

	metaDesc, ok := doc.Find(`meta[property="og:description"]`).Attr("content")
	if !ok || metaDesc == "" {
		metaDesc, _ = doc.Find(`meta[name="description"]`).Attr("content")
	}
	if utf8.RuneCountInString(metaDesc) > descriptionFloor {
		candidates = append(candidates, metaDesc)
	}

	doc.Find(
		`.product-description, .product__description, [itemprop="description"], ` +
			`.description, .product-info, .product-content, .product-details, ` +
			`[class*="description"], [class*="about"], .rte`,
	).Each(func(_ int, sel *goquery.Selection) {
		text := trimmedText(sel)
		if n := utf8.RuneCountInString(text); n > 50 && n < 2000 {
			candidates = append(candidates, text)
		}
	})

	if len(candidates) == 0 {
		doc.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			text := trimmedText(sel)
			n := utf8.RuneCountInString(text)
			if n > 50 && n < 800 && !e.IsNavigationText(text) {
				candidates = append(candidates, text)
			}
			return len(candidates) < 3
		})
	}

	if len(candidates) == 0 {
		h1 := doc.Find("h1").First()
		heading := trimmedText(h1)
		next := trimmedText(h1.NextAll().Filter("p").First())
		if heading != "" && next != "" {
			candidates = append(candidates, heading+". "+next)
		}
	}

	combined := strings.Join(dedupe(candidates), " ")
	if runes := []rune(combined); len(runes) > descriptionMaxRunes {
		combined = string(runes[:descriptionMaxRunes])
	}

	if utf8.RuneCountInString(combined) > descriptionFloor {
		return combined
	}
	return ""
}
