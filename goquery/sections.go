package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	listicle "github.com/lars154/ecom-listicle-writer"
)

// extractIngredients collects list items from the first list following
// an "ingredient" heading. Returns nil when no such section exists.
func (e *BriefExtractor) extractIngredients(doc *goquery.Document) []string {
	var ingredients []string

	doc.Find("h2, h3, h4").Each(func(_ int, sel *goquery.Selection) {
		heading := strings.ToLower(trimmedText(sel))
		if !strings.Contains(heading, "ingredient") {
			return
		}
		sel.NextAll().Filter("ul, ol").First().Find("li").Each(func(_ int, li *goquery.Selection) {
			ingredients = append(ingredients, trimmedText(li))
		})
	})

	return ingredients
}

// extractSpecs harvests short label/value pairs from two-column table
// rows anywhere in the document.
func (e *BriefExtractor) extractSpecs(doc *goquery.Document) map[string]string {
	var specs map[string]string

	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() != 2 {
			return
		}
		key := trimmedText(cells.Eq(0))
		value := trimmedText(cells.Eq(1))
		if key == "" || value == "" || len(key) >= 50 || len(value) >= 100 {
			return
		}
		if specs == nil {
			specs = make(map[string]string)
		}
		specs[key] = value
	})

	return specs
}

var (
	reviewCountRe = regexp.MustCompile(`(\d+[\d,]*)`)
	ratingRe      = regexp.MustCompile(`(\d+\.?\d*)`)
)

// extractReviews independently pulls a review count, a rating, and up
// to six snippet texts. The summary is omitted only when all three are
// absent.
func (e *BriefExtractor) extractReviews(doc *goquery.Document) *listicle.ReviewSummary {
	var summary listicle.ReviewSummary
	var found bool

	countText := doc.Find(`.review-count, .product-reviews__count, [itemprop="reviewCount"]`).First().Text()
	if m := reviewCountRe.FindStringSubmatch(countText); m != nil {
		if count, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", "")); err == nil {
			summary.Count = count
			found = true
		}
	}

	ratingText := doc.Find(`.rating, .product-rating, [itemprop="ratingValue"]`).First().Text()
	if m := ratingRe.FindStringSubmatch(ratingText); m != nil {
		if rating, err := strconv.ParseFloat(m[1], 64); err == nil {
			summary.Rating = rating
			found = true
		}
	}

	doc.Find(`.review-text, .review-body, [itemprop="reviewBody"]`).
		EachWithBreak(func(i int, sel *goquery.Selection) bool {
			if i >= 6 {
				return false
			}
			text := trimmedText(sel)
			if len(text) > 20 && len(text) < 300 {
				summary.Snippets = append(summary.Snippets, text)
			}
			return true
		})
	if len(summary.Snippets) > 0 {
		found = true
	}

	if !found {
		return nil
	}
	return &summary
}

// extractFAQs looks for accordion-style items inside the container of
// any "faq" or "question" heading. A pair is kept only when both sides
// are present and the answer is substantive.
func (e *BriefExtractor) extractFAQs(doc *goquery.Document) []listicle.FAQ {
	var faqs []listicle.FAQ

	doc.Find("h2, h3, h4").Each(func(_ int, sel *goquery.Selection) {
		heading := strings.ToLower(trimmedText(sel))
		if !strings.Contains(heading, "faq") && !strings.Contains(heading, "question") {
			return
		}
		sel.Parent().Find("details, .accordion-item, .faq-item").Each(func(_ int, item *goquery.Selection) {
			question := trimmedText(item.Find("summary, .question, .accordion-header").First())
			answer := trimmedText(item.Find(".answer, .accordion-body, p").First())
			if question != "" && answer != "" && len(answer) > 10 {
				faqs = append(faqs, listicle.FAQ{Question: question, Answer: answer})
			}
		})
	})

	return faqs
}
