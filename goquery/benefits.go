package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// IsNavigationText reports whether text is menu/legal chrome rather
// than content. Anything under 15 characters counts as navigation;
// longer text is navigation when it equals, or is led by, a chrome
// word.
func (e *BriefExtractor) IsNavigationText(text string) bool {
	if len(text) < 15 {
		return true
	}
	lower := strings.ToLower(text)
	for _, word := range e.config.NavigationChrome {
		if lower == word || strings.HasPrefix(lower, word+" ") {
			return true
		}
	}
	return false
}

// extractBenefits harvests reader-facing value statements. Four sweeps
// union into one set: all bullet points, benefit-phrase paragraphs,
// siblings of benefit-signal headings, and feature/icon-styled
// elements.
func (e *BriefExtractor) extractBenefits(doc *goquery.Document) []string {
	var benefits []string

	doc.Find("ul li, ol li").Each(func(_ int, sel *goquery.Selection) {
		text := trimmedText(sel)
		if len(text) > 15 && len(text) < 250 && !e.IsNavigationText(text) {
			benefits = append(benefits, text)
		}
	})

	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := trimmedText(sel)
		if len(text) <= 20 || len(text) >= 300 {
			return
		}
		lower := strings.ToLower(text)
		for _, phrase := range e.config.BenefitPhrases {
			if strings.Contains(lower, phrase) {
				benefits = append(benefits, text)
				return
			}
		}
	})

	doc.Find("h1, h2, h3, h4, h5, h6, strong, b").Each(func(_ int, sel *goquery.Selection) {
		heading := strings.ToLower(trimmedText(sel))
		if !containsAny(heading, e.config.BenefitHeadings) {
			return
		}

		// Sweep up to five following siblings for list or paragraph
		// content anchored by the heading.
		next := sel.Next()
		for attempts := 0; next.Length() > 0 && attempts < 5; attempts++ {
			if next.Is("ul, ol") {
				next.Find("li").Each(func(_ int, li *goquery.Selection) {
					text := trimmedText(li)
					if len(text) > 15 && len(text) < 250 {
						benefits = append(benefits, text)
					}
				})
				break
			}
			if next.Is("p") {
				text := trimmedText(next)
				if len(text) > 20 && len(text) < 300 {
					benefits = append(benefits, text)
				}
			}
			next = next.Next()
		}
	})

	doc.Find(`.feature, .benefit, [class*="feature"], [class*="benefit"], [class*="icon"]`).
		Each(func(_ int, sel *goquery.Selection) {
			text := trimmedText(sel)
			if len(text) > 15 && len(text) < 250 && !e.IsNavigationText(text) {
				benefits = append(benefits, text)
			}
		})

	return dedupe(benefits)
}

// numericClaimRe matches percentage, multiplier, and "N+" count
// patterns that read as verifiable stats.
var numericClaimRe = regexp.MustCompile(`\d+%|\d+x|\d+\+`)

// extractClaims harvests statements carrying a verifiable-sounding
// marker. Bold and highlighted text is swept as a second pass since
// emphasis itself signals a claim.
func (e *BriefExtractor) extractClaims(doc *goquery.Document) []string {
	var claims []string

	doc.Find("p, li, div, span").Each(func(_ int, sel *goquery.Selection) {
		text := trimmedText(sel)
		if len(text) < 20 || len(text) > 250 {
			return
		}
		if e.IsNavigationText(text) {
			return
		}
		if numericClaimRe.MatchString(text) || containsAny(strings.ToLower(text), e.config.ClaimKeywords) {
			claims = append(claims, text)
		}
	})

	doc.Find(`strong, b, .highlight, [class*="highlight"]`).Each(func(_ int, sel *goquery.Selection) {
		text := trimmedText(sel)
		if len(text) > 15 && len(text) < 200 && !e.IsNavigationText(text) {
			claims = append(claims, text)
		}
	})

	return dedupe(claims)
}

func containsAny(lower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
