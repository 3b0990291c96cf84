package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	fallbackBenefitCap = 10
	fallbackClaimCap   = 8
)

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
	secondPersonRe  = regexp.MustCompile(`you can|you'll|you will`)
)

// mineFallback rescans all visible text with looser heuristics when the
// primary cascades came up short. It works on a private re-parse of the
// raw HTML so pruning noise elements never disturbs the tree the other
// extractors walk.
func (e *BriefExtractor) mineFallback(html string) (benefits, claims []string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil
	}

	doc.Find(`script, style, nav, header, footer, .menu, .navigation, [class*="cookie"]`).Remove()

	root := doc.Find(`main, [role="main"], .main, .content, article, .product`).First()
	if root.Length() == 0 {
		root = doc.Find("body")
	}

	for _, raw := range sentenceSplitRe.Split(root.Text(), -1) {
		sentence := strings.TrimSpace(raw)
		if len(sentence) <= 20 || len(sentence) >= 250 {
			continue
		}
		lower := strings.ToLower(sentence)

		if containsAny(lower, e.config.FallbackBenefitPhrases) || secondPersonRe.MatchString(lower) {
			benefits = append(benefits, sentence)
		}
		if numericClaimRe.MatchString(sentence) || containsAny(lower, e.config.FallbackClaimKeywords) {
			claims = append(claims, sentence)
		}
	}

	return capped(benefits, fallbackBenefitCap), capped(claims, fallbackClaimCap)
}
