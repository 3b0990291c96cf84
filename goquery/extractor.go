// Package goquery implements the heuristic product-brief extraction
// pipeline on top of the goquery CSS-selector API.
//
// Extraction is a cascade of independent strategies per field, ordered
// from most-structured markup to loosest text mining. Strategies never
// fail: a miss yields an absent field, and a low benefit/claim harvest
// triggers a full-text fallback pass. The whole pipeline is a pure
// function of the input HTML.
package goquery

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	listicle "github.com/lars154/ecom-listicle-writer"
)

// Ensure BriefExtractor implements the interface.
var _ listicle.BriefExtractor = (*BriefExtractor)(nil)

// BriefExtractor extracts a normalized product brief from raw HTML.
type BriefExtractor struct {
	config Config
	logger *slog.Logger
}

// BriefExtractorOption configures a BriefExtractor.
type BriefExtractorOption func(*BriefExtractor)

// WithConfig replaces the default heuristic tables.
func WithConfig(cfg Config) BriefExtractorOption {
	return func(e *BriefExtractor) {
		e.config = cfg
	}
}

// WithLogger sets the logger used to report low-yield fallback passes.
func WithLogger(logger *slog.Logger) BriefExtractorOption {
	return func(e *BriefExtractor) {
		e.logger = logger
	}
}

// NewBriefExtractor creates a BriefExtractor with the default tables.
func NewBriefExtractor(opts ...BriefExtractorOption) *BriefExtractor {
	e := &BriefExtractor{
		config: DefaultConfig(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// fallbackYieldThreshold is the benefit and claim count below which the
// full-text fallback miner runs.
const fallbackYieldThreshold = 3

// ExtractBrief parses html and runs every field extractor, assembling
// the results into a single brief. Data-quality misses never produce
// an error; only an unparseable document does.
func (e *BriefExtractor) ExtractBrief(sourceURL, html string) (*listicle.ProductBrief, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, listicle.Errorf(listicle.EINVALID, "failed to parse HTML: %v", err)
	}

	title := e.extractTitle(doc)
	description := e.extractDescription(doc)

	benefits := e.extractBenefits(doc)
	claims := e.extractClaims(doc)

	if len(benefits) < fallbackYieldThreshold && len(claims) < fallbackYieldThreshold {
		e.logger.Warn("low extraction yield, mining full text",
			"url", sourceURL,
			"benefits", len(benefits),
			"claims", len(claims),
		)
		fbBenefits, fbClaims := e.mineFallback(html)
		benefits = append(benefits, fbBenefits...)
		claims = append(claims, fbClaims...)
	}

	brief := &listicle.ProductBrief{
		URL:           sourceURL,
		PageType:      e.classifyPage(sourceURL, doc),
		Title:         title,
		Brand:         e.extractBrand(doc),
		Price:         e.extractPrice(doc),
		Description:   description,
		CategoryHints: e.extractCategoryHints(doc, title, description),
		Benefits:      capped(dedupe(benefits), listicle.MaxBenefits),
		Claims:        capped(dedupe(claims), listicle.MaxClaims),
		Ingredients:   e.extractIngredients(doc),
		Specs:         e.extractSpecs(doc),
		Reviews:       e.extractReviews(doc),
		FAQs:          e.extractFAQs(doc),
	}
	return brief, nil
}

// dedupe removes exact duplicates while preserving first-seen order.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

func capped(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}

func trimmedText(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}
