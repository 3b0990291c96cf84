package listicle

import "net/url"

// PageType classifies the kind of page a brief was extracted from.
type PageType string

// Page types produced by classification.
const (
	PageTypeProduct PageType = "product"
	PageTypeLanding PageType = "landing"

	// PageTypeUnknown is declared for completeness but is never produced:
	// every classification path resolves to product or landing, and
	// downstream prompt logic relies on landing being the permissive
	// default. Do not "fix" this without a product decision.
	PageTypeUnknown PageType = "unknown"
)

// List caps applied during brief assembly.
const (
	MaxBenefits      = 15
	MaxClaims        = 12
	MaxCategoryHints = 10
)

// ProductBrief is the normalized output of one extraction run. It is
// fully computed at assembly and never mutated afterwards.
//
// Optional string fields use "" for "not found" and are omitted from
// JSON; optional lists and maps use nil the same way. Benefits and
// claims are always present (possibly empty), deduplicated, and capped.
type ProductBrief struct {
	URL      string   `json:"url"`
	PageType PageType `json:"pageType"`
	Title    string   `json:"title"`

	Brand       string `json:"brand,omitempty"`
	Price       string `json:"price,omitempty"`
	Description string `json:"description,omitempty"`

	CategoryHints []string `json:"categoryHints,omitempty"`
	Benefits      []string `json:"benefits"`
	Claims        []string `json:"claims"`

	Ingredients []string          `json:"ingredients,omitempty"`
	Specs       map[string]string `json:"specs,omitempty"`
	Reviews     *ReviewSummary    `json:"reviews,omitempty"`
	FAQs        []FAQ             `json:"faqs,omitempty"`
}

// ReviewSummary aggregates the review signals found on a page. Any
// subset of fields may be set; the summary is omitted entirely when
// nothing was found.
type ReviewSummary struct {
	Count    int      `json:"count"`
	Rating   float64  `json:"rating"`
	Snippets []string `json:"snippets,omitempty"`
}

// FAQ is a question/answer pair lifted from the page.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Validate returns an error if the brief violates its schema invariants.
func (b *ProductBrief) Validate() error {
	if b.URL == "" {
		return Errorf(EINVALID, "brief URL required")
	}
	if _, err := url.Parse(b.URL); err != nil {
		return Errorf(EINVALID, "brief URL invalid: %v", err)
	}
	if b.Title == "" {
		return Errorf(EINVALID, "brief title required")
	}
	switch b.PageType {
	case PageTypeProduct, PageTypeLanding, PageTypeUnknown:
	default:
		return Errorf(EINVALID, "unrecognized page type %q", b.PageType)
	}
	if len(b.Benefits) > MaxBenefits {
		return Errorf(EINVALID, "benefits exceed cap of %d", MaxBenefits)
	}
	if len(b.Claims) > MaxClaims {
		return Errorf(EINVALID, "claims exceed cap of %d", MaxClaims)
	}
	if b.Reviews != nil && b.Reviews.Count < 0 {
		return Errorf(EINVALID, "review count must be non-negative")
	}
	return nil
}
