package listicle

// BriefExtractor turns the raw HTML of a product or landing page into a
// normalized ProductBrief.
type BriefExtractor interface {
	// ExtractBrief processes the raw HTML of the page at sourceURL.
	// Malformed HTML is parsed leniently and never fails the run;
	// sparse pages produce briefs with short or empty lists rather
	// than errors. The result is a pure function of its inputs.
	ExtractBrief(sourceURL, html string) (*ProductBrief, error)
}

// Previewer renders the main content of a page as markdown, with
// boilerplate removed. It exists for operator inspection of pages that
// extract thin briefs.
type Previewer interface {
	Preview(html string) (string, error)
}
