package mock

import (
	listicle "github.com/lars154/ecom-listicle-writer"
)

var _ listicle.BriefExtractor = (*BriefExtractor)(nil)

// BriefExtractor is a mock implementation of listicle.BriefExtractor.
type BriefExtractor struct {
	ExtractBriefFn func(sourceURL, html string) (*listicle.ProductBrief, error)
}

func (e *BriefExtractor) ExtractBrief(sourceURL, html string) (*listicle.ProductBrief, error) {
	return e.ExtractBriefFn(sourceURL, html)
}

var _ listicle.Previewer = (*Previewer)(nil)

// Previewer is a mock implementation of listicle.Previewer.
type Previewer struct {
	PreviewFn func(html string) (string, error)
}

func (p *Previewer) Preview(html string) (string, error) {
	return p.PreviewFn(html)
}
