package mock

import (
	"context"

	listicle "github.com/lars154/ecom-listicle-writer"
)

var _ listicle.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of listicle.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *listicle.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *listicle.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
