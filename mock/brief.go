package mock

import (
	"context"

	listicle "github.com/lars154/ecom-listicle-writer"
)

var _ listicle.BriefService = (*BriefService)(nil)

// BriefService is a mock implementation of listicle.BriefService.
type BriefService struct {
	SaveBriefFn      func(ctx context.Context, sb *listicle.StoredBrief) error
	FindBriefByURLFn func(ctx context.Context, url string) (*listicle.StoredBrief, error)
	FindBriefsFn     func(ctx context.Context, filter listicle.BriefFilter) ([]*listicle.StoredBrief, error)
	DeleteBriefFn    func(ctx context.Context, id string) error
}

func (s *BriefService) SaveBrief(ctx context.Context, sb *listicle.StoredBrief) error {
	return s.SaveBriefFn(ctx, sb)
}

func (s *BriefService) FindBriefByURL(ctx context.Context, url string) (*listicle.StoredBrief, error) {
	return s.FindBriefByURLFn(ctx, url)
}

func (s *BriefService) FindBriefs(ctx context.Context, filter listicle.BriefFilter) ([]*listicle.StoredBrief, error) {
	return s.FindBriefsFn(ctx, filter)
}

func (s *BriefService) DeleteBrief(ctx context.Context, id string) error {
	return s.DeleteBriefFn(ctx, id)
}
