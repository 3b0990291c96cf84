package mock

import (
	"context"

	listicle "github.com/lars154/ecom-listicle-writer"
)

var _ listicle.Generator = (*Generator)(nil)

// Generator is a mock implementation of listicle.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, brief *listicle.ProductBrief, req *listicle.GenerationRequest) (string, error)
}

func (g *Generator) Generate(ctx context.Context, brief *listicle.ProductBrief, req *listicle.GenerationRequest) (string, error) {
	return g.GenerateFn(ctx, brief, req)
}

var _ listicle.HeadlineGenerator = (*HeadlineGenerator)(nil)

// HeadlineGenerator is a mock implementation of listicle.HeadlineGenerator.
type HeadlineGenerator struct {
	HeadlinesFn func(ctx context.Context, brief *listicle.ProductBrief, req *listicle.GenerationRequest) ([]listicle.HeadlineOption, error)
}

func (g *HeadlineGenerator) Headlines(ctx context.Context, brief *listicle.ProductBrief, req *listicle.GenerationRequest) ([]listicle.HeadlineOption, error) {
	return g.HeadlinesFn(ctx, brief, req)
}
