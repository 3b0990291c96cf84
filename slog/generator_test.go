package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	listicle "github.com/lars154/ecom-listicle-writer"
	"github.com/lars154/ecom-listicle-writer/mock"
	listicleslog "github.com/lars154/ecom-listicle-writer/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("logs modes and output size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Generator{
			GenerateFn: func(ctx context.Context, brief *listicle.ProductBrief, req *listicle.GenerationRequest) (string, error) {
				return "# Listicle", nil
			},
		}

		g := listicleslog.NewLoggingGenerator(inner, logger)
		brief := &listicle.ProductBrief{URL: "https://example.com/products/a", Title: "A"}
		req := &listicle.GenerationRequest{Modes: []listicle.Mode{listicle.ModeHybrid}}

		markdown, err := g.Generate(context.Background(), brief, req)

		require.NoError(t, err)
		assert.Equal(t, "# Listicle", markdown)
		output := buf.String()
		assert.Contains(t, output, "generate listicle")
		assert.Contains(t, output, "Hybrid")
		assert.Contains(t, output, "chars=10")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Generator{
			GenerateFn: func(ctx context.Context, brief *listicle.ProductBrief, req *listicle.GenerationRequest) (string, error) {
				return "", listicle.Errorf(listicle.EUNAVAILABLE, "model overloaded")
			},
		}

		g := listicleslog.NewLoggingGenerator(inner, logger)
		_, err := g.Generate(context.Background(), nil, nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "model overloaded")
	})
}

func TestLoggingHeadlineGenerator_Headlines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.HeadlineGenerator{
		HeadlinesFn: func(ctx context.Context, brief *listicle.ProductBrief, req *listicle.GenerationRequest) ([]listicle.HeadlineOption, error) {
			return []listicle.HeadlineOption{
				{Headline: "I Tried the Glow Serum for 30 Days"},
				{Headline: "5 Signs Your Skin Needs Vitamin C"},
			}, nil
		},
	}

	g := listicleslog.NewLoggingHeadlineGenerator(inner, logger)
	options, err := g.Headlines(context.Background(), &listicle.ProductBrief{}, &listicle.GenerationRequest{})

	require.NoError(t, err)
	assert.Len(t, options, 2)
	output := buf.String()
	assert.Contains(t, output, "generate headlines")
	assert.Contains(t, output, "count=2")
}
