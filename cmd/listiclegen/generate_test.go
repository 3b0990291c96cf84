package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	listicle "github.com/lars154/ecom-listicle-writer"
	main "github.com/lars154/ecom-listicle-writer/cmd/listiclegen"
	"github.com/lars154/ecom-listicle-writer/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedBriefService(title string) *mock.BriefService {
	return &mock.BriefService{
		FindBriefByURLFn: func(_ context.Context, url string) (*listicle.StoredBrief, error) {
			return &listicle.StoredBrief{
				Brief: listicle.ProductBrief{URL: url, PageType: listicle.PageTypeProduct, Title: title},
			}, nil
		},
	}
}

func TestGenerateCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the generated markdown", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Briefs = storedBriefService("Glow Serum")
		deps.Generator = &mock.Generator{
			GenerateFn: func(_ context.Context, brief *listicle.ProductBrief, req *listicle.GenerationRequest) (string, error) {
				assert.Equal(t, "Glow Serum", brief.Title)
				assert.Equal(t, []listicle.Mode{listicle.ModeSocialProofAuthority}, req.Modes)
				assert.Equal(t, 5, req.ItemCount)
				return "# 5 Reasons Everyone Loves Glow Serum\n\nBody.", nil
			},
		}

		cmd := &main.GenerateCmd{
			URL:   "https://example.com/products/glow-serum",
			Mode:  []string{"SocialProofAuthority"},
			Items: 5,
			Stage: "consideration",
			Grade: 6,
		}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# 5 Reasons Everyone Loves Glow Serum")
	})

	t.Run("passes flags through to the request", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Briefs = storedBriefService("A")

		var gotReq *listicle.GenerationRequest
		deps.Generator = &mock.Generator{
			GenerateFn: func(_ context.Context, brief *listicle.ProductBrief, req *listicle.GenerationRequest) (string, error) {
				gotReq = req
				return "# Out", nil
			},
		}

		cmd := &main.GenerateCmd{
			URL:        "https://example.com/products/a",
			Mode:       []string{"FirstPersonReview", "Hybrid"},
			Items:      7,
			Stage:      "conversion",
			Grade:      8,
			Offer:      "discount",
			CTA:        "Shop the sale",
			MustSay:    []string{"free returns"},
			MustNotSay: []string{"miracle"},
			Headline:   "I Tried It So You Don't Have To",
			Info:       "Launching this week",
		}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotReq)
		assert.Equal(t, []listicle.Mode{listicle.ModeFirstPersonReview, listicle.ModeHybrid}, gotReq.Modes)
		assert.Equal(t, 7, gotReq.ItemCount)
		assert.Equal(t, listicle.FunnelConversion, gotReq.FunnelStage)
		assert.Equal(t, 8, gotReq.ReadingLevel)
		assert.Equal(t, listicle.OfferDiscount, gotReq.OfferType)
		assert.Equal(t, []string{"free returns"}, gotReq.MustSay)
		assert.Equal(t, []string{"miracle"}, gotReq.MustNotSay)
		require.NotNil(t, gotReq.SelectedHeadline)
		assert.Equal(t, "I Tried It So You Don't Have To", gotReq.SelectedHeadline.Headline)
	})

	t.Run("writes to a directory with --out", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Briefs = storedBriefService("Glow Serum")
		deps.Generator = &mock.Generator{
			GenerateFn: func(_ context.Context, brief *listicle.ProductBrief, req *listicle.GenerationRequest) (string, error) {
				return "# Listicle body", nil
			},
		}

		cmd := &main.GenerateCmd{
			URL:   "https://example.com/products/glow-serum",
			Mode:  []string{"Hybrid"},
			Items: 5,
			Stage: "consideration",
			Grade: 6,
			Out:   dir,
		}
		err := cmd.Run(deps)

		require.NoError(t, err)

		path := filepath.Join(dir, "glow-serum.md")
		assert.Contains(t, stdout.String(), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "# Listicle body")
		assert.Contains(t, string(content), "mode: Hybrid")
	})

	t.Run("prints the outline with --outline", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Briefs = storedBriefService("A")
		deps.Generator = &mock.Generator{
			GenerateFn: func(_ context.Context, brief *listicle.ProductBrief, req *listicle.GenerationRequest) (string, error) {
				return "# Title\n\n## Reason One\n\ntext\n\n## Reason Two\n\ntext", nil
			},
		}

		cmd := &main.GenerateCmd{
			URL:     "https://example.com/products/a",
			Mode:    []string{"Hybrid"},
			Items:   5,
			Stage:   "consideration",
			Grade:   6,
			Outline: true,
		}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Outline:")
		assert.Contains(t, output, "Reason One")
		assert.Contains(t, output, "Reason Two")
	})

	t.Run("rejects out-of-range item counts before generating", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		cmd := &main.GenerateCmd{
			URL:   "https://example.com/products/a",
			Mode:  []string{"Hybrid"},
			Items: 20,
			Stage: "consideration",
			Grade: 6,
		}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, listicle.EINVALID, listicle.ErrorCode(err))
		assert.Contains(t, stderr.String(), "item count")
	})
}
