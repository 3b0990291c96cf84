package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	listicle "github.com/lars154/ecom-listicle-writer"
	main "github.com/lars154/ecom-listicle-writer/cmd/listiclegen"
	"github.com/lars154/ecom-listicle-writer/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBriefsListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists stored briefs", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Briefs = &mock.BriefService{
			FindBriefsFn: func(_ context.Context, filter listicle.BriefFilter) ([]*listicle.StoredBrief, error) {
				return []*listicle.StoredBrief{
					{
						FetchedAt: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
						Brief: listicle.ProductBrief{
							URL:      "https://example.com/products/a",
							PageType: listicle.PageTypeProduct,
							Title:    "Glow Serum",
						},
					},
				}, nil
			},
		}

		cmd := &main.BriefsListCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "2026-08-30")
		assert.Contains(t, output, "Glow Serum")
		assert.Contains(t, output, "https://example.com/products/a")
	})

	t.Run("passes the page type filter through", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		var gotFilter listicle.BriefFilter
		deps.Briefs = &mock.BriefService{
			FindBriefsFn: func(_ context.Context, filter listicle.BriefFilter) ([]*listicle.StoredBrief, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		cmd := &main.BriefsListCmd{PageType: "landing"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter.PageType)
		assert.Equal(t, listicle.PageTypeLanding, *gotFilter.PageType)
	})

	t.Run("shows helpful message when empty", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Briefs = &mock.BriefService{
			FindBriefsFn: func(_ context.Context, filter listicle.BriefFilter) ([]*listicle.StoredBrief, error) {
				return nil, nil
			},
		}

		cmd := &main.BriefsListCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No briefs stored")
	})
}

func TestBriefsDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires --force", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		cmd := &main.BriefsDeleteCmd{URL: "https://example.com/products/a"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, listicle.EINVALID, listicle.ErrorCode(err))
	})

	t.Run("deletes by URL", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		var deletedID string
		deps.Briefs = &mock.BriefService{
			FindBriefByURLFn: func(_ context.Context, url string) (*listicle.StoredBrief, error) {
				return &listicle.StoredBrief{ID: "brief-123"}, nil
			},
			DeleteBriefFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		cmd := &main.BriefsDeleteCmd{URL: "https://example.com/products/a", Force: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "brief-123", deletedID)
		assert.Contains(t, stdout.String(), "Deleted brief")
	})

	t.Run("reports unknown URLs", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Briefs = &mock.BriefService{
			FindBriefByURLFn: func(_ context.Context, url string) (*listicle.StoredBrief, error) {
				return nil, listicle.Errorf(listicle.ENOTFOUND, "no brief stored for %s", url)
			},
		}

		cmd := &main.BriefsDeleteCmd{URL: "https://example.com/products/missing", Force: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, listicle.ENOTFOUND, listicle.ErrorCode(err))
	})
}
