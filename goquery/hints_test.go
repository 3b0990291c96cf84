package goquery_test

import (
	"testing"

	"github.com/lars154/ecom-listicle-writer/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBriefExtractor_CategoryHints(t *testing.T) {
	t.Parallel()

	t.Run("keyword match adds category label and keyword", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1>Pokemon TCG Booster Bundle</h1></body></html>`

		e := goquery.NewBriefExtractor()
		brief, err := e.ExtractBrief("https://example.com/x", html)
		require.NoError(t, err)

		assert.Contains(t, brief.CategoryHints, "Pokemon/Trading Cards")
		assert.Contains(t, brief.CategoryHints, "pokemon")
	})

	t.Run("meta product type and breadcrumbs are added verbatim", func(t *testing.T) {
		t.Parallel()

		html := `<html>
<head><meta property="product:category" content="Kitchen Gadgets"></head>
<body>
<h1>Citrus Press</h1>
<div class="breadcrumb"><a href="/c/all">Collections</a><a href="/c/kitchen">Kitchen Tools</a></div>
</body>
</html>`

		e := goquery.NewBriefExtractor()
		brief, err := e.ExtractBrief("https://example.com/x", html)
		require.NoError(t, err)

		assert.Contains(t, brief.CategoryHints, "Kitchen Gadgets")
		assert.Contains(t, brief.CategoryHints, "collections")
		assert.Contains(t, brief.CategoryHints, "kitchen tools")
	})

	t.Run("hints are deduplicated and capped at ten", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta name="description" content="A smart wireless bluetooth charging gadget for your home gym workout and yoga training sessions with your dog or cat.">
</head><body><h1>Everything Gadget</h1></body></html>`

		e := goquery.NewBriefExtractor()
		brief, err := e.ExtractBrief("https://example.com/x", html)
		require.NoError(t, err)

		assert.LessOrEqual(t, len(brief.CategoryHints), 10)
		assert.Equal(t, dedupeLen(brief.CategoryHints), len(brief.CategoryHints))
	})

	t.Run("empty when nothing matches", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1>Plain Thing</h1></body></html>`

		e := goquery.NewBriefExtractor()
		brief, err := e.ExtractBrief("https://example.com/x", html)
		require.NoError(t, err)

		assert.Empty(t, brief.CategoryHints)
	})
}
