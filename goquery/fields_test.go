package goquery_test

import (
	"strings"
	"testing"

	"github.com/lars154/ecom-listicle-writer/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBriefExtractor_Title(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "product class selector wins over h1",
			html: `<html><body><div class="product-title">Storm Jacket</div><h1>Welcome</h1></body></html>`,
			want: "Storm Jacket",
		},
		{
			name: "itemprop name",
			html: `<html><body><span itemprop="name">Trail Mug</span></body></html>`,
			want: "Trail Mug",
		},
		{
			name: "h1 when no product markup",
			html: `<html><body><h1>Canvas Tote</h1></body></html>`,
			want: "Canvas Tote",
		},
		{
			name: "og:title meta",
			html: `<html><head><meta property="og:title" content="Desk Lamp"></head></html>`,
			want: "Desk Lamp",
		},
		{
			name: "document title with hyphen suffix stripped",
			html: `<html><head><title>Acme Widget - Acme Store</title></head></html>`,
			want: "Acme Widget",
		},
		{
			name: "document title with pipe suffix stripped",
			html: `<html><head><title>Acme Widget | Acme Store</title></head></html>`,
			want: "Acme Widget",
		},
		{
			name: "too-short candidates are skipped",
			html: `<html><body><div class="product-title">Ab</div><h1>Hydration Backpack</h1></body></html>`,
			want: "Hydration Backpack",
		},
		{
			name: "placeholder when nothing found",
			html: `<html><body></body></html>`,
			want: "Untitled Product",
		},
	}

	e := goquery.NewBriefExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			brief, err := e.ExtractBrief("https://example.com/x", tt.html)
			require.NoError(t, err)
			assert.Equal(t, tt.want, brief.Title)
		})
	}
}

func TestBriefExtractor_Brand(t *testing.T) {
	t.Parallel()

	t.Run("og:brand meta", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta property="og:brand" content="Acme"></head></html>`
		e := goquery.NewBriefExtractor()
		brief, err := e.ExtractBrief("https://example.com/x", html)
		require.NoError(t, err)
		assert.Equal(t, "Acme", brief.Brand)
	})

	t.Run("brand scraped from malformed json-ld", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><script type="application/ld+json">{"@type":"Product","brand": "Lumen", broken</script></head></html>`
		e := goquery.NewBriefExtractor()
		brief, err := e.ExtractBrief("https://example.com/x", html)
		require.NoError(t, err)
		assert.Equal(t, "Lumen", brief.Brand)
	})

	t.Run("vendor element", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="product-vendor">Northwind</div></body></html>`
		e := goquery.NewBriefExtractor()
		brief, err := e.ExtractBrief("https://example.com/x", html)
		require.NoError(t, err)
		assert.Equal(t, "Northwind", brief.Brand)
	})

	t.Run("absent when nothing matches", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>no brand anywhere</p></body></html>`
		e := goquery.NewBriefExtractor()
		brief, err := e.ExtractBrief("https://example.com/x", html)
		require.NoError(t, err)
		assert.Empty(t, brief.Brand)
	})
}

func TestBriefExtractor_Price(t *testing.T) {
	t.Parallel()

	t.Run("meta amount with currency", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<meta property="og:price:amount" content="30.00">
<meta property="og:price:currency" content="EUR">
</head></html>`
		e := goquery.NewBriefExtractor()
		brief, err := e.ExtractBrief("https://example.com/x", html)
		require.NoError(t, err)
		assert.Equal(t, "EUR 30.00", brief.Price)
	})

	t.Run("meta amount defaults to USD", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta property="og:price:amount" content="29.99"></head></html>`
		e := goquery.NewBriefExtractor()
		brief, err := e.ExtractBrief("https://example.com/x", html)
		require.NoError(t, err)
		assert.Equal(t, "USD 29.99", brief.Price)
	})

	t.Run("price class selector returns raw text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><span class="price">$19.99</span></body></html>`
		e := goquery.NewBriefExtractor()
		brief, err := e.ExtractBrief("https://example.com/x", html)
		require.NoError(t, err)
		assert.Equal(t, "$19.99", brief.Price)
	})
}

func TestBriefExtractor_Description(t *testing.T) {
	t.Parallel()

	t.Run("meta description below floor is rejected", func(t *testing.T) {
		t.Parallel()

		desc := strings.Repeat("d", 29)
		html := `<html><head><meta name="description" content="` + desc + `"></head></html>`
		e := goquery.NewBriefExtractor()
		brief, err := e.ExtractBrief("https://example.com/x", html)
		require.NoError(t, err)
		assert.Empty(t, brief.Description)
	})

	t.Run("meta description above floor is accepted", func(t *testing.T) {
		t.Parallel()

		desc := strings.Repeat("d", 31)
		html := `<html><head><meta name="description" content="` + desc + `"></head></html>`
		e := goquery.NewBriefExtractor()
		brief, err := e.ExtractBrief("https://example.com/x", html)
		require.NoError(t, err)
		assert.Equal(t, desc, brief.Description)
	})

	t.Run("description blocks and meta are combined", func(t *testing.T) {
		t.Parallel()

		html := `<html>
<head><meta property="og:description" content="A compact blender that crushes ice in seconds flat."></head>
<body><div class="product-description">Built around a hardened steel blade and a motor rated for daily use, it handles frozen fruit without stalling.</div></body>
</html>`
		e := goquery.NewBriefExtractor()
		brief, err := e.ExtractBrief("https://example.com/x", html)
		require.NoError(t, err)
		assert.Contains(t, brief.Description, "crushes ice")
		assert.Contains(t, brief.Description, "hardened steel blade")
	})

	t.Run("substantial paragraphs are used when no structured blocks exist", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<p>Short one.</p>
<p>This travel kettle boils half a liter of water in under three minutes on any voltage.</p>
</body></html>`
		e := goquery.NewBriefExtractor()
		brief, err := e.ExtractBrief("https://example.com/x", html)
		require.NoError(t, err)
		assert.Contains(t, brief.Description, "travel kettle")
	})

	t.Run("heading plus following paragraph as last resort", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><h1>Pocket Tripod</h1><p>Steady shots anywhere.</p></body></html>`
		e := goquery.NewBriefExtractor()
		brief, err := e.ExtractBrief("https://example.com/x", html)
		require.NoError(t, err)
		assert.Equal(t, "Pocket Tripod. Steady shots anywhere.", brief.Description)
	})

	t.Run("long combined text is truncated", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="description">` + strings.Repeat("word ", 300) + `</div></body></html>`
		e := goquery.NewBriefExtractor()
		brief, err := e.ExtractBrief("https://example.com/x", html)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(brief.Description), 1000)
	})
}
