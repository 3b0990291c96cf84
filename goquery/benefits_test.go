package goquery_test

import (
	"testing"

	"github.com/lars154/ecom-listicle-writer/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBriefExtractor_IsNavigationText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want bool
	}{
		{"Home", true},
		{"Cart", true},
		{"Sign In please", true},
		{"short", true},
		{"Shipping policy applies here", true},
		{"Privacy matters to every customer", true},
		{"This blender makes smoothies incredibly fast", false},
		{"Keeps drinks cold for twenty four hours", false},
	}

	e := goquery.NewBriefExtractor()
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, e.IsNavigationText(tt.text))
		})
	}
}

func TestBriefExtractor_Benefits(t *testing.T) {
	t.Parallel()

	t.Run("bullet sweep keeps substantive items and drops chrome", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><ul>
<li>Home</li>
<li>Shipping policy applies to all orders</li>
<li>Keeps drinks cold for twenty four hours straight</li>
</ul></body></html>`

		e := goquery.NewBriefExtractor()
		brief, err := e.ExtractBrief("https://example.com/x", html)
		require.NoError(t, err)

		assert.Contains(t, brief.Benefits, "Keeps drinks cold for twenty four hours straight")
		assert.NotContains(t, brief.Benefits, "Home")
		assert.NotContains(t, brief.Benefits, "Shipping policy applies to all orders")
	})

	t.Run("benefit phrase paragraphs are harvested", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<p>This stand is perfect for small desks and shared workspaces.</p>
<p>Completely unrelated marketing chatter about the company history.</p>
</body></html>`

		e := goquery.NewBriefExtractor()
		brief, err := e.ExtractBrief("https://example.com/x", html)
		require.NoError(t, err)

		assert.Contains(t, brief.Benefits, "This stand is perfect for small desks and shared workspaces.")
	})

	t.Run("heading anchored sweep collects following siblings", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h2>Why choose this blender</h2>
<p>It blends frozen fruit into silk in under thirty seconds.</p>
</body></html>`

		e := goquery.NewBriefExtractor()
		brief, err := e.ExtractBrief("https://example.com/x", html)
		require.NoError(t, err)

		assert.Contains(t, brief.Benefits, "It blends frozen fruit into silk in under thirty seconds.")
	})

	t.Run("feature styled elements are harvested", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="feature-grid-cell">Built to survive drops from two meters</div>
</body></html>`

		e := goquery.NewBriefExtractor()
		brief, err := e.ExtractBrief("https://example.com/x", html)
		require.NoError(t, err)

		assert.Contains(t, brief.Benefits, "Built to survive drops from two meters")
	})
}

func TestBriefExtractor_Claims(t *testing.T) {
	t.Parallel()

	t.Run("numeric and keyword markers qualify", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<p>Rated 98% effective in an independent lab trial.</p>
<p>Dermatologist tested on sensitive skin for a month.</p>
<p>It comes in three colors and a soft carrying pouch.</p>
</body></html>`

		e := goquery.NewBriefExtractor()
		brief, err := e.ExtractBrief("https://example.com/x", html)
		require.NoError(t, err)

		assert.Contains(t, brief.Claims, "Rated 98% effective in an independent lab trial.")
		assert.Contains(t, brief.Claims, "Dermatologist tested on sensitive skin for a month.")
		assert.NotContains(t, brief.Claims, "It comes in three colors and a soft carrying pouch.")
	})

	t.Run("bold text is a claim signal on its own", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<p>Everyday carry, reinvented. <strong>Trusted by professional climbers</strong> around the world.</p>
</body></html>`

		e := goquery.NewBriefExtractor()
		brief, err := e.ExtractBrief("https://example.com/x", html)
		require.NoError(t, err)

		assert.Contains(t, brief.Claims, "Trusted by professional climbers")
	})
}
