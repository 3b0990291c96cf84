package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	listicle "github.com/lars154/ecom-listicle-writer"
	"google.golang.org/genai"
)

const headlineModel = "gemini-2.5-flash"

// Ensure Headliner implements listicle.HeadlineGenerator at compile time.
var _ listicle.HeadlineGenerator = (*Headliner)(nil)

// Headliner implements listicle.HeadlineGenerator using Google Gemini.
type Headliner struct {
	client *genai.Client
	delays []time.Duration
}

// HeadlinerOption configures a Headliner.
type HeadlinerOption func(*Headliner)

// WithHeadlinerRetryDelays overrides the backoff delays used when the
// model reports overload. Useful for testing.
func WithHeadlinerRetryDelays(delays []time.Duration) HeadlinerOption {
	return func(h *Headliner) {
		h.delays = delays
	}
}

// NewHeadliner creates a new Headliner.
func NewHeadliner(client *genai.Client, opts ...HeadlinerOption) *Headliner {
	h := &Headliner{
		client: client,
		delays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// PatternGuide carries per-mode headline examples and writing guidance.
type PatternGuide struct {
	Name     string
	Patterns []string
	Guidance string
}

var headlinePatterns = map[listicle.Mode]PatternGuide{
	listicle.ModeProblemAwareness: {
		Name: "Problem/Symptom Awareness",
		Patterns: []string{
			`"5 Signs You Need to Add Creatine to Your Daily Routine"`,
			`"10 Reasons You're Not Lazy, You're Just Breathing Wrong"`,
			`"7 Warning Signs Your Sleep Quality Is Affecting Your Health"`,
			`"5 Signs Your Skincare Routine Is Actually Making Things Worse"`,
			`"8 Symptoms That Mean Your Gut Health Needs Attention"`,
		},
		Guidance: `Generate headlines that:
- Focus on SYMPTOMS or SIGNS the reader experiences
- Frame around problems they recognize in themselves
- Use "Signs You..." or "Reasons You're..." or "Why You..." formats
- Make the reader think "that's me!" when they read it
- Connect symptoms to an underlying issue the product solves`,
	},
	listicle.ModeComparison: {
		Name: "Comparison/Category Switch",
		Patterns: []string{
			`"10 Reasons to Ditch Drugstore Deodorant for Sweat Care"`,
			`"7 Reasons to Switch from Regular Coffee to High-Protein Coffee"`,
			`"5 Reasons Smart Homeowners Are Ditching Traditional Cookware"`,
			`"10 Reasons Athletes Are Switching from Whey to Plant Protein"`,
			`"8 Reasons Why Everyone Is Replacing Their Old Bedding with This Mattress Cover"`,
		},
		Guidance: `Generate headlines that:
- Contrast the OLD way vs the NEW/BETTER way
- Use "Ditch X for Y" or "Switch from X to Y" or "Replace X with Y" formats
- Name the inferior category being replaced
- Position the product as the superior alternative
- Imply a movement or trend toward the better option`,
	},
	listicle.ModeSocialProofAuthority: {
		Name: "Social Proof/Authority",
		Patterns: []string{
			`"5 Reasons 1,000,000+ Home Chefs Are Making The Switch"`,
			`"7 Reasons Why Thousands of Women Over 40 Swear By This Serum"`,
			`"10 Reasons This Has Become America's #1 Selling Sleep Aid"`,
			`"7 Reasons Why Top Dermatologists Recommend This Sunscreen"`,
			`"5 Reasons 500,000+ Customers Gave This 5 Stars"`,
		},
		Guidance: `Generate headlines that:
- Lead with NUMBERS (customer count, review count, sales figures) or a credible AUTHORITY figure
- Use "X+ [audience] Are..." or "Why [Experts] Recommend..." formats
- Create FOMO through mass adoption or borrowed credibility
- Reference ratings, rankings, or bestseller status
- Make the reader feel they're missing out on something proven`,
	},
	listicle.ModeFirstPersonReview: {
		Name: "First-Person Review",
		Patterns: []string{
			`"I Tried the Gummies Everyone's Talking About - Here's My Honest Review"`,
			`"I Tested This Viral Skincare Product for 30 Days - Here's What Happened"`,
			`"I Finally Tried the Coffee Everyone's Raving About - Was It Worth the Hype?"`,
			`"I Switched to This Deodorant After 10 Years - Here's Why I'm Never Going Back"`,
			`"I Was Skeptical About This Sleep Aid Until I Tried It Myself"`,
		},
		Guidance: `Generate headlines that:
- Written in FIRST PERSON ("I Tried...", "I Tested...", "I Switched...")
- Promise an HONEST, authentic review experience
- Include a time frame or journey element
- Reference buzz/hype if applicable
- Create relatability through personal experience`,
	},
	listicle.ModeHybrid: {
		Name: "Hybrid (Mixed Angles)",
		Patterns: []string{
			`"5 Reasons Why Everyone is Obsessed with This Anti-Aging Treatment"`,
			`"10 Signs You Need to Upgrade Your Skincare (And Why Thousands Already Have)"`,
			`"I Tried What 1,000,000 Customers Swear By - Here's My Honest Take"`,
			`"7 Reasons Top Dermatologists and Real Customers Agree on This Serum"`,
			`"5 Mistakes You're Making (And the Product 500,000+ People Use to Fix Them)"`,
		},
		Guidance: `Generate headlines that:
- Combine elements from multiple approaches (social proof + symptom, expert + review, etc.)
- Mix proof types (expert + customer, personal experience + data)
- Layer multiple hooks in one headline
- Create compound intrigue
- Still maintain clarity about what the product is`,
	},
}

// Headlines proposes five headline options in the request's primary
// mode.
func (h *Headliner) Headlines(ctx context.Context, brief *listicle.ProductBrief, req *listicle.GenerationRequest) ([]listicle.HeadlineOption, error) {
	if brief == nil {
		return nil, listicle.Errorf(listicle.EINVALID, "product brief required")
	}
	if req == nil || len(req.Modes) == 0 {
		return nil, listicle.Errorf(listicle.EINVALID, "at least one listicle mode required")
	}
	guide, ok := headlinePatterns[req.Modes[0]]
	if !ok {
		return nil, listicle.Errorf(listicle.EINVALID, "unrecognized listicle mode %q", req.Modes[0])
	}

	system := BuildHeadlineSystemPrompt(guide)
	prompt := BuildHeadlineUserPrompt(brief, guide)
	temp := float32(1.0)
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
		Temperature: &temp,
	}

	text, err := CallWithRetry(ctx, h.delays, func(ctx context.Context) (string, error) {
		result, err := h.client.Models.GenerateContent(ctx, headlineModel,
			[]*genai.Content{{
				Parts: []*genai.Part{{Text: prompt}},
			}},
			config,
		)
		if err != nil {
			return "", err
		}
		if result == nil {
			return "", listicle.Errorf(listicle.EINTERNAL, "gemini returned nil result")
		}
		return result.Text(), nil
	})
	if err != nil {
		return nil, err
	}

	return ParseHeadlines(text)
}

// BuildHeadlineSystemPrompt assembles the system instruction for
// headline generation in the given mode.
func BuildHeadlineSystemPrompt(guide PatternGuide) string {
	var sb strings.Builder
	sb.WriteString("You are an elite e-commerce copywriter specializing in high-converting listicle headlines.\n\n")
	fmt.Fprintf(&sb, "# YOUR TASK\n\nGenerate 5 headline variations for a %q listicle.\n\n", guide.Name)
	fmt.Fprintf(&sb, "CRITICAL: ALL 5 headlines must be %q headlines. Do NOT mix in other listicle types.\n\n", guide.Name)

	fmt.Fprintf(&sb, "# REAL EXAMPLES OF %q HEADLINES\n\n", strings.ToUpper(guide.Name))
	for i, pattern := range guide.Patterns {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, pattern)
	}

	fmt.Fprintf(&sb, "\n# HOW TO WRITE %q HEADLINES\n\n%s\n", strings.ToUpper(guide.Name), guide.Guidance)

	fmt.Fprintf(&sb, `
# WHAT MAKES EACH HEADLINE DIFFERENT

Since all 5 headlines must be the same TYPE (%s), vary them by:
- Focusing on different BENEFITS or features of the product
- Using different PHRASINGS of the same pattern
- Highlighting different PAIN POINTS or desires
- Varying the NUMBER used (5, 7, 10)
- Approaching from different ANGLES within the same type

# QUALITY RULES

1. ALL SAME TYPE - every headline must be a %q headline
2. PRODUCT-SPECIFIC - include the actual product category, features, or benefits
3. NUMBER FIRST - start with the number: "5 Reasons..." not "The 5 Reasons..."
4. NO GENERIC FILLER - every word should be specific and earned
5. USE REAL DATA - if review count/rating is provided, use it
6. MATCH REALITY - headlines must reflect what the product actually does

# OUTPUT FORMAT

Return ONLY valid JSON:
{
  "headlines": [
    {
      "headline": "The exact headline text",
      "angle": %q,
      "description": "What specific benefit/angle this headline emphasizes"
    }
  ]
}

All 5 headlines should have angle %q since that's the selected type.`,
		guide.Name, guide.Name, guide.Name, guide.Name)
	return sb.String()
}

// BuildHeadlineUserPrompt builds the product-context prompt for
// headline generation.
func BuildHeadlineUserPrompt(brief *listicle.ProductBrief, guide PatternGuide) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate 5 %q headlines for this product:\n\n", guide.Name)
	sb.WriteString("# PRODUCT INFORMATION\n\n")
	fmt.Fprintf(&sb, "**Product Name**: %s\n", brief.Title)
	fmt.Fprintf(&sb, "**Brand**: %s\n", orDefault(brief.Brand, "Unknown brand"))
	fmt.Fprintf(&sb, "**Product Category**: %s\n", orDefault(strings.Join(brief.CategoryHints, ", "), "General"))

	sb.WriteString("\n**Key Benefits**:\n")
	writeNumberedCapped(&sb, brief.Benefits, 8)
	sb.WriteString("\n**Product Claims**:\n")
	writeNumberedCapped(&sb, brief.Claims, 5)

	desc := brief.Description
	if runes := []rune(desc); len(runes) > 500 {
		desc = string(runes[:500])
	}
	fmt.Fprintf(&sb, "\n**Product Description**:\n%s\n", orDefault(desc, "Not available"))

	sb.WriteString("\n**Social Proof**:\n")
	if brief.Reviews != nil && brief.Reviews.Count > 0 {
		fmt.Fprintf(&sb, "- Review Count: %d+ reviews\n", brief.Reviews.Count)
	} else {
		sb.WriteString("- Review Count: Unknown\n")
	}
	if brief.Reviews != nil && brief.Reviews.Rating > 0 {
		fmt.Fprintf(&sb, "- Average Rating: %g/5 stars\n", brief.Reviews.Rating)
	} else {
		sb.WriteString("- Average Rating: Unknown\n")
	}

	fmt.Fprintf(&sb, `
# REQUIREMENTS

Generate exactly 5 headlines that:
1. Are ALL %q type headlines (the user selected this type)
2. Each focuses on a different BENEFIT or ANGLE of the product
3. Are SPECIFIC to this exact product
4. Use real data from above when available

Return ONLY valid JSON.`, guide.Name)
	return sb.String()
}

func writeNumberedCapped(sb *strings.Builder, items []string, max int) {
	if len(items) == 0 {
		sb.WriteString("Not specified\n")
		return
	}
	if len(items) > max {
		items = items[:max]
	}
	for i, item := range items {
		fmt.Fprintf(sb, "%d. %s\n", i+1, item)
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// fencedJSONRe extracts a JSON payload wrapped in a markdown code
// fence, with or without a language tag.
var fencedJSONRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ParseHeadlines parses the model's JSON response into headline
// options, tolerating a markdown code fence around the payload.
func ParseHeadlines(text string) ([]listicle.HeadlineOption, error) {
	var payload struct {
		Headlines []listicle.HeadlineOption `json:"headlines"`
	}

	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		m := fencedJSONRe.FindStringSubmatch(text)
		if m == nil {
			return nil, listicle.Errorf(listicle.EINTERNAL, "failed to parse headline options from response")
		}
		if err := json.Unmarshal([]byte(strings.TrimSpace(m[1])), &payload); err != nil {
			return nil, listicle.Errorf(listicle.EINTERNAL, "failed to parse headline options from response")
		}
	}

	if len(payload.Headlines) == 0 {
		return nil, listicle.Errorf(listicle.EINTERNAL, "response contained no headline options")
	}
	return payload.Headlines, nil
}
