// Package gemini implements listicle generation and headline
// generation using Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	listicle "github.com/lars154/ecom-listicle-writer"
	"google.golang.org/genai"
)

const generationModel = "gemini-2.5-pro"

// Ensure Generator implements listicle.Generator at compile time.
var _ listicle.Generator = (*Generator)(nil)

// Generator implements listicle.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	delays []time.Duration
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithGeneratorRetryDelays overrides the backoff delays used when the
// model reports overload. Useful for testing.
func WithGeneratorRetryDelays(delays []time.Duration) GeneratorOption {
	return func(g *Generator) {
		g.delays = delays
	}
}

// NewGenerator creates a new Generator.
func NewGenerator(client *genai.Client, opts ...GeneratorOption) *Generator {
	g := &Generator{
		client: client,
		delays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces a complete landing-page listicle in markdown.
func (g *Generator) Generate(ctx context.Context, brief *listicle.ProductBrief, req *listicle.GenerationRequest) (string, error) {
	if brief == nil {
		return "", listicle.Errorf(listicle.EINVALID, "product brief required")
	}
	if req == nil {
		return "", listicle.Errorf(listicle.EINVALID, "generation request required")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return "", err
	}

	prompt := BuildUserPrompt(brief, req)
	config := BuildConfig()

	text, err := CallWithRetry(ctx, g.delays, func(ctx context.Context) (string, error) {
		result, err := g.client.Models.GenerateContent(ctx, generationModel,
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
		return "", err
	}
	return text, nil
}

// BuildConfig returns the GenerateContentConfig for listicle generation.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(1.0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: BuildSystemPrompt()}},
		},
		Temperature: &temp,
	}
}

// BuildSystemPrompt assembles the system instruction from the embedded
// blueprint and copy guide plus the generation rules.
func BuildSystemPrompt() string {
	var sb strings.Builder
	sb.WriteString("You are an expert e-commerce copywriter specializing in landing-page listicles. You write conversion-focused, benefit-driven, scannable copy optimized for e-commerce landing pages.\n\n")
	sb.WriteString("# Your knowledge base\n\n")
	sb.WriteString(listicleBlueprint)
	sb.WriteString("\n\n")
	sb.WriteString(copyGuide)
	sb.WriteString("\n\n# CRITICAL RULES\n\n")
	sb.WriteString(`**HEADLINE AND CONTENT MUST MATCH (MOST IMPORTANT)**
The headline sets the NARRATIVE FRAME for the entire listicle. The content MUST stay within that frame:

1. First-person/review headlines require first-person content ("I noticed...", "For me...", "It Helped Beat the Bloat").
2. Problem/symptom headlines require second-person pain content ("You Feel Tired All the Time", "If you're experiencing...").
3. Social proof headlines require benefit-driven content backed by testimonials and stats, in a third-person authority voice.
4. Comparison headlines require content contrasting the old solution with the new one.

For hybrid listicles you CAN mix benefit angles (social proof + comparison + features) within the list items, BUT the headline determines the overall narrative voice. Never mix a first-person headline with problem/symptom content or vice versa.

**STAY TRUE TO THE ACTUAL PRODUCT**
- Write ONLY about what's explicitly stated in the product brief you receive
- Use the exact terminology and product category from the extracted context
- Never import concepts from a different product category
- If context is unclear, work with what you have - don't fill gaps with assumptions from unrelated categories

**HEADLINES MUST BE SPECIFIC AND DESCRIPTIVE**
- Every headline MUST include the product name OR the specific category/problem it solves
- NEVER use vague headlines like "I finally found something that helped" or "This changed everything"
- The headline should pass this test: if someone only read the headline, would they know what product or category this is about?

**EACH LIST ITEM MUST BE UNIQUE**
- Every numbered reason must cover a DIFFERENT angle
- Don't repeat the same theme across multiple bullets

**ONLY USE REAL SOCIAL PROOF**
- Use ONLY provided testimonials, review snippets, and verified stats from the product brief
- NEVER fabricate customer quotes, made-up names, or invented proof
- If real proof isn't available for a section, skip it entirely

# Output requirements

You MUST output well-formatted markdown that's easy to read and copy. Use clear section headers, bullet points, numbered lists, and formatting to make the copy easy to scan and use.`)
	return sb.String()
}

// BuildUserPrompt builds the generation prompt from the product brief
// and the request.
func BuildUserPrompt(brief *listicle.ProductBrief, req *listicle.GenerationRequest) string {
	var sb strings.Builder

	sb.WriteString("Generate a landing-page listicle using the following context and requirements.\n\n")
	fmt.Fprintf(&sb, "# Product/page context (extracted from %s)\n\n", brief.URL)
	sb.WriteString(listicle.FormatBrief(brief))

	sb.WriteString("\n# Generation requirements\n\n")
	sb.WriteString("**Listicle mode(s)**:\n")
	for _, mode := range req.Modes {
		fmt.Fprintf(&sb, "- %s\n", mode)
	}
	fmt.Fprintf(&sb, "\n**Number of list items**: %d\n", req.ItemCount)
	fmt.Fprintf(&sb, "\n**Funnel stage**: %s\n", req.FunnelStage)
	fmt.Fprintf(&sb, "\n**Reading level target**: Grade %d\n", req.ReadingLevel)

	if req.Voice != nil {
		fmt.Fprintf(&sb, "\n**Voice sliders (0-10)**: punchy vs detailed %d, playful vs serious %d, bold vs cautious %d\n",
			req.Voice.PunchyVsDetailed, req.Voice.PlayfulVsSerious, req.Voice.BoldVsCautious)
	}
	if len(req.MustSay) > 0 {
		fmt.Fprintf(&sb, "\n**Must mention**: %s\n", strings.Join(req.MustSay, ", "))
	}
	if len(req.MustNotSay) > 0 {
		fmt.Fprintf(&sb, "\n**Avoid mentioning**: %s\n", strings.Join(req.MustNotSay, ", "))
	}

	writeSocialProofSection(&sb, req.SocialProof)
	writeOfferSection(&sb, req)

	if req.AdditionalInfo != "" {
		fmt.Fprintf(&sb, "\n# Additional context from user\n\n%s\n\nIMPORTANT: Use this context strategically, but remember that each numbered list item must cover a DIFFERENT angle. Don't repeat the same theme across multiple bullets.\n", req.AdditionalInfo)
	}
	if req.SelectedHeadline != nil {
		fmt.Fprintf(&sb, "\n# Selected headline\n\nUse this exact headline and match its narrative frame throughout:\n%q (%s)\n",
			req.SelectedHeadline.Headline, req.SelectedHeadline.Angle)
	}

	if hasMode(req.Modes, listicle.ModeFirstPersonReview) {
		sb.WriteString(firstPersonInstructions)
	}
	if hasMode(req.Modes, listicle.ModeHybrid) {
		sb.WriteString(hybridInstructions)
	}

	sb.WriteString("\n# Your task\n\nGenerate a complete landing-page listicle using the blueprint, copy guide, and example patterns below.\n\n")
	sb.WriteString("## Example patterns for reference (learn from structure and style)\n")
	sb.WriteString(examplePatterns)
	sb.WriteString(outputFormat)

	return sb.String()
}

func writeSocialProofSection(sb *strings.Builder, assets *listicle.SocialProofAssets) {
	if assets == nil {
		sb.WriteString("\nNO social proof assets provided. Use only review data from the product brief above (if any). Never invent testimonials or fake quotes.\n")
		return
	}
	encoded, err := json.MarshalIndent(assets, "", "  ")
	if err != nil {
		return
	}
	fmt.Fprintf(sb, "\n# Social proof assets\n\n%s\n\nUse ONLY these real testimonials and proof elements as provided. Never fabricate quotes or invent proof.\n", encoded)
}

func writeOfferSection(sb *strings.Builder, req *listicle.GenerationRequest) {
	if req.OfferType == "" {
		return
	}
	ctaStyle := req.CTAStyle
	if ctaStyle == "" {
		ctaStyle = `fun, action-driven (never "Learn More" or "Buy Now")`
	}
	guarantee := req.GuaranteeWording
	if guarantee == "" {
		guarantee = "30-day money-back guarantee"
	}
	fmt.Fprintf(sb, "\n# Offer details\n\nOffer: %s\nCTA style: %s\nGuarantee: %s\n", req.OfferType, ctaStyle, guarantee)
}

func hasMode(modes []listicle.Mode, mode listicle.Mode) bool {
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

const firstPersonInstructions = `
# First-Person/Review Listicle Requirements

Since you're writing a FIRST-PERSON/REVIEW listicle:

1. HEADLINES MUST BE SPECIFIC: "I Tried [Product Name] - Here's My Honest Review" or reference broader buzz like "I Tried the [Product] Everyone's Talking About". Never vague headlines without a product or category.
2. LIST ITEMS ARE EXPERIENCE-DRIVEN: each list item is a personal experience or benefit ("It Helped Beat the Bloat", "No More Mid-Day Crashes"). Never symptom-awareness items like "You Feel Tired All the Time".
3. SOCIAL PROOF IS FLEXIBLE: it can be its own list item, live in the Quick Proof section, appear in the Final CTA, or be woven into other items as supporting evidence. Use what feels natural for the flow.
`

const hybridInstructions = `
# HYBRID MODE: Mix Multiple Angles, But Keep Voice Consistent

You are writing a HYBRID listicle that combines multiple angles. CRITICAL RULES:

1. CHOOSE ONE HEADLINE TYPE FIRST: the headline determines the narrative frame for the ENTIRE listicle.
2. MIX BENEFIT ANGLES WITHIN THAT FRAME: a first-person headline can cover social proof, features, and comparison angles as long as every item stays first-person ("I Joined 100,000+ Happy Customers", "It Replaced My Entire Supplement Cabinet").
3. VARIETY IN ANGLES, CONSISTENCY IN VOICE: each list item can cover a different angle, but ALL items must use the same narrative voice set by the headline.
`

const outputFormat = `

## Output format requirements

Generate clean, well-formatted markdown with CLEAR SECTIONS using ## headings. Each major section should be easily copyable.

**Required structure:**

## Headline Options
[3-5 numbered headline options - EACH must include the product name or specific category/problem]

## Subheadline & Introduction
[Subheadline + slippery-slope intro paragraph + CTA options]

## Quick Proof
[Social proof elements - ONLY if real data was provided]

## List Item #1: [Benefit Headline]
[Body copy]
[Visual suggestion]

[Continue for all list items - each as a separate ## section]

## Product Reveal
[Product introduction paragraph + key benefits]

## The Offer
[Offer details + CTA options + risk reversal]

## FAQ
[5-8 Q&A pairs]

## Final CTA
[Recap + social proof line if available + final CTA]

**Critical formatting rules:**
- Use ## for main section headings (makes them individually copyable)
- Use ### for sub-sections within a section
- Use **bold** for emphasis
- Use - or * for bullet lists
- Keep it scannable and benefit-driven

Generate now.`
