package listicle

import (
	"context"
	"time"
)

// Mode selects the narrative voice of a generated listicle. The mode
// determines the narrative frame for the whole piece; list items may
// mix benefit angles but never voices.
type Mode string

// The five consolidated listicle modes.
const (
	// ModeFirstPersonReview is a first-person experience narrative:
	// "I Tried X - Here's My Honest Review".
	ModeFirstPersonReview Mode = "FirstPersonReview"

	// ModeProblemAwareness addresses the reader's symptoms directly:
	// "5 Signs You Need X".
	ModeProblemAwareness Mode = "ProblemAwareness"

	// ModeSocialProofAuthority is benefit-driven third-person copy
	// backed by counts, ratings, and credentials.
	ModeSocialProofAuthority Mode = "SocialProofAuthority"

	// ModeComparison contrasts the old solution's problems with the
	// new solution's benefits: "10 Reasons to Ditch X for Y".
	ModeComparison Mode = "Comparison"

	// ModeHybrid mixes multiple angles within one consistent voice.
	ModeHybrid Mode = "Hybrid"
)

// Modes returns all supported listicle modes.
func Modes() []Mode {
	return []Mode{
		ModeFirstPersonReview,
		ModeProblemAwareness,
		ModeSocialProofAuthority,
		ModeComparison,
		ModeHybrid,
	}
}

// Valid reports whether m is a recognized listicle mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeFirstPersonReview, ModeProblemAwareness, ModeSocialProofAuthority,
		ModeComparison, ModeHybrid:
		return true
	}
	return false
}

// FunnelStage positions the copy in the purchase funnel.
type FunnelStage string

// Funnel stages.
const (
	FunnelAwareness     FunnelStage = "awareness"
	FunnelConsideration FunnelStage = "consideration"
	FunnelConversion    FunnelStage = "conversion"
)

// OfferType names the promotional offer featured in the listicle.
type OfferType string

// Offer types.
const (
	OfferDiscount     OfferType = "discount"
	OfferBundle       OfferType = "bundle"
	OfferFreeGift     OfferType = "free_gift"
	OfferFreeShipping OfferType = "free_shipping"
	OfferGuarantee    OfferType = "guarantee"
	OfferLimitedTime  OfferType = "limited_time"
)

// Voice positions the copy on three 0-10 sliders. 5 is neutral.
type Voice struct {
	PunchyVsDetailed int `json:"punchyVsDetailed"`
	PlayfulVsSerious int `json:"playfulVsSerious"`
	BoldVsCautious   int `json:"boldVsCautious"`
}

// SocialProofAssets carries verified proof supplied by the operator.
// Only these assets and review data from the brief may appear as proof
// in generated copy; the generator never invents testimonials.
type SocialProofAssets struct {
	ReviewCount       string   `json:"reviewCount,omitempty"`
	Rating            string   `json:"rating,omitempty"`
	Testimonials      []string `json:"testimonials,omitempty"`
	PressMentions     []string `json:"pressMentions,omitempty"`
	ExpertName        string   `json:"expertName,omitempty"`
	ExpertCredentials string   `json:"expertCredentials,omitempty"`
}

// HeadlineOption is a candidate headline produced ahead of full
// generation so the operator can pick the narrative frame.
type HeadlineOption struct {
	Headline    string `json:"headline"`
	Angle       string `json:"angle"`
	Description string `json:"description"`
}

// GenerationRequest describes one listicle generation run.
type GenerationRequest struct {
	Modes            []Mode             `json:"modes"`
	ItemCount        int                `json:"itemCount"`
	FunnelStage      FunnelStage        `json:"funnelStage"`
	Voice            *Voice             `json:"voice,omitempty"`
	ReadingLevel     int                `json:"readingLevel"`
	MustSay          []string           `json:"mustSay,omitempty"`
	MustNotSay       []string           `json:"mustNotSay,omitempty"`
	OfferType        OfferType          `json:"offerType,omitempty"`
	CTAStyle         string             `json:"ctaStyle,omitempty"`
	GuaranteeWording string             `json:"guaranteeWording,omitempty"`
	SocialProof      *SocialProofAssets `json:"socialProof,omitempty"`
	AdditionalInfo   string             `json:"additionalInfo,omitempty"`

	// SelectedHeadline carries the operator's pick from a prior
	// headline-generation step, if any.
	SelectedHeadline *HeadlineOption `json:"selectedHeadline,omitempty"`
}

// Normalize fills zero-valued fields with their defaults.
func (r *GenerationRequest) Normalize() {
	if r.ItemCount == 0 {
		r.ItemCount = 5
	}
	if r.FunnelStage == "" {
		r.FunnelStage = FunnelConsideration
	}
	if r.ReadingLevel == 0 {
		r.ReadingLevel = 6
	}
}

// Validate returns an error if the request contains invalid fields.
func (r *GenerationRequest) Validate() error {
	if len(r.Modes) == 0 {
		return Errorf(EINVALID, "at least one listicle mode required")
	}
	for _, m := range r.Modes {
		if !m.Valid() {
			return Errorf(EINVALID, "unrecognized listicle mode %q", m)
		}
	}
	if r.ItemCount < 3 || r.ItemCount > 12 {
		return Errorf(EINVALID, "item count must be between 3 and 12")
	}
	if r.ReadingLevel < 3 || r.ReadingLevel > 12 {
		return Errorf(EINVALID, "reading level must be between grade 3 and 12")
	}
	switch r.FunnelStage {
	case FunnelAwareness, FunnelConsideration, FunnelConversion:
	default:
		return Errorf(EINVALID, "unrecognized funnel stage %q", r.FunnelStage)
	}
	return nil
}

// GeneratedListicle pairs generation output with its provenance.
type GeneratedListicle struct {
	SourceURL string    `json:"sourceUrl"`
	Title     string    `json:"title"`
	Mode      Mode      `json:"mode"`
	Markdown  string    `json:"markdown"`
	CreatedAt time.Time `json:"createdAt"`
}

// Generator produces a complete landing-page listicle in markdown from
// a product brief. Retry and backoff for the underlying model call are
// the implementation's concern, not the extraction core's.
type Generator interface {
	Generate(ctx context.Context, brief *ProductBrief, req *GenerationRequest) (string, error)
}

// HeadlineGenerator proposes headline options for a brief ahead of full
// generation.
type HeadlineGenerator interface {
	Headlines(ctx context.Context, brief *ProductBrief, req *GenerationRequest) ([]HeadlineOption, error)
}
