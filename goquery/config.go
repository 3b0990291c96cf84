package goquery

// CategoryPattern maps a category label to the keywords that signal it.
// Patterns are scanned in slice order so extraction output is stable
// across runs.
type CategoryPattern struct {
	Label    string
	Keywords []string
}

// Config holds the keyword tables that drive the extraction heuristics.
// The tables are data, not control flow: tuning a deployment means
// swapping a table, not editing a cascade.
type Config struct {
	// CategoryPatterns are matched against the lower-cased title +
	// description. A match inserts both the label and the matched
	// keyword into the category hints.
	CategoryPatterns []CategoryPattern

	// NavigationChrome words mark menu/legal text that must never be
	// treated as content. A candidate equal to, or led by, a chrome
	// word is rejected.
	NavigationChrome []string

	// BenefitPhrases signal reader-facing value statements in
	// paragraph text.
	BenefitPhrases []string

	// FallbackBenefitPhrases is the looser phrase set used by the
	// fallback text miner.
	FallbackBenefitPhrases []string

	// BenefitHeadings anchor sibling sweeps: a heading containing one
	// of these words marks the elements after it as benefit material.
	BenefitHeadings []string

	// ClaimKeywords signal verifiable-sounding marketing claims.
	ClaimKeywords []string

	// FallbackClaimKeywords is the tighter keyword set used by the
	// fallback text miner.
	FallbackClaimKeywords []string
}

// DefaultConfig returns the stock heuristic tables.
func DefaultConfig() Config {
	return Config{
		CategoryPatterns: []CategoryPattern{
			{Label: "Pokemon/Trading Cards", Keywords: []string{
				"pokemon", "tcg", "trading card", "card game", "trainer",
				"deck", "collection", "booster", "charizard", "pikachu",
			}},
			{Label: "Fitness/Gym", Keywords: []string{
				"workout", "exercise", "gym", "fitness", "training",
				"muscle", "weight", "cardio", "yoga", "athletic",
			}},
			{Label: "Beauty/Skincare", Keywords: []string{
				"skin", "beauty", "makeup", "serum", "moisturizer",
				"anti-aging", "wrinkle", "glow", "complexion",
			}},
			{Label: "Home/Kitchen", Keywords: []string{
				"kitchen", "cooking", "cookware", "home", "decor",
				"furniture", "cleaning", "appliance",
			}},
			{Label: "Tech/Electronics", Keywords: []string{
				"tech", "electronic", "gadget", "device", "smart",
				"wireless", "bluetooth", "charging",
			}},
			{Label: "Fashion/Accessories", Keywords: []string{
				"fashion", "clothing", "apparel", "accessory", "jewelry",
				"watch", "style", "wear",
			}},
			{Label: "Pet Products", Keywords: []string{
				"pet", "dog", "cat", "animal", "puppy", "kitten", "fur baby",
			}},
			{Label: "Baby/Kids", Keywords: []string{
				"baby", "infant", "toddler", "kids", "children",
				"nursery", "parenting",
			}},
		},
		NavigationChrome: []string{
			"home", "shop", "cart", "account", "login", "sign in", "menu",
			"search", "checkout", "shipping", "terms", "privacy", "contact",
			"instagram", "facebook", "twitter", "subscribe", "newsletter",
		},
		BenefitPhrases: []string{
			"perfect for", "ideal for", "great for", "designed to",
			"helps you", "allows you to",
		},
		FallbackBenefitPhrases: []string{
			"perfect for", "ideal for", "designed to", "helps you",
			"allows you", "makes it easy", "great for",
		},
		BenefitHeadings: []string{
			"features", "benefits", "why", "what", "includes",
			"specifications", "details", "about",
		},
		ClaimKeywords: []string{
			"proven", "clinically", "dermatologist", "doctor", "tested",
			"certified", "award", "patent", "guaranteed", "scientific",
			"research", "study shows", "rated", "recommended by",
		},
		FallbackClaimKeywords: []string{
			"proven", "tested", "certified", "guaranteed", "rated",
			"award", "patent",
		},
	}
}
