package gemini

// Prompt material for listicle generation. The guides are embedded as
// constants so the binary carries no runtime asset dependency.

const listicleBlueprint = `# The Ultimate Listicle Blueprint

## Why Listicles Work
Listicles are the most flexible, shareable, and conversion-friendly format in digital marketing.

They work because they:
- **Create commitment:** If you read #1, you'll read #2 (Zeigarnik Effect)
- **Are scannable:** Perfect for mobile and short attention spans
- **Feel educational:** They teach, not just sell
- **Build trust:** Use testimonials, expert quotes, and customer counts
- **Are versatile:** Use them for problem awareness, solution comparison, product differentiation, or direct sales

## Anatomy of a High-Converting Listicle
1. **Numbered Headline** - Use a number and a clear promise
2. **Short, Relatable Introduction** - Open with a pain, question, or scenario
3. **Numbered List Items** - Each with a clear headline, 2-3 sentences, and a relevant image
4. **Social Proof Throughout** - After a key reason, add a testimonial, star rating, or customer count
5. **Product Introduction** - After 3-5 reasons, introduce your product as the answer
6. **Offer/CTA** - State your offer with specific CTA
7. **FAQ Section** - Answer 5-8 common questions or objections
8. **Final CTA and Recap** - Recap the main benefit, restate the offer

## Listicle Types
- Problem/Symptom Awareness: "5 Signs You Need..."
- Comparison: "10 Reasons to Ditch X For Y"
- Social Proof: "5 Reasons 1,000,000+ People Made The Switch"
- Expert Endorsement: "5 Reasons Why [Expert] Loves [Product]"
- First-Person Review: "I Tried [Product] - Here's My Honest Review"
- Kit/Bundle: "5 Reasons Why This Kit Is a Must-Have"
- How-To/Routine: "How to [Result] in X Steps"
- Myth-Busting: "7 Myths About [Category]"
- Urgency/Trend: "7 Reasons to Try [Product] Before [Event]"
- Mistakes: "5 Mistakes You're Making With [Category]"
- Hybrid: Mix and match multiple ANGLES within list items, BUT the headline TYPE determines the narrative voice throughout

## Hybrid Listicle Rules
- Pick two or more types (e.g., social proof + comparison + feature/benefit)
- Structure the list so each reason covers a different angle
- CRITICAL: The HEADLINE determines the NARRATIVE FRAME for all content
  - First-person headline = first-person experience content
  - Symptom headline = second-person pain point content
  - You can mix benefit angles, but NOT narrative voices`

const copyGuide = `# How To Write Good Copy For E-Commerce

## Core Principles
- **Benefits over features:** Don't say "Made with premium materials" say "Feels luxurious on your skin"
- **Specific over vague:** Don't say "Fast results" say "See results in 14 days"
- **Conversational tone:** Write like you're talking to a friend
- **Scannable format:** Short paragraphs, bullet points, bold key phrases

## Key Rules
- Make CTAs fun: Never use "Learn more" or "Buy Now" - use "Pick my color" or "Claim My Discount"
- Keep copy short and punchy with brief sentences and simple words
- Use active voice: "Our serum clears acne fast" not "acne is cleared by our serum"
- Write like you talk with a conversational tone
- Leverage social proof with customer testimonials and reviews
- Address objections upfront
- Create urgency with deadlines or limited availability
- Hook them with a question or relatable problem

## AIDA Framework
- **Attention:** Grab their attention with a compelling headline
- **Interest:** Build interest with benefits and stories
- **Desire:** Create desire with social proof and specific outcomes
- **Action:** Clear CTA telling them exactly what to do

## The Slippery Slope
The goal of your first sentence: get people to read the second sentence.
Readers will keep reading in proportion to the amount they've already read.`

const examplePatterns = `# Example Listicle Patterns

## Pattern 1: Problem/Symptom Awareness
Headline: "5 Signs You Need to Add [Product] to Your Routine"
List items (second-person, symptom-focused):
- "You Feel Tired All the Time"
- "Your Muscles Are Sore and Your Recovery Is Slow"
- "You're Not Seeing Results Despite Trying Everything"
Voice: "You might be...", "If you're experiencing...", "You've probably noticed..."

## Pattern 2: First-Person Review
Headline: "I Tried [Product] - Here's My Honest Review"
List items (first-person, experience-driven):
- "It Helped Beat the Bloat"
- "No More Mid-Day Crashes"
- "It Replaces a Countertop Full of Supplements"
Voice: "I noticed...", "For me...", "My experience was..."

## Pattern 3: Social Proof
Headline: "X Reasons [Number] People Made the Switch"
List items (benefit-driven with proof):
- "Proven Results Backed by 22,000+ Reviews"
- "Made with [Quality Ingredient] - the Gold Standard"
- "Join the Community That's Made 100 Million Coffees"
Voice: Third-person authority with testimonials

## Pattern 4: Comparison
Headline: "10 Reasons to Ditch [Old Category] for [Product]"
List items (old way vs new way):
- "No More Sticky Residue Like Drugstore Brands"
- "One Scoop Replaces Three Different Products"
Voice: Contrast-driven, names the inferior alternative

## Pattern 5: Hybrid (IMPORTANT)
You can MIX benefit angles (social proof + comparison + features) BUT:
- The HEADLINE determines the NARRATIVE VOICE
- First-person headline = ALL content is first-person experience
- Symptom headline = ALL content addresses reader pain
- WRONG: First-person headline with symptom content ("I Tried..." -> "You Feel Tired...")
- RIGHT: First-person headline with varied first-person benefits ("I Tried..." -> "It Gave Me Energy", "It Simplified My Routine")`
