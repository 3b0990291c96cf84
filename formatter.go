package listicle

import (
	"fmt"
	"sort"
	"strings"
)

// FormatBrief renders a brief as the product-context block consumed by
// prompt builders and shown by the CLI. Absent optional fields render
// as explicit placeholders so the model never guesses silently.
func FormatBrief(b *ProductBrief) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "**Page type**: %s\n", b.PageType)
	fmt.Fprintf(&sb, "**Product Title**: %s\n", b.Title)
	fmt.Fprintf(&sb, "**Brand**: %s\n", valueOr(b.Brand, "Unknown"))
	fmt.Fprintf(&sb, "**Price**: %s\n", valueOr(b.Price, "Not specified"))
	fmt.Fprintf(&sb, "**Product Description**: %s\n", valueOr(b.Description, "None provided"))

	if len(b.CategoryHints) > 0 {
		fmt.Fprintf(&sb, "\n**Product Category**: %s\n", strings.Join(b.CategoryHints, ", "))
	}

	fmt.Fprintf(&sb, "\n**Benefits extracted** (%d found):\n", len(b.Benefits))
	writeNumbered(&sb, b.Benefits)

	fmt.Fprintf(&sb, "\n**Claims extracted** (%d found):\n", len(b.Claims))
	writeNumbered(&sb, b.Claims)

	if len(b.Ingredients) > 0 {
		fmt.Fprintf(&sb, "\n**Ingredients**: %s\n", strings.Join(b.Ingredients, ", "))
	}

	if len(b.Specs) > 0 {
		sb.WriteString("\n**Specs**:\n")
		for _, key := range sortedKeys(b.Specs) {
			fmt.Fprintf(&sb, "- %s: %s\n", key, b.Specs[key])
		}
	}

	if b.Reviews != nil {
		fmt.Fprintf(&sb, "\n**Reviews**: %s reviews, %s stars\n",
			reviewField(b.Reviews.Count > 0, fmt.Sprintf("%d", b.Reviews.Count)),
			reviewField(b.Reviews.Rating > 0, fmt.Sprintf("%g", b.Reviews.Rating)))
		if len(b.Reviews.Snippets) > 0 {
			sb.WriteString("\n**Review snippets**:\n")
			for i, snippet := range b.Reviews.Snippets {
				fmt.Fprintf(&sb, "%d. %q\n", i+1, snippet)
			}
		}
	}

	if len(b.FAQs) > 0 {
		fmt.Fprintf(&sb, "\n**FAQs from page** (%d):\n", len(b.FAQs))
		for i, faq := range b.FAQs {
			fmt.Fprintf(&sb, "Q%d: %s\nA: %s\n", i+1, faq.Question, faq.Answer)
		}
	}

	return sb.String()
}

func writeNumbered(sb *strings.Builder, items []string) {
	if len(items) == 0 {
		sb.WriteString("None found\n")
		return
	}
	for i, item := range items {
		fmt.Fprintf(sb, "%d. %s\n", i+1, item)
	}
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func reviewField(present bool, value string) string {
	if !present {
		return "?"
	}
	return value
}

// sortedKeys returns map keys in sorted order for stable prompt output.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
