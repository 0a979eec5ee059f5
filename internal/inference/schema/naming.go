package schema

import (
	"fmt"
	"strings"

	"github.com/ternarybob/atelier/internal/models"
)

// fieldPattern maps a required field-name combination to a model name.
// Checked in order; first full match wins.
var fieldPatterns = []struct {
	fields []string
	name   string
}{
	{[]string{"email", "password"}, "User"},
	{[]string{"title", "description"}, "Post"},
	{[]string{"name", "price"}, "Product"},
}

// modelName derives a model name for a form cluster: repeated significant
// words across nearby label/text components win, then field-combination
// patterns, then a numbered fallback.
func modelName(labels []string, fields []models.DataField, ordinal int) string {
	if name := nameFromLabels(labels); name != "" {
		return name
	}
	if name := nameFromFieldPattern(fields); name != "" {
		return name
	}
	return fmt.Sprintf("Model%d", ordinal)
}

// nameFromLabels looks for a significant word (length > 3) appearing in
// more than one label and capitalizes the most frequent hit.
func nameFromLabels(labels []string) string {
	counts := make(map[string]int)
	for _, label := range labels {
		seen := make(map[string]bool)
		for _, word := range splitWords(strings.ToLower(label)) {
			if len(word) > 3 && !seen[word] {
				seen[word] = true
				counts[word]++
			}
		}
	}

	best := ""
	bestCount := 1 // must appear in more than one label
	for word, count := range counts {
		if count > bestCount || (count == bestCount && count > 1 && word < best) {
			best = word
			bestCount = count
		}
	}
	if best == "" {
		return ""
	}
	return PascalCase(Singularize(best))
}

func nameFromFieldPattern(fields []models.DataField) string {
	names := make(map[string]bool, len(fields))
	for _, f := range fields {
		names[strings.ToLower(f.Name)] = true
	}
	for _, p := range fieldPatterns {
		matched := true
		for _, required := range p.fields {
			if !names[required] {
				matched = false
				break
			}
		}
		if matched {
			return p.name
		}
	}
	return ""
}

// cardModelName detects a model name from a card's inferred content:
// price-bearing cards are products, identity-bearing cards are users.
func cardModelName(fields []models.DataField, ordinal int) string {
	if name := nameFromFieldPattern(fields); name != "" {
		return name
	}
	names := make(map[string]bool, len(fields))
	for _, f := range fields {
		names[strings.ToLower(f.Name)] = true
	}
	switch {
	case names["price"]:
		return "Product"
	case names["avatar"] || names["email"]:
		return "User"
	case names["title"]:
		return "Post"
	}
	return fmt.Sprintf("CardModel%d", ordinal)
}
