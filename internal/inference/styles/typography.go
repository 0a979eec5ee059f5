package styles

import (
	"fmt"
	"math"
	"sort"

	"github.com/ternarybob/atelier/internal/models"
)

const defaultFontFamily = "Inter, system-ui, sans-serif"

// sizeSlots are the named steps of the type scale, ascending
var sizeSlots = []string{"xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl"}

// lgMultipliers synthesize missing high-end slots from the "lg" slot
var lgMultipliers = map[string]float64{
	"xl":  1.25,
	"2xl": 1.5,
	"3xl": 1.875,
	"4xl": 2.25,
}

// defaultSizeScale is used when too few distinct sizes are observed
func defaultSizeScale() map[string]string {
	return map[string]string{
		"xs":   "12px",
		"sm":   "14px",
		"base": "16px",
		"lg":   "18px",
		"xl":   "20px",
		"2xl":  "24px",
		"3xl":  "30px",
		"4xl":  "36px",
	}
}

// TypographyAnalysis is the typography analyzer's output
type TypographyAnalysis struct {
	Typography  models.Typography
	Consistency float64
	Reasoning   []string
	Suggestions []string
}

// AnalyzeTypography tallies font usage, picks the most frequent family as
// canonical, and derives a named size scale from observed sizes.
func AnalyzeTypography(usages []FontUsage) TypographyAnalysis {
	analysis := TypographyAnalysis{
		Typography: models.Typography{
			FontFamily: defaultFontFamily,
			Sizes:      defaultSizeScale(),
		},
	}

	if len(usages) == 0 {
		analysis.Reasoning = append(analysis.Reasoning, "No typography observed; using the default type scale")
		analysis.Suggestions = append(analysis.Suggestions, "Set font sizes on text components so a type scale can be derived")
		return analysis
	}

	if family := dominantFamily(usages); family != "" {
		analysis.Typography.FontFamily = family
		analysis.Reasoning = append(analysis.Reasoning, fmt.Sprintf("Canonical font family %q chosen by frequency", family))
	}

	sizes := distinctSizes(usages)
	if len(sizes) >= 4 {
		analysis.Typography.Sizes = buildSizeScale(sizes)
		analysis.Reasoning = append(analysis.Reasoning,
			fmt.Sprintf("Built custom type scale from %d observed sizes", len(sizes)))
	} else {
		analysis.Reasoning = append(analysis.Reasoning,
			fmt.Sprintf("Only %d distinct sizes observed; using the default type scale", len(sizes)))
	}

	analysis.Consistency = clamp01(1 - math.Abs(float64(len(sizes))-6)/6)
	if analysis.Consistency < 0.7 {
		analysis.Suggestions = append(analysis.Suggestions,
			fmt.Sprintf("Type scale is inconsistent: %d distinct sizes in use, around 6 is typical", len(sizes)))
	}

	return analysis
}

// dominantFamily returns the most frequent non-empty family, lexical
// tiebreak for determinism.
func dominantFamily(usages []FontUsage) string {
	counts := make(map[string]int)
	for _, u := range usages {
		if u.Family != "" {
			counts[u.Family]++
		}
	}
	best := ""
	bestCount := 0
	for family, count := range counts {
		if count > bestCount || (count == bestCount && family < best) {
			best = family
			bestCount = count
		}
	}
	return best
}

func distinctSizes(usages []FontUsage) []float64 {
	seen := make(map[float64]bool)
	var sizes []float64
	for _, u := range usages {
		if f, ok := parsePx(u.Size); ok && !seen[f] {
			seen[f] = true
			sizes = append(sizes, f)
		}
	}
	sort.Float64s(sizes)
	return sizes
}

// buildSizeScale assigns sorted detected sizes to scale slots in order,
// synthesizing missing high-end slots from the lg slot.
func buildSizeScale(sorted []float64) map[string]string {
	scale := make(map[string]string, len(sizeSlots))
	for i, slot := range sizeSlots {
		if i < len(sorted) {
			scale[slot] = formatPx(sorted[i])
		}
	}

	lg, ok := parsePx(scale["lg"])
	if !ok {
		return defaultSizeScale()
	}
	for slot, mult := range lgMultipliers {
		if _, present := scale[slot]; !present {
			scale[slot] = formatPx(math.Round(lg * mult))
		}
	}
	return scale
}
