package styles

import (
	"fmt"
	"math"

	"github.com/ternarybob/atelier/internal/models"
)

const defaultBaseUnit = 4

// spacingSteps are the named scale steps and their base-unit multipliers
var spacingSteps = []struct {
	name string
	mult float64
}{
	{"xs", 1},
	{"sm", 2},
	{"md", 4},
	{"lg", 6},
	{"xl", 8},
	{"2xl", 12},
	{"3xl", 16},
}

// SpacingAnalysis is the spacing analyzer's output
type SpacingAnalysis struct {
	Spacing     models.Spacing
	Consistency float64
	Reasoning   []string
	Suggestions []string
}

// AnalyzeSpacing derives the base unit from observed spacing values and
// builds a 7-step scale as fixed multiples of it. Consistency is the
// fraction of observations evenly divisible by the base unit.
func AnalyzeSpacing(usages []SpacingUsage) SpacingAnalysis {
	analysis := SpacingAnalysis{}

	base := baseUnit(usages)
	analysis.Spacing = models.Spacing{
		BaseUnit: base,
		Scale:    buildSpacingScale(base),
	}

	if len(usages) == 0 {
		analysis.Reasoning = append(analysis.Reasoning,
			fmt.Sprintf("No spacing observed; defaulting to a %dpx base unit", defaultBaseUnit))
		analysis.Suggestions = append(analysis.Suggestions, "Apply padding and margin values so a spacing scale can be derived")
		return analysis
	}

	divisible := 0
	for _, u := range usages {
		if math.Mod(u.Value, base) == 0 {
			divisible++
		}
	}
	analysis.Consistency = clamp01(float64(divisible) / float64(len(usages)))

	analysis.Reasoning = append(analysis.Reasoning,
		fmt.Sprintf("Base unit %spx chosen as the most frequent spacing value at or under 16px", formatBase(base)),
		fmt.Sprintf("%d of %d spacing values are multiples of the base unit", divisible, len(usages)))

	if analysis.Consistency < 0.7 {
		analysis.Suggestions = append(analysis.Suggestions,
			fmt.Sprintf("Enforce spacing as multiples of %spx: only %d of %d observed values fit the scale",
				formatBase(base), divisible, len(usages)))
	}

	return analysis
}

// baseUnit is the most frequent observed value <= 16px, defaulting to 4
func baseUnit(usages []SpacingUsage) float64 {
	counts := make(map[float64]int)
	for _, u := range usages {
		if u.Value > 0 && u.Value <= 16 {
			counts[u.Value]++
		}
	}

	best := float64(defaultBaseUnit)
	bestCount := 0
	for value, count := range counts {
		if count > bestCount || (count == bestCount && value < best) {
			best = value
			bestCount = count
		}
	}
	if bestCount == 0 {
		return defaultBaseUnit
	}
	return best
}

func buildSpacingScale(base float64) map[string]string {
	scale := make(map[string]string, len(spacingSteps))
	for _, step := range spacingSteps {
		scale[step.name] = formatPx(base * step.mult)
	}
	return scale
}

func formatBase(base float64) string {
	s := formatPx(base)
	return s[:len(s)-2]
}
