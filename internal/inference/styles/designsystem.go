package styles

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ternarybob/atelier/internal/models"
	"github.com/ternarybob/atelier/internal/registry"
)

// Confidence weights: color dominates, typography and spacing split the rest
const (
	colorWeight      = 0.4
	typographyWeight = 0.3
	spacingWeight    = 0.3
)

// Analysis is the combined output of the three style analyzers
type Analysis struct {
	Colors      ColorAnalysis
	Typography  TypographyAnalysis
	Spacing     SpacingAnalysis
	Confidence  float64
	Reasoning   []string
	Suggestions []string
}

// Analyze runs all three style analyzers over the component list.
// Pure computation, no side effects.
func Analyze(components []*models.Component) Analysis {
	colors := AnalyzeColors(ExtractColors(components))
	typography := AnalyzeTypography(ExtractFonts(components))
	spacing := AnalyzeSpacing(ExtractSpacing(components))

	a := Analysis{
		Colors:     colors,
		Typography: typography,
		Spacing:    spacing,
		Confidence: clamp01(colorWeight*colors.Consistency +
			typographyWeight*typography.Consistency +
			spacingWeight*spacing.Consistency),
	}
	a.Reasoning = append(a.Reasoning, colors.Reasoning...)
	a.Reasoning = append(a.Reasoning, typography.Reasoning...)
	a.Reasoning = append(a.Reasoning, spacing.Reasoning...)
	a.Suggestions = append(a.Suggestions, colors.Suggestions...)
	a.Suggestions = append(a.Suggestions, typography.Suggestions...)
	a.Suggestions = append(a.Suggestions, spacing.Suggestions...)
	return a
}

// Synthesize folds an analysis into a versioned DesignSystem record with
// per-component-type style buckets and a generated stylesheet.
func Synthesize(id, projectID string, a Analysis, components []*models.Component, reg *registry.Registry) *models.DesignSystem {
	ds := &models.DesignSystem{
		ID:        id,
		ProjectID: projectID,
		Colors:    a.Colors.Palette,
		Typography: models.Typography{
			FontFamily: a.Typography.Typography.FontFamily,
			Sizes:      a.Typography.Typography.Sizes,
		},
		Spacing:    a.Spacing.Spacing,
		Components: componentBuckets(components, reg, a.Colors.Palette),
		Version:    1,
	}
	ds.Stylesheet = GenerateStylesheet(ds)
	return ds
}

// componentBuckets builds one style bucket per component type in use:
// registry defaults overlaid with the most common observed styles, plus
// state overrides for interactive types.
func componentBuckets(components []*models.Component, reg *registry.Registry, palette models.ColorPalette) map[string]models.ComponentStyles {
	byType := make(map[string][]*models.Component)
	for _, c := range components {
		byType[c.ComponentType] = append(byType[c.ComponentType], c)
	}

	buckets := make(map[string]models.ComponentStyles, len(byType))
	for componentType, group := range byType {
		base := reg.DefaultStyles(componentType)
		for key, value := range commonStyles(group) {
			base[key] = value
		}

		bucket := models.ComponentStyles{Base: base}
		if def, ok := reg.Lookup(componentType); ok && def.Interactive {
			bucket.States = map[string]map[string]string{
				"hover": {"opacity": "0.9"},
				"focus": {"outline": "2px solid " + palette.Primary["500"]},
			}
		}
		if componentType == "button" {
			bucket.Variants = map[string]map[string]string{
				"primary":   {"backgroundColor": palette.Primary["500"], "color": "#ffffff"},
				"secondary": {"backgroundColor": palette.Secondary["100"], "color": palette.Secondary["900"]},
			}
		}
		buckets[componentType] = bucket
	}
	return buckets
}

// commonStyles returns, per style key, the most frequent string value
// observed within a component group.
func commonStyles(group []*models.Component) map[string]string {
	counts := make(map[string]map[string]int)
	for _, c := range group {
		for key, v := range c.Styles {
			s, ok := v.(string)
			if !ok || s == "" {
				continue
			}
			if counts[key] == nil {
				counts[key] = make(map[string]int)
			}
			counts[key][s]++
		}
	}

	out := make(map[string]string, len(counts))
	for key, values := range counts {
		best := ""
		bestCount := 0
		for value, count := range values {
			if count > bestCount || (count == bestCount && value < best) {
				best = value
				bestCount = count
			}
		}
		out[key] = best
	}
	return out
}

// GenerateStylesheet renders the design system as a CSS custom-property block
func GenerateStylesheet(ds *models.DesignSystem) string {
	var b strings.Builder
	b.WriteString(":root {\n")

	writeScale(&b, "color-primary", ds.Colors.Primary)
	writeScale(&b, "color-secondary", ds.Colors.Secondary)
	writeScale(&b, "color-neutral", ds.Colors.Neutral)
	fmt.Fprintf(&b, "  --color-success: %s;\n", ds.Colors.Success)
	fmt.Fprintf(&b, "  --color-warning: %s;\n", ds.Colors.Warning)
	fmt.Fprintf(&b, "  --color-error: %s;\n", ds.Colors.Error)
	fmt.Fprintf(&b, "  --color-info: %s;\n", ds.Colors.Info)

	fmt.Fprintf(&b, "  --font-family: %s;\n", ds.Typography.FontFamily)
	for _, slot := range sizeSlots {
		if size, ok := ds.Typography.Sizes[slot]; ok {
			fmt.Fprintf(&b, "  --font-size-%s: %s;\n", slot, size)
		}
	}

	for _, step := range spacingSteps {
		if v, ok := ds.Spacing.Scale[step.name]; ok {
			fmt.Fprintf(&b, "  --spacing-%s: %s;\n", step.name, v)
		}
	}

	b.WriteString("}\n")
	return b.String()
}

func writeScale(b *strings.Builder, prefix string, scale models.ColorScale) {
	keys := make([]int, 0, len(scale))
	keyFor := make(map[int]string, len(scale))
	for key := range scale {
		var n int
		fmt.Sscanf(key, "%d", &n)
		keys = append(keys, n)
		keyFor[n] = key
	}
	sort.Ints(keys)
	for _, n := range keys {
		key := keyFor[n]
		fmt.Fprintf(b, "  --%s-%s: %s;\n", prefix, key, scale[key])
	}
}
