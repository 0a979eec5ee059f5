package styles

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/ternarybob/atelier/internal/models"
)

// Fallback palette used when the canvas gives us nothing to work with
const (
	defaultPrimary   = "#3b82f6"
	defaultSecondary = "#64748b"
	defaultNeutral   = "#6b7280"
	defaultSuccess   = "#22c55e"
	defaultWarning   = "#f59e0b"
	defaultError     = "#ef4444"
	defaultInfo      = "#3b82f6"
)

// ColorAnalysis is the color analyzer's output
type ColorAnalysis struct {
	Palette     models.ColorPalette
	Consistency float64
	Reasoning   []string
	Suggestions []string
}

// colorEntry is one row of the frequency table
type colorEntry struct {
	value    string
	count    int
	contexts []string
}

// Crude hue-band matchers for semantic color detection. Deliberately
// substring/regex level, not HSL classification: a named color or an
// obviously dominant hex channel is enough evidence that the palette
// covers the band.
var hueBands = map[string]*regexp.Regexp{
	"green":  regexp.MustCompile(`green|^#(0|1|2|3)?[0-9a-f]?[c-f][0-9a-f][0-6][0-9a-f]$`),
	"red":    regexp.MustCompile(`red|^#[c-f][0-9a-f][0-6][0-9a-f][0-6][0-9a-f]$`),
	"yellow": regexp.MustCompile(`yellow|amber|orange|^#[c-f][0-9a-f][8-f][0-9a-f][0-3][0-9a-f]$`),
}

// AnalyzeColors builds a frequency table over extracted color usages and
// derives the primary/secondary/neutral scales plus semantic colors.
func AnalyzeColors(usages []ColorUsage) ColorAnalysis {
	analysis := ColorAnalysis{
		Palette: models.ColorPalette{
			Success: defaultSuccess,
			Warning: defaultWarning,
			Error:   defaultError,
			Info:    defaultInfo,
		},
	}

	if len(usages) == 0 {
		analysis.Palette.Primary = BuildScale(defaultPrimary)
		analysis.Palette.Secondary = BuildScale(defaultSecondary)
		analysis.Palette.Neutral = BuildScale(defaultNeutral)
		analysis.Reasoning = append(analysis.Reasoning, "No color values observed; using the default palette")
		analysis.Suggestions = append(analysis.Suggestions, "Apply background and text colors to components so a palette can be derived")
		return analysis
	}

	entries := colorFrequency(usages)

	primary := pickPrimary(entries)
	secondary := pickSecondary(entries, primary)
	neutral := pickNeutral(entries, primary, secondary)

	analysis.Palette.Primary = BuildScale(primary)
	analysis.Palette.Secondary = BuildScale(secondary)
	analysis.Palette.Neutral = BuildScale(neutral)

	distinct := len(entries)
	analysis.Consistency = clamp01(1 - math.Abs(float64(distinct)-10)/10)

	analysis.Reasoning = append(analysis.Reasoning,
		fmt.Sprintf("Observed %d distinct color values across %d usages", distinct, len(usages)),
		fmt.Sprintf("Primary color %s selected from background/button usage", primary),
	)

	if analysis.Consistency < 0.7 {
		analysis.Suggestions = append(analysis.Suggestions,
			fmt.Sprintf("Consider consolidating colors: %d distinct values observed, around 10 keeps the palette consistent", distinct))
	}

	for _, band := range []string{"green", "red", "yellow"} {
		if !bandPresent(entries, band) {
			semantic := map[string]string{"green": "success", "red": "error", "yellow": "warning"}[band]
			analysis.Suggestions = append(analysis.Suggestions,
				fmt.Sprintf("No %s-band color detected; add a %s color for %s states", band, band, semantic))
		}
	}

	return analysis
}

// BuildScale generates a 10-step scale (50..900) from a base color by
// HSL-space lightening and darkening. The base lands at 500.
func BuildScale(base string) models.ColorScale {
	offsets := map[string]float64{
		"50":  0.45,
		"100": 0.40,
		"200": 0.30,
		"300": 0.20,
		"400": 0.10,
		"500": 0,
		"600": -0.08,
		"700": -0.16,
		"800": -0.24,
		"900": -0.32,
	}
	scale := make(models.ColorScale, len(offsets))
	for key, offset := range offsets {
		switch {
		case offset > 0:
			scale[key] = Lighten(base, offset)
		case offset < 0:
			scale[key] = Darken(base, -offset)
		default:
			scale[key] = base
		}
	}
	return scale
}

// colorFrequency tallies usages by literal value, sorted by descending
// count with a lexical tiebreak so repeated runs stay deterministic.
func colorFrequency(usages []ColorUsage) []colorEntry {
	counts := make(map[string]int)
	contexts := make(map[string]map[string]bool)
	for _, u := range usages {
		value := strings.ToLower(u.Value)
		counts[value]++
		if contexts[value] == nil {
			contexts[value] = make(map[string]bool)
		}
		contexts[value][u.Context] = true
	}

	entries := make([]colorEntry, 0, len(counts))
	for value, count := range counts {
		ctxs := make([]string, 0, len(contexts[value]))
		for ctx := range contexts[value] {
			ctxs = append(ctxs, ctx)
		}
		sort.Strings(ctxs)
		entries = append(entries, colorEntry{value: value, count: count, contexts: ctxs})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].value < entries[j].value
	})
	return entries
}

// pickPrimary returns the highest-frequency color whose context includes
// background or button usage, falling back to the overall most frequent.
func pickPrimary(entries []colorEntry) string {
	for _, e := range entries {
		for _, ctx := range e.contexts {
			if strings.Contains(ctx, "background") || strings.Contains(ctx, "button") {
				return e.value
			}
		}
	}
	return entries[0].value
}

func pickSecondary(entries []colorEntry, primary string) string {
	for _, e := range entries {
		if e.value != primary {
			return e.value
		}
	}
	return defaultSecondary
}

// pickNeutral prefers the most frequent low-saturation color
func pickNeutral(entries []colorEntry, primary, secondary string) string {
	for _, e := range entries {
		if e.value == primary || e.value == secondary {
			continue
		}
		if s, ok := saturation(e.value); ok && s < 0.15 {
			return e.value
		}
	}
	return defaultNeutral
}

func bandPresent(entries []colorEntry, band string) bool {
	re := hueBands[band]
	for _, e := range entries {
		if re.MatchString(e.value) {
			return true
		}
	}
	return false
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}
