package styles

import (
	"github.com/ternarybob/atelier/internal/models"
)

// ColorUsage is one observed color value tagged with its usage context,
// e.g. "background:button" or "text:heading".
type ColorUsage struct {
	Value   string
	Context string
}

// FontUsage is one observed typography triple
type FontUsage struct {
	Family string
	Size   string
	Weight string
}

// SpacingUsage is one observed numeric spacing value tagged by property
type SpacingUsage struct {
	Property string
	Value    float64
}

// colorStyleKeys maps style map keys to their usage context tag
var colorStyleKeys = []struct {
	key     string
	context string
}{
	{"backgroundColor", "background"},
	{"background", "background"},
	{"color", "text"},
	{"borderColor", "border"},
}

// ExtractColors pulls every color-bearing value out of the components'
// style and prop maps, tagged with usage context.
func ExtractColors(components []*models.Component) []ColorUsage {
	var usages []ColorUsage
	for _, c := range components {
		for _, k := range colorStyleKeys {
			if v, ok := stringValue(c.Styles, k.key); ok {
				usages = append(usages, ColorUsage{Value: v, Context: k.context + ":" + c.ComponentType})
			}
		}
		// Color props override nothing; they are additional observations
		if v, ok := stringValue(c.Props, "color"); ok {
			usages = append(usages, ColorUsage{Value: v, Context: "text:" + c.ComponentType})
		}
		if v, ok := stringValue(c.Props, "backgroundColor"); ok {
			usages = append(usages, ColorUsage{Value: v, Context: "background:" + c.ComponentType})
		}
	}
	return usages
}

// ExtractFonts pulls {fontFamily, fontSize, fontWeight} triples per component
func ExtractFonts(components []*models.Component) []FontUsage {
	var usages []FontUsage
	for _, c := range components {
		family, _ := stringValue(c.Styles, "fontFamily")
		size, _ := stringValue(c.Styles, "fontSize")
		weight, _ := stringValue(c.Styles, "fontWeight")
		if family == "" && size == "" && weight == "" {
			continue
		}
		usages = append(usages, FontUsage{Family: family, Size: size, Weight: weight})
	}
	return usages
}

// spacingKeys are the style properties treated as spacing observations
var spacingKeys = []string{
	"padding", "paddingTop", "paddingRight", "paddingBottom", "paddingLeft",
	"margin", "marginTop", "marginRight", "marginBottom", "marginLeft",
	"gap", "rowGap", "columnGap",
}

// ExtractSpacing pulls numeric spacing values tagged by property name.
// Shorthand values ("8px 16px") contribute one observation per token.
func ExtractSpacing(components []*models.Component) []SpacingUsage {
	var usages []SpacingUsage
	for _, c := range components {
		if c.Styles == nil {
			continue
		}
		for _, key := range spacingKeys {
			v, ok := c.Styles[key]
			if !ok {
				continue
			}
			switch t := v.(type) {
			case string:
				for _, f := range pxTokens(t) {
					usages = append(usages, SpacingUsage{Property: key, Value: f})
				}
			default:
				if f, ok := numericPx(t); ok {
					usages = append(usages, SpacingUsage{Property: key, Value: f})
				}
			}
		}
	}
	return usages
}
