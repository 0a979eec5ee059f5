package models

import "time"

// ColorScale is a 10-step color ramp keyed "50", "100", ... "900"
type ColorScale map[string]string

// ScaleKeys returns the canonical color scale keys in ascending order
func ScaleKeys() []string {
	return []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}
}

// ColorPalette holds the full derived color system
type ColorPalette struct {
	Primary   ColorScale `json:"primary"`
	Secondary ColorScale `json:"secondary"`
	Neutral   ColorScale `json:"neutral"`
	Success   string     `json:"success"`
	Warning   string     `json:"warning"`
	Error     string     `json:"error"`
	Info      string     `json:"info"`
}

// Typography holds the canonical font family and named size scale (xs..4xl)
type Typography struct {
	FontFamily string            `json:"font_family"`
	Sizes      map[string]string `json:"sizes"`
}

// Spacing holds the base unit and named spacing scale
type Spacing struct {
	BaseUnit float64           `json:"base_unit"` // px
	Scale    map[string]string `json:"scale"`
}

// ComponentStyles buckets styles per component type: base styles plus
// state-keyed overrides, variants, and responsive buckets.
type ComponentStyles struct {
	Base       map[string]string            `json:"base"`
	States     map[string]map[string]string `json:"states,omitempty"`     // hover, focus, active
	Variants   map[string]map[string]string `json:"variants,omitempty"`   // primary, secondary, ...
	Responsive map[string]map[string]string `json:"responsive,omitempty"` // sm, md, lg breakpoints
}

// DesignSystem is one extraction run's derived design tokens.
// Version increases monotonically per project; the engine itself emits
// version 1 and the storage layer assigns the next version on save.
type DesignSystem struct {
	ID         string                     `json:"id"` // ds_{uuid}
	ProjectID  string                     `json:"project_id"`
	Colors     ColorPalette               `json:"colors"`
	Typography Typography                 `json:"typography"`
	Spacing    Spacing                    `json:"spacing"`
	Components map[string]ComponentStyles `json:"components"` // Keyed by component type
	Stylesheet string                     `json:"stylesheet"` // Generated CSS custom-property block
	Version    int                        `json:"version"`
	CreatedAt  time.Time                  `json:"created_at"`
	UpdatedAt  time.Time                  `json:"updated_at"`
}
