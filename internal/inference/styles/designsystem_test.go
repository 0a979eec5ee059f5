package styles

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ternarybob/atelier/internal/models"
	"github.com/ternarybob/atelier/internal/registry"
)

func buttonComponent(id string, styles map[string]interface{}) *models.Component {
	return &models.Component{
		ID:            id,
		ScreenID:      "scr_1",
		ComponentType: "button",
		Styles:        styles,
	}
}

func TestAnalyze_ConfidenceWeights(t *testing.T) {
	// With no observations: colors 0, typography 0, spacing 0
	a := Analyze(nil)
	if a.Confidence != 0 {
		t.Errorf("Expected zero confidence with no components, got %f", a.Confidence)
	}
	if len(a.Suggestions) == 0 {
		t.Error("Expected suggestions with no components")
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	components := []*models.Component{
		buttonComponent("cmp_1", map[string]interface{}{
			"backgroundColor": "#2563eb",
			"fontSize":        "14px",
			"padding":         "8px 16px",
		}),
		buttonComponent("cmp_2", map[string]interface{}{
			"backgroundColor": "#2563eb",
			"fontSize":        "14px",
			"padding":         "8px",
		}),
	}

	first := Analyze(components)
	second := Analyze(components)

	if first.Confidence != second.Confidence {
		t.Errorf("Confidence should be stable: %f vs %f", first.Confidence, second.Confidence)
	}
	if !reflect.DeepEqual(first.Colors.Palette, second.Colors.Palette) {
		t.Error("Palette should be stable across repeated runs")
	}
	if !reflect.DeepEqual(first.Spacing.Spacing, second.Spacing.Spacing) {
		t.Error("Spacing should be stable across repeated runs")
	}
}

func TestSynthesize_ComponentBucketsAndStates(t *testing.T) {
	components := []*models.Component{
		buttonComponent("cmp_1", map[string]interface{}{
			"backgroundColor": "#2563eb",
			"borderRadius":    "8px",
		}),
		{
			ID:            "cmp_2",
			ScreenID:      "scr_1",
			ComponentType: "container",
			Styles:        map[string]interface{}{"padding": "16px"},
		},
	}

	a := Analyze(components)
	ds := Synthesize("ds_1", "proj_1", a, components, registry.Default())

	button, ok := ds.Components["button"]
	if !ok {
		t.Fatal("Expected a button style bucket")
	}
	if button.Base["backgroundColor"] != "#2563eb" {
		t.Errorf("Observed style should override registry default, got %s", button.Base["backgroundColor"])
	}
	if button.States["hover"] == nil || button.States["focus"] == nil {
		t.Error("Interactive types should get hover and focus states")
	}
	if button.Variants["primary"] == nil {
		t.Error("Button bucket should carry a primary variant")
	}

	container, ok := ds.Components["container"]
	if !ok {
		t.Fatal("Expected a container style bucket")
	}
	if len(container.States) != 0 {
		t.Error("Non-interactive types should not get state overrides")
	}

	if ds.Version != 1 {
		t.Errorf("Engine output should carry version 1, got %d", ds.Version)
	}
}

func TestGenerateStylesheet(t *testing.T) {
	a := Analyze(nil)
	ds := Synthesize("ds_1", "proj_1", a, nil, registry.Default())

	if !strings.HasPrefix(ds.Stylesheet, ":root {") {
		t.Error("Stylesheet should open a :root block")
	}
	for _, want := range []string{"--color-primary-500", "--color-success", "--font-family", "--spacing-md"} {
		if !strings.Contains(ds.Stylesheet, want) {
			t.Errorf("Stylesheet missing %s", want)
		}
	}
}
