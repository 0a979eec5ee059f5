package styles

import (
	"strings"
	"testing"
)

func TestBuildScale_KeysAndGradation(t *testing.T) {
	scale := BuildScale("#3b82f6")

	wantKeys := []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}
	if len(scale) != len(wantKeys) {
		t.Fatalf("Expected %d scale steps, got %d", len(wantKeys), len(scale))
	}
	for _, key := range wantKeys {
		if scale[key] == "" {
			t.Errorf("Missing scale step %s", key)
		}
	}

	if scale["500"] != "#3b82f6" {
		t.Errorf("Base color should land at 500, got %s", scale["500"])
	}
	if scale["50"] == scale["900"] {
		t.Error("Light and dark ends of the scale should differ")
	}
	if scale["50"] == scale["500"] {
		t.Error("Lightened steps should differ from the base")
	}
}

func TestLightenDarken(t *testing.T) {
	t.Run("Lighten clamps at white", func(t *testing.T) {
		if got := Lighten("#ffffff", 0.5); got != "#ffffff" {
			t.Errorf("Expected white to stay white, got %s", got)
		}
	})

	t.Run("Darken clamps at black", func(t *testing.T) {
		if got := Darken("#000000", 0.5); got != "#000000" {
			t.Errorf("Expected black to stay black, got %s", got)
		}
	})

	t.Run("Non-hex passes through", func(t *testing.T) {
		if got := Lighten("rebeccapurple", 0.2); got != "rebeccapurple" {
			t.Errorf("Expected non-hex value unchanged, got %s", got)
		}
	})

	t.Run("Shorthand hex accepted", func(t *testing.T) {
		got := Darken("#f00", 0.1)
		if !strings.HasPrefix(got, "#") || len(got) != 7 {
			t.Errorf("Expected expanded hex output, got %s", got)
		}
	})
}

func TestAnalyzeColors_Defaults(t *testing.T) {
	analysis := AnalyzeColors(nil)

	if analysis.Palette.Primary["500"] != "#3b82f6" {
		t.Errorf("Expected default primary, got %s", analysis.Palette.Primary["500"])
	}
	if analysis.Consistency != 0 {
		t.Errorf("Expected zero consistency with no observations, got %f", analysis.Consistency)
	}
	if len(analysis.Suggestions) == 0 {
		t.Error("Expected a suggestion when no colors are observed")
	}
}

func TestAnalyzeColors_PrimaryFromButtonContext(t *testing.T) {
	usages := []ColorUsage{
		{Value: "#111827", Context: "text:heading"},
		{Value: "#111827", Context: "text:text"},
		{Value: "#111827", Context: "text:label"},
		{Value: "#2563eb", Context: "background:button"},
		{Value: "#2563eb", Context: "background:button"},
	}

	analysis := AnalyzeColors(usages)
	if analysis.Palette.Primary["500"] != "#2563eb" {
		t.Errorf("Expected button background to win primary, got %s", analysis.Palette.Primary["500"])
	}
}

func TestAnalyzeColors_ConsistencyFormula(t *testing.T) {
	// 15 distinct colors: consistency = 1 - |15-10|/10 = 0.5
	var usages []ColorUsage
	hexes := []string{
		"#000001", "#000002", "#000003", "#000004", "#000005",
		"#000006", "#000007", "#000008", "#000009", "#00000a",
		"#00000b", "#00000c", "#00000d", "#00000e", "#00000f",
	}
	for _, h := range hexes {
		usages = append(usages, ColorUsage{Value: h, Context: "background:container"})
	}

	analysis := AnalyzeColors(usages)
	if analysis.Consistency != 0.5 {
		t.Errorf("Expected consistency 0.5 for 15 distinct colors, got %f", analysis.Consistency)
	}

	found := false
	for _, s := range analysis.Suggestions {
		if strings.Contains(s, "consolidating colors") {
			found = true
		}
	}
	if !found {
		t.Error("Expected a consolidation suggestion below 0.7 consistency")
	}
}

func TestAnalyzeColors_MissingSemanticBands(t *testing.T) {
	usages := []ColorUsage{
		{Value: "#2563eb", Context: "background:button"},
		{Value: "#6b7280", Context: "text:text"},
	}

	analysis := AnalyzeColors(usages)

	bands := map[string]bool{}
	for _, s := range analysis.Suggestions {
		for _, band := range []string{"green", "red", "yellow"} {
			if strings.Contains(s, "No "+band+"-band") {
				bands[band] = true
			}
		}
	}
	for _, band := range []string{"green", "red", "yellow"} {
		if !bands[band] {
			t.Errorf("Expected missing-band suggestion for %s", band)
		}
	}
}

func TestAnalyzeColors_NamedColorSatisfiesBand(t *testing.T) {
	usages := []ColorUsage{
		{Value: "green", Context: "background:badge"},
		{Value: "#2563eb", Context: "background:button"},
	}

	analysis := AnalyzeColors(usages)
	for _, s := range analysis.Suggestions {
		if strings.Contains(s, "No green-band") {
			t.Error("Named green color should satisfy the green band")
		}
	}
}

func TestAnalyzeColors_Deterministic(t *testing.T) {
	usages := []ColorUsage{
		{Value: "#aa0000", Context: "background:card"},
		{Value: "#bb0000", Context: "background:card"},
		{Value: "#cc0000", Context: "text:text"},
	}

	first := AnalyzeColors(usages)
	second := AnalyzeColors(usages)
	if first.Palette.Primary["500"] != second.Palette.Primary["500"] {
		t.Error("Repeated analysis of the same input should pick the same primary")
	}
}
