package styles

import (
	"testing"
)

func TestAnalyzeTypography_Defaults(t *testing.T) {
	analysis := AnalyzeTypography(nil)

	if analysis.Typography.FontFamily != defaultFontFamily {
		t.Errorf("Expected default family, got %s", analysis.Typography.FontFamily)
	}
	if analysis.Typography.Sizes["base"] != "16px" {
		t.Errorf("Expected default base size 16px, got %s", analysis.Typography.Sizes["base"])
	}
	if len(analysis.Suggestions) == 0 {
		t.Error("Expected a suggestion when no typography is observed")
	}
}

func TestAnalyzeTypography_DominantFamily(t *testing.T) {
	usages := []FontUsage{
		{Family: "Georgia", Size: "16px"},
		{Family: "Helvetica", Size: "14px"},
		{Family: "Helvetica", Size: "18px"},
	}

	analysis := AnalyzeTypography(usages)
	if analysis.Typography.FontFamily != "Helvetica" {
		t.Errorf("Expected most frequent family, got %s", analysis.Typography.FontFamily)
	}
}

func TestAnalyzeTypography_CustomScaleFromFourSizes(t *testing.T) {
	usages := []FontUsage{
		{Family: "Inter", Size: "12px"},
		{Family: "Inter", Size: "14px"},
		{Family: "Inter", Size: "16px"},
		{Family: "Inter", Size: "20px"},
	}

	analysis := AnalyzeTypography(usages)

	// Sorted sizes fill slots from xs upward; lg holds the largest
	if analysis.Typography.Sizes["xs"] != "12px" {
		t.Errorf("Expected xs=12px, got %s", analysis.Typography.Sizes["xs"])
	}
	if analysis.Typography.Sizes["lg"] != "20px" {
		t.Errorf("Expected lg=20px, got %s", analysis.Typography.Sizes["lg"])
	}

	// Missing high-end slots synthesized from lg
	if analysis.Typography.Sizes["2xl"] != "30px" {
		t.Errorf("Expected 2xl=30px (20*1.5), got %s", analysis.Typography.Sizes["2xl"])
	}
	if analysis.Typography.Sizes["4xl"] != "45px" {
		t.Errorf("Expected 4xl=45px (20*2.25), got %s", analysis.Typography.Sizes["4xl"])
	}
}

func TestAnalyzeTypography_TooFewSizesKeepsDefaultScale(t *testing.T) {
	usages := []FontUsage{
		{Family: "Inter", Size: "14px"},
		{Family: "Inter", Size: "16px"},
	}

	analysis := AnalyzeTypography(usages)
	if analysis.Typography.Sizes["4xl"] != "36px" {
		t.Errorf("Expected default scale with fewer than 4 sizes, got 4xl=%s", analysis.Typography.Sizes["4xl"])
	}
}

func TestAnalyzeTypography_ConsistencyFormula(t *testing.T) {
	// 6 distinct sizes: consistency = 1 - |6-6|/6 = 1.0
	usages := []FontUsage{
		{Family: "Inter", Size: "12px"},
		{Family: "Inter", Size: "14px"},
		{Family: "Inter", Size: "16px"},
		{Family: "Inter", Size: "18px"},
		{Family: "Inter", Size: "24px"},
		{Family: "Inter", Size: "30px"},
	}

	analysis := AnalyzeTypography(usages)
	if analysis.Consistency != 1.0 {
		t.Errorf("Expected consistency 1.0 for 6 sizes, got %f", analysis.Consistency)
	}
}
