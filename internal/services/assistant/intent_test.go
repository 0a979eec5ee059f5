package assistant

import "testing"

func TestClassifyIntent(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"add a button to the screen", "add_component"},
		{"Create a login form please", "add_component"},
		{"please insert a dropdown", "add_component"},
		{"analyze my project", "run_analysis"},
		{"run the analysis again", "run_analysis"},
		{"what data does this app use?", "run_analysis"},
		{"what colors should I use?", "style_advice"},
		{"is my typography consistent", "style_advice"},
		{"tell me about the design system", "style_advice"},
		{"what does my schema look like", "data_advice"},
		{"which endpoints will I need", "data_advice"},
		{"hello there", "help"},
		{"", "help"},
	}
	for _, tc := range cases {
		if got := classifyIntent(tc.message); got != tc.want {
			t.Errorf("classifyIntent(%q) = %s, want %s", tc.message, got, tc.want)
		}
	}
}

func TestClassifyIntent_FirstRuleWins(t *testing.T) {
	// "add" and "color" both match; add_component is evaluated first
	if got := classifyIntent("add a color picker"); got != "add_component" {
		t.Errorf("Expected add_component to take precedence, got %s", got)
	}
}

func TestMentionedComponentType(t *testing.T) {
	knownTypes := []string{"input", "button", "select", "search", "navbar", "image"}

	cases := []struct {
		message string
		want    string
	}{
		{"add a text box here", "input"},
		{"put a dropdown on the form", "select"},
		{"add a search bar", "search"},
		{"insert a button", "button"},
		{"add a photo", "image"},
		{"add navigation", "navbar"},
		{"add something nice", ""},
	}
	for _, tc := range cases {
		if got := mentionedComponentType(tc.message, knownTypes); got != tc.want {
			t.Errorf("mentionedComponentType(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}

func TestContainsWord(t *testing.T) {
	if !containsWord("add a button now", "button") {
		t.Error("Expected whole-word match")
	}
	if containsWord("buttoned up", "button") {
		t.Error("Expected no match inside a longer word")
	}
	if !containsWord("button", "button") {
		t.Error("Expected match at string boundaries")
	}
}
