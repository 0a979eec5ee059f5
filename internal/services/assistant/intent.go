package assistant

import (
	"regexp"
	"sort"
	"strings"
)

// intentRule maps message patterns to one assistant intent. Rules are
// evaluated in order and the first match wins.
type intentRule struct {
	intent   string
	patterns []*regexp.Regexp
}

var intentRules = []intentRule{
	{
		intent: "add_component",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(add|create|insert|place|put)\b`),
		},
	},
	{
		intent: "run_analysis",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(analy[sz]e|analysis|infer)\b`),
			regexp.MustCompile(`(?i)\bwhat\s+data\b`),
		},
	},
	{
		intent: "style_advice",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(color|colour|style|styling|font|typography|spacing|design\s+system|theme)\b`),
		},
	},
	{
		intent: "data_advice",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(model|schema|database|field|endpoint|api)\b`),
		},
	},
}

// classifyIntent matches the message against the rule table. Messages that
// match nothing fall through to help.
func classifyIntent(message string) string {
	msg := strings.TrimSpace(message)
	for _, rule := range intentRules {
		for _, p := range rule.patterns {
			if p.MatchString(msg) {
				return rule.intent
			}
		}
	}
	return "help"
}

// componentSynonyms maps spoken names to registry component types
var componentSynonyms = map[string]string{
	"text box":   "input",
	"textbox":    "input",
	"text field": "input",
	"dropdown":   "select",
	"picture":    "image",
	"photo":      "image",
	"nav":        "navbar",
	"navigation": "navbar",
	"title":      "heading",
	"paragraph":  "text",
	"search bar": "search",
	"search box": "search",
}

// mentionedComponentType finds the first registry component type named in
// the message, checking synonyms before literal type names. Longer
// synonyms are matched first so "search bar" wins over "search".
func mentionedComponentType(message string, knownTypes []string) string {
	msg := strings.ToLower(message)

	synonyms := make([]string, 0, len(componentSynonyms))
	for phrase := range componentSynonyms {
		synonyms = append(synonyms, phrase)
	}
	sort.Slice(synonyms, func(i, j int) bool {
		if len(synonyms[i]) != len(synonyms[j]) {
			return len(synonyms[i]) > len(synonyms[j])
		}
		return synonyms[i] < synonyms[j]
	})
	for _, phrase := range synonyms {
		if strings.Contains(msg, phrase) {
			return componentSynonyms[phrase]
		}
	}

	for _, t := range knownTypes {
		if containsWord(msg, t) {
			return t
		}
	}
	return ""
}

func containsWord(msg, word string) bool {
	idx := strings.Index(msg, word)
	for idx >= 0 {
		before := idx == 0 || !isWordChar(msg[idx-1])
		afterIdx := idx + len(word)
		after := afterIdx >= len(msg) || !isWordChar(msg[afterIdx])
		if before && after {
			return true
		}
		next := strings.Index(msg[idx+1:], word)
		if next < 0 {
			return false
		}
		idx = idx + 1 + next
	}
	return false
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
