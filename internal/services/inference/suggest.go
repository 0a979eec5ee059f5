package inference

import (
	"github.com/ternarybob/atelier/internal/models"
	"github.com/ternarybob/atelier/internal/registry"
)

// SuggestComponents recommends component types that common UI patterns
// expect but the current snapshot lacks.
func (s *Service) SuggestComponents(existing []*models.Component) []models.ComponentSuggestion {
	present := make(map[string]bool, len(existing))
	hasFormField := false
	for _, c := range existing {
		present[c.ComponentType] = true
		if s.registry.CategoryOf(c.ComponentType) == registry.CategoryForm && c.ComponentType != "search" {
			hasFormField = true
		}
	}

	var out []models.ComponentSuggestion

	if hasFormField && !present["button"] {
		out = append(out, models.ComponentSuggestion{
			ComponentType: "button",
			Reason:        "Form fields are present but there is no submit button",
			Confidence:    0.9,
		})
	}
	if (present["list"] || present["grid"] || present["table"]) && !present["search"] {
		out = append(out, models.ComponentSuggestion{
			ComponentType: "search",
			Reason:        "List content is present but there is no way to search it",
			Confidence:    0.8,
		})
	}
	if len(existing) > 0 && !present["header"] && !present["navbar"] {
		out = append(out, models.ComponentSuggestion{
			ComponentType: "header",
			Reason:        "The screen has no header or navigation bar",
			Confidence:    0.85,
		})
	}

	return out
}

// AnalyzeDataFlow infers directed data edges between components: form
// submissions feeding lists and search inputs filtering them.
func (s *Service) AnalyzeDataFlow(components []*models.Component) []models.DataFlow {
	var forms, lists, searches []*models.Component
	for _, c := range components {
		switch {
		case s.registry.CategoryOf(c.ComponentType) == registry.CategoryForm && c.ComponentType != "search":
			forms = append(forms, c)
		case c.ComponentType == "list" || c.ComponentType == "grid" || c.ComponentType == "table":
			lists = append(lists, c)
		case c.ComponentType == "search":
			searches = append(searches, c)
		}
	}

	var flows []models.DataFlow
	for _, form := range forms {
		for _, list := range lists {
			flows = append(flows, models.DataFlow{
				Source:     form.ID,
				Target:     list.ID,
				DataType:   "form_submission",
				Confidence: 0.8,
			})
		}
	}
	for _, search := range searches {
		for _, list := range lists {
			flows = append(flows, models.DataFlow{
				Source:     search.ID,
				Target:     list.ID,
				DataType:   "filter_query",
				Confidence: 0.9,
			})
		}
	}
	return flows
}
