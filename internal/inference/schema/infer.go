// Package schema infers normalized data models from UI structure: form
// clusters become field-typed models, repeated card/list structures are
// matched against them, and naming conventions link the results.
package schema

import (
	"fmt"
	"math"
	"sort"

	"github.com/ternarybob/atelier/internal/models"
	"github.com/ternarybob/atelier/internal/registry"
)

// Inferrer derives data models from a component batch
type Inferrer struct {
	reg   *registry.Registry
	newID func() string
}

// NewInferrer creates an inferrer using the given registry for category
// normalization and newID for model identifiers.
func NewInferrer(reg *registry.Registry, newID func() string) *Inferrer {
	return &Inferrer{reg: reg, newID: newID}
}

// Result is the outcome of one inference run over a component batch
type Result struct {
	Models      []*models.DataModel
	Confidence  float64
	Reasoning   []string
	Suggestions []string
}

// Infer runs form, card, and list inference over the component batch and
// links the resulting models. Pure computation over the input snapshot.
func (in *Inferrer) Infer(components []*models.Component) Result {
	var result Result

	byID := make(map[string]*models.Component, len(components))
	for _, c := range components {
		byID[c.ID] = c
	}

	forms, lists, cards := in.partition(components)

	var stageConfidences []float64

	// Form clusters, grouped per screen since positions are per-canvas
	ordinal := 1
	for _, screenID := range screenOrder(forms) {
		screenForms := forms[screenID]
		labels := nearbyLabels(components, screenID, in.reg)
		for _, cluster := range clusterByProximity(screenForms) {
			model := inferFormModel(cluster, labels, ordinal, in.newID)
			result.Models = append(result.Models, model)
			stageConfidences = append(stageConfidences, model.Confidence)
			result.Reasoning = append(result.Reasoning,
				fmt.Sprintf("Inferred model %s from %d grouped form fields", model.Name, len(cluster)))
			ordinal++
		}
	}

	// Card groups: reuse a structurally matching model or mint a new one
	cardOrdinal := 1
	for _, group := range groupCardsByStructure(cards, byID) {
		fields := cardFields(group[0], byID)
		if len(fields) == 0 {
			continue
		}
		if matched := matchModel(fields, result.Models); matched != nil {
			for _, card := range group {
				matched.SourceComponents = append(matched.SourceComponents, card.ID)
			}
			stageConfidences = append(stageConfidences, cardMatchedConfidence)
			result.Reasoning = append(result.Reasoning,
				fmt.Sprintf("%d card(s) matched existing model %s by field shape", len(group), matched.Name))
			continue
		}
		model := inferCardModel(group, fields, cardOrdinal, in.newID)
		result.Models = append(result.Models, model)
		stageConfidences = append(stageConfidences, model.Confidence)
		result.Reasoning = append(result.Reasoning,
			fmt.Sprintf("Inferred model %s from %d repeated card structure(s)", model.Name, len(group)))
		cardOrdinal++
	}

	// Lists never mint models; their inspection informs confidence only
	for _, list := range lists {
		inspection := inspectList(list, byID, result.Models)
		stageConfidences = append(stageConfidences, inspection.Confidence)
		if inspection.Matched != nil {
			result.Reasoning = append(result.Reasoning,
				fmt.Sprintf("List %s repeats the shape of model %s", list.ID, inspection.Matched.Name))
		} else {
			result.Reasoning = append(result.Reasoning,
				fmt.Sprintf("List %s has no structural match among inferred models", list.ID))
		}
	}

	DetectRelationships(result.Models)

	// Batch confidence: running sum of stage confidences over max(3, n)
	sum := 0.0
	for _, c := range stageConfidences {
		sum += c
	}
	result.Confidence = math.Min(1, sum/math.Max(3, float64(len(result.Models))))

	if len(result.Models) == 0 {
		result.Confidence = 0
		result.Suggestions = append(result.Suggestions,
			"Add form fields, cards, or lists so data models can be inferred from the canvas")
	}

	return result
}

// partition splits components into the three inference categories
func (in *Inferrer) partition(components []*models.Component) (forms map[string][]*models.Component, lists, cards []*models.Component) {
	forms = make(map[string][]*models.Component)
	for _, c := range components {
		switch in.reg.CategoryOf(c.ComponentType) {
		case registry.CategoryForm:
			forms[c.ScreenID] = append(forms[c.ScreenID], c)
		case registry.CategoryList:
			lists = append(lists, c)
		case registry.CategoryCard:
			cards = append(cards, c)
		}
	}
	return forms, lists, cards
}

// screenOrder returns form screen ids in first-seen-stable sorted order
func screenOrder(forms map[string][]*models.Component) []string {
	ids := make([]string, 0, len(forms))
	for id := range forms {
		ids = append(ids, id)
	}
	// Deterministic iteration keeps repeated runs and their ordinals stable
	sort.Strings(ids)
	return ids
}

// nearbyLabels collects label/text content on a screen for name derivation
func nearbyLabels(components []*models.Component, screenID string, reg *registry.Registry) []string {
	var labels []string
	for _, c := range components {
		if c.ScreenID != screenID {
			continue
		}
		if reg.CategoryOf(c.ComponentType) != registry.CategoryText {
			continue
		}
		if text, ok := c.StringProp("text"); ok {
			labels = append(labels, text)
		} else if label, ok := c.StringProp("label"); ok {
			labels = append(labels, label)
		}
	}
	return labels
}
