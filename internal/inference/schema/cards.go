package schema

import (
	"sort"
	"strings"

	"github.com/ternarybob/atelier/internal/models"
)

const (
	cardNewModelConfidence = 0.7
	cardMatchedConfidence  = 0.8
)

// groupCardsByStructure buckets card components whose child subtrees share
// a structural signature: the sorted multiset of child component types.
// Cards with no resolvable children group by their own type tag.
func groupCardsByStructure(cards []*models.Component, byID map[string]*models.Component) [][]*models.Component {
	groups := make(map[string][]*models.Component)
	var order []string
	for _, card := range cards {
		sig := structuralSignature(card, byID)
		if _, seen := groups[sig]; !seen {
			order = append(order, sig)
		}
		groups[sig] = append(groups[sig], card)
	}

	out := make([][]*models.Component, 0, len(order))
	for _, sig := range order {
		out = append(out, groups[sig])
	}
	return out
}

func structuralSignature(card *models.Component, byID map[string]*models.Component) string {
	var types []string
	for _, childID := range card.Children {
		if child, ok := byID[childID]; ok {
			types = append(types, child.ComponentType)
		}
	}
	if len(types) == 0 {
		return "card:" + card.ComponentType
	}
	sort.Strings(types)
	return strings.Join(types, ",")
}

// cardFields infers a field shape from a card's child subtree: inputs map
// through the regular field rules, text children become string fields
// named from their content, images become an imageUrl field.
func cardFields(card *models.Component, byID map[string]*models.Component) []models.DataField {
	var fields []models.DataField
	index := 0
	for _, childID := range card.Children {
		child, ok := byID[childID]
		if !ok {
			continue
		}
		switch child.ComponentType {
		case "input", "textarea", "select", "checkbox", "radio", "toggle":
			fields = append(fields, fieldFromComponent(child, index))
		case "heading":
			fields = append(fields, models.DataField{Name: "title", Type: models.FieldTypeString, Required: true})
		case "text", "label":
			if name := textFieldName(child); name != "" && !hasField(fields, name) {
				field := models.DataField{Name: name, Type: models.FieldTypeString}
				if name == "price" {
					field.Type = models.FieldTypeNumber
				}
				fields = append(fields, field)
			}
		case "image":
			if !hasField(fields, "imageUrl") {
				fields = append(fields, models.DataField{Name: "imageUrl", Type: models.FieldTypeString})
			}
		case "avatar":
			if !hasField(fields, "avatar") {
				fields = append(fields, models.DataField{Name: "avatar", Type: models.FieldTypeString})
			}
		}
		index++
	}

	// Typed card components carry their shape in props even without children
	switch card.ComponentType {
	case "product-card":
		if !hasField(fields, "name") {
			fields = append(fields, models.DataField{Name: "name", Type: models.FieldTypeString, Required: true})
		}
		if !hasField(fields, "price") {
			fields = append(fields, models.DataField{Name: "price", Type: models.FieldTypeNumber, Required: true})
		}
	case "user-card":
		if !hasField(fields, "name") {
			fields = append(fields, models.DataField{Name: "name", Type: models.FieldTypeString, Required: true})
		}
		if !hasField(fields, "email") {
			fields = append(fields, models.DataField{
				Name:       "email",
				Type:       models.FieldTypeString,
				Validation: []models.ValidationRule{{Type: "email"}},
			})
		}
	}

	return fields
}

// textFieldName names a field after a text child's first significant word
func textFieldName(c *models.Component) string {
	text, ok := c.StringProp("text")
	if !ok {
		return ""
	}
	for _, word := range splitWords(strings.ToLower(text)) {
		if len(word) > 2 {
			return CamelCase(word)
		}
	}
	return ""
}

// inferCardModel builds a model from a structural card group
func inferCardModel(group []*models.Component, fields []models.DataField, ordinal int, newID func() string) *models.DataModel {
	name := cardModelName(fields, ordinal)

	sources := make([]string, 0, len(group))
	for _, card := range group {
		sources = append(sources, card.ID)
	}

	return &models.DataModel{
		ID:               newID(),
		Name:             name,
		Fields:           withStandardFields(fields),
		Relationships:    []models.Relationship{},
		Endpoints:        crudEndpoints(name),
		SourceComponents: sources,
		Confidence:       cardNewModelConfidence,
		UserDefined:      false,
	}
}
