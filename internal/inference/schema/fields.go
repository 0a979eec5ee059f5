package schema

import (
	"fmt"
	"strings"

	"github.com/ternarybob/atelier/internal/models"
)

// fieldFromComponent maps one form-category component to a typed data
// field. The component's label names the field; its type (or an explicit
// "type" prop) drives the value type and validation rules.
func fieldFromComponent(c *models.Component, index int) models.DataField {
	name := fieldName(c, index)

	field := models.DataField{
		Name: name,
		Type: models.FieldTypeString,
	}
	if required, ok := c.BoolProp("required"); ok {
		field.Required = required
	}

	switch fieldKind(c, name) {
	case "email":
		field.Type = models.FieldTypeString
		field.Validation = append(field.Validation, models.ValidationRule{Type: "email"})
	case "number":
		field.Type = models.FieldTypeNumber
		field.Validation = append(field.Validation,
			models.ValidationRule{Type: "min", Value: 0},
			models.ValidationRule{Type: "max", Value: 1000000})
	case "date":
		field.Type = models.FieldTypeDate
	case "boolean":
		field.Type = models.FieldTypeBoolean
	case "multiselect":
		field.Type = models.FieldTypeArray
		if options := selectOptions(c); len(options) > 0 {
			field.Validation = append(field.Validation, models.ValidationRule{Type: "enum", Value: options})
		}
	case "select":
		field.Type = models.FieldTypeString
		if options := selectOptions(c); len(options) > 0 {
			field.Validation = append(field.Validation, models.ValidationRule{Type: "enum", Value: options})
		}
	case "textarea":
		field.Type = models.FieldTypeString
		field.Validation = append(field.Validation, models.ValidationRule{Type: "maxLength", Value: 1000})
	}

	return field
}

// fieldKind resolves the effective input kind from the component type,
// an explicit "type" prop, and the field name itself.
func fieldKind(c *models.Component, name string) string {
	lowerName := strings.ToLower(name)

	switch c.ComponentType {
	case "checkbox", "toggle", "switch":
		return "boolean"
	case "textarea":
		return "textarea"
	case "select", "radio":
		if multiple, ok := c.BoolProp("multiple"); ok && multiple {
			return "multiselect"
		}
		return "select"
	}

	if t, ok := c.StringProp("type"); ok {
		switch strings.ToLower(t) {
		case "email", "number", "date":
			return strings.ToLower(t)
		}
	}

	switch {
	case strings.Contains(lowerName, "email"):
		return "email"
	case strings.Contains(lowerName, "date") || strings.Contains(lowerName, "birthday"):
		return "date"
	case strings.Contains(lowerName, "price") || strings.Contains(lowerName, "amount") ||
		strings.Contains(lowerName, "quantity") || strings.Contains(lowerName, "count"):
		return "number"
	}
	return "string"
}

func fieldName(c *models.Component, index int) string {
	if label, ok := c.StringProp("label"); ok {
		if name := CamelCase(label); name != "" {
			return name
		}
	}
	if name, ok := c.StringProp("name"); ok {
		if camel := CamelCase(name); camel != "" {
			return camel
		}
	}
	if placeholder, ok := c.StringProp("placeholder"); ok {
		if name := CamelCase(placeholder); name != "" {
			return name
		}
	}
	return fmt.Sprintf("field%d", index+1)
}

func selectOptions(c *models.Component) []string {
	if c.Props == nil {
		return nil
	}
	raw, ok := c.Props["options"].([]interface{})
	if !ok {
		return nil
	}
	options := make([]string, 0, len(raw))
	for _, o := range raw {
		if s, ok := o.(string); ok {
			options = append(options, s)
		}
	}
	return options
}

// withStandardFields prepends the id field and appends createdAt/updatedAt
// timestamps unless the inferred set already carries them.
func withStandardFields(fields []models.DataField) []models.DataField {
	out := make([]models.DataField, 0, len(fields)+3)
	out = append(out, models.DataField{
		Name:       "id",
		Type:       models.FieldTypeString,
		Required:   true,
		Validation: []models.ValidationRule{{Type: "uuid"}},
	})
	for _, f := range fields {
		if f.Name == "id" {
			continue
		}
		out = append(out, f)
	}
	if !hasField(out, "createdAt") {
		out = append(out, models.DataField{Name: "createdAt", Type: models.FieldTypeDate, Required: true})
	}
	if !hasField(out, "updatedAt") {
		out = append(out, models.DataField{Name: "updatedAt", Type: models.FieldTypeDate, Required: true})
	}
	return out
}

func hasField(fields []models.DataField, name string) bool {
	for _, f := range fields {
		if f.Name == name {
			return true
		}
	}
	return false
}
