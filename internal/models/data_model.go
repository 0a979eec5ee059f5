package models

import "time"

// FieldType is the closed set of inferred field value types
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeDate    FieldType = "date"
	FieldTypeArray   FieldType = "array"
	FieldTypeObject  FieldType = "object"
)

// ValidationRule is a canonical validation constraint on a field.
// Type identifiers: min, max, maxLength, pattern, email, enum, uuid.
type ValidationRule struct {
	Type  string      `json:"type"`
	Value interface{} `json:"value,omitempty"`
}

// DataField is one inferred field of a data model
type DataField struct {
	Name       string           `json:"name"` // camelCase
	Type       FieldType        `json:"type"`
	Required   bool             `json:"required"`
	Default    interface{}      `json:"default,omitempty"`
	Validation []ValidationRule `json:"validation,omitempty"`
}

// RelationType identifies how two inferred models relate
type RelationType string

const (
	RelationBelongsTo  RelationType = "belongs_to"
	RelationHasMany    RelationType = "has_many"
	RelationOneToOne   RelationType = "one-to-one"
	RelationOneToMany  RelationType = "one-to-many"
	RelationManyToMany RelationType = "many-to-many"
)

// Relationship links a model to another by naming convention
type Relationship struct {
	Type       RelationType `json:"type"`
	Model      string       `json:"model"`       // Target model name
	ForeignKey string       `json:"foreign_key"` // e.g. userId
	Required   bool         `json:"required"`
}

// Endpoint is a generated CRUD endpoint descriptor
type Endpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// DataModel is a normalized schema inferred from UI structure.
// Fields always begin with an id field and include createdAt/updatedAt.
// The engine never mutates a model after creation within a run;
// relationships are attached as a post-pass over the whole batch.
type DataModel struct {
	ID               string         `json:"id"` // dm_{uuid}
	ProjectID        string         `json:"project_id"`
	Name             string         `json:"name"` // PascalCase
	Fields           []DataField    `json:"fields"`
	Relationships    []Relationship `json:"relationships"`
	Endpoints        []Endpoint     `json:"endpoints"`
	SourceComponents []string       `json:"source_components"` // Component ids this model was inferred from
	Confidence       float64        `json:"confidence"`
	UserDefined      bool           `json:"user_defined"` // Always false for inferred models
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// Field returns the named field, with ok reporting presence
func (m *DataModel) Field(name string) (DataField, bool) {
	for _, f := range m.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return DataField{}, false
}

// HasField reports whether the model defines the named field
func (m *DataModel) HasField(name string) bool {
	_, ok := m.Field(name)
	return ok
}
