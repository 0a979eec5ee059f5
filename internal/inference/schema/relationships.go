package schema

import (
	"strings"

	"github.com/ternarybob/atelier/internal/models"
)

// DetectRelationships scans the full model batch for naming conventions
// and links models accordingly. Fields ending in "Id" (other than the id
// field itself) become belongs_to relationships; plural array fields
// become has_many. Relationships are appended to the source model.
func DetectRelationships(batch []*models.DataModel) {
	byName := make(map[string]*models.DataModel, len(batch))
	for _, m := range batch {
		byName[strings.ToLower(m.Name)] = m
	}

	for _, m := range batch {
		for _, f := range m.Fields {
			if f.Name != "id" && strings.HasSuffix(f.Name, "Id") {
				base := strings.TrimSuffix(f.Name, "Id")
				target, ok := byName[strings.ToLower(Singularize(base))]
				if !ok || target == m {
					continue
				}
				m.Relationships = append(m.Relationships, models.Relationship{
					Type:       models.RelationBelongsTo,
					Model:      target.Name,
					ForeignKey: CamelCase(target.Name) + "Id",
					Required:   false,
				})
				continue
			}

			if f.Type == models.FieldTypeArray && f.Name != "tags" {
				target, ok := byName[strings.ToLower(Singularize(f.Name))]
				if !ok || target == m {
					continue
				}
				m.Relationships = append(m.Relationships, models.Relationship{
					Type:       models.RelationHasMany,
					Model:      target.Name,
					ForeignKey: CamelCase(m.Name) + "Id",
					Required:   false,
				})
			}
		}
	}
}
