package schema

import (
	"github.com/ternarybob/atelier/internal/models"
)

const (
	listMatchedConfidence   = 0.9
	listUnmatchedConfidence = 0.6
)

// listInspection records the outcome of inspecting one list component
type listInspection struct {
	List       *models.Component
	Fields     []models.DataField
	Matched    *models.DataModel
	Confidence float64
}

// inspectList infers the field shape of a list's repeated children and
// attempts to match it against already-inferred models by field-set
// comparison. Lists never mint new models; the outcome feeds reasoning
// and confidence only.
func inspectList(list *models.Component, byID map[string]*models.Component, existing []*models.DataModel) listInspection {
	inspection := listInspection{
		List:       list,
		Confidence: listUnmatchedConfidence,
	}

	// A list's shape is its first resolvable child's shape; repeated
	// siblings are assumed structurally identical.
	for _, childID := range list.Children {
		child, ok := byID[childID]
		if !ok {
			continue
		}
		inspection.Fields = cardFields(child, byID)
		if len(inspection.Fields) > 0 {
			break
		}
	}

	if len(inspection.Fields) == 0 {
		return inspection
	}

	if matched := matchModel(inspection.Fields, existing); matched != nil {
		inspection.Matched = matched
		inspection.Confidence = listMatchedConfidence
	}
	return inspection
}
