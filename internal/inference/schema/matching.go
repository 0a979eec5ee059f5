package schema

import (
	"strings"

	"github.com/ternarybob/atelier/internal/models"
)

// matchThreshold is the minimum field-set similarity for two shapes to be
// considered the same model.
const matchThreshold = 0.7

// fieldSignature reduces a field list to comparable name:type pairs,
// ignoring the injected id/timestamp fields every model carries.
func fieldSignature(fields []models.DataField) map[string]bool {
	sig := make(map[string]bool, len(fields))
	for _, f := range fields {
		switch f.Name {
		case "id", "createdAt", "updatedAt":
			continue
		}
		sig[strings.ToLower(f.Name)+":"+string(f.Type)] = true
	}
	return sig
}

// fieldSimilarity is the Jaccard index over two field signatures
func fieldSimilarity(a, b []models.DataField) float64 {
	sigA := fieldSignature(a)
	sigB := fieldSignature(b)
	if len(sigA) == 0 && len(sigB) == 0 {
		return 0
	}

	intersection := 0
	for key := range sigA {
		if sigB[key] {
			intersection++
		}
	}
	union := len(sigA) + len(sigB) - intersection
	return float64(intersection) / float64(union)
}

// matchModel finds an already-inferred model whose field set is similar
// enough to the given shape, preferring the best score.
func matchModel(fields []models.DataField, existing []*models.DataModel) *models.DataModel {
	var best *models.DataModel
	bestScore := matchThreshold
	for _, m := range existing {
		if score := fieldSimilarity(fields, m.Fields); score >= bestScore {
			best = m
			bestScore = score
		}
	}
	return best
}
