package schema

import (
	"math"

	"github.com/ternarybob/atelier/internal/models"
)

// proximityThreshold is the on-canvas distance within which a form
// component joins a cluster seed.
const proximityThreshold = 200

const formModelConfidence = 0.8

// clusterByProximity partitions form components into clusters by 2D
// Euclidean distance from each cluster's seed. Membership is measured
// against the seed only, not transitively. Components without a usable
// position simply never join a group.
func clusterByProximity(components []*models.Component) [][]*models.Component {
	visited := make(map[string]bool, len(components))
	var clusters [][]*models.Component

	for _, seed := range components {
		if visited[seed.ID] {
			continue
		}
		visited[seed.ID] = true
		cluster := []*models.Component{seed}

		for _, candidate := range components {
			if visited[candidate.ID] {
				continue
			}
			if distance(seed.Position, candidate.Position) <= proximityThreshold {
				visited[candidate.ID] = true
				cluster = append(cluster, candidate)
			}
		}
		clusters = append(clusters, cluster)
	}
	return clusters
}

func distance(a, b models.Position) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// inferFormModel maps one proximity cluster to a candidate data model.
// nearbyLabels are label/text components on the same screen, used for
// name derivation.
func inferFormModel(cluster []*models.Component, nearbyLabels []string, ordinal int, newID func() string) *models.DataModel {
	fields := make([]models.DataField, 0, len(cluster))
	sources := make([]string, 0, len(cluster))
	for i, c := range cluster {
		fields = append(fields, fieldFromComponent(c, i))
		sources = append(sources, c.ID)
	}

	name := modelName(nearbyLabels, fields, ordinal)

	return &models.DataModel{
		ID:               newID(),
		Name:             name,
		Fields:           withStandardFields(fields),
		Relationships:    []models.Relationship{},
		Endpoints:        crudEndpoints(name),
		SourceComponents: sources,
		Confidence:       formModelConfidence,
		UserDefined:      false,
	}
}
