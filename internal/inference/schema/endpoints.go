package schema

import (
	"fmt"
	"strings"

	"github.com/ternarybob/atelier/internal/models"
)

// crudEndpoints generates the five REST-style endpoint descriptors for a model
func crudEndpoints(name string) []models.Endpoint {
	singular := strings.ToLower(Singularize(name))
	collection := "/" + strings.ToLower(Pluralize(singular))

	return []models.Endpoint{
		{Method: "GET", Path: fmt.Sprintf("/api%s", collection), Description: fmt.Sprintf("List all %s records", name)},
		{Method: "GET", Path: fmt.Sprintf("/api%s/{id}", collection), Description: fmt.Sprintf("Get one %s by id", name)},
		{Method: "POST", Path: fmt.Sprintf("/api%s", collection), Description: fmt.Sprintf("Create a %s", name)},
		{Method: "PUT", Path: fmt.Sprintf("/api%s/{id}", collection), Description: fmt.Sprintf("Update a %s", name)},
		{Method: "DELETE", Path: fmt.Sprintf("/api%s/{id}", collection), Description: fmt.Sprintf("Delete a %s", name)},
	}
}
