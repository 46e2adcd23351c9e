// Package schema loads the governance category schema that drives the
// keyword audit.
package schema

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/docscope/internal/types"
)

var validate = validator.New()

// Load reads the category schema from a JSON file and validates each
// entry: a display name is required and importance weights must stay
// in [0,1].
func Load(path string) (types.CategorySchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read category schema: %w", err)
	}

	var schema types.CategorySchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse category schema %s: %w", path, err)
	}

	for catID, cat := range schema {
		if err := validate.Struct(cat); err != nil {
			return nil, fmt.Errorf("invalid category %q in %s: %w", catID, path, err)
		}
	}

	return schema, nil
}

// CategoryIDs returns the ids defined in a schema, unordered.
func CategoryIDs(schema types.CategorySchema) []string {
	ids := make([]string, 0, len(schema))
	for id := range schema {
		ids = append(ids, id)
	}
	return ids
}
