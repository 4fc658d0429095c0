package loader

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// resultDocumentSchema describes the expected shape of a benchmark result
// document. Validation is opt-in (--strict): without it, documents of any
// shape load and simply flatten to fewer records.
var resultDocumentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"timestamp":  map[string]any{"type": "string"},
		"model_name": map[string]any{"type": "string"},
		"variance":   map[string]any{"type": "string"},
		"official":   map[string]any{"type": "boolean"},
		"dataset_results": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"results": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"file":          map[string]any{"type": "string"},
								"accuracy_mean": map[string]any{"type": "number"},
								"accuracy_std":  map[string]any{"type": "number"},
								"accuracies": map[string]any{
									"type":  "array",
									"items": map[string]any{"type": "number"},
								},
							},
							"required": []string{"file", "accuracy_mean"},
						},
					},
				},
				"required": []string{"results"},
			},
		},
	},
	"required": []string{"dataset_results"},
}

// ValidateDocument checks a parsed document against the result-document
// schema and returns a schema mismatch error listing every violation.
func ValidateDocument(doc any) error {
	schemaLoader := gojsonschema.NewGoLoader(resultDocumentSchema)
	documentLoader := gojsonschema.NewGoLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("schema mismatch: %s", strings.Join(errs, "; "))
}
