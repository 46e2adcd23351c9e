package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/docscope/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	"chunk.schema.json",
	"doc_metadata.schema.json",
	"category_schema.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			schemaPath := filepath.Join(".", schemaFile)
			data, err := os.ReadFile(schemaPath)
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			schemaPath := filepath.Join(".", schemaFile)
			data, err := os.ReadFile(schemaPath)
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			err = json.Unmarshal(data, &schemaObj)
			require.NoError(t, err)

			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			assert.True(t, hasType && hasSchema,
				"schema should declare type and $schema")
		})
	}
}

func TestChunkSchema_AcceptsIngestionOutput(t *testing.T) {
	chunkJSON := `{
		"chunk_id": "gpt_system_card:0",
		"doc_id": "gpt_system_card",
		"text": "We evaluated demographic parity across subgroups.",
		"chunk_type": "table",
		"section_heading": "Fairness Evaluation",
		"page_num": 12
	}`

	schemaData, err := os.ReadFile("chunk.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schemaData), chunkJSON)
	assert.NoError(t, err)
}

func TestChunkSchema_RejectsUnknownChunkType(t *testing.T) {
	chunkJSON := `{"doc_id": "d1", "text": "hello", "chunk_type": "figure"}`

	schemaData, err := os.ReadFile("chunk.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schemaData), chunkJSON)
	require.Error(t, err)

	validationErr, ok := err.(*schemas.ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestDocMetadataSchema_RequiresTitle(t *testing.T) {
	metaJSON := `{
		"gpt_system_card": {"title": "GPT System Card", "year": 2024, "doc_type": "system card"},
		"untitled_doc": {"year": 2023}
	}`

	schemaData, err := os.ReadFile("doc_metadata.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schemaData), metaJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "untitled_doc")
}

func TestCategorySchemaSchema_RejectsOutOfRangeWeight(t *testing.T) {
	categoryJSON := `{
		"equity_bias": {
			"human_name_en": "Equity & Bias",
			"keywords": ["bias", "fairness"],
			"importance_weight": 1.5
		}
	}`

	schemaData, err := os.ReadFile("category_schema.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schemaData), categoryJSON)
	require.Error(t, err)

	validationErr, ok := err.(*schemas.ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestCategorySchemaSchema_AcceptsFullDefinition(t *testing.T) {
	categoryJSON := `{
		"safety_risk": {
			"human_name_en": "Safety & Risk",
			"human_name_pt": "Seguranca e Risco",
			"governance_axis": "risk_management",
			"keywords": ["red team", "jailbreak", "safety evaluation"],
			"importance_weight": 0.9,
			"question_templates_en": ["What red-teaming was performed?"]
		}
	}`

	schemaData, err := os.ReadFile("category_schema.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schemaData), categoryJSON)
	assert.NoError(t, err)
}
