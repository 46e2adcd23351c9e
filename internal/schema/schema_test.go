package schema

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidSchema(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "category_schema.json"))
	require.NoError(t, err)

	require.Len(t, s, 3)
	assert.Equal(t, "Equity & Bias", s.Name("equity_bias"))
	assert.InDelta(t, 0.9, s.Importance("safety_risk"), 1e-9)
	assert.Len(t, s.Questions("equity_bias"), 2)
	assert.Empty(t, s.Questions("training_data"))
	assert.ElementsMatch(t, []string{"equity_bias", "safety_risk", "training_data"}, CategoryIDs(s))
}

func TestLoad_RejectsOutOfRangeWeight(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "bad_weight.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overweighted")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "absent.json"))
	require.Error(t, err)
}
