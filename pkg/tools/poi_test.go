package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleGetPointsOfInterest(t *testing.T) {
	r := newTestRegistry()

	result, err := r.HandleGetPointsOfInterest(context.Background(), newRequest("get_points_of_interest", map[string]any{
		"location": "Paris",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var output GetPointsOfInterestOutput
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &output))

	assert.Equal(t, "All categories", output.FilterCategory)
	assert.Equal(t, 2, output.Count)
	require.Len(t, output.PointsOfInterest, 2)
	// Equal similarity sorts by rating descending.
	assert.Equal(t, "Louvre Museum", output.PointsOfInterest[0].Name)
	assert.Equal(t, "Eiffel Tower", output.PointsOfInterest[1].Name)
}

func TestHandleGetPointsOfInterestCategoryFilter(t *testing.T) {
	r := newTestRegistry()

	result, err := r.HandleGetPointsOfInterest(context.Background(), newRequest("get_points_of_interest", map[string]any{
		"location": "Paris",
		"category": "historical",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var output GetPointsOfInterestOutput
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &output))

	assert.Equal(t, "Historical", output.FilterCategory)
	require.Len(t, output.PointsOfInterest, 1)
	assert.Equal(t, "Eiffel Tower", output.PointsOfInterest[0].Name)
}

func TestHandleGetPointsOfInterestEmptyLocation(t *testing.T) {
	r := newTestRegistry()

	result, err := r.HandleGetPointsOfInterest(context.Background(), newRequest("get_points_of_interest", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "location must not be empty")
}

func TestHandleGetPointsOfInterestNotFound(t *testing.T) {
	r := newTestRegistry()

	result, err := r.HandleGetPointsOfInterest(context.Background(), newRequest("get_points_of_interest", map[string]any{
		"location": "Paris",
		"category": "underwater",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	text := resultText(t, result)
	assert.Contains(t, text, "No points of interest found near Paris")
	assert.Contains(t, text, "(category: underwater)")
}
