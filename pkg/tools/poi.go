package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/veloplan/tripmcp/pkg/dataset"
	"github.com/veloplan/tripmcp/pkg/match"
)

// GetPointsOfInterestInput defines the input parameters for POI search
type GetPointsOfInterestInput struct {
	Location string `json:"location"`
	Category string `json:"category,omitempty"`
}

// GetPointsOfInterestOutput defines the output format for POI search
type GetPointsOfInterestOutput struct {
	Location         string                    `json:"location"`
	FilterCategory   string                    `json:"filter_category"`
	Count            int                       `json:"count"`
	PointsOfInterest []dataset.PointOfInterest `json:"points_of_interest"`
}

// GetPointsOfInterestTool returns a tool definition for POI search
func GetPointsOfInterestTool() mcp.Tool {
	return mcp.NewTool("get_points_of_interest",
		mcp.WithDescription("Find points of interest near a location or along a route"),
		mcp.WithString("location",
			mcp.Required(),
			mcp.Description("Location or route to search for points of interest"),
		),
		mcp.WithString("category",
			mcp.Description("Optional category filter (e.g., historical, natural, cultural)"),
			mcp.DefaultString(""),
		),
	)
}

// HandleGetPointsOfInterest implements the POI search functionality
func (r *Registry) HandleGetPointsOfInterest(ctx context.Context, rawInput mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "get_points_of_interest")

	var input GetPointsOfInterestInput
	input.Location = mcp.ParseString(rawInput, "location", "")
	input.Category = mcp.ParseString(rawInput, "category", "")

	if input.Location == "" {
		return ErrorResponse("location must not be empty"), nil
	}

	pois := match.FindPointsOfInterest(r.store.PointsOfInterest, input.Location, input.Category)

	if len(pois) == 0 {
		logger.Warn("no points of interest matched",
			"location", input.Location, "category", input.Category)
		categoryInfo := ""
		if input.Category != "" {
			categoryInfo = fmt.Sprintf(" (category: %s)", input.Category)
		}
		return ErrorResponse(fmt.Sprintf(
			"No points of interest found near %s%s.\nPlease check the location name and try again.",
			input.Location, categoryInfo)), nil
	}

	filterCategory := "All categories"
	if input.Category != "" {
		filterCategory = capitalize(match.Normalize(input.Category))
	}

	logger.Info("points of interest found",
		"location", input.Location, "count", len(pois))

	output := GetPointsOfInterestOutput{
		Location:         input.Location,
		FilterCategory:   filterCategory,
		Count:            len(pois),
		PointsOfInterest: pois,
	}
	return JSONResult(logger, output), nil
}
