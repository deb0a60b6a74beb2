package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/veloplan/tripmcp/pkg/dataset"
	"github.com/veloplan/tripmcp/pkg/match"
)

// FindAccommodationInput defines the input parameters for accommodation search
type FindAccommodationInput struct {
	Location          string `json:"location"`
	AccommodationType string `json:"accommodation_type"`
}

// FindAccommodationOutput defines the output format for accommodation search
type FindAccommodationOutput struct {
	Location       string                  `json:"location"`
	FilterType     string                  `json:"filter_type"`
	Count          int                     `json:"count"`
	Accommodations []dataset.Accommodation `json:"accommodations"`
}

// FindAccommodationTool returns a tool definition for accommodation search
func FindAccommodationTool() mcp.Tool {
	return mcp.NewTool("find_accommodation",
		mcp.WithDescription("Find places to stay near a location (camping, hostels, hotels)"),
		mcp.WithString("location",
			mcp.Required(),
			mcp.Description("Location to search near (city, coordinates, or address)"),
		),
		mcp.WithString("accommodation_type",
			mcp.Description("Type of accommodation: camping, hostels, hotels, or all"),
			mcp.DefaultString("all"),
		),
	)
}

// HandleFindAccommodation implements the accommodation search functionality
func (r *Registry) HandleFindAccommodation(ctx context.Context, rawInput mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "find_accommodation")

	var input FindAccommodationInput
	input.Location = mcp.ParseString(rawInput, "location", "")
	input.AccommodationType = mcp.ParseString(rawInput, "accommodation_type", "all")

	if input.Location == "" {
		return ErrorResponse("location must not be empty"), nil
	}

	accommodations := match.FindAccommodations(r.store.Accommodations, input.Location, input.AccommodationType)

	if len(accommodations) == 0 {
		logger.Warn("no accommodations matched",
			"location", input.Location, "type", input.AccommodationType)
		typeInfo := ""
		if match.NormalizeAccommodationType(input.AccommodationType) != "all" {
			typeInfo = fmt.Sprintf(" (type: %s)", input.AccommodationType)
		}
		return ErrorResponse(fmt.Sprintf(
			"No accommodations found near %s%s.\nPlease check the location name and try again.",
			input.Location, typeInfo)), nil
	}

	filterType := "All types"
	if normalized := match.NormalizeAccommodationType(input.AccommodationType); normalized != "all" {
		filterType = capitalize(normalized)
	}

	logger.Info("accommodations found",
		"location", input.Location, "count", len(accommodations))

	output := FindAccommodationOutput{
		Location:       input.Location,
		FilterType:     filterType,
		Count:          len(accommodations),
		Accommodations: accommodations,
	}
	return JSONResult(logger, output), nil
}

// capitalize upper-cases the first letter of an ASCII label.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
