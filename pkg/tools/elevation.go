package tools

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/veloplan/tripmcp/pkg/elevation"
	"github.com/veloplan/tripmcp/pkg/match"
)

// GetElevationProfileInput defines the input parameters for elevation
// profiling. Either a single location or both route endpoints must be
// supplied.
type GetElevationProfileInput struct {
	Location   string `json:"location,omitempty"`
	StartPoint string `json:"start_point,omitempty"`
	EndPoint   string `json:"end_point,omitempty"`
}

// RouteElevationOutput defines the output format for a route elevation
// profile. The embedded profile carries gain, loss, extrema, gradient
// and difficulty.
type RouteElevationOutput struct {
	StartPoint string  `json:"start_point"`
	EndPoint   string  `json:"end_point"`
	DistanceKM float64 `json:"distance_km"`
	elevation.Profile
}

// LocationElevationOutput defines the output format for a single
// location elevation lookup.
type LocationElevationOutput struct {
	Location   string  `json:"location"`
	ElevationM float64 `json:"elevation_m"`
}

// GetElevationProfileTool returns a tool definition for elevation profiling
func GetElevationProfileTool() mcp.Tool {
	return mcp.NewTool("get_elevation_profile",
		mcp.WithDescription("Get terrain difficulty including elevation gain and difficulty rating"),
		mcp.WithString("location",
			mcp.Description("Single location to get elevation for (use this OR start_point + end_point)"),
		),
		mcp.WithString("start_point",
			mcp.Description("Starting location for route elevation profile (use with end_point)"),
		),
		mcp.WithString("end_point",
			mcp.Description("Destination location for route elevation profile (use with start_point)"),
		),
	)
}

// HandleGetElevationProfile implements the elevation profiling functionality
func (r *Registry) HandleGetElevationProfile(ctx context.Context, rawInput mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "get_elevation_profile")

	var input GetElevationProfileInput
	input.Location = mcp.ParseString(rawInput, "location", "")
	input.StartPoint = mcp.ParseString(rawInput, "start_point", "")
	input.EndPoint = mcp.ParseString(rawInput, "end_point", "")

	switch {
	case input.StartPoint != "" && input.EndPoint != "":
		return r.routeElevationProfile(logger, input)
	case input.Location != "":
		return r.locationElevation(logger, input.Location)
	default:
		return ErrorResponse("Please provide either:\n- A single location name, OR\n- Both start_point and end_point for a route elevation profile."), nil
	}
}

func (r *Registry) routeElevationProfile(logger *slog.Logger, input GetElevationProfileInput) (*mcp.CallToolResult, error) {
	route, ok := r.routes.lookup(r.store.Routes, input.StartPoint, input.EndPoint)
	if !ok {
		logger.Warn("no route matched", "start", input.StartPoint, "end", input.EndPoint)
		return ErrorResponse(fmt.Sprintf(
			"No route found from %s to %s.\nPlease check the location names and try again.",
			input.StartPoint, input.EndPoint)), nil
	}

	if len(route.Waypoints) == 0 || route.DistanceKM == 0 {
		return ErrorResponse(fmt.Sprintf(
			"Route from %s to %s found but missing waypoints or distance data.",
			input.StartPoint, input.EndPoint)), nil
	}

	var points []elevation.Point
	var missing []string
	for _, wp := range route.Waypoints {
		record, found := match.FindElevation(r.store.Elevations, wp.Name)
		if !found {
			missing = append(missing, wp.Name)
			continue
		}
		points = append(points, elevation.Point{Name: wp.Name, ElevationM: record.ElevationM})
	}

	// Name every unresolved waypoint, not just the first.
	if len(missing) > 0 {
		logger.Warn("waypoints missing elevation data", "waypoints", missing)
		return ErrorResponse(fmt.Sprintf(
			"Elevation data not found for the following cities: %s.\nCannot calculate elevation profile.",
			strings.Join(missing, ", "))), nil
	}

	profile, err := elevation.BuildProfile(points, route.DistanceKM)
	if err != nil {
		return ErrorResponse("Insufficient elevation data to calculate profile. Need at least 2 waypoints."), nil
	}

	logger.Info("elevation profile computed",
		"start", route.StartPoint, "end", route.EndPoint,
		"gain_m", profile.TotalGainM, "difficulty", profile.Difficulty)

	output := RouteElevationOutput{
		StartPoint: input.StartPoint,
		EndPoint:   input.EndPoint,
		DistanceKM: route.DistanceKM,
		Profile:    *profile,
	}
	return JSONResult(logger, output), nil
}

func (r *Registry) locationElevation(logger *slog.Logger, location string) (*mcp.CallToolResult, error) {
	record, ok := match.FindElevation(r.store.Elevations, location)
	if !ok {
		logger.Warn("no elevation data matched", "location", location)
		return ErrorResponse(fmt.Sprintf(
			"Elevation data not found for %s.\nPlease check the location name and try again.",
			location)), nil
	}

	logger.Info("elevation resolved", "location", record.Location, "elevation_m", record.ElevationM)

	output := LocationElevationOutput{
		Location:   location,
		ElevationM: record.ElevationM,
	}
	return JSONResult(logger, output), nil
}
