package tools

import (
	"context"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/veloplan/tripmcp/pkg/dataset"
)

// defaultDailyDistanceKM is the cruising distance used to estimate how
// many days a route takes when the rider gives no preference.
const defaultDailyDistanceKM = 80.0

// GetRouteInput defines the input parameters for route lookup
type GetRouteInput struct {
	StartPoint string `json:"start_point"`
	EndPoint   string `json:"end_point"`
}

// GetRouteOutput defines the output format for a resolved route
type GetRouteOutput struct {
	StartPoint    string             `json:"start_point"`
	EndPoint      string             `json:"end_point"`
	DistanceKM    float64            `json:"distance_km"`
	Difficulty    string             `json:"difficulty"`
	Description   string             `json:"description,omitempty"`
	EstimatedDays int                `json:"estimated_days"`
	Waypoints     []dataset.Waypoint `json:"waypoints"`
}

// GetRouteTool returns a tool definition for route lookup
func GetRouteTool() mcp.Tool {
	return mcp.NewTool("get_route",
		mcp.WithDescription("Get cycling route between two points (distance, estimated days, waypoints)"),
		mcp.WithString("start_point",
			mcp.Required(),
			mcp.Description("Starting location (city, coordinates, or address)"),
		),
		mcp.WithString("end_point",
			mcp.Required(),
			mcp.Description("Destination location (city, coordinates, or address)"),
		),
	)
}

// HandleGetRoute implements the route lookup functionality
func (r *Registry) HandleGetRoute(ctx context.Context, rawInput mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "get_route")

	var input GetRouteInput
	input.StartPoint = mcp.ParseString(rawInput, "start_point", "")
	input.EndPoint = mcp.ParseString(rawInput, "end_point", "")

	if input.StartPoint == "" || input.EndPoint == "" {
		return ErrorResponse("start_point and end_point must not be empty"), nil
	}

	route, ok := r.routes.lookup(r.store.Routes, input.StartPoint, input.EndPoint)
	if !ok {
		logger.Warn("no route matched", "start", input.StartPoint, "end", input.EndPoint)
		return ErrorResponse(fmt.Sprintf(
			"No route found from %s to %s.\nPlease check the location names and try again.",
			input.StartPoint, input.EndPoint)), nil
	}

	logger.Info("route resolved",
		"start", route.StartPoint, "end", route.EndPoint, "distance_km", route.DistanceKM)

	output := GetRouteOutput{
		StartPoint:    route.StartPoint,
		EndPoint:      route.EndPoint,
		DistanceKM:    route.DistanceKM,
		Difficulty:    route.Difficulty,
		Description:   route.Description,
		EstimatedDays: int(math.Ceil(route.DistanceKM / defaultDailyDistanceKM)),
		Waypoints:     route.Waypoints,
	}
	return JSONResult(logger, output), nil
}
