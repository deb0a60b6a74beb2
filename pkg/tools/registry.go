// Package tools provides the trip planner MCP tools implementations.
package tools

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/veloplan/tripmcp/pkg/budget"
	"github.com/veloplan/tripmcp/pkg/dataset"
)

// Registry holds all MCP tool registrations for the trip planner,
// bound to one dataset store.
type Registry struct {
	store     *dataset.Store
	logger    *slog.Logger
	estimator *budget.Estimator
	routes    *routeCache
}

// NewRegistry creates a new MCP tool registry over the given store.
func NewRegistry(store *dataset.Store, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		store:     store,
		logger:    logger,
		estimator: budget.NewEstimator(store, logger),
		routes:    newRouteCache(),
	}
}

// ToolDefinition represents a trip planner MCP tool definition.
type ToolDefinition struct {
	Name        string
	Description string
	Tool        mcp.Tool
	Handler     func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// GetToolDefinitions returns all trip planner MCP tool definitions.
func (r *Registry) GetToolDefinitions() []ToolDefinition {
	return []ToolDefinition{
		// Route Tools
		{
			Name:        "get_route",
			Description: "Get cycling route between two points (distance, estimated days, waypoints)",
			Tool:        GetRouteTool(),
			Handler:     r.HandleGetRoute,
		},
		{
			Name:        "get_elevation_profile",
			Description: "Get terrain difficulty including elevation gain and difficulty rating",
			Tool:        GetElevationProfileTool(),
			Handler:     r.HandleGetElevationProfile,
		},

		// Lookup Tools
		{
			Name:        "find_accommodation",
			Description: "Find places to stay near a location (camping, hostels, hotels)",
			Tool:        FindAccommodationTool(),
			Handler:     r.HandleFindAccommodation,
		},
		{
			Name:        "get_weather",
			Description: "Get typical weather for a location and month",
			Tool:        GetWeatherTool(),
			Handler:     r.HandleGetWeather,
		},
		{
			Name:        "get_points_of_interest",
			Description: "Find points of interest near a location or along a route",
			Tool:        GetPointsOfInterestTool(),
			Handler:     r.HandleGetPointsOfInterest,
		},
		{
			Name:        "check_visa_requirements",
			Description: "Check visa requirements for travel to a destination country",
			Tool:        CheckVisaRequirementsTool(),
			Handler:     r.HandleCheckVisaRequirements,
		},

		// Calculation Tools
		{
			Name:        "calculate_accommodation_schedule",
			Description: "Calculate which nights should use a specific accommodation type based on a periodic pattern",
			Tool:        CalculateAccommodationScheduleTool(),
			Handler:     r.HandleCalculateAccommodationSchedule,
		},
		{
			Name:        "estimate_budget",
			Description: "Estimate budget for a cycling trip including accommodation and food",
			Tool:        EstimateBudgetTool(),
			Handler:     r.HandleEstimateBudget,
		},
	}
}

// RegisterTools registers all tools with the MCP server.
func (r *Registry) RegisterTools(mcpServer *server.MCPServer) {
	for _, def := range r.GetToolDefinitions() {
		r.logger.Info("registering tool", "name", def.Name)
		mcpServer.AddTool(def.Tool, def.Handler)
	}
}
