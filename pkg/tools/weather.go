package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/veloplan/tripmcp/pkg/match"
)

// GetWeatherInput defines the input parameters for weather lookup
type GetWeatherInput struct {
	Location string `json:"location"`
	Month    string `json:"month"`
}

// GetWeatherTool returns a tool definition for weather lookup
func GetWeatherTool() mcp.Tool {
	return mcp.NewTool("get_weather",
		mcp.WithDescription("Get typical weather for a location and month"),
		mcp.WithString("location",
			mcp.Required(),
			mcp.Description("Location to get weather for (city, coordinates, or address)"),
		),
		mcp.WithString("month",
			mcp.Required(),
			mcp.Description("Month name or number (e.g., January or 1)"),
		),
	)
}

// HandleGetWeather implements the weather lookup functionality
func (r *Registry) HandleGetWeather(ctx context.Context, rawInput mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "get_weather")

	var input GetWeatherInput
	input.Location = mcp.ParseString(rawInput, "location", "")
	input.Month = mcp.ParseString(rawInput, "month", "")

	if input.Location == "" || input.Month == "" {
		return ErrorResponse("location and month must not be empty"), nil
	}

	record, ok := match.FindWeather(r.store.Weather, input.Location, input.Month)
	if !ok {
		logger.Warn("no weather data matched",
			"location", input.Location, "month", input.Month)
		return ErrorResponse(fmt.Sprintf(
			"No weather data found for %s in %s.\nPlease check the location name and month, and try again.",
			input.Location, input.Month)), nil
	}

	logger.Info("weather resolved",
		"location", record.Location, "month", record.Month)
	return JSONResult(logger, record), nil
}
