package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/veloplan/tripmcp/pkg/schedule"
)

// CalculateAccommodationScheduleInput defines the input parameters for
// schedule calculation
type CalculateAccommodationScheduleInput struct {
	TotalNights       int    `json:"total_nights"`
	PreferencePattern string `json:"preference_pattern"`
	AccommodationType string `json:"accommodation_type"`
	DefaultType       string `json:"default_type"`
}

// CalculateAccommodationScheduleTool returns a tool definition for
// schedule calculation
func CalculateAccommodationScheduleTool() mcp.Tool {
	return mcp.NewTool("calculate_accommodation_schedule",
		mcp.WithDescription("Calculate which nights should use a specific accommodation type based on a periodic pattern. This prevents counting mistakes: the nights are computed, not guessed."),
		mcp.WithNumber("total_nights",
			mcp.Required(),
			mcp.Description("Total number of nights for the trip"),
		),
		mcp.WithString("preference_pattern",
			mcp.Required(),
			mcp.Description("Pattern describing when to use the special accommodation type (e.g., 'every 4th night', 'every 3 nights')"),
		),
		mcp.WithString("accommodation_type",
			mcp.Required(),
			mcp.Description("Type of accommodation to use on special nights (hostel, hotel, camping)"),
		),
		mcp.WithString("default_type",
			mcp.Description("Default accommodation type for nights not matching the pattern"),
			mcp.DefaultString("camping"),
		),
	)
}

// HandleCalculateAccommodationSchedule implements the schedule
// calculation functionality
func (r *Registry) HandleCalculateAccommodationSchedule(ctx context.Context, rawInput mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "calculate_accommodation_schedule")

	var input CalculateAccommodationScheduleInput
	input.TotalNights = int(mcp.ParseFloat64(rawInput, "total_nights", 0))
	input.PreferencePattern = mcp.ParseString(rawInput, "preference_pattern", "")
	input.AccommodationType = mcp.ParseString(rawInput, "accommodation_type", "")
	input.DefaultType = mcp.ParseString(rawInput, "default_type", "camping")

	plan, err := schedule.Calculate(input.TotalNights, input.PreferencePattern,
		input.AccommodationType, input.DefaultType)
	if err != nil {
		logger.Warn("schedule calculation rejected",
			"total_nights", input.TotalNights,
			"pattern", input.PreferencePattern,
			"error", err)
		return ErrorResponse(err.Error()), nil
	}

	logger.Info("schedule calculated",
		"total_nights", plan.TotalNights,
		"special_nights", plan.SpecialNights)
	return JSONResult(logger, plan), nil
}
