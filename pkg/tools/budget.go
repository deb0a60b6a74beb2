package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/veloplan/tripmcp/pkg/budget"
	"github.com/veloplan/tripmcp/pkg/dataset"
)

// EstimateBudgetInput defines the input parameters for budget estimation
type EstimateBudgetInput struct {
	StartPoint              string  `json:"start_point"`
	EndPoint                string  `json:"end_point"`
	DurationDays            int     `json:"duration_days,omitempty"`
	DailyAverageKM          float64 `json:"daily_average_km,omitempty"`
	AccommodationPreference string  `json:"accommodation_preference,omitempty"`
	Destination             string  `json:"destination,omitempty"`
	Nationality             string  `json:"nationality,omitempty"`
}

// EstimateBudgetTool returns a tool definition for budget estimation
func EstimateBudgetTool() mcp.Tool {
	return mcp.NewTool("estimate_budget",
		mcp.WithDescription("Estimate budget for a cycling trip including accommodation and food"),
		mcp.WithString("start_point",
			mcp.Required(),
			mcp.Description("Starting location of the trip"),
		),
		mcp.WithString("end_point",
			mcp.Required(),
			mcp.Description("Destination location of the trip"),
		),
		mcp.WithNumber("duration_days",
			mcp.Description("Trip duration in days (takes precedence over daily_average_km)"),
		),
		mcp.WithNumber("daily_average_km",
			mcp.Description("Average daily cycling distance in km, used to derive the duration"),
		),
		mcp.WithString("accommodation_preference",
			mcp.Description("Accommodation preference (camping, hostels, hotels, mixed)"),
			mcp.DefaultString(""),
		),
		mcp.WithString("destination",
			mcp.Description("Destination country for visa cost lookup (use with nationality)"),
			mcp.DefaultString(""),
		),
		mcp.WithString("nationality",
			mcp.Description("Traveler's nationality for visa cost lookup (use with destination)"),
			mcp.DefaultString(""),
		),
	)
}

// HandleEstimateBudget implements the budget estimation functionality
func (r *Registry) HandleEstimateBudget(ctx context.Context, rawInput mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "estimate_budget")

	var input EstimateBudgetInput
	input.StartPoint = mcp.ParseString(rawInput, "start_point", "")
	input.EndPoint = mcp.ParseString(rawInput, "end_point", "")
	input.DurationDays = int(mcp.ParseFloat64(rawInput, "duration_days", 0))
	input.DailyAverageKM = mcp.ParseFloat64(rawInput, "daily_average_km", 0)
	input.AccommodationPreference = mcp.ParseString(rawInput, "accommodation_preference", "")
	input.Destination = mcp.ParseString(rawInput, "destination", "")
	input.Nationality = mcp.ParseString(rawInput, "nationality", "")

	if input.StartPoint == "" || input.EndPoint == "" {
		return ErrorResponse("start_point and end_point must not be empty"), nil
	}

	breakdown, err := r.estimator.Estimate(budget.Input{
		StartPoint:              input.StartPoint,
		EndPoint:                input.EndPoint,
		DurationDays:            input.DurationDays,
		DailyAverageKM:          input.DailyAverageKM,
		AccommodationPreference: input.AccommodationPreference,
		Destination:             input.Destination,
		Nationality:             input.Nationality,
	})

	var notFound *budget.NotFoundError
	var recordErr *dataset.RecordError
	switch {
	case errors.As(err, &notFound):
		logger.Warn("budget request rejected", "error", notFound.Message)
		return ErrorResponse(notFound.Message), nil
	case errors.As(err, &recordErr):
		// Dataset contract violation: log with full context and
		// propagate instead of degrading to a user message.
		logger.Error("dataset record violates contract",
			"collection", recordErr.Collection,
			"record", recordErr.Record,
			"reason", recordErr.Reason)
		return nil, err
	case err != nil:
		logger.Error("budget estimation failed", "error", err)
		return nil, err
	}

	return JSONResult(logger, breakdown), nil
}
