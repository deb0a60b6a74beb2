package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/veloplan/tripmcp/pkg/match"
)

// CheckVisaRequirementsInput defines the input parameters for visa lookup
type CheckVisaRequirementsInput struct {
	Destination string `json:"destination"`
	Nationality string `json:"nationality"`
}

// CheckVisaRequirementsTool returns a tool definition for visa lookup
func CheckVisaRequirementsTool() mcp.Tool {
	return mcp.NewTool("check_visa_requirements",
		mcp.WithDescription("Check visa requirements for travel to a destination country"),
		mcp.WithString("destination",
			mcp.Required(),
			mcp.Description("Destination country or countries"),
		),
		mcp.WithString("nationality",
			mcp.Required(),
			mcp.Description("Traveler's nationality or passport country"),
		),
	)
}

// HandleCheckVisaRequirements implements the visa lookup functionality
func (r *Registry) HandleCheckVisaRequirements(ctx context.Context, rawInput mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "check_visa_requirements")

	var input CheckVisaRequirementsInput
	input.Destination = mcp.ParseString(rawInput, "destination", "")
	input.Nationality = mcp.ParseString(rawInput, "nationality", "")

	if input.Destination == "" || input.Nationality == "" {
		return ErrorResponse("destination and nationality must not be empty"), nil
	}

	rule, ok := match.FindVisaRule(r.store.VisaRules, input.Destination, input.Nationality)
	if !ok {
		logger.Warn("no visa rule matched",
			"destination", input.Destination, "nationality", input.Nationality)
		return ErrorResponse(fmt.Sprintf(
			"No visa requirements data found for %s travelers to %s.\nPlease check the destination country and nationality, and try again.",
			input.Nationality, input.Destination)), nil
	}

	logger.Info("visa rule resolved",
		"destination", rule.Destination, "nationality", rule.Nationality,
		"required", rule.VisaRequired)
	return JSONResult(logger, rule), nil
}
