// Package prompts provides prompt templates for use with the MCP server.
package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterPlanningPrompts registers all trip planning prompts with the MCP server
func RegisterPlanningPrompts(s *server.MCPServer) {
	s.AddPrompt(mcp.NewPrompt("trip_planning",
		mcp.WithPromptDescription("Instructions for properly using the trip planning tools"),
	), PlanningPromptHandler)

	s.AddPrompt(mcp.NewPrompt("accommodation_schedule_examples",
		mcp.WithPromptDescription("Examples of properly formatted accommodation schedule queries"),
	), ScheduleExamplesHandler)

	s.AddPrompt(mcp.NewPrompt("budget_estimate_examples",
		mcp.WithPromptDescription("Examples of properly formatted budget estimation queries"),
	), BudgetExamplesHandler)
}

// PlanningPromptHandler returns the main prompt for the trip planning tools
func PlanningPromptHandler(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	systemPrompt := `You have access to trip planning tools backed by curated route,
accommodation, weather, elevation and visa datasets. When using these tools:

1. Location names are matched tolerantly: minor typos and case differences are
   fine, but prefer plain city names, e.g. "Paris" instead of "Paris, France (city centre)"
2. Months can be given as a name, abbreviation or number: "July", "jul" and "7"
   are all accepted
3. Never count accommodation nights yourself. Use calculate_accommodation_schedule
   with the rider's pattern (e.g. "every 4th night") so the nights are computed,
   not guessed
4. For estimate_budget, provide either duration_days or daily_average_km; an
   explicit duration takes precedence
5. A textual error result means the data was not found or the input was invalid.
   Check the message, fix the input and retry; do not treat it as a tool failure

IMPORTANT QUERY EXAMPLES:
GOOD: get_route with start_point "Paris", end_point "London"
BAD: get_route with start_point "from Paris city centre"

GOOD: get_weather with location "Copenhagen", month "7"
BAD: get_weather with location "Copenhagen in summer"

ERROR HANDLING GUIDELINES:
When you receive an error response from the tools:
1. Read the message; it names the value that did not resolve
2. Check spelling of city and country names and simplify them
3. For elevation profiles, provide either one location or both route endpoints
4. For visa lookups, provide both the destination and the nationality`

	return mcp.NewGetPromptResult(
		"Trip Planning Tool Usage Guidelines",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(
				mcp.RoleAssistant,
				mcp.NewTextContent(systemPrompt),
			),
		},
	), nil
}

// ScheduleExamplesHandler returns examples for calculate_accommodation_schedule
func ScheduleExamplesHandler(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	examplesPrompt := `EXAMPLES OF EFFECTIVE CALCULATE_ACCOMMODATION_SCHEDULE USAGE:

User: "I want to camp but treat myself to a hostel every 4th night on my 10 night trip"
AI: *uses calculate_accommodation_schedule with total_nights: 10,
    preference_pattern: "every 4th night", accommodation_type: "hostel",
    default_type: "camping"*

User: "Hotel every 3 nights, otherwise hostels, for two weeks"
AI: *uses calculate_accommodation_schedule with total_nights: 14,
    preference_pattern: "every 3 nights", accommodation_type: "hotel",
    default_type: "hostel"*

ERROR CORRECTION PATTERN:
1. If the pattern is rejected, rephrase it as "every Xth night" or "every X nights"
2. total_nights must be a positive whole number
3. A pattern longer than the trip is valid: the result simply has no special
   nights and says so in the interpretation`

	return mcp.NewGetPromptResult(
		"Accommodation Schedule Examples",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(
				mcp.RoleAssistant,
				mcp.NewTextContent(examplesPrompt),
			),
		},
	), nil
}

// BudgetExamplesHandler returns examples for estimate_budget
func BudgetExamplesHandler(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	examplesPrompt := `EXAMPLES OF EFFECTIVE ESTIMATE_BUDGET USAGE:

User: "What would 7 days from Paris to London cost me, camping where possible?"
AI: *uses estimate_budget with start_point: "Paris", end_point: "London",
    duration_days: 7, accommodation_preference: "camping"*

User: "I ride about 80 km a day, what's the budget for Copenhagen to Berlin?"
AI: *uses estimate_budget with start_point: "Copenhagen", end_point: "Berlin",
    daily_average_km: 80*

User: "Include the visa cost, I'm a US citizen going to Turkey"
AI: *adds destination: "Turkey", nationality: "US" to the estimate_budget call*

ERROR CORRECTION PATTERN:
1. If no route is found, verify the start and end city names against get_route
2. Provide duration_days or daily_average_km; without either the estimate is refused
3. Visa costs are only included when destination and nationality are both given`

	return mcp.NewGetPromptResult(
		"Budget Estimate Examples",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(
				mcp.RoleAssistant,
				mcp.NewTextContent(examplesPrompt),
			),
		},
	), nil
}
