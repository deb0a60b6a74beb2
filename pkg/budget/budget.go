package budget

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/veloplan/tripmcp/pkg/dataset"
	"github.com/veloplan/tripmcp/pkg/match"
)

// Daily cost heuristics and fallback nightly prices, all in EUR.
// Figures follow the planner's published estimates.
const (
	DailyFoodCostEUR        = 40.0
	BikeMaintenancePerKMEUR = 0.1
	MiscellaneousPerDayEUR  = 15.0
	CampingPriceEUR         = 15.0
	HostelPriceEUR          = 25.0
	HotelPriceEUR           = 80.0
	DefaultNightlyPriceEUR  = 25.0
)

// NotFoundError reports a request that cannot be satisfied with the
// available data or inputs: the caller should relay Message to the user
// verbatim rather than treat it as a failure.
type NotFoundError struct {
	Message string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string { return e.Message }

// Input carries the budget request. DurationDays takes precedence over
// DailyAverageKM; at least one must be set. Destination and Nationality
// are both required for a visa cost to be included.
type Input struct {
	StartPoint              string
	EndPoint                string
	DurationDays            int
	DailyAverageKM          float64
	AccommodationPreference string
	Destination             string
	Nationality             string
}

// StopCost is one accommodation line item in the breakdown. Estimated
// marks stops priced from the fallback table because no listing
// matched.
type StopCost struct {
	Location      string  `json:"location"`
	Nights        int     `json:"nights"`
	Name          string  `json:"name,omitempty"`
	Type          string  `json:"type"`
	PricePerNight float64 `json:"price_per_night"`
	Currency      string  `json:"currency"`
	CostEUR       float64 `json:"cost_eur"`
	Estimated     bool    `json:"estimated"`
}

// AccommodationCost totals the lodging budget with its per-stop
// breakdown. CurrencyTotals groups the original (unconverted) amounts
// by non-EUR currency.
type AccommodationCost struct {
	TotalEUR       float64            `json:"total_eur"`
	Breakdown      []StopCost         `json:"breakdown"`
	CurrencyTotals map[string]float64 `json:"currency_totals,omitempty"`
}

// FoodCost is the flat daily food budget.
type FoodCost struct {
	DailyRateEUR float64 `json:"daily_rate_eur"`
	TotalEUR     float64 `json:"total_eur"`
}

// VisaCost is the visa fee component. A zero cost with a Note is a
// valid outcome, not an error.
type VisaCost struct {
	Destination string  `json:"destination,omitempty"`
	Nationality string  `json:"nationality,omitempty"`
	Required    *bool   `json:"visa_required,omitempty"`
	CostUSD     float64 `json:"cost_usd"`
	CostEUR     float64 `json:"cost_eur"`
	Note        string  `json:"note,omitempty"`
}

// OtherExpenses covers bike maintenance and daily miscellaneous costs.
type OtherExpenses struct {
	MaintenanceEUR   float64 `json:"maintenance_eur"`
	MiscellaneousEUR float64 `json:"miscellaneous_eur"`
	TotalEUR         float64 `json:"total_eur"`
}

// Breakdown is the full budget estimate in reference currency, with a
// derived USD total.
type Breakdown struct {
	StartPoint      string            `json:"start_point"`
	EndPoint        string            `json:"end_point"`
	RouteDistanceKM float64           `json:"route_distance_km"`
	EstimatedDays   int               `json:"estimated_days"`
	Accommodation   AccommodationCost `json:"accommodation"`
	Food            FoodCost          `json:"food"`
	Visa            VisaCost          `json:"visa"`
	Other           OtherExpenses     `json:"other_expenses"`
	TotalEUR        float64           `json:"total_eur"`
	TotalUSD        float64           `json:"total_usd"`
}

// Estimator computes trip budgets against a dataset store.
type Estimator struct {
	store  *dataset.Store
	logger *slog.Logger
}

// NewEstimator creates an Estimator. A nil logger falls back to the
// default slog logger.
func NewEstimator(store *dataset.Store, logger *slog.Logger) *Estimator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Estimator{store: store, logger: logger}
}

// Estimate resolves the route and aggregates accommodation, food, visa
// and other expenses into a single breakdown. A *NotFoundError means
// the request could not be satisfied (unknown route, missing duration);
// any other error indicates a dataset contract violation.
func (e *Estimator) Estimate(in Input) (*Breakdown, error) {
	route, ok := match.FindRoute(e.store.Routes, in.StartPoint, in.EndPoint)
	if !ok {
		return nil, &NotFoundError{Message: fmt.Sprintf(
			"No route found from %s to %s.\nPlease check the location names and try again.",
			in.StartPoint, in.EndPoint)}
	}

	days, err := e.tripDays(route, in)
	if err != nil {
		return nil, err
	}

	accommodation := e.accommodationCost(route, days, in.AccommodationPreference)
	food := FoodCost{
		DailyRateEUR: DailyFoodCostEUR,
		TotalEUR:     round2(DailyFoodCostEUR * float64(days)),
	}
	visa := e.visaCost(in.Destination, in.Nationality)
	other := OtherExpenses{
		MaintenanceEUR:   round2(BikeMaintenancePerKMEUR * route.DistanceKM),
		MiscellaneousEUR: round2(MiscellaneousPerDayEUR * float64(days)),
	}
	other.TotalEUR = round2(other.MaintenanceEUR + other.MiscellaneousEUR)

	total := round2(accommodation.TotalEUR + food.TotalEUR + visa.CostEUR + other.TotalEUR)

	e.logger.Info("budget estimated",
		"start", route.StartPoint, "end", route.EndPoint,
		"days", days, "total_eur", total)

	return &Breakdown{
		StartPoint:      route.StartPoint,
		EndPoint:        route.EndPoint,
		RouteDistanceKM: route.DistanceKM,
		EstimatedDays:   days,
		Accommodation:   accommodation,
		Food:            food,
		Visa:            visa,
		Other:           other,
		TotalEUR:        total,
		TotalUSD:        round2(EURToUSD(total)),
	}, nil
}

// tripDays derives the trip length: an explicit duration wins, else the
// distance is split over the daily average.
func (e *Estimator) tripDays(route *dataset.Route, in Input) (int, error) {
	if in.DurationDays > 0 {
		return in.DurationDays, nil
	}
	if in.DailyAverageKM > 0 {
		if route.DistanceKM <= 0 {
			return 0, &dataset.RecordError{
				Collection: "routes",
				Record:     fmt.Sprintf("%s to %s", route.StartPoint, route.EndPoint),
				Reason:     "non-positive distance",
			}
		}
		return int(math.Ceil(route.DistanceKM / in.DailyAverageKM)), nil
	}
	return 0, &NotFoundError{Message: "duration_days or daily_average_km must be provided"}
}

// accommodationCost distributes nights across the route's stops (every
// waypoint except the last) and prices each stop independently. Nights
// are assigned greedily: each stop gets max(1, duration/stops) but
// never more than the nights still unassigned, and the final priced
// stop absorbs the remainder, so the totals always sum to the trip
// duration and no stop gets a zero or negative count.
func (e *Estimator) accommodationCost(route *dataset.Route, days int, preference string) AccommodationCost {
	cost := AccommodationCost{Breakdown: []StopCost{}}

	if len(route.Waypoints) < 2 {
		// No usable stop data: one flat estimate for the whole trip.
		price := estimatedPrice(preference)
		line := StopCost{
			Location:      fmt.Sprintf("%s to %s", route.StartPoint, route.EndPoint),
			Nights:        days,
			Type:          match.NormalizeAccommodationType(preference),
			PricePerNight: price,
			Currency:      "EUR",
			CostEUR:       round2(price * float64(days)),
			Estimated:     true,
		}
		cost.Breakdown = append(cost.Breakdown, line)
		cost.TotalEUR = line.CostEUR
		return cost
	}

	numStops := len(route.Waypoints) - 1
	base := days / numStops
	if base < 1 {
		base = 1
	}

	currencyTotals := make(map[string]float64)
	remaining := days

	for i := 0; i < numStops && remaining > 0; i++ {
		nights := base
		if i == numStops-1 || nights > remaining {
			nights = remaining
		}
		remaining -= nights

		stop := route.Waypoints[i]
		line := e.priceStop(stop.Name, nights, preference)
		cost.Breakdown = append(cost.Breakdown, line)
		cost.TotalEUR += line.CostEUR
		if !line.Estimated && line.Currency != "EUR" {
			currencyTotals[line.Currency] += line.PricePerNight * float64(nights)
		}
	}

	cost.TotalEUR = round2(cost.TotalEUR)
	if len(currencyTotals) > 0 {
		for code, amount := range currencyTotals {
			currencyTotals[code] = round2(amount)
		}
		cost.CurrencyTotals = currencyTotals
	}
	return cost
}

// priceStop picks the cheapest listing matching the stop and
// preference, falling back to the static per-type estimate.
func (e *Estimator) priceStop(location string, nights int, preference string) StopCost {
	listings := match.FindAccommodations(e.store.Accommodations, location, preference)

	if len(listings) == 0 {
		price := estimatedPrice(preference)
		return StopCost{
			Location:      location,
			Nights:        nights,
			Type:          match.NormalizeAccommodationType(preference),
			PricePerNight: price,
			Currency:      "EUR",
			CostEUR:       round2(price * float64(nights)),
			Estimated:     true,
		}
	}

	best := listings[0]
	bestEUR := ToEUR(best.PricePerNight, best.Currency)
	for _, listing := range listings[1:] {
		if eur := ToEUR(listing.PricePerNight, listing.Currency); eur < bestEUR {
			best = listing
			bestEUR = eur
		}
	}

	return StopCost{
		Location:      location,
		Nights:        nights,
		Name:          best.Name,
		Type:          best.Type,
		PricePerNight: best.PricePerNight,
		Currency:      best.Currency,
		CostEUR:       round2(bestEUR * float64(nights)),
	}
}

// visaCost resolves the visa fee when both destination and nationality
// are supplied. A missing rule or missing published cost yields a zero
// cost with an explanatory note.
func (e *Estimator) visaCost(destination, nationality string) VisaCost {
	if destination == "" || nationality == "" {
		return VisaCost{Note: "Visa cost not included (destination or nationality not provided)."}
	}

	rule, ok := match.FindVisaRule(e.store.VisaRules, destination, nationality)
	if !ok {
		return VisaCost{
			Destination: destination,
			Nationality: nationality,
			Note: fmt.Sprintf("No visa requirements data found for %s travelers to %s; assuming no visa cost.",
				nationality, destination),
		}
	}

	required := rule.VisaRequired
	visa := VisaCost{
		Destination: rule.Destination,
		Nationality: rule.Nationality,
		Required:    &required,
	}
	if rule.CostUSD == nil {
		visa.Note = "No visa cost published; assuming no visa cost."
		return visa
	}

	visa.CostUSD = *rule.CostUSD
	visa.CostEUR = round2(ToEUR(*rule.CostUSD, "USD"))
	return visa
}

// estimatedPrice returns the fallback nightly price for a preference.
func estimatedPrice(preference string) float64 {
	switch match.NormalizeAccommodationType(preference) {
	case dataset.TypeCamping:
		return CampingPriceEUR
	case dataset.TypeHostel:
		return HostelPriceEUR
	case dataset.TypeHotel:
		return HotelPriceEUR
	default:
		return DefaultNightlyPriceEUR
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
