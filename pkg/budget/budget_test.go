package budget

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veloplan/tripmcp/pkg/dataset"
	"github.com/veloplan/tripmcp/pkg/testutil"
)

func testStore() *dataset.Store {
	visaCost := 50.0
	return &dataset.Store{
		Routes: []dataset.Route{
			{
				StartPoint: "Paris",
				EndPoint:   "London",
				DistanceKM: 344.0,
				Waypoints: []dataset.Waypoint{
					{Name: "Paris", KM: 0},
					{Name: "Calais", KM: 288.0},
					{Name: "Dover", KM: 330.0},
					{Name: "London", KM: 344.0},
				},
			},
			{
				StartPoint: "Ghent",
				EndPoint:   "Bruges",
				DistanceKM: 100.0,
				Waypoints: []dataset.Waypoint{
					{Name: "Ghent", KM: 0},
					{Name: "Bruges", KM: 100.0},
				},
			},
			{
				StartPoint: "Vienna",
				EndPoint:   "Prague",
				DistanceKM: 330.0,
			},
		},
		Accommodations: []dataset.Accommodation{
			{Name: "Camping de Paris", Type: "camping", Location: "Paris", PricePerNight: 15.0, Currency: "EUR"},
			{Name: "Le Village Hostel", Type: "hostel", Location: "Paris", PricePerNight: 25.0, Currency: "EUR"},
			{Name: "Hotel du Nord", Type: "hotel", Location: "Paris", PricePerNight: 80.0, Currency: "EUR"},
			{Name: "White Cliffs Hostel", Type: "hostel", Location: "Dover", PricePerNight: 20.0, Currency: "GBP"},
			{Name: "Ghent River Camping", Type: "camping", Location: "Ghent", PricePerNight: 10.0, Currency: "EUR"},
		},
		VisaRules: []dataset.VisaRule{
			{Destination: "Turkey", Nationality: "US", VisaRequired: true, VisaType: "e-Visa", CostUSD: &visaCost},
			{Destination: "France", Nationality: "US", VisaRequired: false, VisaType: "Visa-free (Schengen)"},
		},
	}
}

func newTestEstimator() *Estimator {
	return NewEstimator(testStore(), testutil.DiscardLogger())
}

func TestEstimateDaysFromDailyAverage(t *testing.T) {
	got, err := newTestEstimator().Estimate(Input{
		StartPoint:              "Ghent",
		EndPoint:                "Bruges",
		DailyAverageKM:          50.0,
		AccommodationPreference: "camping",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, got.EstimatedDays)
	assert.Equal(t, 100.0, got.RouteDistanceKM)

	require.Len(t, got.Accommodation.Breakdown, 1)
	stop := got.Accommodation.Breakdown[0]
	assert.Equal(t, "Ghent", stop.Location)
	assert.Equal(t, 2, stop.Nights)
	assert.Equal(t, "Ghent River Camping", stop.Name)
	assert.False(t, stop.Estimated)
	assert.InDelta(t, 20.0, got.Accommodation.TotalEUR, 0.001)

	assert.InDelta(t, 80.0, got.Food.TotalEUR, 0.001)
	assert.InDelta(t, 10.0, got.Other.MaintenanceEUR, 0.001)
	assert.InDelta(t, 30.0, got.Other.MiscellaneousEUR, 0.001)
	assert.InDelta(t, 140.0, got.TotalEUR, 0.001)
	assert.InDelta(t, 154.0, got.TotalUSD, 0.001)
}

func TestEstimateDurationOverridesDailyAverage(t *testing.T) {
	got, err := newTestEstimator().Estimate(Input{
		StartPoint:     "Ghent",
		EndPoint:       "Bruges",
		DurationDays:   5,
		DailyAverageKM: 50.0,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, got.EstimatedDays)
}

func TestEstimateRouteNotFound(t *testing.T) {
	_, err := newTestEstimator().Estimate(Input{
		StartPoint:   "Sydney",
		EndPoint:     "Melbourne",
		DurationDays: 5,
	})

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Message, "No route found from Sydney to Melbourne")
}

func TestEstimateMissingDuration(t *testing.T) {
	_, err := newTestEstimator().Estimate(Input{
		StartPoint: "Paris",
		EndPoint:   "London",
	})

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "duration_days or daily_average_km must be provided", notFound.Message)
}

func TestEstimateNightDistribution(t *testing.T) {
	got, err := newTestEstimator().Estimate(Input{
		StartPoint:              "Paris",
		EndPoint:                "London",
		DurationDays:            7,
		AccommodationPreference: "hostel",
	})
	require.NoError(t, err)

	// Three stops (final waypoint excluded), 7 nights: 2 + 2, last stop
	// absorbs the remainder.
	require.Len(t, got.Accommodation.Breakdown, 3)

	paris := got.Accommodation.Breakdown[0]
	assert.Equal(t, "Paris", paris.Location)
	assert.Equal(t, 2, paris.Nights)
	assert.Equal(t, "Le Village Hostel", paris.Name)
	assert.False(t, paris.Estimated)
	assert.InDelta(t, 50.0, paris.CostEUR, 0.001)

	calais := got.Accommodation.Breakdown[1]
	assert.Equal(t, "Calais", calais.Location)
	assert.Equal(t, 2, calais.Nights)
	assert.True(t, calais.Estimated)
	assert.Equal(t, HostelPriceEUR, calais.PricePerNight)
	assert.InDelta(t, 50.0, calais.CostEUR, 0.001)

	dover := got.Accommodation.Breakdown[2]
	assert.Equal(t, "Dover", dover.Location)
	assert.Equal(t, 3, dover.Nights)
	assert.Equal(t, "GBP", dover.Currency)
	assert.InDelta(t, 70.59, dover.CostEUR, 0.001)

	nights := 0
	for _, stop := range got.Accommodation.Breakdown {
		nights += stop.Nights
	}
	assert.Equal(t, 7, nights)

	require.Contains(t, got.Accommodation.CurrencyTotals, "GBP")
	assert.InDelta(t, 60.0, got.Accommodation.CurrencyTotals["GBP"], 0.001)
}

func TestEstimateDurationShorterThanStops(t *testing.T) {
	got, err := newTestEstimator().Estimate(Input{
		StartPoint:   "Paris",
		EndPoint:     "London",
		DurationDays: 2,
	})
	require.NoError(t, err)

	// Only as many stops as there are nights; zero-night stops are
	// omitted from the breakdown.
	require.Len(t, got.Accommodation.Breakdown, 2)
	assert.Equal(t, 1, got.Accommodation.Breakdown[0].Nights)
	assert.Equal(t, 1, got.Accommodation.Breakdown[1].Nights)
}

func TestEstimateFlatEstimateWithoutWaypoints(t *testing.T) {
	got, err := newTestEstimator().Estimate(Input{
		StartPoint:              "Vienna",
		EndPoint:                "Prague",
		DurationDays:            4,
		AccommodationPreference: "hotel",
	})
	require.NoError(t, err)

	require.Len(t, got.Accommodation.Breakdown, 1)
	line := got.Accommodation.Breakdown[0]
	assert.Equal(t, "Vienna to Prague", line.Location)
	assert.Equal(t, 4, line.Nights)
	assert.Equal(t, HotelPriceEUR, line.PricePerNight)
	assert.True(t, line.Estimated)
	assert.InDelta(t, 320.0, got.Accommodation.TotalEUR, 0.001)
}

func TestEstimateVisaCost(t *testing.T) {
	got, err := newTestEstimator().Estimate(Input{
		StartPoint:   "Paris",
		EndPoint:     "London",
		DurationDays: 7,
		Destination:  "Turkey",
		Nationality:  "US",
	})
	require.NoError(t, err)

	require.NotNil(t, got.Visa.Required)
	assert.True(t, *got.Visa.Required)
	assert.Equal(t, 50.0, got.Visa.CostUSD)
	assert.InDelta(t, 45.45, got.Visa.CostEUR, 0.001)
}

func TestEstimateVisaMissingInputs(t *testing.T) {
	got, err := newTestEstimator().Estimate(Input{
		StartPoint:   "Paris",
		EndPoint:     "London",
		DurationDays: 7,
		Destination:  "Turkey",
	})
	require.NoError(t, err)

	assert.Nil(t, got.Visa.Required)
	assert.Zero(t, got.Visa.CostEUR)
	assert.Contains(t, got.Visa.Note, "not provided")
}

func TestEstimateVisaRuleWithoutCost(t *testing.T) {
	got, err := newTestEstimator().Estimate(Input{
		StartPoint:   "Paris",
		EndPoint:     "London",
		DurationDays: 7,
		Destination:  "France",
		Nationality:  "US",
	})
	require.NoError(t, err)

	require.NotNil(t, got.Visa.Required)
	assert.False(t, *got.Visa.Required)
	assert.Zero(t, got.Visa.CostEUR)
	assert.Contains(t, got.Visa.Note, "No visa cost published")
}

func TestTripDaysNonPositiveDistance(t *testing.T) {
	e := newTestEstimator()
	route := &dataset.Route{StartPoint: "A", EndPoint: "B"}

	_, err := e.tripDays(route, Input{DailyAverageKM: 50.0})

	var recErr *dataset.RecordError
	require.True(t, errors.As(err, &recErr))
	assert.Equal(t, "routes", recErr.Collection)
}
