package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veloplan/tripmcp/pkg/dataset"
)

func testRoutes() []dataset.Route {
	return []dataset.Route{
		{
			StartPoint: "Paris",
			EndPoint:   "London",
			DistanceKM: 344.0,
			Difficulty: "Moderate",
			Waypoints: []dataset.Waypoint{
				{Name: "Calais", KM: 288.0},
				{Name: "Dover", KM: 344.0},
			},
		},
		{
			StartPoint: "Paris",
			EndPoint:   "Amsterdam",
			DistanceKM: 512.0,
			Difficulty: "Easy",
		},
		{
			StartPoint: "Copenhagen",
			EndPoint:   "Berlin",
			DistanceKM: 590.0,
			Difficulty: "Easy",
		},
	}
}

func TestFindRouteExactMatch(t *testing.T) {
	route, ok := FindRoute(testRoutes(), "Paris", "London")
	require.True(t, ok)
	assert.Equal(t, "London", route.EndPoint)
	assert.Equal(t, 344.0, route.DistanceKM)
}

func TestFindRouteCaseAndWhitespace(t *testing.T) {
	route, ok := FindRoute(testRoutes(), "  PARIS ", "london")
	require.True(t, ok)
	assert.Equal(t, "London", route.EndPoint)
}

func TestFindRouteFuzzy(t *testing.T) {
	// Typos in both endpoints still resolve.
	route, ok := FindRoute(testRoutes(), "Pariss", "Amsterdm")
	require.True(t, ok)
	assert.Equal(t, "Amsterdam", route.EndPoint)
}

func TestFindRouteBothEndpointsMustQualify(t *testing.T) {
	// Perfect start similarity cannot compensate for a failed end.
	_, ok := FindRoute(testRoutes(), "Paris", "Tokyo")
	assert.False(t, ok)
}

func TestFindRouteNotFound(t *testing.T) {
	_, ok := FindRoute(testRoutes(), "Sydney", "Melbourne")
	assert.False(t, ok)
}

func TestFindRouteFirstSeenTieBreak(t *testing.T) {
	routes := []dataset.Route{
		{StartPoint: "Paris", EndPoint: "London", DistanceKM: 344.0},
		{StartPoint: "Paris", EndPoint: "London", DistanceKM: 400.0},
	}
	route, ok := FindRoute(routes, "Paris", "London")
	require.True(t, ok)
	assert.Equal(t, 344.0, route.DistanceKM)
}

func testAccommodations() []dataset.Accommodation {
	return []dataset.Accommodation{
		{Name: "Hotel du Nord", Type: "hotel", Location: "Paris", PricePerNight: 80.0, Currency: "EUR"},
		{Name: "Camping de Paris", Type: "camping", Location: "Paris", PricePerNight: 15.0, Currency: "EUR"},
		{Name: "Le Village Hostel", Type: "hostel", Location: "Paris", PricePerNight: 25.0, Currency: "EUR"},
		{Name: "Canal House Hostel", Type: "hostel", Location: "Amsterdam", PricePerNight: 32.0, Currency: "EUR"},
	}
}

func TestNormalizeAccommodationType(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "camping", want: "camping"},
		{input: "camp", want: "camping"},
		{input: "Hostels", want: "hostel"},
		{input: "hostel", want: "hostel"},
		{input: "HOTELS", want: "hotel"},
		{input: "hotel", want: "hotel"},
		{input: "all", want: "all"},
		{input: "mixed", want: "all"},
		{input: "treehouse", want: "all"},
		{input: "", want: "all"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAccommodationType(tt.input))
		})
	}
}

func TestFindAccommodationsAll(t *testing.T) {
	got := FindAccommodations(testAccommodations(), "Paris", "all")
	require.Len(t, got, 3)
	// Equal location similarity sorts cheapest first.
	assert.Equal(t, "Camping de Paris", got[0].Name)
	assert.Equal(t, "Le Village Hostel", got[1].Name)
	assert.Equal(t, "Hotel du Nord", got[2].Name)
}

func TestFindAccommodationsTypeFilter(t *testing.T) {
	got := FindAccommodations(testAccommodations(), "Paris", "hostels")
	require.Len(t, got, 1)
	assert.Equal(t, "Le Village Hostel", got[0].Name)
}

func TestFindAccommodationsUnknownFilterMeansAll(t *testing.T) {
	got := FindAccommodations(testAccommodations(), "Paris", "igloo")
	assert.Len(t, got, 3)
}

func TestFindAccommodationsFuzzyLocation(t *testing.T) {
	got := FindAccommodations(testAccommodations(), "Pariss", "all")
	assert.Len(t, got, 3)
}

func TestFindAccommodationsNotFound(t *testing.T) {
	got := FindAccommodations(testAccommodations(), "Reykjavik", "all")
	assert.Empty(t, got)
}

func testWeather() []dataset.WeatherRecord {
	return []dataset.WeatherRecord{
		{Location: "Paris", Month: "July", AvgTemperatureC: 19.0},
		{Location: "Paris", Month: "April", AvgTemperatureC: 12.0},
		{Location: "Amsterdam", Month: "July", AvgTemperatureC: 18.0},
	}
}

func TestFindWeatherExactMonth(t *testing.T) {
	rec, ok := FindWeather(testWeather(), "Paris", "July")
	require.True(t, ok)
	assert.Equal(t, 19.0, rec.AvgTemperatureC)
}

func TestFindWeatherMonthForms(t *testing.T) {
	for _, month := range []string{"7", "jul", "JULY"} {
		rec, ok := FindWeather(testWeather(), "Paris", month)
		require.True(t, ok, "month form %q", month)
		assert.Equal(t, "July", rec.Month)
	}
}

func TestFindWeatherMonthIsExact(t *testing.T) {
	// Fuzzy matching applies to the location only, never the month.
	_, ok := FindWeather(testWeather(), "Paris", "June")
	assert.False(t, ok)
}

func TestFindWeatherUnknownMonth(t *testing.T) {
	_, ok := FindWeather(testWeather(), "Paris", "smarch")
	assert.False(t, ok)
}

func TestFindWeatherFuzzyLocation(t *testing.T) {
	rec, ok := FindWeather(testWeather(), "amsterdm", "July")
	require.True(t, ok)
	assert.Equal(t, "Amsterdam", rec.Location)
}

func TestFindElevation(t *testing.T) {
	records := []dataset.ElevationRecord{
		{Location: "Paris", ElevationM: 35.0},
		{Location: "Innsbruck", ElevationM: 574.0},
	}

	rec, ok := FindElevation(records, "innsbruck")
	require.True(t, ok)
	assert.Equal(t, 574.0, rec.ElevationM)

	_, ok = FindElevation(records, "Lhasa")
	assert.False(t, ok)
}

func testPOIs() []dataset.PointOfInterest {
	return []dataset.PointOfInterest{
		{Name: "Louvre Museum", Category: "cultural", Location: "Paris", Rating: 4.9},
		{Name: "Eiffel Tower", Category: "historical", Location: "Paris", Rating: 4.8},
		{Name: "Bois de Boulogne", Category: "natural", Location: "Paris", Rating: 4.3},
		{Name: "Rijksmuseum", Category: "cultural", Location: "Amsterdam", Rating: 4.8},
	}
}

func TestFindPointsOfInterest(t *testing.T) {
	got := FindPointsOfInterest(testPOIs(), "Paris", "")
	require.Len(t, got, 3)
	// Equal similarity sorts by rating descending.
	assert.Equal(t, "Louvre Museum", got[0].Name)
	assert.Equal(t, "Eiffel Tower", got[1].Name)
}

func TestFindPointsOfInterestCategoryFilter(t *testing.T) {
	got := FindPointsOfInterest(testPOIs(), "Paris", "Cultural")
	require.Len(t, got, 1)
	assert.Equal(t, "Louvre Museum", got[0].Name)
}

func TestFindPointsOfInterestUnknownCategory(t *testing.T) {
	got := FindPointsOfInterest(testPOIs(), "Paris", "underwater")
	assert.Empty(t, got)
}

func testVisaRules() []dataset.VisaRule {
	cost := 50.0
	return []dataset.VisaRule{
		{Destination: "Turkey", Nationality: "US", VisaRequired: true, VisaType: "e-Visa", CostUSD: &cost},
		{Destination: "France", Nationality: "US", VisaRequired: false, VisaType: "Visa-free (Schengen)"},
	}
}

func TestFindVisaRule(t *testing.T) {
	rule, ok := FindVisaRule(testVisaRules(), "Turkey", "US")
	require.True(t, ok)
	assert.True(t, rule.VisaRequired)
	require.NotNil(t, rule.CostUSD)
	assert.Equal(t, 50.0, *rule.CostUSD)
}

func TestFindVisaRuleBothFieldsMustQualify(t *testing.T) {
	_, ok := FindVisaRule(testVisaRules(), "Turkey", "Japanese")
	assert.False(t, ok)
}

func TestFindVisaRuleNotFound(t *testing.T) {
	_, ok := FindVisaRule(testVisaRules(), "Mongolia", "US")
	assert.False(t, ok)
}
