// Package dataset provides the immutable reference collections backing
// the trip planner tools: routes, accommodations, weather, elevations,
// points of interest and visa rules, loaded once from static JSON files.
package dataset

// Waypoint is a named stop along a route with its cumulative distance
// from the route's start in kilometers.
type Waypoint struct {
	Name string  `json:"name"`
	KM   float64 `json:"km"`
}

// Route describes a cycling route between two locations.
type Route struct {
	StartPoint  string     `json:"start_point"`
	EndPoint    string     `json:"end_point"`
	DistanceKM  float64    `json:"distance_km"`
	Difficulty  string     `json:"difficulty"`
	Description string     `json:"description,omitempty"`
	Waypoints   []Waypoint `json:"waypoints"`
}

// Accommodation types.
const (
	TypeCamping = "camping"
	TypeHostel  = "hostel"
	TypeHotel   = "hotel"
)

// Accommodation is a place to stay with a nightly price.
type Accommodation struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"price_per_night"`
	Currency      string  `json:"currency"`
	Rating        float64 `json:"rating,omitempty"`
	Description   string  `json:"description,omitempty"`
}

// WeatherRecord holds the typical weather for a location and month.
type WeatherRecord struct {
	Location           string  `json:"location"`
	Month              string  `json:"month"`
	AvgTemperatureC    float64 `json:"avg_temperature_c"`
	MinTemperatureC    float64 `json:"min_temperature_c"`
	MaxTemperatureC    float64 `json:"max_temperature_c"`
	PrecipitationMM    float64 `json:"precipitation_mm"`
	RainyDays          int     `json:"rainy_days"`
	Conditions         string  `json:"conditions"`
	CyclingSuitability string  `json:"cycling_suitability"`
}

// ElevationRecord holds the base elevation of a location in meters
// above sea level.
type ElevationRecord struct {
	Location   string  `json:"location"`
	ElevationM float64 `json:"elevation_m"`
}

// PointOfInterest is a sight or attraction near a location.
type PointOfInterest struct {
	Name                 string  `json:"name"`
	Category             string  `json:"category"`
	Location             string  `json:"location"`
	Description          string  `json:"description,omitempty"`
	Rating               float64 `json:"rating,omitempty"`
	DistanceFromCenterKM float64 `json:"distance_from_center_km,omitempty"`
}

// VisaRule describes visa requirements for one nationality traveling to
// one destination. CostUSD is nil when no cost is published.
type VisaRule struct {
	Destination    string   `json:"destination"`
	Nationality    string   `json:"nationality"`
	VisaRequired   bool     `json:"visa_required"`
	VisaType       string   `json:"visa_type"`
	ProcessingTime string   `json:"processing_time"`
	DurationOfStay string   `json:"duration_of_stay"`
	CostUSD        *float64 `json:"cost_usd,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}
