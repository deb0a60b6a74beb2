// Package elevation derives climbing metrics and a difficulty rating
// from an ordered sequence of elevation samples along a route.
package elevation

import (
	"errors"

	"github.com/samber/lo"
)

// Difficulty ratings, keyed to average gradient in meters of climbing
// per kilometer. Intervals are half-open with the lower bound inclusive.
const (
	DifficultyEasy     = "Easy"
	DifficultyModerate = "Moderate"
	DifficultyHard     = "Hard"
	DifficultyVeryHard = "Very Hard"
)

// ErrTooFewPoints is returned when fewer than two samples are supplied;
// gain and loss are pairwise quantities.
var ErrTooFewPoints = errors.New("elevation profile needs at least 2 waypoints")

// Point is one elevation sample along the route.
type Point struct {
	Name       string  `json:"name"`
	ElevationM float64 `json:"elevation_m"`
}

// Profile aggregates the climbing metrics of a route.
type Profile struct {
	TotalGainM        float64 `json:"total_elevation_gain"`
	TotalLossM        float64 `json:"total_elevation_loss"`
	MaxElevationM     float64 `json:"max_elevation"`
	MaxElevationPoint string  `json:"max_elevation_waypoint"`
	MinElevationM     float64 `json:"min_elevation"`
	MinElevationPoint string  `json:"min_elevation_waypoint"`
	GradientMPerKM    float64 `json:"average_gradient_m_per_km"`
	Difficulty        string  `json:"difficulty_rating"`
	Points            []Point `json:"profile"`
}

// DifficultyRating classifies an average gradient (total gain divided
// by distance, in m/km).
func DifficultyRating(gradientMPerKM float64) string {
	switch {
	case gradientMPerKM < 10:
		return DifficultyEasy
	case gradientMPerKM < 30:
		return DifficultyModerate
	case gradientMPerKM < 50:
		return DifficultyHard
	default:
		return DifficultyVeryHard
	}
}

// BuildProfile computes cumulative gain and loss, the extrema with
// their owning waypoints, the average gradient and the difficulty
// rating for an ordered sequence of samples. A zero distance yields a
// zero gradient rather than a division failure.
func BuildProfile(points []Point, distanceKM float64) (*Profile, error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}

	var gain, loss float64
	for i := 0; i < len(points)-1; i++ {
		delta := points[i+1].ElevationM - points[i].ElevationM
		if delta > 0 {
			gain += delta
		} else {
			loss += -delta
		}
	}

	highest := lo.MaxBy(points, func(a, b Point) bool {
		return a.ElevationM > b.ElevationM
	})
	lowest := lo.MinBy(points, func(a, b Point) bool {
		return a.ElevationM < b.ElevationM
	})

	gradient := 0.0
	if distanceKM > 0 {
		gradient = gain / distanceKM
	}

	return &Profile{
		TotalGainM:        gain,
		TotalLossM:        loss,
		MaxElevationM:     highest.ElevationM,
		MaxElevationPoint: highest.Name,
		MinElevationM:     lowest.ElevationM,
		MinElevationPoint: lowest.Name,
		GradientMPerKM:    gradient,
		Difficulty:        DifficultyRating(gradient),
		Points:            points,
	}, nil
}
