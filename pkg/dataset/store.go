package dataset

import (
	"io/fs"
	"log/slog"
	"os"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Collection file names inside a data directory.
const (
	RoutesFile         = "routes.json"
	AccommodationsFile = "accommodations.json"
	WeatherFile        = "weather.json"
	ElevationsFile     = "elevations.json"
	POIFile            = "points_of_interest.json"
	VisaRulesFile      = "visa_rules.json"
)

// Store holds all reference collections. It is built once at startup and
// never mutated afterwards, so it is safe for concurrent readers.
type Store struct {
	Routes           []Route
	Accommodations   []Accommodation
	Weather          []WeatherRecord
	Elevations       []ElevationRecord
	PointsOfInterest []PointOfInterest
	VisaRules        []VisaRule
}

// Load builds a Store from the JSON files in dir. An empty dir loads the
// embedded default datasets. A missing or malformed file degrades to an
// empty collection with a warning; Load never fails.
func Load(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	var fsys fs.FS
	if dir == "" {
		fsys = defaultData()
		logger.Info("loading embedded default datasets")
	} else {
		fsys = os.DirFS(dir)
		logger.Info("loading datasets", "dir", dir)
	}

	s := &Store{}
	s.Routes = loadCollection[Route](fsys, RoutesFile, "routes", logger)
	s.Accommodations = loadCollection[Accommodation](fsys, AccommodationsFile, "accommodations", logger)
	s.Weather = loadCollection[WeatherRecord](fsys, WeatherFile, "weather", logger)
	s.Elevations = loadCollection[ElevationRecord](fsys, ElevationsFile, "elevations", logger)
	s.PointsOfInterest = loadCollection[PointOfInterest](fsys, POIFile, "points_of_interest", logger)
	s.VisaRules = loadCollection[VisaRule](fsys, VisaRulesFile, "visa_rules", logger)
	return s
}

// loadCollection reads one collection file. The file holds a single
// object with the collection under key, e.g. {"routes": [...]}.
func loadCollection[T any](fsys fs.FS, file, key string, logger *slog.Logger) []T {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		logger.Warn("dataset file not readable, using empty collection",
			"file", file, "error", err)
		return nil
	}

	var doc map[string][]T
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Warn("dataset file not parsable, using empty collection",
			"file", file, "error", err)
		return nil
	}

	records := doc[key]
	logger.Info("loaded dataset", "collection", key, "records", len(records))
	return records
}
