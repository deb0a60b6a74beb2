package match

import (
	"sort"

	"github.com/veloplan/tripmcp/pkg/dataset"
)

// FindRoute resolves a route by fuzzy-matching both endpoints. A route
// qualifies only when start and end each reach the threshold; among
// qualifying routes the highest mean similarity wins, with first-seen
// order breaking exact ties.
func FindRoute(routes []dataset.Route, start, end string) (*dataset.Route, bool) {
	normStart := Normalize(start)
	normEnd := Normalize(end)

	var best *dataset.Route
	bestScore := 0.0

	for i := range routes {
		route := &routes[i]
		startSim := Ratio(normStart, Normalize(route.StartPoint))
		endSim := Ratio(normEnd, Normalize(route.EndPoint))
		avg := (startSim + endSim) / 2

		if startSim >= DefaultThreshold && endSim >= DefaultThreshold && avg > bestScore {
			bestScore = avg
			best = route
		}
	}
	return best, best != nil
}

// NormalizeAccommodationType maps filter synonyms onto the canonical
// accommodation types. Unrecognized values mean "all".
func NormalizeAccommodationType(filter string) string {
	switch Normalize(filter) {
	case "camp", "camping", "campings":
		return dataset.TypeCamping
	case "hostel", "hostels":
		return dataset.TypeHostel
	case "hotel", "hotels":
		return dataset.TypeHotel
	default:
		return "all"
	}
}

// FindAccommodations returns every accommodation whose location reaches
// the similarity threshold, optionally filtered by type. Results are
// ordered by descending location similarity (the best similarity seen
// for that location label) and then by ascending price, so equally
// well-matched locations list cheapest first.
func FindAccommodations(accommodations []dataset.Accommodation, location, typeFilter string) []dataset.Accommodation {
	normLoc := Normalize(location)
	wantType := NormalizeAccommodationType(typeFilter)

	locationSim := make(map[string]float64)
	var matched []dataset.Accommodation

	for _, acc := range accommodations {
		accLoc := Normalize(acc.Location)
		sim := Ratio(normLoc, accLoc)
		if sim < DefaultThreshold {
			continue
		}
		if sim > locationSim[accLoc] {
			locationSim[accLoc] = sim
		}
		if wantType != "all" && Normalize(acc.Type) != wantType {
			continue
		}
		matched = append(matched, acc)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		simI := locationSim[Normalize(matched[i].Location)]
		simJ := locationSim[Normalize(matched[j].Location)]
		if simI != simJ {
			return simI > simJ
		}
		return matched[i].PricePerNight < matched[j].PricePerNight
	})
	return matched
}

// FindWeather resolves a weather record by exact canonical month and
// fuzzy location. Month input accepts "1".."12", abbreviations and full
// names; an unrecognized month never matches.
func FindWeather(records []dataset.WeatherRecord, location, month string) (*dataset.WeatherRecord, bool) {
	canonMonth, ok := CanonicalMonth(month)
	if !ok {
		return nil, false
	}

	normLoc := Normalize(location)
	normMonth := Normalize(canonMonth)

	var best *dataset.WeatherRecord
	bestScore := 0.0

	for i := range records {
		rec := &records[i]
		if Normalize(rec.Month) != normMonth {
			continue
		}
		sim := Ratio(normLoc, Normalize(rec.Location))
		if sim >= DefaultThreshold && sim > bestScore {
			bestScore = sim
			best = rec
		}
	}
	return best, best != nil
}

// FindElevation resolves the elevation record best matching a location.
func FindElevation(records []dataset.ElevationRecord, location string) (*dataset.ElevationRecord, bool) {
	normLoc := Normalize(location)

	var best *dataset.ElevationRecord
	bestScore := 0.0

	for i := range records {
		rec := &records[i]
		sim := Ratio(normLoc, Normalize(rec.Location))
		if sim >= DefaultThreshold && sim > bestScore {
			bestScore = sim
			best = rec
		}
	}
	return best, best != nil
}

// FindPointsOfInterest returns every point of interest whose location
// reaches the threshold, optionally filtered by category (exact,
// case-insensitive). Results are ordered by descending location
// similarity, then descending rating, then name.
func FindPointsOfInterest(pois []dataset.PointOfInterest, location, category string) []dataset.PointOfInterest {
	normLoc := Normalize(location)
	normCat := Normalize(category)

	sims := make(map[string]float64)
	var matched []dataset.PointOfInterest

	for _, poi := range pois {
		sim := Ratio(normLoc, Normalize(poi.Location))
		if sim < DefaultThreshold {
			continue
		}
		if normCat != "" && Normalize(poi.Category) != normCat {
			continue
		}
		sims[poi.Name] = sim
		matched = append(matched, poi)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if sims[matched[i].Name] != sims[matched[j].Name] {
			return sims[matched[i].Name] > sims[matched[j].Name]
		}
		if matched[i].Rating != matched[j].Rating {
			return matched[i].Rating > matched[j].Rating
		}
		return matched[i].Name < matched[j].Name
	})
	return matched
}

// FindVisaRule resolves a visa rule by fuzzy-matching destination and
// nationality. Both fields must reach the threshold; the highest mean
// similarity wins, first-seen order breaking ties.
func FindVisaRule(rules []dataset.VisaRule, destination, nationality string) (*dataset.VisaRule, bool) {
	normDest := Normalize(destination)
	normNat := Normalize(nationality)

	var best *dataset.VisaRule
	bestScore := 0.0

	for i := range rules {
		rule := &rules[i]
		destSim := Ratio(normDest, Normalize(rule.Destination))
		natSim := Ratio(normNat, Normalize(rule.Nationality))
		avg := (destSim + natSim) / 2

		if destSim >= DefaultThreshold && natSim >= DefaultThreshold && avg > bestScore {
			bestScore = avg
			best = rule
		}
	}
	return best, best != nil
}
