// Package schedule turns natural-language periodicity expressions like
// "every 4th night" into concrete per-night accommodation assignments.
// The upstream agent calls this instead of doing modular arithmetic
// itself, which removes a whole class of counting mistakes.
package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The two accepted pattern forms: "every 4th night" (ordinal suffix
// optional) and "every 3 nights".
var (
	ordinalPattern = regexp.MustCompile(`every\s+(\d+)(?:th|rd|st|nd)?\s+night`)
	pluralPattern  = regexp.MustCompile(`every\s+(\d+)\s+nights?`)
)

// ParsePattern extracts the period from a pattern string. It returns
// false when the string matches neither accepted form.
func ParsePattern(pattern string) (int, bool) {
	lower := strings.ToLower(pattern)

	if m := ordinalPattern.FindStringSubmatch(lower); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return n, true
		}
	}
	if m := pluralPattern.FindStringSubmatch(lower); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return n, true
		}
	}
	return 0, false
}

// Plan is a complete per-night accommodation assignment.
type Plan struct {
	TotalNights    int            `json:"total_nights"`
	Schedule       map[int]string `json:"schedule"`
	SpecialNights  []int          `json:"special_nights"`
	Interpretation string         `json:"pattern_interpretation"`
}

// Calculate builds the accommodation plan for a trip: every night from
// 1 to totalNights gets defaultType, except the nights selected by the
// periodic pattern, which get specialType. "Every 4th night" selects
// nights 4, 8, 12 and so on. A period larger than the trip is valid and
// simply selects no nights.
func Calculate(totalNights int, pattern, specialType, defaultType string) (*Plan, error) {
	period, ok := ParsePattern(pattern)
	if !ok {
		return nil, fmt.Errorf("could not parse pattern %q: expected format 'every Xth night' or 'every X nights' (e.g., 'every 4th night')", pattern)
	}
	if period <= 0 {
		return nil, fmt.Errorf("period must be positive, got %d", period)
	}
	if totalNights <= 0 {
		return nil, fmt.Errorf("total nights must be positive, got %d", totalNights)
	}

	specialNights := []int{}
	for night := period; night <= totalNights; night += period {
		specialNights = append(specialNights, night)
	}

	isSpecial := make(map[int]bool, len(specialNights))
	for _, night := range specialNights {
		isSpecial[night] = true
	}

	plan := make(map[int]string, totalNights)
	for night := 1; night <= totalNights; night++ {
		if isSpecial[night] {
			plan[night] = specialType
		} else {
			plan[night] = defaultType
		}
	}

	var interpretation string
	if len(specialNights) > 0 {
		parts := make([]string, len(specialNights))
		for i, night := range specialNights {
			parts[i] = strconv.Itoa(night)
		}
		interpretation = fmt.Sprintf("Using %s on nights %s (every %dth night), %s on all other nights.",
			specialType, strings.Join(parts, ", "), period, defaultType)
	} else {
		interpretation = fmt.Sprintf("Pattern 'every %dth night' results in no special nights for a %d-night trip. Using %s for all nights.",
			period, totalNights, defaultType)
	}

	return &Plan{
		TotalNights:    totalNights,
		Schedule:       plan,
		SpecialNights:  specialNights,
		Interpretation: interpretation,
	}, nil
}
