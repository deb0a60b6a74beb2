package match

import "strconv"

// monthNames in calendar order; index+1 is the month number.
var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// CanonicalMonth converts a month given as a number ("1".."12"), a
// three-letter abbreviation ("jan") or a full name ("January"),
// case-insensitively, into the canonical full month name. The second
// return value reports whether the input was recognized.
func CanonicalMonth(s string) (string, bool) {
	normalized := Normalize(s)
	if normalized == "" {
		return "", false
	}

	if n, err := strconv.Atoi(normalized); err == nil {
		if n >= 1 && n <= 12 {
			return monthNames[n-1], true
		}
		return "", false
	}

	for _, name := range monthNames {
		full := Normalize(name)
		if normalized == full || normalized == full[:3] {
			return name, true
		}
	}
	return "", false
}
