package form

import (
	"regexp"
	"strings"
)

// Genres is the fixed list a venue or artist genre must come from.
var Genres = []string{
	"Alternative",
	"Blues",
	"Classical",
	"Country",
	"Electronic",
	"Folk",
	"Funk",
	"Hip-Hop",
	"Heavy Metal",
	"Instrumental",
	"Jazz",
	"Musical Theater",
	"Pop",
	"R&B",
	"Reggae",
	"Rock n Roll",
	"Soul",
	"Swing",
	"Other",
}

// States holds the two-letter codes of the 50 states plus DC.
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

// phonePattern accepts most North American numbers: optional +1, an
// optional area code with or without parentheses, space/dot/hyphen
// separators and an optional extension. Area code and exchange cannot start
// with 0 or 1.
var phonePattern = regexp.MustCompile(`^(?:(?:\+?1\s*(?:[.-]\s*)?)?(?:\(\s*([2-9]1[02-9]|[2-9][02-8]1|[2-9][02-8][02-9])\s*\)|([2-9]1[02-9]|[2-9][02-8]1|[2-9][02-8][02-9]))\s*(?:[.-]\s*)?)?([2-9]1[02-9]|[2-9][02-9]1|[2-9][02-9]{2})\s*(?:[.-]\s*)?([0-9]{4})(?:\s*(?:#|x\.?|ext\.?|extension)\s*(\d+))?$`)

var (
	genreSet = toSet(Genres)
	stateSet = toSet(States)
)

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// IsGenre reports whether g is one of Genres.
func IsGenre(g string) bool {
	_, ok := genreSet[g]
	return ok
}

// IsState reports whether s is one of States.
func IsState(s string) bool {
	_, ok := stateSet[s]
	return ok
}

// IsPhone reports whether p has an accepted phone number shape.
func IsPhone(p string) bool {
	return phonePattern.MatchString(p)
}

func invalidChoiceMessage(valid []string) string {
	return "Invalid value, must be one of: " + strings.Join(valid, ", ") + "."
}
