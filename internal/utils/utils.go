package utils

import "strings"

// ShortID returns the first block of a workout id, enough to tell workouts
// apart on screen.
func ShortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// MatchID finds the single id in ids starting with prefix. An exact match wins.
func MatchID(ids []string, prefix string) (string, bool) {
	if prefix == "" {
		return "", false
	}

	var found string
	for _, id := range ids {
		if id == prefix {
			return id, true
		}
		if strings.HasPrefix(id, prefix) {
			if found != "" {
				return "", false
			}
			found = id
		}
	}
	return found, found != ""
}
