package bank

import (
	"strings"

	"github.com/agext/levenshtein"
)

// fuzzyThreshold is the minimum similarity for a short answer to count
// as correct when it is not an exact match.
const fuzzyThreshold = 0.8

// MatchShortAnswer reports whether the user's answer matches one of the
// accepted answers, case-insensitively, with fuzzy matching for near
// misses (typos). Similarity is normalized Levenshtein with unit edit
// costs, so a 12-letter answer tolerates two typos but not three.
func MatchShortAnswer(userAnswer string, acceptable []string) bool {
	user := strings.ToLower(strings.TrimSpace(userAnswer))
	for _, a := range acceptable {
		want := strings.ToLower(strings.TrimSpace(a))
		if user == want {
			return true
		}
		if levenshtein.Similarity(user, want, nil) >= fuzzyThreshold {
			return true
		}
	}
	return false
}
