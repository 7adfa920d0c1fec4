package elo

// DifficultyCategory maps a question rating to a display label.
func DifficultyCategory(rating float64) string {
	switch {
	case rating < 1000:
		return "Very Easy"
	case rating < 1200:
		return "Easy"
	case rating < 1400:
		return "Medium"
	case rating < 1600:
		return "Hard"
	case rating < 1800:
		return "Very Hard"
	default:
		return "Expert"
	}
}

// UserLevel maps a user rating to a display label.
func UserLevel(rating float64) string {
	switch {
	case rating < 1000:
		return "Beginner"
	case rating < 1200:
		return "Novice"
	case rating < 1400:
		return "Intermediate"
	case rating < 1600:
		return "Advanced"
	case rating < 1800:
		return "Expert"
	default:
		return "Master"
	}
}
