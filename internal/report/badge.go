package report

// PerformanceBadge maps a 1-10 score to the emoji shown next to it.
func PerformanceBadge(score int) string {
	switch {
	case score >= 9:
		return "🌟"
	case score >= 7:
		return "👍"
	case score >= 5:
		return "😐"
	default:
		return "💪"
	}
}
