package core

import "strings"

// Filter narrows a lesson query. Empty fields impose no constraint.
type Filter struct {
	StudentName string // case-insensitive substring
	StudentID   string // exact, case-sensitive
	Topic       string // case-insensitive substring
	Month       string // prefix of the derived month, "2024" matches the whole year
}

// IsEmpty reports whether the filter matches every lesson.
func (f Filter) IsEmpty() bool {
	return f.StudentName == "" && f.StudentID == "" && f.Topic == "" && f.Month == ""
}

// Matches reports whether l satisfies every supplied criterion.
func (f Filter) Matches(l Lesson) bool {
	if f.StudentName != "" && !containsFold(l.StudentName, f.StudentName) {
		return false
	}
	if f.StudentID != "" && f.StudentID != l.StudentID {
		return false
	}
	if f.Topic != "" && !containsFold(l.Topic, f.Topic) {
		return false
	}
	if f.Month != "" && (l.Month == "" || !strings.HasPrefix(l.Month, f.Month)) {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
