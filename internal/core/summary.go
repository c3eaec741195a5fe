package core

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Student is a distinct (name, id) pair seen in the ledger.
type Student struct {
	Name string
	ID   string
}

// FinancialSummary aggregates every lesson in the ledger.
type FinancialSummary struct {
	TotalIncome  decimal.Decimal
	TotalHours   decimal.Decimal
	TotalLessons int
}

// MonthSummary is the per-month slice of the ledger.
type MonthSummary struct {
	Month   string // YYYY-MM
	Lessons int
	Hours   decimal.Decimal
	Income  decimal.Decimal
}

// Totals accumulates lesson count, minutes and stored income. Values are
// kept exact and only rounded when a summary is produced.
type Totals struct {
	lessons int
	minutes int64
	income  decimal.Decimal
}

func (t *Totals) Add(l Lesson) {
	t.lessons++
	t.minutes += int64(l.DurationMinutes)
	t.income = t.income.Add(l.TotalIncome)
}

func (t Totals) Summary() FinancialSummary {
	return FinancialSummary{
		TotalIncome:  t.income.Round(MoneyPlaces),
		TotalHours:   minutesToHours(t.minutes).Round(MoneyPlaces),
		TotalLessons: t.lessons,
	}
}

// MonthlyTotals groups lessons by derived month. Lessons without a month
// are left out.
type MonthlyTotals struct {
	byMonth map[string]*Totals
}

func NewMonthlyTotals() *MonthlyTotals {
	return &MonthlyTotals{byMonth: make(map[string]*Totals)}
}

func (m *MonthlyTotals) Add(l Lesson) {
	if l.Month == "" {
		return
	}
	t, ok := m.byMonth[l.Month]
	if !ok {
		t = &Totals{}
		m.byMonth[l.Month] = t
	}
	t.Add(l)
}

// Result returns the months in ascending key order.
func (m *MonthlyTotals) Result() []MonthSummary {
	out := make([]MonthSummary, 0, len(m.byMonth))
	for month, t := range m.byMonth {
		s := t.Summary()
		out = append(out, MonthSummary{
			Month:   month,
			Lessons: s.TotalLessons,
			Hours:   s.TotalHours,
			Income:  s.TotalIncome,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// StudentSet collects distinct non-empty (name, id) pairs.
type StudentSet struct {
	seen map[Student]struct{}
}

func NewStudentSet() *StudentSet {
	return &StudentSet{seen: make(map[Student]struct{})}
}

func (s *StudentSet) Add(l Lesson) {
	name := strings.TrimSpace(l.StudentName)
	id := strings.TrimSpace(l.StudentID)
	if name == "" || id == "" {
		return
	}
	s.seen[Student{Name: name, ID: id}] = struct{}{}
}

// Sorted returns the pairs ordered by name, then id.
func (s *StudentSet) Sorted() []Student {
	out := make([]Student, 0, len(s.seen))
	for st := range s.seen {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// StudentIndex maps student names to ids. The first row seen for a name
// wins, matching LookupStudentID.
type StudentIndex struct {
	ids map[string]string
}

func NewStudentIndex() *StudentIndex {
	return &StudentIndex{ids: make(map[string]string)}
}

func (x *StudentIndex) Add(l Lesson) {
	name := strings.TrimSpace(l.StudentName)
	id := strings.TrimSpace(l.StudentID)
	if name == "" || id == "" {
		return
	}
	if _, ok := x.ids[name]; !ok {
		x.ids[name] = id
	}
}

func (x *StudentIndex) Map() map[string]string {
	out := make(map[string]string, len(x.ids))
	for k, v := range x.ids {
		out[k] = v
	}
	return out
}

// MatchesStudent reports whether l belongs to name under the lookup rules:
// trimmed, case-insensitive equality and a non-empty id.
func MatchesStudent(l Lesson, name string) bool {
	return strings.TrimSpace(l.StudentID) != "" &&
		strings.EqualFold(strings.TrimSpace(l.StudentName), strings.TrimSpace(name))
}

// Summarize, MonthlyBreakdown, Students, StudentNameToID and LookupStudentID
// apply the accumulators above to an in-memory slice.

func Summarize(lessons []Lesson) FinancialSummary {
	var t Totals
	for _, l := range lessons {
		t.Add(l)
	}
	return t.Summary()
}

func MonthlyBreakdown(lessons []Lesson) []MonthSummary {
	m := NewMonthlyTotals()
	for _, l := range lessons {
		m.Add(l)
	}
	return m.Result()
}

func Students(lessons []Lesson) []Student {
	s := NewStudentSet()
	for _, l := range lessons {
		s.Add(l)
	}
	return s.Sorted()
}

func StudentNameToID(lessons []Lesson) map[string]string {
	x := NewStudentIndex()
	for _, l := range lessons {
		x.Add(l)
	}
	return x.Map()
}

func LookupStudentID(lessons []Lesson, name string) (string, bool) {
	for _, l := range lessons {
		if MatchesStudent(l, name) {
			return strings.TrimSpace(l.StudentID), true
		}
	}
	return "", false
}
