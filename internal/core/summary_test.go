package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func lesson(name, id, date string, minutes int, rate string) Lesson {
	d, _ := ParseDate(date)
	return Lesson{
		StudentName:     name,
		StudentID:       id,
		Date:            d,
		DurationMinutes: minutes,
		HourlyRate:      decimal.RequireFromString(rate),
		Performance:     7,
	}.Finalize()
}

func TestSummarizeAndMonthlyBreakdownReconcile(t *testing.T) {
	lessons := []Lesson{
		lesson("Ann", "S1", "2024-03-15", 90, "20"),
		lesson("Bob", "S2", "2024-03-20", 45, "30"),
		lesson("Ann", "S1", "2024-01-05", 60, "20"),
		lesson("Cleo", "S3", "2023-12-30", 30, "50"),
	}
	total := Summarize(lessons)
	if total.TotalLessons != 4 {
		t.Fatalf("lessons: %d", total.TotalLessons)
	}
	if !total.TotalIncome.Equal(decimal.RequireFromString("97.5")) {
		t.Fatalf("income: %s", total.TotalIncome)
	}
	if !total.TotalHours.Equal(decimal.RequireFromString("3.75")) {
		t.Fatalf("hours: %s", total.TotalHours)
	}

	months := MonthlyBreakdown(lessons)
	var keys []string
	income, hours, count := decimal.Zero, decimal.Zero, 0
	for _, m := range months {
		keys = append(keys, m.Month)
		income = income.Add(m.Income)
		hours = hours.Add(m.Hours)
		count += m.Lessons
	}
	if diff := cmp.Diff([]string{"2023-12", "2024-01", "2024-03"}, keys); diff != "" {
		t.Fatalf("month order (-want +got):\n%s", diff)
	}
	if !income.Equal(total.TotalIncome) || !hours.Equal(total.TotalHours) || count != total.TotalLessons {
		t.Fatalf("monthly totals do not reconcile: %s %s %d vs %+v", income, hours, count, total)
	}
}

func TestSummarizeRoundsOnce(t *testing.T) {
	// Three 20 minute lessons: 0.333.. hours each, exactly one hour in total.
	lessons := []Lesson{
		lesson("A", "1", "2024-01-01", 20, "10"),
		lesson("A", "1", "2024-01-02", 20, "10"),
		lesson("A", "1", "2024-01-03", 20, "10"),
	}
	if got := Summarize(lessons).TotalHours; !got.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("hours: %s", got)
	}
}

// Each month is rounded on its own, so monthly hours need not add up to
// the rounded total.
func TestMonthlyHoursRoundPerMonth(t *testing.T) {
	lessons := []Lesson{
		lesson("Ann", "S1", "2024-03-01", 10, "60"),
		lesson("Ann", "S1", "2024-04-01", 10, "60"),
	}
	total := Summarize(lessons)
	if !total.TotalHours.Equal(decimal.RequireFromString("0.33")) {
		t.Fatalf("total hours = %s", total.TotalHours)
	}
	sum := decimal.Zero
	for _, m := range MonthlyBreakdown(lessons) {
		if !m.Hours.Equal(decimal.RequireFromString("0.17")) {
			t.Fatalf("%s hours = %s", m.Month, m.Hours)
		}
		sum = sum.Add(m.Hours)
	}
	if !sum.Equal(decimal.RequireFromString("0.34")) {
		t.Fatalf("monthly hours sum = %s", sum)
	}
}

func TestMonthlyBreakdownSkipsLessonsWithoutMonth(t *testing.T) {
	months := MonthlyBreakdown([]Lesson{{DurationMinutes: 60}})
	if len(months) != 0 {
		t.Fatalf("expected no months, got %v", months)
	}
	if got := MonthlyBreakdown(nil); len(got) != 0 {
		t.Fatalf("expected empty breakdown, got %v", got)
	}
}

func TestStudentsDistinctSortedNonEmpty(t *testing.T) {
	lessons := []Lesson{
		{StudentName: "Bob", StudentID: "S2"},
		{StudentName: " Ann ", StudentID: "S1"},
		{StudentName: "Ann", StudentID: "S1"},
		{StudentName: "Ann", StudentID: "S9"},
		{StudentName: "", StudentID: "S3"},
		{StudentName: "Dan", StudentID: "  "},
	}
	want := []Student{{"Ann", "S1"}, {"Ann", "S9"}, {"Bob", "S2"}}
	if diff := cmp.Diff(want, Students(lessons)); diff != "" {
		t.Fatalf("students (-want +got):\n%s", diff)
	}
}

func TestStudentLookupsAgreeOnFirstOccurrence(t *testing.T) {
	lessons := []Lesson{
		{StudentName: "Ann", StudentID: ""},
		{StudentName: "Ann", StudentID: "S1"},
		{StudentName: "Ann", StudentID: "S7"},
		{StudentName: "Bob", StudentID: "S2"},
	}
	id, ok := LookupStudentID(lessons, " ann ")
	if !ok || id != "S1" {
		t.Fatalf("lookup: %q %v", id, ok)
	}
	if diff := cmp.Diff(map[string]string{"Ann": "S1", "Bob": "S2"}, StudentNameToID(lessons)); diff != "" {
		t.Fatalf("name map (-want +got):\n%s", diff)
	}
	if _, ok := LookupStudentID(lessons, "Zed"); ok {
		t.Fatalf("unexpected match for unknown student")
	}
}
