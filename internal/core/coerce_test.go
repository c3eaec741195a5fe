package core

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCoerceInt(t *testing.T) {
	if c := CoerceInt(" 45 ", 0); c.Defaulted || c.Value != 45 {
		t.Fatalf("unexpected %+v", c)
	}
	if c := CoerceInt("abc", 7); !c.Defaulted || c.Value != 7 || c.Reason == nil {
		t.Fatalf("unexpected %+v", c)
	}
	if c := CoerceInt("", 5); !c.Defaulted || !errors.Is(c.Reason, ErrEmptyField) {
		t.Fatalf("unexpected %+v", c)
	}
	if c := CoerceInt("4.5", 0); !c.Defaulted {
		t.Fatalf("fractional value should not parse as int: %+v", c)
	}
}

func TestCoerceDecimalAndDate(t *testing.T) {
	if c := CoerceDecimal("20.0", decimal.Zero); c.Defaulted || !c.Value.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("unexpected %+v", c)
	}
	if c := CoerceDecimal("twenty", decimal.Zero); !c.Defaulted || !c.Value.IsZero() {
		t.Fatalf("unexpected %+v", c)
	}
	today := NewDate(2030, 1, 2)
	if c := CoerceDate("2024-03-15", today); c.Defaulted || !c.Value.Equal(NewDate(2024, 3, 15)) {
		t.Fatalf("unexpected %+v", c)
	}
	if c := CoerceDate("15.03.2024", today); !c.Defaulted || !c.Value.Equal(today) {
		t.Fatalf("unexpected %+v", c)
	}
}

func TestRawLessonDecode(t *testing.T) {
	today := NewDate(2030, 1, 2)
	raw := RawLesson{
		StudentName:     "Ann",
		StudentID:       "S1",
		Date:            "2024-03-15",
		Month:           "",
		DurationMinutes: "ninety",
		HourlyRate:      "20.0",
		TotalIncome:     "30.0",
		Topic:           "Algebra",
		Performance:     "",
	}
	l, issues := raw.Decode(today)
	if l.Month != "2024-03" {
		t.Fatalf("month should be back-filled from date, got %q", l.Month)
	}
	if l.DurationMinutes != 0 {
		t.Fatalf("duration should default to 0, got %d", l.DurationMinutes)
	}
	if l.Performance != DefaultPerformance {
		t.Fatalf("performance should default to %d, got %d", DefaultPerformance, l.Performance)
	}
	if !l.HourlyRate.Equal(decimal.NewFromInt(20)) || !l.TotalIncome.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("unexpected money fields %s %s", l.HourlyRate, l.TotalIncome)
	}
	fields := map[string]bool{}
	for _, is := range issues {
		fields[is.Field] = true
	}
	if len(issues) != 2 || !fields["duration_minutes"] || !fields["student_performance"] {
		t.Fatalf("unexpected issues %v", issues)
	}
}

func TestRawLessonDecodeBadDateUsesTodayButKeepsRawMonth(t *testing.T) {
	today := NewDate(2030, 1, 2)
	l, issues := RawLesson{Date: "2024/03/15"}.Decode(today)
	if !l.Date.Equal(today) {
		t.Fatalf("date should default to today, got %v", l.Date)
	}
	if l.Month != "2024/03" {
		t.Fatalf("month should come from the raw text, got %q", l.Month)
	}
	if len(issues) == 0 || issues[0].Field != "date" {
		t.Fatalf("expected a date issue first, got %v", issues)
	}
}

func TestRawLessonDecodeUnpaddedDate(t *testing.T) {
	today := NewDate(2030, 1, 2)
	l, issues := RawLesson{Date: "2024-3-15", DurationMinutes: "60", HourlyRate: "20", TotalIncome: "20", Performance: "8"}.Decode(today)
	if len(issues) != 0 {
		t.Fatalf("unexpected issues %v", issues)
	}
	if !l.Date.Equal(NewDate(2024, 3, 15)) || l.Month != "2024-03" {
		t.Fatalf("date/month = %v %q", l.Date, l.Month)
	}
	if l.Raw().Date != "2024-03-15" {
		t.Fatalf("date should be written padded, got %q", l.Raw().Date)
	}
}

func TestLessonRawRoundTrip(t *testing.T) {
	l := Lesson{
		StudentName:     "李雷",
		StudentID:       "S2",
		Date:            NewDate(2024, 5, 1),
		DurationMinutes: 50,
		HourlyRate:      decimal.NewFromInt(25),
		Topic:           "Reading, part 1",
		Performance:     9,
		Notes:           "line one\nline two",
	}.Finalize()
	raw := l.Raw()
	if raw.TotalIncome != "20.83" || raw.Month != "2024-05" || raw.Date != "2024-05-01" {
		t.Fatalf("unexpected raw %+v", raw)
	}
	back, issues := raw.Decode(NewDate(2030, 1, 1))
	if len(issues) != 0 {
		t.Fatalf("unexpected issues %v", issues)
	}
	if back.Notes != l.Notes || !back.TotalIncome.Equal(l.TotalIncome) || !back.Date.Equal(l.Date) {
		t.Fatalf("round trip mismatch: %+v vs %+v", back, l)
	}
}
