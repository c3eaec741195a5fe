package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrEmptyField marks a coerced field whose stored value was blank.
var ErrEmptyField = errors.New("empty value")

// Coerced is the outcome of reading one stored field: either the parsed
// value, or the documented default together with the reason it was used.
type Coerced[T any] struct {
	Value     T
	Defaulted bool
	Reason    error
}

// FieldIssue records a field that fell back to its default while decoding.
type FieldIssue struct {
	Field string
	Raw   string
	Err   error
}

func (i FieldIssue) Error() string {
	return fmt.Sprintf("%s %q: %v", i.Field, i.Raw, i.Err)
}

// RawLesson holds one stored row as text, keyed by column.
type RawLesson struct {
	StudentName     string
	StudentID       string
	Date            string
	Month           string
	DurationMinutes string
	HourlyRate      string
	TotalIncome     string
	Topic           string
	Homework        string
	Performance     string
	Notes           string
	NextPlan        string
}

func CoerceInt(raw string, def int) Coerced[int] {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Coerced[int]{Value: def, Defaulted: true, Reason: ErrEmptyField}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Coerced[int]{Value: def, Defaulted: true, Reason: err}
	}
	return Coerced[int]{Value: v}
}

func CoerceDecimal(raw string, def decimal.Decimal) Coerced[decimal.Decimal] {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Coerced[decimal.Decimal]{Value: def, Defaulted: true, Reason: ErrEmptyField}
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Coerced[decimal.Decimal]{Value: def, Defaulted: true, Reason: err}
	}
	return Coerced[decimal.Decimal]{Value: v}
}

func CoerceDate(raw string, def Date) Coerced[Date] {
	if strings.TrimSpace(raw) == "" {
		return Coerced[Date]{Value: def, Defaulted: true, Reason: ErrEmptyField}
	}
	v, err := ParseDate(raw)
	if err != nil {
		return Coerced[Date]{Value: def, Defaulted: true, Reason: err}
	}
	return Coerced[Date]{Value: v}
}

// Decode converts a stored row into a Lesson. It never fails: unreadable
// fields take their defaults (today for the date, 0 for numbers, 5 for the
// performance score) and are reported in the returned issues.
//
// The month comes from the stored column, or from the raw date text when
// that column is blank.
func (r RawLesson) Decode(today Date) (Lesson, []FieldIssue) {
	var issues []FieldIssue
	note := func(field, raw string, reason error) {
		issues = append(issues, FieldIssue{Field: field, Raw: raw, Err: reason})
	}

	date := CoerceDate(r.Date, today)
	if date.Defaulted {
		note("date", r.Date, date.Reason)
	}
	duration := CoerceInt(r.DurationMinutes, 0)
	if duration.Defaulted {
		note("duration_minutes", r.DurationMinutes, duration.Reason)
	}
	rate := CoerceDecimal(r.HourlyRate, decimal.Zero)
	if rate.Defaulted {
		note("hourly_rate", r.HourlyRate, rate.Reason)
	}
	income := CoerceDecimal(r.TotalIncome, decimal.Zero)
	if income.Defaulted {
		note("total_income", r.TotalIncome, income.Reason)
	}
	perf := CoerceInt(r.Performance, DefaultPerformance)
	if perf.Defaulted {
		note("student_performance", r.Performance, perf.Reason)
	}

	month := strings.TrimSpace(r.Month)
	if month == "" {
		month = DeriveMonth(r.Date)
	}

	return Lesson{
		StudentName:     r.StudentName,
		StudentID:       r.StudentID,
		Date:            date.Value,
		Month:           month,
		DurationMinutes: duration.Value,
		HourlyRate:      rate.Value,
		TotalIncome:     income.Value,
		Topic:           r.Topic,
		Homework:        r.Homework,
		Performance:     perf.Value,
		Notes:           r.Notes,
		NextPlan:        r.NextPlan,
	}, issues
}

// Raw renders the lesson the way it is written to storage.
func (l Lesson) Raw() RawLesson {
	return RawLesson{
		StudentName:     l.StudentName,
		StudentID:       l.StudentID,
		Date:            l.Date.String(),
		Month:           l.Month,
		DurationMinutes: strconv.Itoa(l.DurationMinutes),
		HourlyRate:      l.HourlyRate.String(),
		TotalIncome:     FormatMoney(l.TotalIncome),
		Topic:           l.Topic,
		Homework:        l.Homework,
		Performance:     strconv.Itoa(l.Performance),
		Notes:           l.Notes,
		NextPlan:        l.NextPlan,
	}
}
