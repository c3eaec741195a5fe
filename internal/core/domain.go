package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the on-disk representation of a lesson date.
const DateLayout = "2006-01-02"

// parseLayout also accepts hand-typed dates without zero padding, such as
// "2024-3-5". Dates are always written with DateLayout.
const parseLayout = "2006-1-2"

const (
	MinPerformance = 1
	MaxPerformance = 10

	// DefaultPerformance is substituted when a stored score cannot be read.
	DefaultPerformance = 5
)

type (
	Date struct {
		time.Time
	}

	// Lesson is one tutoring session as persisted in the ledger.
	Lesson struct {
		StudentName     string
		StudentID       string // soft join key, not unique
		Date            Date
		Month           string // derived "YYYY-MM"
		DurationMinutes int
		HourlyRate      decimal.Decimal
		TotalIncome     decimal.Decimal // derived, see ComputeIncome
		Topic           string
		Homework        string
		Performance     int // 1-10
		Notes           string
		NextPlan        string
	}
)

var (
	ErrInvalidDate        = errors.New("invalid date")
	ErrEmptyStudentName   = errors.New("empty student name")
	ErrEmptyStudentID     = errors.New("empty student id")
	ErrInvalidDuration    = errors.New("duration must be greater than 0")
	ErrInvalidRate        = errors.New("hourly rate must be greater than 0")
	ErrInvalidPerformance = errors.New("performance must be between 1 and 10")
)

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// ParseDate parses a "YYYY-MM-DD" value.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(parseLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MonthKey returns the "YYYY-MM" bucket the date falls in.
func (d Date) MonthKey() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01")
}

// Equal reports whether both dates name the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

func (l Lesson) Validate() error {
	if strings.TrimSpace(l.StudentName) == "" {
		return ErrEmptyStudentName
	}
	if err := l.Date.Validate(); err != nil {
		return err
	}
	if l.DurationMinutes <= 0 {
		return ErrInvalidDuration
	}
	if !l.HourlyRate.IsPositive() {
		return ErrInvalidRate
	}
	if l.Performance < MinPerformance || l.Performance > MaxPerformance {
		return ErrInvalidPerformance
	}
	return nil
}

// Finalize recomputes the derived fields. Stores call it on every write so
// caller-supplied income and month values are never trusted.
func (l Lesson) Finalize() Lesson {
	l.TotalIncome = ComputeIncome(l.DurationMinutes, l.HourlyRate)
	l.Month = l.Date.MonthKey()
	return l
}

// Hours returns the lesson length in hours at full precision.
func (l Lesson) Hours() decimal.Decimal {
	return minutesToHours(int64(l.DurationMinutes))
}
