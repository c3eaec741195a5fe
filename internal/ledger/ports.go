package ledger

import (
	"context"
	"errors"

	"tutorlog/internal/core"
)

// ErrStudentNotFound is returned when no lesson carries the requested name.
var ErrStudentNotFound = errors.New("student not found")

// Ports consumed by the command line and presentation layers.
type (
	LessonWriter interface {
		// Append recomputes the derived fields, persists the lesson and
		// returns it as stored.
		Append(ctx context.Context, l core.Lesson) (core.Lesson, error)
	}

	LessonQuerier interface {
		// Query returns matching lessons in insertion order.
		Query(ctx context.Context, f core.Filter) ([]core.Lesson, error)
	}

	// StudentDirectory answers questions about the students seen so far.
	// Both lookups resolve a name to the first id recorded for it.
	StudentDirectory interface {
		ListStudents(ctx context.Context) ([]core.Student, error)
		StudentIDForName(ctx context.Context, name string) (string, error)
		StudentNameToID(ctx context.Context) (map[string]string, error)
	}

	SummaryReader interface {
		FinancialSummary(ctx context.Context) (core.FinancialSummary, error)
		// MonthlySummary returns one entry per month in ascending order.
		MonthlySummary(ctx context.Context) ([]core.MonthSummary, error)
	}

	Ledger interface {
		LessonWriter
		LessonQuerier
		StudentDirectory
		SummaryReader
	}
)
