package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tutorlog/internal/core"
	"tutorlog/internal/ledger"
	applog "tutorlog/internal/log"
)

// ErrStudentIDRequired is returned when a lesson names a student the ledger
// has never seen and no id was supplied.
var ErrStudentIDRequired = errors.New("student id required for a new student")

// LessonInput is a lesson as entered by the user. A blank StudentID is
// looked up from earlier lessons; a zero Date means today.
type LessonInput struct {
	StudentName     string
	StudentID       string
	Date            core.Date
	DurationMinutes int
	HourlyRate      decimal.Decimal
	Topic           string
	Homework        string
	Performance     int
	Notes           string
	NextPlan        string
}

// RosterEntry is one student with the number of lessons recorded for them.
type RosterEntry struct {
	Name    string
	ID      string
	Lessons int
}

// LessonService orchestrates lesson operations on top of a ledger
type LessonService struct {
	ledger ledger.Ledger
	now    func() time.Time
	logger *slog.Logger
}

func NewLessonService(l ledger.Ledger) *LessonService {
	return &LessonService{
		ledger: l,
		now:    time.Now,
		logger: slog.Default().With(applog.FieldComponent, applog.ComponentService),
	}
}

// WithClock replaces the clock used for the default lesson date.
func (s *LessonService) WithClock(now func() time.Time) *LessonService {
	s.now = now
	return s
}

// Ledger exposes the underlying ledger for read-only commands.
func (s *LessonService) Ledger() ledger.Ledger {
	return s.ledger
}

// Record validates in, resolves the student id when it is missing and
// appends the lesson. The stored lesson is returned.
func (s *LessonService) Record(ctx context.Context, in LessonInput) (core.Lesson, error) {
	name := strings.TrimSpace(in.StudentName)
	if name == "" {
		return core.Lesson{}, core.ErrEmptyStudentName
	}

	id := strings.TrimSpace(in.StudentID)
	if id == "" {
		found, err := s.ledger.StudentIDForName(ctx, name)
		switch {
		case errors.Is(err, ledger.ErrStudentNotFound):
			return core.Lesson{}, fmt.Errorf("%s: %w", name, ErrStudentIDRequired)
		case err != nil:
			return core.Lesson{}, fmt.Errorf("look up student id: %w", err)
		}
		id = found
		s.logger.DebugContext(ctx, "Resolved student id",
			applog.FieldStudentName, name,
			applog.FieldStudentID, id)
	}

	date := in.Date
	if date.IsZero() {
		date = core.DateOf(s.now())
	}

	l := core.Lesson{
		StudentName:     name,
		StudentID:       id,
		Date:            date,
		DurationMinutes: in.DurationMinutes,
		HourlyRate:      in.HourlyRate,
		Topic:           in.Topic,
		Homework:        in.Homework,
		Performance:     in.Performance,
		Notes:           in.Notes,
		NextPlan:        in.NextPlan,
	}
	if err := l.Validate(); err != nil {
		return core.Lesson{}, fmt.Errorf("invalid lesson: %w", err)
	}

	stored, err := s.ledger.Append(ctx, l)
	if err != nil {
		return core.Lesson{}, fmt.Errorf("save lesson: %w", err)
	}
	return stored, nil
}

// Roster lists every known student with their lesson count, sorted by name.
func (s *LessonService) Roster(ctx context.Context) ([]RosterEntry, error) {
	ids, err := s.ledger.StudentNameToID(ctx)
	if err != nil {
		return nil, fmt.Errorf("load students: %w", err)
	}
	lessons, err := s.ledger.Query(ctx, core.Filter{})
	if err != nil {
		return nil, fmt.Errorf("load lessons: %w", err)
	}

	counts := make(map[string]int, len(ids))
	for _, l := range lessons {
		counts[strings.TrimSpace(l.StudentName)]++
	}

	roster := make([]RosterEntry, 0, len(ids))
	for name, id := range ids {
		roster = append(roster, RosterEntry{Name: name, ID: id, Lessons: counts[name]})
	}
	sort.Slice(roster, func(i, j int) bool { return roster[i].Name < roster[j].Name })
	return roster, nil
}

// Close closes the ledger when it holds resources
func (s *LessonService) Close() error {
	if c, ok := s.ledger.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("close ledger: %w", err)
		}
	}
	return nil
}
