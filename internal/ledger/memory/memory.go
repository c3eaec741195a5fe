// Package memory is an in-process ledger used by tests and dry runs.
package memory

import (
	"context"
	"sync"

	"tutorlog/internal/core"
	"tutorlog/internal/ledger"
)

var _ ledger.Ledger = (*Store)(nil)

type Store struct {
	mu      sync.Mutex
	lessons []core.Lesson
}

// New returns a store holding seed, in order. Seed lessons are taken as
// stored and are not finalized again.
func New(seed ...core.Lesson) *Store {
	return &Store{lessons: append([]core.Lesson(nil), seed...)}
}

func (s *Store) Append(_ context.Context, l core.Lesson) (core.Lesson, error) {
	l = l.Finalize()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lessons = append(s.lessons, l)
	return l, nil
}

func (s *Store) Query(_ context.Context, f core.Filter) ([]core.Lesson, error) {
	out := []core.Lesson{}
	for _, l := range s.snapshot() {
		if f.Matches(l) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *Store) ListStudents(_ context.Context) ([]core.Student, error) {
	return core.Students(s.snapshot()), nil
}

func (s *Store) StudentIDForName(_ context.Context, name string) (string, error) {
	id, ok := core.LookupStudentID(s.snapshot(), name)
	if !ok {
		return "", ledger.ErrStudentNotFound
	}
	return id, nil
}

func (s *Store) StudentNameToID(_ context.Context) (map[string]string, error) {
	return core.StudentNameToID(s.snapshot()), nil
}

func (s *Store) FinancialSummary(_ context.Context) (core.FinancialSummary, error) {
	return core.Summarize(s.snapshot()), nil
}

func (s *Store) MonthlySummary(_ context.Context) ([]core.MonthSummary, error) {
	return core.MonthlyBreakdown(s.snapshot()), nil
}

// Len reports how many lessons are held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lessons)
}

func (s *Store) snapshot() []core.Lesson {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Lesson(nil), s.lessons...)
}
