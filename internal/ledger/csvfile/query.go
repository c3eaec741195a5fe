package csvfile

import (
	"context"
	"strings"

	"tutorlog/internal/core"
	"tutorlog/internal/ledger"
	applog "tutorlog/internal/log"
)

// Query returns matching lessons in file order. On a read error the lessons
// gathered so far are dropped and the error is returned with an empty result.
func (s *Store) Query(ctx context.Context, f core.Filter) ([]core.Lesson, error) {
	out := []core.Lesson{}
	err := s.scan(ctx, func(l core.Lesson) bool {
		if f.Matches(l) {
			out = append(out, l)
		}
		return true
	})
	if err != nil {
		s.readFailed(ctx, applog.OpQuery, err)
		return []core.Lesson{}, err
	}
	return out, nil
}

func (s *Store) ListStudents(ctx context.Context) ([]core.Student, error) {
	set := core.NewStudentSet()
	err := s.scan(ctx, func(l core.Lesson) bool {
		set.Add(l)
		return true
	})
	if err != nil {
		s.readFailed(ctx, applog.OpQuery, err)
		return []core.Student{}, err
	}
	return set.Sorted(), nil
}

// StudentIDForName returns the id on the first row whose name matches,
// ignoring case and surrounding space.
func (s *Store) StudentIDForName(ctx context.Context, name string) (string, error) {
	var id string
	err := s.scan(ctx, func(l core.Lesson) bool {
		if core.MatchesStudent(l, name) {
			id = strings.TrimSpace(l.StudentID)
			return false
		}
		return true
	})
	if err != nil {
		s.readFailed(ctx, applog.OpQuery, err)
		return "", err
	}
	if id == "" {
		return "", ledger.ErrStudentNotFound
	}
	return id, nil
}

// StudentNameToID maps each name to the id of its first row, the same
// policy as StudentIDForName.
func (s *Store) StudentNameToID(ctx context.Context) (map[string]string, error) {
	idx := core.NewStudentIndex()
	err := s.scan(ctx, func(l core.Lesson) bool {
		idx.Add(l)
		return true
	})
	if err != nil {
		s.readFailed(ctx, applog.OpQuery, err)
		return map[string]string{}, err
	}
	return idx.Map(), nil
}

func (s *Store) FinancialSummary(ctx context.Context) (core.FinancialSummary, error) {
	var t core.Totals
	err := s.scan(ctx, func(l core.Lesson) bool {
		t.Add(l)
		return true
	})
	if err != nil {
		s.readFailed(ctx, applog.OpSummary, err)
		return core.FinancialSummary{}, err
	}
	return t.Summary(), nil
}

func (s *Store) MonthlySummary(ctx context.Context) ([]core.MonthSummary, error) {
	m := core.NewMonthlyTotals()
	err := s.scan(ctx, func(l core.Lesson) bool {
		m.Add(l)
		return true
	})
	if err != nil {
		s.readFailed(ctx, applog.OpSummary, err)
		return []core.MonthSummary{}, err
	}
	return m.Result(), nil
}
