package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tutorlog/internal/core"
	"tutorlog/internal/ledger"
	applog "tutorlog/internal/log"

	_ "modernc.org/sqlite"
)

var _ ledger.Ledger = (*SQLiteRepository)(nil)

type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
	now     func() time.Time
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	version, err := RunMigrations(dbPath)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	slog.Debug("SQLite schema ready",
		applog.FieldComponent, applog.ComponentStorage,
		applog.FieldPath, dbPath,
		"version", version)

	return &SQLiteRepository{
		db:      db,
		queries: New(db),
		now:     time.Now,
	}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func createParams(l core.Lesson) CreateLessonParams {
	raw := l.Raw()
	return CreateLessonParams{
		StudentName:        raw.StudentName,
		StudentID:          raw.StudentID,
		Date:               raw.Date,
		Month:              raw.Month,
		DurationMinutes:    int64(l.DurationMinutes),
		HourlyRate:         raw.HourlyRate,
		TotalIncome:        raw.TotalIncome,
		TopicCovered:       raw.Topic,
		HomeworkAssigned:   raw.Homework,
		StudentPerformance: int64(l.Performance),
		Notes:              raw.Notes,
		NextPlan:           raw.NextPlan,
	}
}

// Append implements ledger.LessonWriter
func (r *SQLiteRepository) Append(ctx context.Context, l core.Lesson) (core.Lesson, error) {
	l = l.Finalize()
	id, err := r.queries.CreateLesson(ctx, createParams(l))
	if err != nil {
		return core.Lesson{}, fmt.Errorf("create lesson: %w", err)
	}

	slog.InfoContext(ctx, "Lesson saved to SQLite",
		applog.FieldComponent, applog.ComponentStorage,
		"id", id,
		applog.FieldStudentName, l.StudentName,
		applog.FieldDate, l.Date.String(),
		applog.FieldIncome, core.FormatMoney(l.TotalIncome))
	return l, nil
}

// ReplaceAll swaps the table contents for lessons inside one transaction.
// Derived fields are recomputed as in Append.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, lessons []core.Lesson) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	q := r.queries.WithTx(tx)
	if err = q.DeleteAllLessons(ctx); err != nil {
		return fmt.Errorf("clear lessons: %w", err)
	}
	for _, l := range lessons {
		if _, err = q.CreateLesson(ctx, createParams(l.Finalize())); err != nil {
			return fmt.Errorf("insert lesson: %w", err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Count returns the number of stored lessons.
func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.queries.CountLessons(ctx)
	if err != nil {
		return 0, fmt.Errorf("count lessons: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) list(ctx context.Context, arg ListLessonsParams) ([]core.Lesson, error) {
	rows, err := r.queries.ListLessons(ctx, arg)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}

	today := core.DateOf(r.now())
	lessons := make([]core.Lesson, 0, len(rows))
	for _, row := range rows {
		l, issues := row.raw().Decode(today)
		for _, is := range issues {
			slog.DebugContext(ctx, "Field defaulted",
				applog.FieldComponent, applog.ComponentStorage,
				"id", row.ID,
				applog.FieldField, is.Field,
				applog.FieldRaw, is.Raw,
				applog.FieldError, is.Err)
		}
		lessons = append(lessons, l)
	}
	return lessons, nil
}

func (row Lesson) raw() core.RawLesson {
	return core.RawLesson{
		StudentName:     row.StudentName,
		StudentID:       row.StudentID,
		Date:            row.Date,
		Month:           row.Month,
		DurationMinutes: row.DurationMinutes,
		HourlyRate:      row.HourlyRate,
		TotalIncome:     row.TotalIncome,
		Topic:           row.TopicCovered,
		Homework:        row.HomeworkAssigned,
		Performance:     row.StudentPerformance,
		Notes:           row.Notes,
		NextPlan:        row.NextPlan,
	}
}

// Query implements ledger.LessonQuerier. The id criterion is pushed down to
// SQL. The others run in Go on decoded lessons, so a blank stored month
// falls back to the date and case folding matches the file store.
func (r *SQLiteRepository) Query(ctx context.Context, f core.Filter) ([]core.Lesson, error) {
	lessons, err := r.list(ctx, ListLessonsParams{StudentID: f.StudentID})
	if err != nil {
		return []core.Lesson{}, err
	}
	out := lessons[:0]
	for _, l := range lessons {
		if f.Matches(l) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *SQLiteRepository) all(ctx context.Context) ([]core.Lesson, error) {
	return r.list(ctx, ListLessonsParams{})
}

func (r *SQLiteRepository) ListStudents(ctx context.Context) ([]core.Student, error) {
	lessons, err := r.all(ctx)
	if err != nil {
		return []core.Student{}, err
	}
	return core.Students(lessons), nil
}

func (r *SQLiteRepository) StudentIDForName(ctx context.Context, name string) (string, error) {
	lessons, err := r.all(ctx)
	if err != nil {
		return "", err
	}
	id, ok := core.LookupStudentID(lessons, name)
	if !ok {
		return "", ledger.ErrStudentNotFound
	}
	return strings.TrimSpace(id), nil
}

func (r *SQLiteRepository) StudentNameToID(ctx context.Context) (map[string]string, error) {
	lessons, err := r.all(ctx)
	if err != nil {
		return map[string]string{}, err
	}
	return core.StudentNameToID(lessons), nil
}

// FinancialSummary implements ledger.SummaryReader. Income is stored as
// text, so totals are accumulated in Go rather than with SUM.
func (r *SQLiteRepository) FinancialSummary(ctx context.Context) (core.FinancialSummary, error) {
	lessons, err := r.all(ctx)
	if err != nil {
		return core.FinancialSummary{}, err
	}
	return core.Summarize(lessons), nil
}

func (r *SQLiteRepository) MonthlySummary(ctx context.Context) ([]core.MonthSummary, error) {
	lessons, err := r.all(ctx)
	if err != nil {
		return []core.MonthSummary{}, err
	}
	return core.MonthlyBreakdown(lessons), nil
}
