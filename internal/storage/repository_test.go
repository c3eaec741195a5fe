package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"tutorlog/internal/core"
	"tutorlog/internal/ledger"
)

func newRepo(t *testing.T) (*SQLiteRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "tutorlog.db")
	repo, err := NewSQLiteRepository(path)
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo, path
}

func lesson(name, id, date string, minutes int, rate string) core.Lesson {
	d, _ := core.ParseDate(date)
	return core.Lesson{
		StudentName:     name,
		StudentID:       id,
		Date:            d,
		DurationMinutes: minutes,
		HourlyRate:      decimal.RequireFromString(rate),
		Topic:           "Reading",
		Performance:     9,
		Notes:           "a, b\nc",
	}
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.db")
	for i := 0; i < 2; i++ {
		version, err := RunMigrations(path)
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if version != 2 {
			t.Fatalf("run %d: version = %d", i, version)
		}
	}
}

func TestAppendAndQuery(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	in := lesson("Ann", "S1", "2024-03-15", 90, "20")
	in.TotalIncome = decimal.NewFromInt(1)
	stored, err := repo.Append(ctx, in)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if !stored.TotalIncome.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("income = %s", stored.TotalIncome)
	}
	if _, err := repo.Append(ctx, lesson("Bob", "S2", "2024-04-01", 60, "25")); err != nil {
		t.Fatal(err)
	}

	all, err := repo.Query(ctx, core.Filter{})
	if err != nil || len(all) != 2 {
		t.Fatalf("Query: %v %v", all, err)
	}
	if diff := cmp.Diff(stored, all[0]); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}

	tests := []struct {
		name   string
		filter core.Filter
		want   int
	}{
		{"id", core.Filter{StudentID: "S2"}, 1},
		{"year", core.Filter{Month: "2024"}, 2},
		{"month", core.Filter{Month: "2024-03"}, 1},
		{"name", core.Filter{StudentName: "BO"}, 1},
		{"topic and id", core.Filter{Topic: "read", StudentID: "S1"}, 1},
		{"none", core.Filter{StudentID: "s1"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Query(ctx, tt.filter)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != tt.want {
				t.Fatalf("got %d lessons, want %d", len(got), tt.want)
			}
		})
	}
}

func TestStudentsAndSummaries(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()
	for _, l := range []core.Lesson{
		lesson("Ann", "S1", "2024-03-15", 90, "20"),
		lesson("Ann", "S5", "2024-03-16", 30, "20"),
		lesson("Bob", "S2", "2024-04-01", 60, "25"),
	} {
		if _, err := repo.Append(ctx, l); err != nil {
			t.Fatal(err)
		}
	}

	id, err := repo.StudentIDForName(ctx, "ann")
	if err != nil || id != "S1" {
		t.Fatalf("StudentIDForName = %q %v", id, err)
	}
	if _, err := repo.StudentIDForName(ctx, "Zed"); !errors.Is(err, ledger.ErrStudentNotFound) {
		t.Fatalf("err = %v", err)
	}
	m, _ := repo.StudentNameToID(ctx)
	if diff := cmp.Diff(map[string]string{"Ann": "S1", "Bob": "S2"}, m); diff != "" {
		t.Fatalf("map (-want +got):\n%s", diff)
	}
	students, _ := repo.ListStudents(ctx)
	if len(students) != 3 {
		t.Fatalf("students = %v", students)
	}

	sum, err := repo.FinancialSummary(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !sum.TotalIncome.Equal(decimal.NewFromInt(65)) || !sum.TotalHours.Equal(decimal.NewFromInt(3)) || sum.TotalLessons != 3 {
		t.Fatalf("summary = %+v", sum)
	}
	months, _ := repo.MonthlySummary(ctx)
	if len(months) != 2 || months[0].Month != "2024-03" || months[0].Lessons != 2 {
		t.Fatalf("months = %+v", months)
	}
}

func TestReplaceAllAndCount(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()
	if _, err := repo.Append(ctx, lesson("Old", "X", "2023-01-01", 60, "10")); err != nil {
		t.Fatal(err)
	}

	mirror := []core.Lesson{
		lesson("Ann", "S1", "2024-03-15", 90, "20").Finalize(),
		lesson("Bob", "S2", "2024-04-01", 60, "25").Finalize(),
	}
	if err := repo.ReplaceAll(ctx, mirror); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	n, err := repo.Count(ctx)
	if err != nil || n != 2 {
		t.Fatalf("Count = %d %v", n, err)
	}
}

func TestMonthFilterFallsBackToDate(t *testing.T) {
	repo, path := newRepo(t)
	ctx := context.Background()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	_, err = db.Exec(`INSERT INTO lessons (student_name, student_id, date, month, duration_minutes, hourly_rate, total_income, student_performance)
		VALUES ('Ann', 'S1', '2024-3-15', '', 60, '20', '20.00', 8)`)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	for _, prefix := range []string{"2024", "2024-03"} {
		lessons, err := repo.Query(ctx, core.Filter{Month: prefix})
		if err != nil || len(lessons) != 1 || lessons[0].Month != "2024-03" {
			t.Fatalf("Query(%q) = %+v %v", prefix, lessons, err)
		}
	}
	if lessons, _ := repo.Query(ctx, core.Filter{Month: "2024-04"}); len(lessons) != 0 {
		t.Fatalf("unexpected match %+v", lessons)
	}
}

func TestLenientDecodeOfHandEditedRows(t *testing.T) {
	repo, path := newRepo(t)
	ctx := context.Background()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	_, err = db.Exec(`INSERT INTO lessons (student_name, student_id, date, month, duration_minutes, hourly_rate, total_income, student_performance)
		VALUES ('Ann', 'S1', 'garbage', '', 'abc', 'x', '12.50', 7)`)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	lessons, err := repo.Query(ctx, core.Filter{})
	if err != nil || len(lessons) != 1 {
		t.Fatalf("Query: %v %v", lessons, err)
	}
	l := lessons[0]
	if l.DurationMinutes != 0 || !l.HourlyRate.IsZero() || l.Month != "garbage" {
		t.Fatalf("unexpected defaults: %+v", l)
	}
	if !l.TotalIncome.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("income = %s", l.TotalIncome)
	}
}
