package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"tutorlog/internal/core"
	"tutorlog/internal/ledger"
	"tutorlog/internal/ledger/memory"
)

func fixedClock() time.Time { return time.Date(2024, 5, 20, 18, 30, 0, 0, time.UTC) }

func input(name, id string) LessonInput {
	return LessonInput{
		StudentName:     name,
		StudentID:       id,
		DurationMinutes: 90,
		HourlyRate:      decimal.NewFromInt(20),
		Topic:           "Fractions",
		Performance:     8,
	}
}

func TestLessonService_Record(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := NewLessonService(store).WithClock(fixedClock)

	got, err := svc.Record(ctx, input("  Ann ", "S1"))
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if got.StudentName != "Ann" || got.StudentID != "S1" {
		t.Fatalf("unexpected student: %+v", got)
	}
	if !got.Date.Equal(core.NewDate(2024, 5, 20)) || got.Month != "2024-05" {
		t.Fatalf("date not defaulted to today: %s %s", got.Date, got.Month)
	}
	if !got.TotalIncome.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("income = %s", got.TotalIncome)
	}

	t.Run("known student id is resolved", func(t *testing.T) {
		got, err := svc.Record(ctx, input("ann", ""))
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
		if got.StudentID != "S1" {
			t.Fatalf("id = %q, want S1", got.StudentID)
		}
	})

	t.Run("new student needs an id", func(t *testing.T) {
		_, err := svc.Record(ctx, input("Zed", ""))
		if !errors.Is(err, ErrStudentIDRequired) {
			t.Fatalf("err = %v, want ErrStudentIDRequired", err)
		}
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*LessonInput)
			want   error
		}{
			{"empty name", func(in *LessonInput) { in.StudentName = " " }, core.ErrEmptyStudentName},
			{"zero duration", func(in *LessonInput) { in.DurationMinutes = 0 }, core.ErrInvalidDuration},
			{"negative rate", func(in *LessonInput) { in.HourlyRate = decimal.NewFromInt(-1) }, core.ErrInvalidRate},
			{"performance too high", func(in *LessonInput) { in.Performance = 11 }, core.ErrInvalidPerformance},
			{"performance too low", func(in *LessonInput) { in.Performance = 0 }, core.ErrInvalidPerformance},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				in := input("Ann", "S1")
				tt.mutate(&in)
				before := store.Len()
				if _, err := svc.Record(ctx, in); !errors.Is(err, tt.want) {
					t.Fatalf("err = %v, want %v", err, tt.want)
				}
				if store.Len() != before {
					t.Fatal("invalid lesson was stored")
				}
			})
		}
	})
}

func TestLessonService_Roster(t *testing.T) {
	ctx := context.Background()
	svc := NewLessonService(memory.New()).WithClock(fixedClock)
	for _, in := range []LessonInput{input("Bob", "S2"), input("Ann", "S1"), input("Ann", ""), input("Cleo", "S3")} {
		if _, err := svc.Record(ctx, in); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	roster, err := svc.Roster(ctx)
	if err != nil {
		t.Fatalf("Roster: %v", err)
	}
	want := []RosterEntry{
		{Name: "Ann", ID: "S1", Lessons: 2},
		{Name: "Bob", ID: "S2", Lessons: 1},
		{Name: "Cleo", ID: "S3", Lessons: 1},
	}
	if diff := cmp.Diff(want, roster); diff != "" {
		t.Fatalf("roster (-want +got):\n%s", diff)
	}
}

type failingLedger struct {
	ledger.Ledger
}

func (failingLedger) StudentIDForName(context.Context, string) (string, error) {
	return "", errors.New("disk on fire")
}

func TestLessonService_RecordLookupFailure(t *testing.T) {
	svc := NewLessonService(failingLedger{Ledger: memory.New()})
	_, err := svc.Record(context.Background(), input("Ann", ""))
	if err == nil || errors.Is(err, ErrStudentIDRequired) {
		t.Fatalf("err = %v, want lookup failure", err)
	}
}

func TestLessonService_Close(t *testing.T) {
	svc := NewLessonService(memory.New())
	if err := svc.Close(); err != nil {
		t.Fatalf("Close should not fail for a ledger without resources: %v", err)
	}
}

type recordingReplacer struct {
	got []core.Lesson
}

func (r *recordingReplacer) ReplaceAll(_ context.Context, lessons []core.Lesson) error {
	r.got = lessons
	return nil
}

func TestMirror(t *testing.T) {
	ctx := context.Background()
	src := memory.New()
	for _, name := range []string{"Ann", "Bob"} {
		if _, err := src.Append(ctx, core.Lesson{StudentName: name, StudentID: name, Date: core.NewDate(2024, 1, 2), DurationMinutes: 60, HourlyRate: decimal.NewFromInt(10), Performance: 5}); err != nil {
			t.Fatal(err)
		}
	}

	dst := &recordingReplacer{}
	n, err := Mirror(ctx, src, dst)
	if err != nil || n != 2 {
		t.Fatalf("Mirror = %d, %v", n, err)
	}
	if dst.got[0].StudentName != "Ann" || dst.got[1].StudentName != "Bob" {
		t.Fatalf("order not preserved: %+v", dst.got)
	}
}
