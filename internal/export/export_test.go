package export

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"tutorlog/internal/core"
	"tutorlog/internal/i18n"
	"tutorlog/internal/ledger/memory"
)

func seeded(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.New()
	for _, l := range []core.Lesson{
		{StudentName: "Ann", StudentID: "S1", Date: core.NewDate(2024, 3, 15), DurationMinutes: 90, HourlyRate: decimal.NewFromInt(20), Performance: 8, Topic: "Fractions"},
		{StudentName: "Bob", StudentID: "S2", Date: core.NewDate(2024, 4, 2), DurationMinutes: 45, HourlyRate: decimal.RequireFromString("33.33"), Performance: 6},
	} {
		if _, err := s.Append(context.Background(), l); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lessons.xlsx")
	n, err := WriteFile(context.Background(), seeded(t), i18n.New("en"), path)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if n != 2 {
		t.Fatalf("exported %d lessons", n)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	if diff := cmp.Diff([]string{LessonsSheet, MonthlySheet}, f.GetSheetList()); diff != "" {
		t.Fatalf("sheets (-want +got):\n%s", diff)
	}

	rows, err := f.GetRows(LessonsSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("lesson rows = %d", len(rows))
	}
	if rows[0][0] != "Student" || rows[1][0] != "Ann" || rows[1][2] != "2024-03-15" || rows[2][3] != "2024-04" {
		t.Fatalf("unexpected lesson rows %v", rows)
	}
	income, err := f.GetCellValue(LessonsSheet, "G3", excelize.Options{RawCellValue: true})
	if err != nil || income != "25" {
		t.Fatalf("income cell = %q %v", income, err)
	}

	monthly, err := f.GetRows(MonthlySheet)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{
		{"Month", "Lessons", "Hours", "Income"},
		{"2024-03", "1", "1.50", "30.00"},
		{"2024-04", "1", "0.75", "25.00"},
		{"Total", "2", "2.25", "55.00"},
	}
	if diff := cmp.Diff(want, monthly); diff != "" {
		t.Fatalf("monthly (-want +got):\n%s", diff)
	}
}

func TestWriteEmptyLedgerLocalized(t *testing.T) {
	var buf bytes.Buffer
	n, err := Write(context.Background(), memory.New(), i18n.New("zh"), &buf)
	if err != nil || n != 0 {
		t.Fatalf("Write = %d %v", n, err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()
	rows, _ := f.GetRows(MonthlySheet)
	if len(rows) != 2 || rows[0][0] != "月份" || rows[1][0] != "合计" {
		t.Fatalf("unexpected monthly rows %v", rows)
	}
}
