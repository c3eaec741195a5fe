// Package export writes the ledger to an xlsx workbook.
package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"tutorlog/internal/core"
	"tutorlog/internal/i18n"
	"tutorlog/internal/ledger"
	applog "tutorlog/internal/log"
)

const (
	LessonsSheet = "Lessons"
	MonthlySheet = "Monthly"
)

// Source is what an export reads from.
type Source interface {
	ledger.LessonQuerier
	ledger.SummaryReader
}

type styles struct {
	header int
	money  int
}

func newStyles(f *excelize.File) (styles, error) {
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return styles{}, fmt.Errorf("create header style: %w", err)
	}
	// Built-in format 2 is "0.00".
	money, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return styles{}, fmt.Errorf("create money style: %w", err)
	}
	return styles{header: header, money: money}, nil
}

// Workbook builds a workbook with every lesson in ledger order on one sheet
// and the monthly breakdown plus a total row on another. It returns the
// number of lessons exported.
func Workbook(ctx context.Context, src Source, cat *i18n.Catalog) (*excelize.File, int, error) {
	lessons, err := src.Query(ctx, core.Filter{})
	if err != nil {
		return nil, 0, fmt.Errorf("read lessons: %w", err)
	}
	months, err := src.MonthlySummary(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("read monthly summary: %w", err)
	}
	total, err := src.FinancialSummary(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("read financial summary: %w", err)
	}

	f := excelize.NewFile()
	st, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, 0, err
	}

	if err := f.SetSheetName("Sheet1", LessonsSheet); err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeLessons(f, st, cat, lessons); err != nil {
		f.Close()
		return nil, 0, err
	}

	if _, err := f.NewSheet(MonthlySheet); err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("create sheet: %w", err)
	}
	if err := writeMonthly(f, st, cat, months, total); err != nil {
		f.Close()
		return nil, 0, err
	}

	f.SetActiveSheet(0)
	return f, len(lessons), nil
}

func writeHeader(f *excelize.File, sheet string, st styles, headers []string) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	return f.SetCellStyle(sheet, "A1", last, st.header)
}

func writeLessons(f *excelize.File, st styles, cat *i18n.Catalog, lessons []core.Lesson) error {
	headers := []string{
		cat.T(i18n.ColStudent), cat.T(i18n.ColID), cat.T(i18n.ColDate), cat.T(i18n.ColMonth),
		cat.T(i18n.ColMinutes), cat.T(i18n.ColRate), cat.T(i18n.ColIncome), cat.T(i18n.ColTopic),
		cat.T(i18n.ColHomework), cat.T(i18n.ColPerformance), cat.T(i18n.ColNotes), cat.T(i18n.ColNextPlan),
	}
	if err := writeHeader(f, LessonsSheet, st, headers); err != nil {
		return err
	}

	for i, l := range lessons {
		row := i + 2
		values := []interface{}{
			l.StudentName,
			l.StudentID,
			l.Date.String(),
			l.Month,
			l.DurationMinutes,
			l.HourlyRate.InexactFloat64(),
			l.TotalIncome.InexactFloat64(),
			l.Topic,
			l.Homework,
			l.Performance,
			l.Notes,
			l.NextPlan,
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(LessonsSheet, cell, &values); err != nil {
			return fmt.Errorf("write lesson row %d: %w", row, err)
		}
	}

	if len(lessons) > 0 {
		last := len(lessons) + 1
		if err := f.SetCellStyle(LessonsSheet, "F2", fmt.Sprintf("G%d", last), st.money); err != nil {
			return fmt.Errorf("style money cells: %w", err)
		}
	}
	return f.SetColWidth(LessonsSheet, "A", "L", 14)
}

func writeMonthly(f *excelize.File, st styles, cat *i18n.Catalog, months []core.MonthSummary, total core.FinancialSummary) error {
	headers := []string{cat.T(i18n.ColMonth), cat.T(i18n.ColLessons), cat.T(i18n.ColHours), cat.T(i18n.ColIncome)}
	if err := writeHeader(f, MonthlySheet, st, headers); err != nil {
		return err
	}

	row := 2
	for _, m := range months {
		values := []interface{}{m.Month, m.Lessons, m.Hours.InexactFloat64(), m.Income.InexactFloat64()}
		if err := f.SetSheetRow(MonthlySheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return fmt.Errorf("write month row %d: %w", row, err)
		}
		row++
	}

	totals := []interface{}{cat.T(i18n.ColTotal), total.TotalLessons, total.TotalHours.InexactFloat64(), total.TotalIncome.InexactFloat64()}
	if err := f.SetSheetRow(MonthlySheet, fmt.Sprintf("A%d", row), &totals); err != nil {
		return fmt.Errorf("write total row: %w", err)
	}
	if err := f.SetCellStyle(MonthlySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), st.header); err != nil {
		return fmt.Errorf("style total row: %w", err)
	}
	if err := f.SetCellStyle(MonthlySheet, "C2", fmt.Sprintf("D%d", row), st.money); err != nil {
		return fmt.Errorf("style money cells: %w", err)
	}
	return f.SetColWidth(MonthlySheet, "A", "D", 14)
}

// WriteFile exports to path and returns the number of lessons written.
func WriteFile(ctx context.Context, src Source, cat *i18n.Catalog, path string) (int, error) {
	f, n, err := Workbook(ctx, src, cat)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return 0, fmt.Errorf("save workbook: %w", err)
	}

	slog.InfoContext(ctx, "Workbook exported",
		applog.FieldComponent, applog.ComponentExport,
		applog.FieldOperation, applog.OpExport,
		applog.FieldPath, path,
		applog.FieldRows, n)
	return n, nil
}

// Write streams the workbook to w.
func Write(ctx context.Context, src Source, cat *i18n.Catalog, w io.Writer) (int, error) {
	f, n, err := Workbook(ctx, src, cat)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return 0, fmt.Errorf("write workbook: %w", err)
	}
	return n, nil
}
