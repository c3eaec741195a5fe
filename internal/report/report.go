// Package report renders ledger results for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"tutorlog/internal/core"
	"tutorlog/internal/i18n"
	"tutorlog/internal/services"
)

const cardRuleWidth = 90

type Renderer struct {
	w     io.Writer
	cat   *i18n.Catalog
	plain bool
}

func New(w io.Writer, cat *i18n.Catalog, plain bool) *Renderer {
	return &Renderer{w: w, cat: cat, plain: plain}
}

func (r *Renderer) Catalog() *i18n.Catalog {
	return r.cat
}

// Message prints one localized line.
func (r *Renderer) Message(key string, args ...any) error {
	_, err := fmt.Fprintln(r.w, r.cat.T(key, args...))
	return err
}

func (r *Renderer) table(t Table) error {
	out := t.Styled()
	if r.plain {
		out = t.Plain()
	}
	_, err := io.WriteString(r.w, out)
	return err
}

// LessonTable lists lessons one per row.
func (r *Renderer) LessonTable(lessons []core.Lesson) error {
	if len(lessons) == 0 {
		return r.Message(i18n.MsgNoRecords)
	}
	c := r.cat
	t := Table{
		Title: c.T(i18n.MsgRecordsTitle),
		Headers: []string{
			c.T(i18n.ColDate), c.T(i18n.ColStudent), c.T(i18n.ColID),
			c.T(i18n.ColMinutes), c.T(i18n.ColTopic), c.T(i18n.ColPerformance), c.T(i18n.ColIncome),
		},
		Align: []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignLeft, AlignRight, AlignRight},
	}
	for _, l := range lessons {
		t.AddRow(
			l.Date.String(),
			l.StudentName,
			l.StudentID,
			strconv.Itoa(l.DurationMinutes),
			l.Topic,
			fmt.Sprintf("%d %s", l.Performance, PerformanceBadge(l.Performance)),
			c.Money(l.TotalIncome),
		)
	}
	return r.table(t)
}

// LessonCards prints every field of each lesson as a numbered card.
func (r *Renderer) LessonCards(lessons []core.Lesson) error {
	if len(lessons) == 0 {
		return r.Message(i18n.MsgNoRecords)
	}
	var sb strings.Builder
	rule := strings.Repeat("-", cardRuleWidth) + "\n"

	sb.WriteString(r.cat.T(i18n.MsgFound, len(lessons)) + "\n")
	sb.WriteString(rule)
	for i, l := range lessons {
		sb.WriteString(r.card(i+1, l))
		sb.WriteString(rule)
	}
	_, err := io.WriteString(r.w, sb.String())
	return err
}

func (r *Renderer) card(n int, l core.Lesson) string {
	c := r.cat
	field := func(key, value string) string {
		return fmt.Sprintf("  %s: %s\n", c.T(key), value)
	}

	var sb strings.Builder
	sb.WriteString(c.T(i18n.MsgRecordNo, n) + "\n")
	sb.WriteString(field(i18n.ColStudent, fmt.Sprintf("%s (%s)", l.StudentName, l.StudentID)))
	sb.WriteString(field(i18n.ColDate, l.Date.String()+", "+c.T(i18n.MsgMinutesUnit, l.DurationMinutes)))
	sb.WriteString(field(i18n.ColMonth, l.Month))
	sb.WriteString(field(i18n.ColRate, c.T(i18n.MsgPerHour, c.Money(l.HourlyRate))+", "+c.T(i18n.ColIncome)+": "+c.Money(l.TotalIncome)))
	sb.WriteString(field(i18n.ColTopic, l.Topic))
	sb.WriteString(field(i18n.ColHomework, l.Homework))
	sb.WriteString(field(i18n.ColPerformance, fmt.Sprintf("%d/10 %s", l.Performance, PerformanceBadge(l.Performance))))
	sb.WriteString(field(i18n.ColNotes, l.Notes))
	sb.WriteString(field(i18n.ColNextPlan, l.NextPlan))
	return sb.String()
}

// Recorded confirms an append and shows the stored lesson.
func (r *Renderer) Recorded(l core.Lesson) error {
	if err := r.Message(i18n.MsgLessonRecorded, l.StudentName, l.StudentID, l.Date.String(), r.cat.Money(l.TotalIncome)); err != nil {
		return err
	}
	_, err := io.WriteString(r.w, r.card(1, l))
	return err
}

func (r *Renderer) Students(roster []services.RosterEntry) error {
	if len(roster) == 0 {
		return r.Message(i18n.MsgNoStudents)
	}
	c := r.cat
	t := Table{
		Title:   c.T(i18n.MsgStudentsTitle),
		Headers: []string{c.T(i18n.ColNo), c.T(i18n.ColStudent), c.T(i18n.ColID), c.T(i18n.ColLessons)},
		Align:   []Align{AlignRight, AlignLeft, AlignLeft, AlignRight},
	}
	for i, e := range roster {
		t.AddRow(strconv.Itoa(i+1), e.Name, e.ID, strconv.Itoa(e.Lessons))
	}
	return r.table(t)
}

func (r *Renderer) Summary(s core.FinancialSummary) error {
	c := r.cat
	t := Table{
		Title:   c.T(i18n.MsgSummaryTitle),
		Headers: []string{c.T(i18n.MsgTotalLessons), c.T(i18n.MsgTotalHours), c.T(i18n.MsgTotalIncome)},
		Align:   []Align{AlignRight, AlignRight, AlignRight},
	}
	t.AddRow(strconv.Itoa(s.TotalLessons), core.FormatMoney(s.TotalHours), c.Money(s.TotalIncome))
	return r.table(t)
}

// Monthly prints one row per month followed by a total row.
func (r *Renderer) Monthly(months []core.MonthSummary, total core.FinancialSummary) error {
	if len(months) == 0 {
		return r.Message(i18n.MsgNoRecords)
	}
	c := r.cat
	t := Table{
		Title:   c.T(i18n.MsgMonthlyTitle),
		Headers: []string{c.T(i18n.ColMonth), c.T(i18n.ColLessons), c.T(i18n.ColHours), c.T(i18n.ColIncome)},
		Align:   []Align{AlignLeft, AlignRight, AlignRight, AlignRight},
	}
	for _, m := range months {
		t.AddRow(m.Month, strconv.Itoa(m.Lessons), core.FormatMoney(m.Hours), c.Money(m.Income))
	}
	t.AddRow(c.T(i18n.ColTotal), strconv.Itoa(total.TotalLessons), core.FormatMoney(total.TotalHours), c.Money(total.TotalIncome))
	return r.table(t)
}
