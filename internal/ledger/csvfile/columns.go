package csvfile

import (
	"strings"

	"tutorlog/internal/core"
)

// Columns is the canonical header of a lesson file, in write order.
var Columns = []string{
	"student_name",
	"student_id",
	"date",
	"month",
	"duration_minutes",
	"hourly_rate",
	"total_income",
	"topic_covered",
	"homework_assigned",
	"student_performance",
	"notes",
	"next_plan",
}

const monthColumn = "month"

const utf8BOM = "\uFEFF"

// header is the column layout of one particular file.
type header struct {
	names []string
	index map[string]int
}

func newHeader(names []string) header {
	h := header{names: make([]string, len(names)), index: make(map[string]int, len(names))}
	for i, n := range names {
		if i == 0 {
			n = strings.TrimPrefix(n, utf8BOM)
		}
		h.names[i] = n
		if _, dup := h.index[n]; !dup {
			h.index[n] = i
		}
	}
	return h
}

func canonicalHeader() header {
	return newHeader(Columns)
}

func (h header) has(column string) bool {
	_, ok := h.index[column]
	return ok
}

// raw reads a record laid out by h. Columns the file lacks come back empty.
func (h header) raw(record []string) core.RawLesson {
	var r core.RawLesson
	for _, col := range Columns {
		i, ok := h.index[col]
		if !ok || i >= len(record) {
			continue
		}
		if p := field(&r, col); p != nil {
			*p = record[i]
		}
	}
	return r
}

// record lays r out in the column order of h. Unknown columns are left blank.
func (h header) record(r core.RawLesson) []string {
	out := make([]string, len(h.names))
	for i, col := range h.names {
		if p := field(&r, col); p != nil {
			out[i] = *p
		}
	}
	return out
}

func field(r *core.RawLesson, column string) *string {
	switch column {
	case "student_name":
		return &r.StudentName
	case "student_id":
		return &r.StudentID
	case "date":
		return &r.Date
	case "month":
		return &r.Month
	case "duration_minutes":
		return &r.DurationMinutes
	case "hourly_rate":
		return &r.HourlyRate
	case "total_income":
		return &r.TotalIncome
	case "topic_covered":
		return &r.Topic
	case "homework_assigned":
		return &r.Homework
	case "student_performance":
		return &r.Performance
	case "notes":
		return &r.Notes
	case "next_plan":
		return &r.NextPlan
	}
	return nil
}
