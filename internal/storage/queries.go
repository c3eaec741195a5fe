package storage

import (
	"context"
)

// Lesson is a row of the lessons table. Every column is read back as text
// so that rows written by hand can be decoded leniently.
type Lesson struct {
	ID                 int64
	StudentName        string
	StudentID          string
	Date               string
	Month              string
	DurationMinutes    string
	HourlyRate         string
	TotalIncome        string
	TopicCovered       string
	HomeworkAssigned   string
	StudentPerformance string
	Notes              string
	NextPlan           string
}

const lessonColumns = `id, student_name, student_id, date, month,
    CAST(duration_minutes AS TEXT), hourly_rate, total_income,
    topic_covered, homework_assigned, CAST(student_performance AS TEXT),
    notes, next_plan`

const createLesson = `-- name: CreateLesson :one
INSERT INTO lessons (
    student_name, student_id, date, month, duration_minutes, hourly_rate,
    total_income, topic_covered, homework_assigned, student_performance,
    notes, next_plan
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id
`

type CreateLessonParams struct {
	StudentName        string
	StudentID          string
	Date               string
	Month              string
	DurationMinutes    int64
	HourlyRate         string
	TotalIncome        string
	TopicCovered       string
	HomeworkAssigned   string
	StudentPerformance int64
	Notes              string
	NextPlan           string
}

func (q *Queries) CreateLesson(ctx context.Context, arg CreateLessonParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, createLesson,
		arg.StudentName,
		arg.StudentID,
		arg.Date,
		arg.Month,
		arg.DurationMinutes,
		arg.HourlyRate,
		arg.TotalIncome,
		arg.TopicCovered,
		arg.HomeworkAssigned,
		arg.StudentPerformance,
		arg.Notes,
		arg.NextPlan,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const listLessons = `-- name: ListLessons :many
SELECT ` + lessonColumns + `
FROM lessons
WHERE (? = '' OR student_id = ?)
ORDER BY id
`

type ListLessonsParams struct {
	StudentID string
}

func (q *Queries) ListLessons(ctx context.Context, arg ListLessonsParams) ([]Lesson, error) {
	rows, err := q.db.QueryContext(ctx, listLessons,
		arg.StudentID, arg.StudentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Lesson
	for rows.Next() {
		var i Lesson
		if err := rows.Scan(
			&i.ID,
			&i.StudentName,
			&i.StudentID,
			&i.Date,
			&i.Month,
			&i.DurationMinutes,
			&i.HourlyRate,
			&i.TotalIncome,
			&i.TopicCovered,
			&i.HomeworkAssigned,
			&i.StudentPerformance,
			&i.Notes,
			&i.NextPlan,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countLessons = `-- name: CountLessons :one
SELECT COUNT(*) FROM lessons
`

func (q *Queries) CountLessons(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countLessons)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const deleteAllLessons = `-- name: DeleteAllLessons :exec
DELETE FROM lessons
`

func (q *Queries) DeleteAllLessons(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllLessons)
	return err
}
