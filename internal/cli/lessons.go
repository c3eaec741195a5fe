package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tutorlog/internal/core"
	"tutorlog/internal/i18n"
	applog "tutorlog/internal/log"
	"tutorlog/internal/services"
)

func newAddCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a lesson",
		Long: `Record a lesson.

The student id may be omitted for a student who already has lessons; it is
taken from their first recorded lesson. Income is computed from the
duration and the hourly rate.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			flags := cmd.Flags()
			name, _ := flags.GetString("name")
			id, _ := flags.GetString("id")
			dateArg, _ := flags.GetString("date")
			minutes, _ := flags.GetInt("minutes")
			rateArg, _ := flags.GetString("rate")
			performance, _ := flags.GetInt("performance")
			topic, _ := flags.GetString("topic")
			homework, _ := flags.GetString("homework")
			notes, _ := flags.GetString("notes")
			next, _ := flags.GetString("next")

			in := services.LessonInput{
				StudentName:     name,
				StudentID:       id,
				DurationMinutes: minutes,
				Topic:           topic,
				Homework:        homework,
				Performance:     performance,
				Notes:           notes,
				NextPlan:        next,
			}
			if dateArg != "" {
				d, err := core.ParseDate(dateArg)
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
				in.Date = d
			}
			rate, err := core.ParseAmount(rateArg)
			if err != nil {
				return fmt.Errorf("invalid --rate: %w", err)
			}
			in.HourlyRate = rate

			res, err := a.openLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger(cmd, res)

			stored, err := services.NewLessonService(res.Backend).Record(ctx, in)
			if errors.Is(err, services.ErrStudentIDRequired) {
				return &localizedError{msg: a.cat.T(i18n.MsgIDRequired, name), err: err}
			}
			if err != nil {
				return err
			}
			return a.renderer(cmd).Recorded(stored)
		},
	}

	f := cmd.Flags()
	f.String("name", "", "Student name")
	f.String("id", "", "Student id, required for a new student")
	f.String("date", "", "Lesson date YYYY-MM-DD (default today)")
	f.Int("minutes", 0, "Duration in minutes")
	f.String("rate", "", "Hourly rate")
	f.Int("performance", 0, "Performance score 1-10")
	f.String("topic", "", "Topic covered")
	f.String("homework", "", "Homework assigned")
	f.String("notes", "", "Notes")
	f.String("next", "", "Plan for the next lesson")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("minutes")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("performance")
	return cmd
}

func newQueryCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "query",
		Aliases: []string{"list"},
		Short:   "Find lessons",
		Long: `Find lessons. Every filter is optional and filters combine.

  --name   case-insensitive part of the student name
  --id     exact student id
  --topic  case-insensitive part of the topic
  --month  month prefix, "2024" matches the whole year`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			flags := cmd.Flags()
			var f core.Filter
			f.StudentName, _ = flags.GetString("name")
			f.StudentID, _ = flags.GetString("id")
			f.Topic, _ = flags.GetString("topic")
			f.Month, _ = flags.GetString("month")
			asTable, _ := flags.GetBool("table")

			res, err := a.openLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger(cmd, res)

			lessons, err := res.Backend.Query(ctx, f)
			if err != nil {
				a.readFailed(cmd, applog.OpQuery, err)
			}
			r := a.renderer(cmd)
			if asTable {
				return r.LessonTable(lessons)
			}
			return r.LessonCards(lessons)
		},
	}

	f := cmd.Flags()
	f.String("name", "", "Student name contains")
	f.String("id", "", "Student id equals")
	f.String("topic", "", "Topic contains")
	f.String("month", "", "Month starts with (YYYY or YYYY-MM)")
	f.Bool("table", false, "One line per lesson instead of cards")
	return cmd
}

func newStudentsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "students",
		Short: "List students with their lesson counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			res, err := a.openLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger(cmd, res)

			roster, err := services.NewLessonService(res.Backend).Roster(ctx)
			if err != nil {
				a.readFailed(cmd, applog.OpQuery, err)
				roster = nil
			}
			return a.renderer(cmd).Students(roster)
		},
	}
}
