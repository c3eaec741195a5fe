package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tutorlog/internal/config"
	"tutorlog/internal/export"
	"tutorlog/internal/i18n"
	"tutorlog/internal/ledger/csvfile"
	"tutorlog/internal/services"
	"tutorlog/internal/storage"
)

func newExportCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all lessons and the monthly summary to an xlsx workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out, _ := cmd.Flags().GetString("out")

			res, err := a.openLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger(cmd, res)

			n, err := export.WriteFile(ctx, res.Backend, a.cat, out)
			if err != nil {
				return fmt.Errorf("export lessons: %w", err)
			}
			return a.renderer(cmd).Message(i18n.MsgExported, n, out)
		},
	}
	cmd.Flags().String("out", "teaching_records.xlsx", "Workbook to write")
	return cmd
}

func newMigrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Bring the ledger to the current schema",
		Long: `Bring the ledger to the current schema.

For the csv backend a missing file is created, an empty file gets its
header and a file without the month column is rewritten once with the
month of every lesson. For the sqlite backend pending migrations are
applied.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			r := a.renderer(cmd)

			switch a.cfg.Backend {
			case config.BackendSQLite:
				version, err := storage.RunMigrations(a.cfg.SQLitePath)
				if err != nil {
					return fmt.Errorf("migrate database: %w", err)
				}
				return r.Message(i18n.MsgSchemaVersion, a.cfg.SQLitePath, version)
			case config.BackendMemory:
				return r.Message(i18n.MsgSchemaUpToDate, config.BackendMemory)
			}

			store, err := csvfile.New(ctx, a.cfg.LessonFile, csvfile.WithoutSchemaCheck())
			if err != nil {
				return err
			}
			result, err := store.EnsureSchema(ctx)
			if err != nil {
				return err
			}

			path := store.Path()
			switch result.Action {
			case csvfile.SchemaCreated:
				return r.Message(i18n.MsgSchemaCreated, path)
			case csvfile.SchemaHeaderWritten:
				return r.Message(i18n.MsgSchemaHeader, path)
			case csvfile.SchemaMigrated:
				return r.Message(i18n.MsgSchemaMigrated, result.Rows, path)
			default:
				return r.Message(i18n.MsgSchemaUpToDate, path)
			}
		},
	}
}

func newMirrorCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mirror",
		Short: "Copy the CSV ledger into the SQLite database",
		Long: `Copy every lesson of the CSV file into the SQLite database, replacing
its contents. Lesson order is kept and income is recomputed on the way in.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			src, err := csvfile.New(ctx, a.cfg.LessonFile)
			if err != nil {
				return err
			}
			dst, err := storage.NewSQLiteRepository(a.cfg.SQLitePath)
			if err != nil {
				return err
			}
			defer dst.Close()

			n, err := services.Mirror(ctx, src, dst)
			if err != nil {
				return err
			}
			return a.renderer(cmd).Message(i18n.MsgMirrored, n, a.cfg.SQLitePath)
		},
	}
	return cmd
}
