package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tutorlog/internal/backend"
	"tutorlog/internal/config"
	"tutorlog/internal/i18n"
	applog "tutorlog/internal/log"
	"tutorlog/internal/report"
)

// localizedError carries a message for the user while keeping the cause
// available to errors.Is.
type localizedError struct {
	msg string
	err error
}

func (e *localizedError) Error() string { return e.msg }
func (e *localizedError) Unwrap() error { return e.err }

type app struct {
	cfg    *config.Config
	logger *applog.Logger
	cat    *i18n.Catalog
}

// NewRootCommand constructs the tutorlog command tree. cfg supplies the
// flag defaults; flags given on the command line win.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	a := &app{cfg: cfg}

	root := &cobra.Command{
		Use:           "tutorlog",
		Short:         i18n.New(cfg.Language).T(i18n.MsgAppShort),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("backend", cfg.Backend, "Ledger backend: csv|sqlite|memory")
	pf.String("file", cfg.LessonFile, "CSV lesson file")
	pf.String("sqlite-path", cfg.SQLitePath, "SQLite database path")
	pf.String("lang", cfg.Language, "Output language (en, zh)")
	pf.Bool("plain", cfg.Plain, "Plain text tables without borders or colour")

	root.AddCommand(
		newAddCommand(a),
		newQueryCommand(a),
		newStudentsCommand(a),
		newSummaryCommand(a),
		newMonthlyCommand(a),
		newExportCommand(a),
		newMigrateCommand(a),
		newMirrorCommand(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	flags := cmd.Flags()
	a.cfg.Backend, _ = flags.GetString("backend")
	a.cfg.LessonFile, _ = flags.GetString("file")
	a.cfg.SQLitePath, _ = flags.GetString("sqlite-path")
	a.cfg.Language, _ = flags.GetString("lang")
	a.cfg.Plain, _ = flags.GetBool("plain")

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.logger = SetupLogger(a.cfg, cmd.ErrOrStderr())
	a.cat = i18n.New(a.cfg.Language).WithCurrency(a.cfg.Currency)
	cmd.SetContext(applog.WithLogger(cmd.Context(), a.logger))
	return nil
}

func (a *app) openLedger(ctx context.Context) (*backend.BackendResult, error) {
	bc, err := backend.FromAppConfig(a.cfg)
	if err != nil {
		return nil, err
	}
	return backend.NewFactory(slog.Default()).CreateBackend(ctx, bc)
}

func (a *app) renderer(cmd *cobra.Command) *report.Renderer {
	out := cmd.OutOrStdout()
	return report.New(out, a.cat, a.cfg.Plain || !isTerminal(out))
}

// readFailed reports a read error the way every listing command does: the
// cause goes to the log, the user sees a notice and an empty result.
func (a *app) readFailed(cmd *cobra.Command, op string, err error) {
	logger := applog.FromContext(cmd.Context())
	logger.WarnContext(cmd.Context(), "Showing empty result",
		applog.NewFields().WithOperation(op).WithError(err).ToSlice()...)
	fmt.Fprintln(cmd.ErrOrStderr(), a.cat.T(i18n.MsgReadFailed))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func closeLedger(cmd *cobra.Command, res *backend.BackendResult) {
	if err := res.Close(); err != nil {
		applog.FromContext(cmd.Context()).ErrorContext(cmd.Context(), "Failed to close ledger",
			applog.FieldError, err)
	}
}
