package cli

import (
	"github.com/spf13/cobra"

	applog "tutorlog/internal/log"
)

func newSummaryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show total income, hours and lessons",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			res, err := a.openLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger(cmd, res)

			s, err := res.Backend.FinancialSummary(ctx)
			if err != nil {
				a.readFailed(cmd, applog.OpSummary, err)
			}
			return a.renderer(cmd).Summary(s)
		},
	}
}

func newMonthlyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "monthly",
		Short: "Show lessons, hours and income per month",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			res, err := a.openLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger(cmd, res)

			months, err := res.Backend.MonthlySummary(ctx)
			if err != nil {
				a.readFailed(cmd, applog.OpSummary, err)
			}
			total, err := res.Backend.FinancialSummary(ctx)
			if err != nil {
				a.readFailed(cmd, applog.OpSummary, err)
			}
			return a.renderer(cmd).Monthly(months, total)
		},
	}
}
