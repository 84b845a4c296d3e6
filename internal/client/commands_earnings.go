package client

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-task-tamer/internal/adapter"
	"github.com/MKhiriev/go-task-tamer/models"
)

func (a *App) earningsCommand() *cobra.Command {
	earnings := &cobra.Command{Use: "earnings", Short: "Record and list monthly earnings"}

	var (
		month, year int
		amount      string
	)
	set := &cobra.Command{
		Use:   "set --amount <amount>",
		Short: "Record the earnings of a month (current month by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := models.ParseMoney(amount)
			if err != nil {
				return fmt.Errorf("invalid --amount: %w", err)
			}

			now := a.now()
			request := models.EarningsRequest{Month: month, Year: year, Amount: value}
			if request.Month == 0 {
				request.Month = int(now.Month())
			}
			if request.Year == 0 {
				request.Year = now.Year()
			}

			return a.withServer(cmd, func(ctx context.Context, srv adapter.ServerAdapter) error {
				saved, err := srv.UpsertEarnings(ctx, request)
				if err != nil {
					return err
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "earnings for %02d/%d: %s\n", saved.Month, saved.Year, saved.Amount)
				return nil
			})
		},
	}
	set.Flags().IntVar(&month, "month", 0, "month 1-12")
	set.Flags().IntVar(&year, "year", 0, "year")
	set.Flags().StringVar(&amount, "amount", "", "amount, e.g. 1000.00")
	_ = set.MarkFlagRequired("amount")

	list := &cobra.Command{
		Use:   "list",
		Short: "List recorded earnings, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withServer(cmd, func(ctx context.Context, srv adapter.ServerAdapter) error {
				records, err := srv.ListEarnings(ctx)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(records) == 0 {
					_, _ = fmt.Fprintln(out, "no earnings")
					return nil
				}

				table := newTable(out)
				_, _ = fmt.Fprintln(table, "PERIOD\tAMOUNT")
				for _, e := range records {
					_, _ = fmt.Fprintf(table, "%02d/%d\t%s\n", e.Month, e.Year, e.Amount)
				}
				return table.Flush()
			})
		},
	}

	earnings.AddCommand(set, list)
	return earnings
}

func (a *App) metricsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Show the dashboard metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withServer(cmd, func(ctx context.Context, srv adapter.ServerAdapter) error {
				m, err := srv.Metrics(ctx)
				if err != nil {
					return err
				}

				table := newTable(cmd.OutOrStdout())
				_, _ = fmt.Fprintf(table, "monthly earnings\t%s\t(%+d%% vs %s)\n", m.MonthlyEarnings, m.IncomeChangePercent, m.PreviousMonthEarnings)
				_, _ = fmt.Fprintf(table, "avg daily income\t%d\n", m.AvgDailyIncome)
				_, _ = fmt.Fprintf(table, "hours, last 30 days\t%d\t(%.2f exact)\n", m.MonthlyHours, m.TotalHours)
				_, _ = fmt.Fprintf(table, "avg daily hours\t%.1f\t(%+.1f vs baseline)\n", m.AvgDailyHours, m.HoursChange)
				_, _ = fmt.Fprintf(table, "work streak\t%d days\n", m.WorkStreak)
				return table.Flush()
			})
		},
	}
}

func (a *App) chartsCommand() *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Show monthly hours and earnings series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withServer(cmd, func(ctx context.Context, srv adapter.ServerAdapter) error {
				charts, err := srv.Charts(ctx, months)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if err = writeSeries(out, "HOURS", charts.Hours, "%.1f"); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(out)
				return writeSeries(out, "EARNINGS", charts.Earnings, "%.2f")
			})
		},
	}
	cmd.Flags().IntVar(&months, "months", 0, "number of months, server default when 0")

	return cmd
}

func writeSeries(w io.Writer, title string, points []models.ChartPoint, valueFormat string) error {
	table := newTable(w)
	_, _ = fmt.Fprintf(table, "MONTH\t%s\n", title)
	for _, p := range points {
		_, _ = fmt.Fprintf(table, "%s %d\t"+valueFormat+"\n", p.Month, p.Year, p.Value)
	}
	return table.Flush()
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "client: %s\n", a.build)

			_, srv, err := a.connect()
			if err != nil {
				return err
			}
			serverVersion, err := srv.Version(cmd.Context())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, "server: %s\n", serverVersion)
			return nil
		},
	}
}
