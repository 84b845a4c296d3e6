package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-task-tamer/internal/adapter"
	"github.com/MKhiriev/go-task-tamer/internal/metrics"
	"github.com/MKhiriev/go-task-tamer/models"
)

type transitionFunc func(srv adapter.ServerAdapter, ctx context.Context, sessionID string) (models.WorkSession, error)

func (a *App) startCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start <task name>",
		Short: "Start a work session",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withServer(cmd, func(ctx context.Context, srv adapter.ServerAdapter) error {
				session, err := srv.StartSession(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "started %s\n", describeSession(session, a.now()))
				return nil
			})
		},
	}
}

// transitionCommand builds pause, resume and complete. Without an id the
// current session is used.
func (a *App) transitionCommand(name, short string, transition transitionFunc) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [session id]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withServer(cmd, func(ctx context.Context, srv adapter.ServerAdapter) error {
				var sessionID string
				if len(args) == 1 {
					sessionID = args[0]
				} else {
					current, err := srv.CurrentSession(ctx)
					if err != nil {
						return err
					}
					if current == nil {
						return ErrNoSession
					}
					sessionID = current.ID
				}

				session, err := transition(srv, ctx, sessionID)
				if err != nil {
					return err
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", pastTense(name), describeSession(session, a.now()))
				return nil
			})
		},
	}
}

func pastTense(verb string) string {
	if strings.HasSuffix(verb, "e") {
		return verb + "d"
	}
	return verb + "ed"
}

func (a *App) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the session in progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withServer(cmd, func(ctx context.Context, srv adapter.ServerAdapter) error {
				current, err := srv.CurrentSession(ctx)
				if err != nil {
					return err
				}
				if current == nil {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), ErrNoSession)
					return nil
				}

				_, _ = fmt.Fprintln(cmd.OutOrStdout(), describeSession(*current, a.now()))
				return nil
			})
		},
	}
}

func (a *App) todayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "List the sessions started today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withServer(cmd, func(ctx context.Context, srv adapter.ServerAdapter) error {
				sessions, err := srv.TodaysSessions(ctx)
				if err != nil {
					return err
				}
				return writeSessions(cmd.OutOrStdout(), sessions, a.now())
			})
		},
	}
}

type rangeFlags struct {
	from string
	to   string
}

func (r *rangeFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&r.from, "from", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&r.to, "to", "", "last day, YYYY-MM-DD")
}

// dateRange returns nil when neither flag is set. Days are read in the local
// time zone and the range ends one nanosecond before the midnight after --to.
func (r *rangeFlags) dateRange() (*models.DateRange, error) {
	if r.from == "" && r.to == "" {
		return nil, nil
	}
	if r.from == "" || r.to == "" {
		return nil, ErrIncompleteRange
	}

	start, err := time.ParseInLocation(dayLayout, r.from, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid --from: %w", err)
	}
	lastDay, err := time.ParseInLocation(dayLayout, r.to, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid --to: %w", err)
	}
	if start.After(lastDay) {
		return nil, ErrInvalidDateRange
	}

	return &models.DateRange{Start: start, End: lastDay.AddDate(0, 0, 1).Add(-time.Nanosecond)}, nil
}

func (a *App) sessionsCommand() *cobra.Command {
	var dates rangeFlags

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List sessions, optionally within --from/--to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dateRange, err := dates.dateRange()
			if err != nil {
				return err
			}

			return a.withServer(cmd, func(ctx context.Context, srv adapter.ServerAdapter) error {
				sessions, err := srv.ListSessions(ctx, dateRange)
				if err != nil {
					return err
				}
				return writeSessions(cmd.OutOrStdout(), sessions, a.now())
			})
		},
	}
	dates.bind(cmd)

	return cmd
}

func (a *App) journalCommand() *cobra.Command {
	var dates rangeFlags

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show sessions grouped by day (last 7 days by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dateRange, err := dates.dateRange()
			if err != nil {
				return err
			}

			return a.withServer(cmd, func(ctx context.Context, srv adapter.ServerAdapter) error {
				days, err := srv.Journal(ctx, dateRange)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(days) == 0 {
					_, _ = fmt.Fprintln(out, "no sessions")
					return nil
				}
				for _, day := range days {
					_, _ = fmt.Fprintf(out, "%s  %s  (%d sessions)\n",
						day.Date, metrics.FormatDuration(day.TotalDuration), len(day.Sessions))
					for _, s := range day.Sessions {
						_, _ = fmt.Fprintf(out, "  %s\n", describeSession(s, a.now()))
					}
				}
				return nil
			})
		},
	}
	dates.bind(cmd)

	return cmd
}
