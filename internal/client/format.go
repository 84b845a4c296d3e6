package client

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-task-tamer/internal/metrics"
	"github.com/MKhiriev/go-task-tamer/models"
)

const (
	dayLayout  = "2006-01-02"
	timeLayout = "2006-01-02 15:04"
)

func seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// writeSessions prints sessions as a table followed by their total time.
func writeSessions(w io.Writer, sessions []models.WorkSession, now time.Time) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "no sessions")
		return err
	}

	table := newTable(w)
	_, _ = fmt.Fprintln(table, "ID\tTASK\tSTATUS\tSTARTED\tDURATION")

	var total time.Duration
	for _, s := range sessions {
		elapsed := s.Elapsed(now)
		total += elapsed
		_, _ = fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.TaskName, s.Status(), s.StartTime.Local().Format(timeLayout), metrics.FormatClock(seconds(elapsed)))
	}
	if err := table.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "total: %s\n", metrics.FormatDuration(seconds(total)))
	return err
}

func describeSession(s models.WorkSession, now time.Time) string {
	return fmt.Sprintf("%s %q (%s, %s)", s.ID, s.TaskName, s.Status(), metrics.FormatClock(seconds(s.Elapsed(now))))
}
