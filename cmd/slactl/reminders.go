package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spec-kit/sla-dashboard/internal/loader"
	"github.com/spec-kit/sla-dashboard/internal/sla"
)

func runReminders(args []string, stdout io.Writer) error {
	fs := newFlagSet("reminders", stdout)
	dataDir := fs.String("data-dir", "data", "directory holding datacenters.csv and tickets.csv")
	threshold := fs.IntP("threshold", "t", 0, "keep tickets due within this many days; all when omitted")
	priority := fs.String("priority", "", "only this priority")
	dc := fs.String("dc", "", "only this data center")
	at := fs.String("today", "", "reference day (YYYY-MM-DD); defaults to now")
	asJSON := fs.Bool("json", false, "output as JSON instead of a table")
	if err := fs.Parse(args); err != nil {
		return err
	}

	today := time.Now().UTC()
	if *at != "" {
		parsed, err := time.Parse(time.DateOnly, *at)
		if err != nil {
			return fmt.Errorf("invalid --today: %w", err)
		}
		today = parsed
	}

	ds, err := loader.LoadDir(*dataDir)
	if err != nil {
		return err
	}

	q := sla.ReminderQuery{Priority: *priority, DcID: *dc}
	if fs.Changed("threshold") {
		q.ThresholdDays = threshold
	}
	reminders := sla.SelectReminders(ds.Tickets, q, today)

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(reminders)
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TICKET\tDC\tCATEGORY\tOWNER\tPRIORITY\tDUE\tDAYS")
	for _, r := range reminders {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			r.TicketID, r.DcID, r.DocCategory, r.Owner, r.Priority, r.DueDate.Format(time.DateOnly), r.DaysToDue)
	}
	return tw.Flush()
}
