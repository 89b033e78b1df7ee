package sla

import (
	"time"

	"github.com/spec-kit/sla-dashboard/internal/domain"
)

// KPI holds headline counts over open tickets. The windows overlap:
// DueIn21 includes every ticket counted in DueIn7.
type KPI struct {
	Open    int
	DueIn7  int
	DueIn21 int
	Overdue int
}

// Summarize computes KPI using exact timestamps rather than calendar days.
// A ticket due later today counts as due, one due earlier today as overdue.
func Summarize(tickets []domain.Ticket, now time.Time) KPI {
	in7 := now.Add(7 * 24 * time.Hour)
	in21 := now.Add(21 * 24 * time.Hour)

	var k KPI
	for _, t := range tickets {
		if !t.IsOpen() {
			continue
		}
		k.Open++
		due := t.DueDate
		if due.Before(now) {
			k.Overdue++
			continue
		}
		if !due.After(in7) {
			k.DueIn7++
		}
		if !due.After(in21) {
			k.DueIn21++
		}
	}
	return k
}
