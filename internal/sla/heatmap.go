package sla

import (
	"sort"
	"time"

	"github.com/spec-kit/sla-dashboard/internal/domain"
)

// HeatmapRow counts the open tickets of one data center per bucket.
type HeatmapRow struct {
	DcID    string
	Overdue int
	Due7    int
	Due21   int
	OK      int
}

// Total is the number of open tickets counted in the row.
func (r HeatmapRow) Total() int {
	return r.Overdue + r.Due7 + r.Due21 + r.OK
}

// Heatmap groups open tickets by data center. Rows are ordered by DcID.
// Data centers without open tickets produce no row.
func Heatmap(tickets []domain.Ticket, today time.Time) []HeatmapRow {
	rows := make(map[string]*HeatmapRow)
	for _, t := range openOnly(tickets) {
		row, ok := rows[t.DcID]
		if !ok {
			row = &HeatmapRow{DcID: t.DcID}
			rows[t.DcID] = row
		}
		switch ClassifyDue(t.DueDate, today) {
		case domain.BucketOverdue:
			row.Overdue++
		case domain.BucketDueSoon7:
			row.Due7++
		case domain.BucketDueSoon21:
			row.Due21++
		default:
			row.OK++
		}
	}

	out := make([]HeatmapRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DcID < out[j].DcID })
	return out
}

// BucketCounts tallies open tickets per bucket across all data centers.
func BucketCounts(tickets []domain.Ticket, today time.Time) map[domain.DueBucket]int {
	counts := make(map[domain.DueBucket]int, len(domain.AllBuckets))
	for _, b := range domain.AllBuckets {
		counts[b] = 0
	}
	for _, t := range openOnly(tickets) {
		counts[ClassifyDue(t.DueDate, today)]++
	}
	return counts
}
