package sla

import (
	"sort"
	"time"

	"github.com/spec-kit/sla-dashboard/internal/domain"
)

// ScoredTicket is an open ticket with its computed risk.
type ScoredTicket struct {
	TicketView
	RiskScore  int
	RiskBucket domain.RiskBucket
}

var priorityWeights = map[domain.TicketPriority]int{
	domain.TicketPriorityLow:    1,
	domain.TicketPriorityMedium: 2,
	domain.TicketPriorityHigh:   3,
}

func priorityWeight(p domain.TicketPriority) int {
	if w, ok := priorityWeights[p]; ok {
		return w
	}
	return priorityWeights[domain.TicketPriorityMedium]
}

// dueComponent grows as the due date approaches: 0 on track, 3 overdue.
func dueComponent(daysToDue int) int {
	switch Classify(daysToDue) {
	case domain.BucketOnTrack:
		return 0
	case domain.BucketDueSoon21:
		return 1
	case domain.BucketDueSoon7:
		return 2
	default:
		return 3
	}
}

// Score rates a ticket from its priority and due distance.
func Score(priority domain.TicketPriority, daysToDue int) (int, domain.RiskBucket) {
	due := dueComponent(daysToDue)
	score := priorityWeight(priority)*2 + due*3
	switch {
	case due == 3:
		return score, domain.RiskCritical
	case score >= 7:
		return score, domain.RiskHigh
	case score >= 4:
		return score, domain.RiskMedium
	default:
		return score, domain.RiskLow
	}
}

// ScoreTickets scores the open tickets matching dcID (blank for all) and
// orders them critical first, then by descending score.
func ScoreTickets(tickets []domain.Ticket, dcID string, now time.Time) []ScoredTicket {
	views := ListTickets(tickets, Filter{Status: string(domain.TicketStatusOpen), DcID: dcID}, now)
	out := make([]ScoredTicket, 0, len(views))
	for _, v := range views {
		score, bucket := Score(v.Priority, v.DaysToDue)
		out = append(out, ScoredTicket{TicketView: v, RiskScore: score, RiskBucket: bucket})
	}
	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := out[i].RiskBucket == domain.RiskCritical, out[j].RiskBucket == domain.RiskCritical
		if ci != cj {
			return ci
		}
		return out[i].RiskScore > out[j].RiskScore
	})
	return out
}
