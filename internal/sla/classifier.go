package sla

import (
	"time"

	"github.com/spec-kit/sla-dashboard/internal/domain"
)

const secondsPerDay = 24 * 60 * 60

const (
	dueSoon7Days  = 7
	dueSoon21Days = 21
)

// DayOf truncates t to midnight of its UTC calendar day.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysToDue returns the signed number of whole calendar days from ref to due.
// Both instants are truncated to their UTC day first, so the result is exact.
func DaysToDue(due, ref time.Time) int {
	// UTC midnights are exact multiples of a day in Unix time.
	return int(DayOf(due).Unix()/secondsPerDay - DayOf(ref).Unix()/secondsPerDay)
}

// Classify maps a days-to-due count onto its bucket.
func Classify(daysToDue int) domain.DueBucket {
	switch {
	case daysToDue < 0:
		return domain.BucketOverdue
	case daysToDue <= dueSoon7Days:
		return domain.BucketDueSoon7
	case daysToDue <= dueSoon21Days:
		return domain.BucketDueSoon21
	default:
		return domain.BucketOnTrack
	}
}

// ClassifyDue buckets a due date relative to ref.
func ClassifyDue(due, ref time.Time) domain.DueBucket {
	return Classify(DaysToDue(due, ref))
}
