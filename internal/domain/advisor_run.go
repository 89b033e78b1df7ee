package domain

import "time"

// AdvisorRunStatus records how a summarization call ended.
type AdvisorRunStatus string

const (
	AdvisorRunOK       AdvisorRunStatus = "OK"
	AdvisorRunFallback AdvisorRunStatus = "FALLBACK"
	AdvisorRunFailed   AdvisorRunStatus = "FAILED"
)

// AdvisorRun is an audit row for a call to the summarization service.
type AdvisorRun struct {
	ID        string
	Timestamp time.Time
	Endpoint  string
	DcID      string
	LatencyMs int64
	Status    AdvisorRunStatus
	Detail    string
}
