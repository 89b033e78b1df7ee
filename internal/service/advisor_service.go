package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/sla-dashboard/internal/advisor"
	"github.com/spec-kit/sla-dashboard/internal/domain"
	"github.com/spec-kit/sla-dashboard/internal/observability"
	"github.com/spec-kit/sla-dashboard/internal/repository"
	apperrors "github.com/spec-kit/sla-dashboard/pkg/util/errorutil"
)

const fallbackTopN = 4

var fallbackActions = []string{
	"Escalate Critical within 24h",
	"Reassign High risk to available owners",
	"Add weekly check for categories trending to overdue",
}

// Summarizer is the remote summarization collaborator.
type Summarizer interface {
	Summarize(ctx context.Context, dcID string) (*advisor.Summary, error)
}

// AdvisorService proxies executive summaries and audits every call. When no
// remote summarizer is configured it builds a summary from local risk scores.
type AdvisorService struct {
	remote  Summarizer
	sla     *SlaService
	runs    repository.AdvisorRunRepository
	metrics *observability.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// AdvisorDependencies bundles collaborators for AdvisorService.
type AdvisorDependencies struct {
	Remote  Summarizer
	Sla     *SlaService
	Runs    repository.AdvisorRunRepository
	Metrics *observability.Metrics
	Logger  *zap.Logger
	Now     func() time.Time
}

// NewAdvisorService constructs the service.
func NewAdvisorService(deps AdvisorDependencies) *AdvisorService {
	s := &AdvisorService{
		remote:  deps.Remote,
		sla:     deps.Sla,
		runs:    deps.Runs,
		metrics: deps.Metrics,
		logger:  deps.Logger,
		now:     deps.Now,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Summarize returns an executive summary for dcID (blank for global).
// Remote failures surface as UPSTREAM_FAILED.
func (s *AdvisorService) Summarize(ctx context.Context, dcID string) (*advisor.Summary, error) {
	start := s.now()

	if s.remote == nil {
		summary, err := s.fallback(ctx, dcID)
		if err != nil {
			return nil, err
		}
		s.record(ctx, dcID, start, domain.AdvisorRunFallback, "")
		return summary, nil
	}

	summary, err := s.remote.Summarize(ctx, dcID)
	if err != nil {
		s.record(ctx, dcID, start, domain.AdvisorRunFailed, err.Error())
		s.logger.Warn("summarization failed", zap.String("dc_id", dcID), zap.Error(err))
		return nil, apperrors.NewUpstreamError("summarization service", err)
	}
	s.record(ctx, dcID, start, domain.AdvisorRunOK, "")
	return summary, nil
}

// RecentRuns lists the latest audit rows.
func (s *AdvisorService) RecentRuns(ctx context.Context, limit int) ([]domain.AdvisorRun, error) {
	if s.runs == nil {
		return []domain.AdvisorRun{}, nil
	}
	return s.runs.ListRecent(ctx, limit)
}

func (s *AdvisorService) fallback(ctx context.Context, dcID string) (*advisor.Summary, error) {
	scored, err := s.sla.Risk(ctx, dcID)
	if err != nil {
		return nil, err
	}
	if len(scored) > fallbackTopN {
		scored = scored[:fallbackTopN]
	}

	var b strings.Builder
	b.WriteString("Executive Summary")
	if dcID != "" {
		fmt.Fprintf(&b, " (DC %s)", dcID)
	} else {
		b.WriteString(" (Global)")
	}
	b.WriteString(":\nTop risky tickets:")
	for _, t := range scored {
		fmt.Fprintf(&b, "\n- %s | %s | %s | due in %d days | risk %s (%d)",
			t.ID, t.DcID, t.DocCategory, t.DaysToDue, t.RiskBucket, t.RiskScore)
	}

	return &advisor.Summary{
		Summary:         b.String(),
		Actions:         append([]string(nil), fallbackActions...),
		SuggestedFilter: map[string]string{},
	}, nil
}

func (s *AdvisorService) record(ctx context.Context, dcID string, start time.Time, status domain.AdvisorRunStatus, detail string) {
	s.metrics.RecordAdvisorCall(status)
	if s.runs == nil {
		return
	}
	run := &domain.AdvisorRun{
		ID:        uuid.NewString(),
		Timestamp: start.UTC(),
		Endpoint:  "summarize",
		DcID:      dcID,
		LatencyMs: s.now().Sub(start).Milliseconds(),
		Status:    status,
		Detail:    detail,
	}
	if err := s.runs.Create(ctx, run); err != nil {
		s.logger.Warn("failed to record advisor run", zap.Error(err))
	}
}
