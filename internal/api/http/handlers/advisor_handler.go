package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sla-dashboard/internal/api/dto"
	"github.com/spec-kit/sla-dashboard/internal/service"
)

const defaultRunLimit = 50

// AdvisorHandler proxies executive summaries.
type AdvisorHandler struct {
	service *service.AdvisorService
}

// NewAdvisorHandler constructs handler.
func NewAdvisorHandler(advisorService *service.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{service: advisorService}
}

// Summarize GET /api/summarize.
func (h *AdvisorHandler) Summarize(c *fiber.Ctx) error {
	summary, err := h.service.Summarize(c.UserContext(), c.Query("dcId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.SummaryResponse{
		Summary:         summary.Summary,
		Actions:         summary.Actions,
		SuggestedFilter: summary.SuggestedFilter,
		Suggestions:     summary.Suggestions,
	})
}

// Runs GET /api/admin/advisor-runs.
func (h *AdvisorHandler) Runs(c *fiber.Ctx) error {
	limit := defaultRunLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	runs, err := h.service.RecentRuns(c.UserContext(), limit)
	if err != nil {
		return err
	}
	items := make([]dto.AdvisorRunResponse, 0, len(runs))
	for _, r := range runs {
		items = append(items, dto.AdvisorRunResponse{
			ID:        r.ID,
			Timestamp: r.Timestamp,
			Endpoint:  r.Endpoint,
			DcID:      r.DcID,
			LatencyMs: r.LatencyMs,
			Status:    string(r.Status),
			Detail:    r.Detail,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}
