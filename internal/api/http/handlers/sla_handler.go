package handlers

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sla-dashboard/internal/api/dto"
	"github.com/spec-kit/sla-dashboard/internal/service"
	"github.com/spec-kit/sla-dashboard/internal/sla"
	apperrors "github.com/spec-kit/sla-dashboard/pkg/util/errorutil"
)

// SlaHandler serves the dashboard read endpoints.
type SlaHandler struct {
	service *service.SlaService
}

// NewSlaHandler constructs handler.
func NewSlaHandler(slaService *service.SlaService) *SlaHandler {
	return &SlaHandler{service: slaService}
}

// KPISummary GET /api/kpi/summary.
func (h *SlaHandler) KPISummary(c *fiber.Ctx) error {
	kpi, err := h.service.Summary(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.KPIResponse{
		Open:    kpi.Open,
		DueIn7:  kpi.DueIn7,
		DueIn21: kpi.DueIn21,
		Overdue: kpi.Overdue,
	})
}

// ListTickets GET /api/tickets.
func (h *SlaHandler) ListTickets(c *fiber.Ctx) error {
	views, err := h.service.Tickets(c.UserContext(), service.TicketListFilter{
		Status:   c.Query("status"),
		DcID:     c.Query("dc"),
		Category: c.Query("category"),
	})
	if err != nil {
		return err
	}
	items := make([]dto.TicketResponse, 0, len(views))
	for i := range views {
		items = append(items, ticketResponse(&views[i]))
	}
	return c.JSON(items)
}

// Reminders GET /api/reminders.
func (h *SlaHandler) Reminders(c *fiber.Ctx) error {
	threshold, err := parseThreshold(c.Query("thresholdDays"))
	if err != nil {
		return err
	}
	reminders, err := h.service.Reminders(c.UserContext(), sla.ReminderQuery{
		Priority:      c.Query("priority"),
		DcID:          c.Query("dc"),
		ThresholdDays: threshold,
	})
	if err != nil {
		return err
	}
	items := make([]dto.ReminderResponse, 0, len(reminders))
	for _, r := range reminders {
		items = append(items, dto.ReminderResponse{
			TicketID:    r.TicketID,
			DcID:        r.DcID,
			DocCategory: r.DocCategory,
			Owner:       r.Owner,
			Priority:    r.Priority,
			DueDate:     r.DueDate,
			DaysToDue:   r.DaysToDue,
		})
	}
	return c.JSON(items)
}

// Heatmap GET /api/heatmap.
func (h *SlaHandler) Heatmap(c *fiber.Ctx) error {
	rows, err := h.service.Heatmap(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.HeatmapRowResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.HeatmapRowResponse{
			DcID:    row.DcID,
			Overdue: row.Overdue,
			Due7:    row.Due7,
			Due21:   row.Due21,
			OK:      row.OK,
		})
	}
	return c.JSON(items)
}

// DatacenterTickets GET /api/datacenters/:dcId/tickets.
func (h *SlaHandler) DatacenterTickets(c *fiber.Ctx) error {
	dcID, err := url.PathUnescape(c.Params("dcId"))
	if err != nil {
		return apperrors.NewValidationError("invalid data center id", map[string]any{"dcId": c.Params("dcId")})
	}
	views, err := h.service.DatacenterTickets(c.UserContext(), dcID)
	if err != nil {
		return err
	}
	items := make([]dto.DatacenterTicketResponse, 0, len(views))
	for _, v := range views {
		items = append(items, dto.DatacenterTicketResponse{
			TicketID:    v.ID,
			DocCategory: v.DocCategory,
			Owner:       v.Owner,
			Priority:    v.Priority,
			DueDate:     v.DueDate,
			DueInDays:   v.DaysToDue,
		})
	}
	return c.JSON(items)
}

// ListDatacenters GET /api/datacenters.
func (h *SlaHandler) ListDatacenters(c *fiber.Ctx) error {
	dcs, err := h.service.Datacenters(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.DatacenterResponse, 0, len(dcs))
	for _, dc := range dcs {
		items = append(items, dto.DatacenterResponse{
			DcID:     dc.DcID,
			Region:   dc.Region,
			AreaSqft: dc.AreaSqft,
			Manager:  dc.Manager,
		})
	}
	return c.JSON(items)
}

// Risk GET /api/risk.
func (h *SlaHandler) Risk(c *fiber.Ctx) error {
	scored, err := h.service.Risk(c.UserContext(), c.Query("dc"))
	if err != nil {
		return err
	}
	items := make([]dto.RiskResponse, 0, len(scored))
	for _, s := range scored {
		items = append(items, dto.RiskResponse{
			TicketID:    s.ID,
			DcID:        s.DcID,
			DocCategory: s.DocCategory,
			Owner:       s.Owner,
			Priority:    s.Priority,
			DueDate:     s.DueDate,
			DaysToDue:   s.DaysToDue,
			RiskScore:   s.RiskScore,
			RiskBucket:  s.RiskBucket,
		})
	}
	return c.JSON(items)
}

func parseThreshold(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.NewValidationError("thresholdDays must be an integer", map[string]any{"thresholdDays": raw})
	}
	return &n, nil
}

func ticketResponse(v *sla.TicketView) dto.TicketResponse {
	return dto.TicketResponse{
		TicketID:    v.ID,
		DcID:        v.DcID,
		DocCategory: v.DocCategory,
		Owner:       v.Owner,
		Status:      v.Status,
		Priority:    v.Priority,
		CreatedAt:   v.CreatedAt,
		DueDate:     v.DueDate,
		DaysToDue:   v.DaysToDue,
	}
}
