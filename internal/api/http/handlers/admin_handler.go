package handlers

import (
	"errors"
	"io/fs"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/sla-dashboard/internal/api/dto"
	"github.com/spec-kit/sla-dashboard/internal/auth"
	"github.com/spec-kit/sla-dashboard/internal/loader"
	"github.com/spec-kit/sla-dashboard/internal/service"
	apperrors "github.com/spec-kit/sla-dashboard/pkg/util/errorutil"
)

// AdminHandler exposes operator-only maintenance endpoints.
type AdminHandler struct {
	seed    *service.SeedService
	dataDir string
	logger  *zap.Logger
}

// NewAdminHandler constructs handler.
func NewAdminHandler(seed *service.SeedService, dataDir string, logger *zap.Logger) *AdminHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminHandler{seed: seed, dataDir: dataDir, logger: logger}
}

// Import POST /api/admin/import.
func (h *AdminHandler) Import(c *fiber.Ctx) error {
	result, err := h.seed.Reload(c.UserContext(), h.dataDir)
	if err != nil {
		var rowErr *loader.RowError
		if errors.As(err, &rowErr) || errors.Is(err, fs.ErrNotExist) {
			return apperrors.NewValidationError("import failed", map[string]any{"reason": err.Error()})
		}
		return err
	}
	if principal, ok := auth.PrincipalFromContext(c); ok {
		h.logger.Info("dataset imported by operator",
			zap.String("subject", principal.SubjectID),
			zap.Int("tickets", result.Tickets))
	}
	return c.JSON(fiber.Map{"data": dto.ImportResponse{
		Datacenters: result.Datacenters,
		Tickets:     result.Tickets,
	}})
}
