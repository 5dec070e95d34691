package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenhouse/plants-api/internal/core/ports"
)

// DashboardHandler serves the admin statistics view.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Statistics handles GET /statistics — admin only.
//
// @Summary      Dashboard statistics
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Statistics
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /statistics [get]
func (h *DashboardHandler) Statistics(c echo.Context) error {
	stats, err := h.service.Statistics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
