package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"poppys/internal/service"
)

// ReportHandler handles the aggregation-backed reporting endpoints.
type ReportHandler struct {
	reports service.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reports service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// OrderStatus godoc
// @Summary Count orders grouped by status
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.StatusCount
// @Failure 403 {object} errors.ErrorResponse
// @Router /reports/order-status [get]
func (h *ReportHandler) OrderStatus(c echo.Context) error {
	rows, err := h.reports.OrderStatusCounts(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// MonthlyRegistrations godoc
// @Summary Count registrations grouped by month
// @Tags reports
// @Produce json
// @Success 200 {array} model.MonthCount
// @Router /reports/monthly-registrations [get]
func (h *ReportHandler) MonthlyRegistrations(c echo.Context) error {
	rows, err := h.reports.MonthlyRegistrations(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// WeeklyRegistrations godoc
// @Summary Count registrations grouped by ISO week
// @Tags reports
// @Produce json
// @Success 200 {array} model.WeekCount
// @Router /reports/weekly-registrations [get]
func (h *ReportHandler) WeeklyRegistrations(c echo.Context) error {
	rows, err := h.reports.WeeklyRegistrations(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rows)
}
