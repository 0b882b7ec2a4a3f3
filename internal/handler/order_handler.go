package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"poppys/internal/auth"
	"poppys/internal/errors"
	"poppys/internal/model"
	"poppys/internal/repository"
	"poppys/internal/service"
)

// OrderHandler handles order endpoints. The router gates every route here.
type OrderHandler struct {
	orders service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orders service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// CreateOrderRequest represents an order creation request. There is no
// user_email field: the stored value always comes from the verified identity.
type CreateOrderRequest struct {
	Items  []model.OrderItem `json:"items"`
	Total  float64           `json:"total" validate:"gte=0"`
	Status model.OrderStatus `json:"status"`
}

// UpdateOrderRequest represents an order patch. Absent fields are untouched.
type UpdateOrderRequest struct {
	Status *model.OrderStatus `json:"status"`
	Total  *float64           `json:"total"`
}

// Create godoc
// @Summary Create an order for the caller
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateOrderRequest true "Order data"
// @Success 201 {object} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	email, ok := auth.IdentityEmail(c)
	if !ok {
		return httpError(errors.ErrNoIdentity)
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orders.Create(c.Request().Context(), email, &model.Order{
		Items:  req.Items,
		Total:  req.Total,
		Status: req.Status,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, order)
}

// ListMine godoc
// @Summary List the caller's own orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Order
// @Failure 403 {object} errors.ErrorResponse
// @Router /orders/user [get]
func (h *OrderHandler) ListMine(c echo.Context) error {
	email, ok := auth.IdentityEmail(c)
	if !ok {
		return httpError(errors.ErrNoIdentity)
	}

	orders, err := h.orders.ListForUser(c.Request().Context(), email)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

// List godoc
// @Summary List all orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Order
// @Failure 403 {object} errors.ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orders.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

// Get godoc
// @Summary Get an order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	id, httpErr := parseID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	order, err := h.orders.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, order)
}

// Update godoc
// @Summary Update an order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body UpdateOrderRequest true "Fields to update"
// @Success 200 {object} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{id} [patch]
func (h *OrderHandler) Update(c echo.Context) error {
	id, httpErr := parseID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	var req UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	order, err := h.orders.Update(c.Request().Context(), id, repository.UpdateOrderParams{
		Status: req.Status,
		Total:  req.Total,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, order)
}

// Delete godoc
// @Summary Delete an order
// @Tags orders
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	id, httpErr := parseID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	if err := h.orders.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
