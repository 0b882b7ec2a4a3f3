package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"poppys/internal/errors"
	"poppys/internal/model"
	"poppys/internal/repository"
	"poppys/internal/service"
)

// ProductHandler handles catalog endpoints.
type ProductHandler struct {
	products service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(products service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// CreateProductRequest represents a product creation request.
type CreateProductRequest struct {
	SKU         string  `json:"sku"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" validate:"gte=0"`
	Quantity    int64   `json:"quantity" validate:"gte=0"`
	ImageURL    string  `json:"image_url"`
}

// UpdateProductRequest represents a product patch. Absent fields are untouched.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Quantity    *int64   `json:"quantity"`
	ImageURL    *string  `json:"image_url"`
}

// Create godoc
// @Summary Create a catalog item
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProductRequest true "Product data"
// @Success 201 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.products.Create(c.Request().Context(), &model.Product{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, product)
}

// List godoc
// @Summary List the catalog
// @Tags products
// @Produce json
// @Success 200 {array} model.Product
// @Router /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.products.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, products)
}

// Get godoc
// @Summary Get a catalog item
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, httpErr := parseID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	product, err := h.products.Get(c.Request().Context(), id)
	if err != nil {
		if stderrors.Is(err, errors.ErrNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		return httpError(err)
	}
	return c.JSON(http.StatusOK, product)
}

// Update godoc
// @Summary Update a catalog item
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body UpdateProductRequest true "Fields to update"
// @Success 200 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [patch]
func (h *ProductHandler) Update(c echo.Context) error {
	id, httpErr := parseID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	product, err := h.products.Update(c.Request().Context(), id, repository.UpdateProductParams{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, product)
}

// Delete godoc
// @Summary Delete a catalog item
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, httpErr := parseID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	if err := h.products.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
