package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/aplusmed/marketplace-api/internal/application/catalog"
	"github.com/aplusmed/marketplace-api/internal/application/dto"
	"github.com/aplusmed/marketplace-api/internal/domain"
)

// ProductHandler exposes catalog browsing (public).
type ProductHandler struct {
	uc *catalog.UseCase
}

// NewProductHandler builds the handler.
func NewProductHandler(uc *catalog.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Browse products with search, filters and sorting
// @Tags         products
// @Produce      json
// @Param        search     query  string  false  "Free-text search"
// @Param        category   query  string  false  "Category filter"
// @Param        min_price  query  number  false  "Minimum price (inclusive)"
// @Param        max_price  query  number  false  "Maximum price (exclusive)"
// @Param        in_stock   query  bool    false  "Only in-stock products"
// @Param        sort       query  string  false  "default | price_asc | price_desc | name_asc | stock"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	f := dto.ProductFilter{
		Search:      c.Query("search"),
		Category:    c.Query("category"),
		InStockOnly: c.QueryBool("in_stock", false),
		SortBy:      c.Query("sort", dto.SortDefault),
	}
	if v := c.Query("min_price"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			f.MinPrice = &d
		}
	}
	if v := c.Query("max_price"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			f.MaxPrice = &d
		}
	}
	out, err := h.uc.List(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get one product
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "Product ID"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
