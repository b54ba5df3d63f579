package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aplusmed/marketplace-api/internal/application/cart"
	"github.com/aplusmed/marketplace-api/internal/application/dto"
	"github.com/aplusmed/marketplace-api/internal/domain/entity"
	"github.com/aplusmed/marketplace-api/internal/domain/repository"
)

// CartHandler exposes the cart store. The cart never errors: inputs are
// normalized by clamping, so every mutation answers with the fresh cart.
type CartHandler struct {
	store    *cart.Store
	products repository.ProductCatalog
}

// NewCartHandler builds the handler.
func NewCartHandler(store *cart.Store, products repository.ProductCatalog) *CartHandler {
	return &CartHandler{store: store, products: products}
}

// Get godoc
// @Summary      Current cart with derived totals
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.cartResponse())
}

// AddItem godoc
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddItemRequest  true  "Product and quantity"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id is required"})
	}
	p, err := h.products.GetByID(in.ProductID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
	}
	h.store.AddItem(p, in.Quantity)
	return c.JSON(h.cartResponse())
}

// UpdateQuantity godoc
// @Summary      Set a line's quantity (zero or less removes it)
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Product ID"
// @Param        body  body  dto.UpdateQuantityRequest  true  "New quantity"
// @Success      200   {object}  dto.CartResponse
// @Router       /api/cart/items/{id} [put]
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	var in dto.UpdateQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	h.store.UpdateQuantity(c.Params("id"), in.Quantity)
	return c.JSON(h.cartResponse())
}

// RemoveItem godoc
// @Summary      Remove a line from the cart
// @Tags         cart
// @Produce      json
// @Param        id  path  string  true  "Product ID"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	h.store.RemoveItem(c.Params("id"))
	return c.JSON(h.cartResponse())
}

// Clear godoc
// @Summary      Empty the cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.store.Clear()
	return c.JSON(h.cartResponse())
}

func (h *CartHandler) cartResponse() dto.CartResponse {
	items := h.store.Items()
	out := dto.CartResponse{
		Items:      make([]dto.CartItemResponse, 0, len(items)),
		ItemsCount: h.store.ItemsCount(),
		Total:      h.store.Total(),
	}
	for _, it := range items {
		out.Items = append(out.Items, toCartItemResponse(it))
	}
	// Two-decimal rounding happens here, at the presentation edge.
	out.TotalDisplay = out.Total.StringFixed(2)
	return out
}

func toCartItemResponse(it entity.CartItem) dto.CartItemResponse {
	return dto.CartItemResponse{
		ProductID: it.ProductID,
		Name:      it.Name,
		Price:     it.Price,
		Quantity:  it.Quantity,
		Stock:     it.Stock,
		Image:     it.Image,
		Category:  it.Category,
		Supplier:  it.Supplier,
		Subtotal:  it.Subtotal(),
	}
}
