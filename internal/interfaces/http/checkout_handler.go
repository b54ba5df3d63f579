package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aplusmed/marketplace-api/internal/application/checkout"
	"github.com/aplusmed/marketplace-api/internal/application/dto"
	"github.com/aplusmed/marketplace-api/internal/domain"
	"github.com/aplusmed/marketplace-api/internal/domain/entity"
)

// CheckoutHandler exposes the quote, the mock payment flow and order history.
type CheckoutHandler struct {
	uc       *checkout.UseCase
	receipts ReceiptGenerator
}

// ReceiptGenerator renders the printable receipt of a stored order.
type ReceiptGenerator interface {
	GenerateReceipt(order *entity.Order) ([]byte, error)
}

// NewCheckoutHandler builds the handler.
func NewCheckoutHandler(uc *checkout.UseCase, receipts ReceiptGenerator) *CheckoutHandler {
	return &CheckoutHandler{uc: uc, receipts: receipts}
}

// Quote godoc
// @Summary      Order summary for the current cart
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  dto.QuoteResponse
// @Router       /api/checkout/quote [get]
func (h *CheckoutHandler) Quote(c *fiber.Ctx) error {
	q := h.uc.Quote()
	return c.JSON(dto.QuoteResponse{Subtotal: q.Subtotal, Shipping: q.Shipping, Tax: q.Tax, Total: q.Total})
}

// PlaceOrder godoc
// @Summary      Pay for the cart (simulated) and create the order
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PlaceOrderRequest  true  "Shipping and payment form"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/checkout [post]
func (h *CheckoutHandler) PlaceOrder(c *fiber.Ctx) error {
	var in dto.PlaceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	order, err := h.uc.PlaceOrder(c.UserContext(), checkout.Input{
		Name:    in.Name,
		Company: in.Company,
		Street:  in.Street,
		City:    in.City,
		State:   in.State,
		Zip:     in.Zip,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "cart is empty"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "shipping fields are required"})
		case errors.Is(err, domain.ErrUnauthorized):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "LOGIN_REQUIRED", Message: "log in to continue"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(toOrderResponse(order))
}

// History godoc
// @Summary      Order history of the current identity
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *CheckoutHandler) History(c *fiber.Ctx) error {
	orders, err := h.uc.History()
	if err != nil {
		return mapOrderError(c, err)
	}
	out := dto.OrderListResponse{Items: make([]dto.OrderResponse, 0, len(orders)), Total: len(orders)}
	for _, o := range orders {
		out.Items = append(out.Items, toOrderResponse(o))
	}
	return c.JSON(out)
}

// GetOrder godoc
// @Summary      One stored order (confirmation page)
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "Order ID"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *CheckoutHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.uc.GetOrder(c.Params("id"))
	if err != nil {
		return mapOrderError(c, err)
	}
	return c.JSON(toOrderResponse(order))
}

// Receipt godoc
// @Summary      Printable PDF receipt for a stored order
// @Tags         orders
// @Produce      application/pdf
// @Param        id  path  string  true  "Order ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receipt [get]
func (h *CheckoutHandler) Receipt(c *fiber.Ctx) error {
	order, err := h.uc.GetOrder(c.Params("id"))
	if err != nil {
		return mapOrderError(c, err)
	}
	b, err := h.receipts.GenerateReceipt(order)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+order.ID+`.pdf"`)
	return c.Send(b)
}

func mapOrderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "order not found"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "not your order"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "LOGIN_REQUIRED", Message: "log in to continue"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Supplier:  it.Supplier,
		})
	}
	return dto.OrderResponse{
		ID:        o.ID,
		Items:     items,
		Subtotal:  o.Subtotal,
		Shipping:  o.Shipping,
		Tax:       o.Tax,
		Total:     o.Total,
		Status:    o.Status,
		Name:      o.Address.Name,
		Street:    o.Address.Street,
		City:      o.Address.City,
		State:     o.Address.State,
		Zip:       o.Address.Zip,
		CreatedAt: o.CreatedAt,
	}
}
