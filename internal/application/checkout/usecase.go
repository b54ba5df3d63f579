// Package checkout turns the cart into a stored order through the mock
// payment flow: flat shipping, 8% tax, a simulated processing delay and a
// cart clear once the payment "succeeds".
package checkout

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aplusmed/marketplace-api/internal/application/cart"
	"github.com/aplusmed/marketplace-api/internal/application/ports"
	"github.com/aplusmed/marketplace-api/internal/application/session"
	"github.com/aplusmed/marketplace-api/internal/domain"
	"github.com/aplusmed/marketplace-api/internal/domain/entity"
	"github.com/aplusmed/marketplace-api/internal/domain/repository"
)

// Order math constants from the storefront: $25.00 flat shipping, 8% tax.
var (
	flatShipping = decimal.RequireFromString("25.00")
	taxRate      = decimal.RequireFromString("0.08")
)

// Quote is the order summary over a subtotal, computed at full precision.
type Quote struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// QuoteFor derives the summary for a given subtotal.
func QuoteFor(subtotal decimal.Decimal) Quote {
	tax := subtotal.Mul(taxRate)
	return Quote{
		Subtotal: subtotal,
		Shipping: flatShipping,
		Tax:      tax,
		Total:    subtotal.Add(flatShipping).Add(tax),
	}
}

// Input shipping destination for PlaceOrder. Card fields are accepted by the
// handler and discarded; payment is simulated.
type Input struct {
	Name    string
	Company string
	Street  string
	City    string
	State   string
	Zip     string
}

// UseCase places orders for the current session's cart.
type UseCase struct {
	cart    *cart.Store
	session *session.Store
	orders  repository.OrderRepository
	wait    ports.WaitFunc
	delay   time.Duration
	now     func() time.Time
}

// NewUseCase builds the use case. wait simulates the payment processor.
func NewUseCase(c *cart.Store, s *session.Store, orders repository.OrderRepository, wait ports.WaitFunc, delay time.Duration) *UseCase {
	if wait == nil {
		wait = ports.SleepWait
	}
	return &UseCase{cart: c, session: s, orders: orders, wait: wait, delay: delay, now: time.Now}
}

// Quote summarizes the current cart.
func (uc *UseCase) Quote() Quote {
	return QuoteFor(uc.cart.Total())
}

// PlaceOrder validates the destination, runs the simulated payment, freezes
// the cart lines into a stored order and clears the cart. Any failure before
// the payment step leaves the cart untouched.
func (uc *UseCase) PlaceOrder(ctx context.Context, in Input) (*entity.Order, error) {
	user := uc.session.Current()
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Street) == "" ||
		strings.TrimSpace(in.City) == "" || strings.TrimSpace(in.State) == "" ||
		strings.TrimSpace(in.Zip) == "" {
		return nil, domain.ErrInvalidInput
	}

	items := uc.cart.Items()
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	quote := uc.Quote()

	// Simulated payment processing.
	uc.wait(ctx, uc.delay)

	now := uc.now()
	order := &entity.Order{
		ID:            orderID(now),
		CustomerEmail: user.Email,
		Items:         freeze(items),
		Subtotal:      quote.Subtotal,
		Shipping:      quote.Shipping,
		Tax:           quote.Tax,
		Total:         quote.Total,
		Status:        entity.OrderStatusPaid,
		Address: entity.ShippingAddress{
			Name:    in.Name,
			Company: in.Company,
			Street:  in.Street,
			City:    in.City,
			State:   in.State,
			Zip:     in.Zip,
		},
		CreatedAt: now,
	}
	if err := uc.orders.Create(order); err != nil {
		return nil, err
	}

	uc.cart.Clear()
	return order, nil
}

// GetOrder returns a stored order, restricted to its owner (admins see all).
func (uc *UseCase) GetOrder(id string) (*entity.Order, error) {
	user := uc.session.Current()
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !user.IsAdmin() && order.CustomerEmail != user.Email {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

// History lists the current identity's orders, newest first.
func (uc *UseCase) History() ([]*entity.Order, error) {
	user := uc.session.Current()
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.orders.ListByCustomer(user.Email)
}

// orderID mirrors the storefront's format: ORD-<unix millis>.
func orderID(t time.Time) string {
	return "ORD-" + strconv.FormatInt(t.UnixMilli(), 10)
}

func freeze(items []entity.CartItem) []entity.OrderItem {
	out := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, entity.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Supplier:  it.Supplier,
		})
	}
	return out
}
