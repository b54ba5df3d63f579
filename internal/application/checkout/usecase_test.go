package checkout_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aplusmed/marketplace-api/internal/application/cart"
	"github.com/aplusmed/marketplace-api/internal/application/checkout"
	"github.com/aplusmed/marketplace-api/internal/application/ports"
	"github.com/aplusmed/marketplace-api/internal/application/session"
	"github.com/aplusmed/marketplace-api/internal/domain"
	"github.com/aplusmed/marketplace-api/internal/domain/entity"
	"github.com/aplusmed/marketplace-api/internal/infrastructure/apps"
	"github.com/aplusmed/marketplace-api/internal/infrastructure/directory"
	"github.com/aplusmed/marketplace-api/internal/infrastructure/orders"
	"github.com/aplusmed/marketplace-api/internal/infrastructure/state"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test harness
// ──────────────────────────────────────────────────────────────────────────────

type harness struct {
	cart     *cart.Store
	sessions *session.Store
	orders   *orders.Memory
	uc       *checkout.UseCase
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	st, err := state.NewFileStore(afero.NewMemMapFs(), "state")
	require.NoError(t, err)
	sessions := session.New(directory.NewMemoryWithDemoAccounts(), apps.NewMemory(), st, ports.NoWait, session.Config{
		TokenSecret: "test-secret",
		TokenIssuer: "test",
		TokenTTL:    time.Hour,
	})
	cartStore := cart.New(st)
	orderRepo := orders.NewMemory()
	return &harness{
		cart:     cartStore,
		sessions: sessions,
		orders:   orderRepo,
		uc:       checkout.NewUseCase(cartStore, sessions, orderRepo, ports.NoWait, 0),
	}
}

func (h *harness) loginAs(t *testing.T, email string) {
	t.Helper()
	_, err := h.sessions.Login(context.Background(), email, "pw")
	require.NoError(t, err)
}

func (h *harness) fillCart(price string, qty int) {
	h.cart.AddItem(&entity.Product{
		ID:       "p1",
		Name:     "Test Product",
		Price:    decimal.RequireFromString(price),
		Stock:    100,
		Supplier: "Test Supplier",
	}, qty)
}

func shippingForm() checkout.Input {
	return checkout.Input{
		Name:   "John Smith",
		Street: "1 Hospital Way",
		City:   "Springfield",
		State:  "IL",
		Zip:    "62701",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Quote
// ──────────────────────────────────────────────────────────────────────────────

func TestQuote_FlatShippingAndEightPercentTax(t *testing.T) {
	h := newHarness(t)
	h.fillCart("10.00", 5) // subtotal 50.00

	q := h.uc.Quote()
	assert.Equal(t, "50.00", q.Subtotal.StringFixed(2))
	assert.Equal(t, "25.00", q.Shipping.StringFixed(2))
	assert.Equal(t, "4.00", q.Tax.StringFixed(2))
	assert.Equal(t, "79.00", q.Total.StringFixed(2))
}

func TestQuote_EmptyCartStillQuotesShipping(t *testing.T) {
	h := newHarness(t)

	q := h.uc.Quote()
	assert.True(t, q.Subtotal.IsZero())
	assert.Equal(t, "25.00", q.Shipping.StringFixed(2))
}

// ──────────────────────────────────────────────────────────────────────────────
// PlaceOrder
// ──────────────────────────────────────────────────────────────────────────────

func TestPlaceOrder_StoresTheOrderAndClearsTheCart(t *testing.T) {
	h := newHarness(t)
	h.loginAs(t, "john@hospital.com")
	h.fillCart("10.00", 5)

	order, err := h.uc.PlaceOrder(context.Background(), shippingForm())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.ID, "ORD-"))
	assert.Equal(t, entity.OrderStatusPaid, order.Status)
	assert.Equal(t, "john@hospital.com", order.CustomerEmail)
	assert.Equal(t, "79.00", order.Total.StringFixed(2))
	require.Len(t, order.Items, 1)
	assert.Equal(t, 5, order.Items[0].Quantity)

	assert.Equal(t, 0, h.cart.Len(), "a successful payment empties the cart")

	stored, err := h.orders.GetByID(order.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, order.Total.String(), stored.Total.String())
}

func TestPlaceOrder_AnonymousIsRejected(t *testing.T) {
	h := newHarness(t)
	h.fillCart("10.00", 1)

	_, err := h.uc.PlaceOrder(context.Background(), shippingForm())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 1, h.cart.Len(), "the cart must survive a failed attempt")
}

func TestPlaceOrder_EmptyCartIsRejected(t *testing.T) {
	h := newHarness(t)
	h.loginAs(t, "john@hospital.com")

	_, err := h.uc.PlaceOrder(context.Background(), shippingForm())
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestPlaceOrder_MissingShippingFieldsAreRejected(t *testing.T) {
	h := newHarness(t)
	h.loginAs(t, "john@hospital.com")
	h.fillCart("10.00", 1)

	in := shippingForm()
	in.City = "   "
	_, err := h.uc.PlaceOrder(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 1, h.cart.Len())
}

// ──────────────────────────────────────────────────────────────────────────────
// GetOrder / History
// ──────────────────────────────────────────────────────────────────────────────

func TestGetOrder_OwnerOnly_AdminSeesAll(t *testing.T) {
	h := newHarness(t)
	h.loginAs(t, "john@hospital.com")
	h.fillCart("10.00", 1)

	order, err := h.uc.PlaceOrder(context.Background(), shippingForm())
	require.NoError(t, err)

	got, err := h.uc.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	// Someone else's session must not see the order.
	h.loginAs(t, "supplier@medtech.com")
	_, err = h.uc.GetOrder(order.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Admins see everything.
	h.loginAs(t, "admin@aplusmed.com")
	_, err = h.uc.GetOrder(order.ID)
	assert.NoError(t, err)

	h.sessions.Logout()
	_, err = h.uc.GetOrder(order.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGetOrder_UnknownID(t *testing.T) {
	h := newHarness(t)
	h.loginAs(t, "john@hospital.com")

	_, err := h.uc.GetOrder("ORD-0")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistory_NewestFirstAndScopedToTheIdentity(t *testing.T) {
	h := newHarness(t)
	h.loginAs(t, "john@hospital.com")

	h.fillCart("10.00", 1)
	first, err := h.uc.PlaceOrder(context.Background(), shippingForm())
	require.NoError(t, err)

	// Order ids carry millisecond timestamps; space the two orders out.
	time.Sleep(3 * time.Millisecond)

	h.fillCart("20.00", 1)
	second, err := h.uc.PlaceOrder(context.Background(), shippingForm())
	require.NoError(t, err)

	list, err := h.uc.History()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	// Another identity sees an empty history.
	h.loginAs(t, "supplier@medtech.com")
	list, err = h.uc.History()
	require.NoError(t, err)
	assert.Empty(t, list)
}
