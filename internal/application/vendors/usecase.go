// Package vendors implements the admin review workflow for supplier
// applications and the commission arithmetic behind the vendor dashboard.
package vendors

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aplusmed/marketplace-api/internal/domain"
	"github.com/aplusmed/marketplace-api/internal/domain/entity"
	"github.com/aplusmed/marketplace-api/internal/domain/repository"
)

// DefaultCommissionRate applied on approval, as a percentage.
var DefaultCommissionRate = decimal.NewFromInt(15)

// DefaultRejectReason used when the admin gives none.
const DefaultRejectReason = "Application did not meet requirements."

// Earnings commission split of a supplier's sales.
type Earnings struct {
	Supplier       string
	CommissionRate decimal.Decimal
	TotalSales     decimal.Decimal
	PlatformFee    decimal.Decimal
	NetEarnings    decimal.Decimal
	OrderCount     int
}

// UseCase reviews vendor applications and derives vendor earnings.
type UseCase struct {
	apps      repository.VendorApplicationRepository
	directory repository.AccountDirectory
	orders    repository.OrderRepository
}

// NewUseCase builds the use case.
func NewUseCase(apps repository.VendorApplicationRepository, directory repository.AccountDirectory, orders repository.OrderRepository) *UseCase {
	return &UseCase{apps: apps, directory: directory, orders: orders}
}

// ListByStatus returns the review queue for one status tab.
func (uc *UseCase) ListByStatus(status string) ([]*entity.VendorApplication, error) {
	return uc.apps.ListByStatus(status)
}

// Approve marks a pending application approved, assigns a vendor id and the
// default commission rate, and flips the directory account's approved flag so
// the next login succeeds.
func (uc *UseCase) Approve(id string) (*entity.VendorApplication, error) {
	app, err := uc.pending(id)
	if err != nil {
		return nil, err
	}
	app.Status = entity.ApplicationApproved
	app.ReviewedAt = time.Now()
	if err := uc.apps.Update(app); err != nil {
		return nil, err
	}

	acct, err := uc.directory.FindByEmail(app.Email)
	if err != nil {
		return nil, err
	}
	if acct != nil {
		acct.Approved = true
		if acct.VendorID == "" {
			acct.VendorID = uc.nextVendorID()
		}
		if acct.CommissionRate.IsZero() {
			acct.CommissionRate = DefaultCommissionRate
		}
		acct.UpdatedAt = time.Now()
		if err := uc.directory.Update(acct); err != nil {
			return nil, err
		}
	}
	return app, nil
}

// Reject marks a pending application rejected with the given reason.
func (uc *UseCase) Reject(id, reason string) (*entity.VendorApplication, error) {
	app, err := uc.pending(id)
	if err != nil {
		return nil, err
	}
	if reason == "" {
		reason = DefaultRejectReason
	}
	app.Status = entity.ApplicationRejected
	app.Reason = reason
	app.ReviewedAt = time.Now()
	if err := uc.apps.Update(app); err != nil {
		return nil, err
	}
	return app, nil
}

// Suspend moves an approved application to suspended and blocks the account's
// logins until re-approved.
func (uc *UseCase) Suspend(id string) (*entity.VendorApplication, error) {
	app, err := uc.apps.GetByID(id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrNotFound
	}
	if app.Status != entity.ApplicationApproved {
		return nil, domain.ErrConflict
	}
	app.Status = entity.ApplicationSuspended
	app.ReviewedAt = time.Now()
	if err := uc.apps.Update(app); err != nil {
		return nil, err
	}

	acct, err := uc.directory.FindByEmail(app.Email)
	if err != nil {
		return nil, err
	}
	if acct != nil {
		acct.Approved = false
		acct.UpdatedAt = time.Now()
		if err := uc.directory.Update(acct); err != nil {
			return nil, err
		}
	}
	return app, nil
}

// EarningsFor sums a supplier's line subtotals across all stored orders and
// splits them by the commission rate.
func (uc *UseCase) EarningsFor(supplier string, rate decimal.Decimal) (*Earnings, error) {
	orders, err := uc.orders.List()
	if err != nil {
		return nil, err
	}
	sales := decimal.Zero
	count := 0
	for _, o := range orders {
		hit := false
		for _, it := range o.Items {
			if it.Supplier == supplier {
				sales = sales.Add(it.Subtotal())
				hit = true
			}
		}
		if hit {
			count++
		}
	}
	fee := sales.Mul(rate).Div(decimal.NewFromInt(100))
	return &Earnings{
		Supplier:       supplier,
		CommissionRate: rate,
		TotalSales:     sales,
		PlatformFee:    fee,
		NetEarnings:    sales.Sub(fee),
		OrderCount:     count,
	}, nil
}

func (uc *UseCase) pending(id string) (*entity.VendorApplication, error) {
	app, err := uc.apps.GetByID(id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrNotFound
	}
	if app.Status != entity.ApplicationPending {
		return nil, domain.ErrConflict
	}
	return app, nil
}

// nextVendorID numbers approved vendors sequentially: VEN-001, VEN-002, ...
func (uc *UseCase) nextVendorID() string {
	n := 1
	if accounts, err := uc.directory.List(); err == nil {
		for _, a := range accounts {
			if a.VendorID != "" {
				n++
			}
		}
	}
	return fmt.Sprintf("VEN-%03d", n)
}
