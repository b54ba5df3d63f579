package repository

import "github.com/aplusmed/marketplace-api/internal/domain/entity"

// VendorApplicationRepository is the persistence port for supplier
// applications reviewed by admins (DIP).
type VendorApplicationRepository interface {
	Create(app *entity.VendorApplication) error
	GetByID(id string) (*entity.VendorApplication, error)
	ListByStatus(status string) ([]*entity.VendorApplication, error)
	Update(app *entity.VendorApplication) error
}
