package repository

import "github.com/aplusmed/marketplace-api/internal/domain/entity"

// ProductCatalog is the read-only port to product master data (DIP).
// The cart store consumes snapshots from it and never writes back.
type ProductCatalog interface {
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Categories() ([]string, error)
}
