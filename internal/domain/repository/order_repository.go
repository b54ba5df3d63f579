package repository

import "github.com/aplusmed/marketplace-api/internal/domain/entity"

// OrderRepository is the persistence port for completed orders (DIP).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	ListByCustomer(email string) ([]*entity.Order, error)
	List() ([]*entity.Order, error)
}
