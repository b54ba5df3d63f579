package repository

import "github.com/aplusmed/marketplace-api/internal/domain/entity"

// AccountDirectory is the port to the set of known accounts consulted by
// login/register (DIP). In production this would be a real authentication
// service; the core only needs lookup-by-email and email-exists.
type AccountDirectory interface {
	FindByEmail(email string) (*entity.User, error)
	EmailExists(email string) (bool, error)
	Create(user *entity.User) error
	Update(user *entity.User) error
	List() ([]*entity.User, error)
}
