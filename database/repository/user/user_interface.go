package userRepo

import (
	"dogspot/models"
)

// UserRepository defines data access for user accounts.
type UserRepository interface {
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id string) error
}
