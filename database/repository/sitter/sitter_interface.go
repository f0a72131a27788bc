package sitterRepo

import (
	"dogspot/models"
)

// SitterRepository defines data access for sitter profiles.
type SitterRepository interface {
	// GetByID retrieves a sitter by its unique ID.
	GetByID(id string) (*models.Sitter, error)
	// GetByEmail retrieves a sitter by email address.
	GetByEmail(email string) (*models.Sitter, error)
	// GetAll retrieves all sitters.
	GetAll() ([]models.Sitter, error)
	// GetByNeighborhood returns sitters serving the given neighborhood.
	GetByNeighborhood(neighborhood string) ([]models.Sitter, error)
	// Create inserts a new sitter record.
	Create(sitter *models.Sitter) error
	// Update modifies an existing sitter record.
	Update(sitter *models.Sitter) error
	// Delete removes a sitter record by its ID.
	Delete(id string) error
}
