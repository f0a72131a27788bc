package businessRepo

import (
	"dogspot/models"
)

// BusinessRepository defines data access for business storefronts.
type BusinessRepository interface {
	// GetByID retrieves a business by its unique ID.
	GetByID(id string) (*models.Business, error)
	// GetAll retrieves all businesses.
	GetAll() ([]models.Business, error)
	// GetByCategory returns businesses in the given category.
	GetByCategory(category string) ([]models.Business, error)
	// Create inserts a new business record.
	Create(business *models.Business) error
	// Update modifies an existing business record.
	Update(business *models.Business) error
	// Delete removes a business record by its ID.
	Delete(id string) error
}
