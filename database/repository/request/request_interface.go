package requestRepo

import (
	"dogspot/models"
)

// RequestRepository defines data access for service requests. The feed
// never writes; writes come from the posting and profile-edit flows.
type RequestRepository interface {
	// GetByID retrieves a request by its unique ID.
	GetByID(id string) (*models.Request, error)
	// GetAll retrieves all requests.
	GetAll() ([]models.Request, error)
	// GetByClientID retrieves all requests posted by a client.
	GetByClientID(clientID string) ([]models.Request, error)
	// Create inserts a new request record.
	Create(request *models.Request) error
	// Update modifies an existing request record.
	Update(request *models.Request) error
	// Delete removes a request record by its ID.
	Delete(id string) error
}
