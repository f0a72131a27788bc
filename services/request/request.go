// Package request implements the posting flow for service requests.
package request

import (
	"context"
	"fmt"
	"time"

	requestRepo "dogspot/database/repository/request"
	"dogspot/models"
	"dogspot/services/catalog"
	"dogspot/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateRequestInput carries the fields of the new-request form.
type CreateRequestInput struct {
	ServiceType         string    `json:"serviceType" binding:"required"`
	Date                time.Time `json:"date" binding:"required"`
	Time                string    `json:"time" binding:"required"`
	DogName             string    `json:"dogName" binding:"required"`
	DogBreed            string    `json:"dogBreed"`
	DogAge              int       `json:"dogAge"`
	DogImage            string    `json:"dogImage"`
	AdditionalInfo      string    `json:"additionalInfo"`
	Neighborhood        string    `json:"neighborhood" binding:"required"`
	SpecialInstructions string    `json:"specialInstructions"`
	OfferedPrice        float64   `json:"offeredPrice" binding:"required"`
	Flexible            bool      `json:"flexible"`
}

// RequestService defines the operations of the posting flow.
type RequestService interface {
	Create(client models.Client, in CreateRequestInput) (*models.Request, error)
	GetByID(id string) (*models.Request, error)
	ListByClient(clientID string) ([]models.Request, error)
	// SyncClientProfile refreshes the client and dog snapshots embedded in
	// the client's existing requests after a profile edit.
	SyncClientProfile(client models.Client) error
	Complete(id, clientID string) (*models.Request, error)
	Delete(id, clientID string) error
}

// DefaultRequestService implements RequestService.
type DefaultRequestService struct {
	Repo  requestRepo.RequestRepository
	Cache catalog.FeedCache
}

// Create posts a new request with an embedded client and dog snapshot.
func (s *DefaultRequestService) Create(client models.Client, in CreateRequestInput) (*models.Request, error) {
	if in.OfferedPrice < 0 {
		return nil, fmt.Errorf("offered price must not be negative")
	}

	req := &models.Request{
		ID:          uuid.New().String(),
		ClientID:    client.ID,
		Client:      client,
		ServiceType: in.ServiceType,
		Date:        in.Date,
		Time:        in.Time,
		Dog: models.Dog{
			ID:    uuid.New().String(),
			Name:  in.DogName,
			Breed: in.DogBreed,
			Age:   in.DogAge,
			// The posting flow derives size from age. This is a separate
			// derivation from the size stored on a registered dog and the two
			// can disagree for the same animal.
			Size:           sizeForAge(in.DogAge),
			Temperament:    "mixed",
			Image:          in.DogImage,
			AdditionalInfo: in.AdditionalInfo,
		},
		Neighborhood:        in.Neighborhood,
		SpecialInstructions: in.SpecialInstructions,
		OfferedPrice:        in.OfferedPrice,
		Flexible:            in.Flexible,
		Status:              models.RequestStatusOpen,
		CreatedAt:           time.Now(),
	}

	if err := s.Repo.Create(req); err != nil {
		return nil, err
	}
	s.invalidateFeed()
	return req, nil
}

func (s *DefaultRequestService) GetByID(id string) (*models.Request, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultRequestService) ListByClient(clientID string) ([]models.Request, error) {
	return s.Repo.GetByClientID(clientID)
}

// SyncClientProfile rewrites the embedded snapshots on every request owned
// by the client. The dog snapshot only picks up fields the profile holds.
func (s *DefaultRequestService) SyncClientProfile(client models.Client) error {
	requests, err := s.Repo.GetByClientID(client.ID)
	if err != nil {
		return err
	}
	for i := range requests {
		req := requests[i]
		req.Client.Name = client.Name
		req.Client.Phone = client.Phone
		if len(client.Dogs) > 0 {
			dog := client.Dogs[0]
			if dog.Name != "" {
				req.Dog.Name = dog.Name
			}
			if dog.Breed != "" {
				req.Dog.Breed = dog.Breed
			}
			if dog.Age != 0 {
				req.Dog.Age = dog.Age
			}
			if dog.Image != "" {
				req.Dog.Image = dog.Image
			}
			if dog.AdditionalInfo != "" {
				req.Dog.AdditionalInfo = dog.AdditionalInfo
			}
		}
		if err := s.Repo.Update(&req); err != nil {
			return fmt.Errorf("failed to sync request %s: %w", req.ID, err)
		}
	}
	s.invalidateFeed()
	return nil
}

// Complete marks a request as done. Only the owning client may complete
// it, and only while it is still open.
func (s *DefaultRequestService) Complete(id, clientID string) (*models.Request, error) {
	req, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.ClientID != clientID {
		return nil, fmt.Errorf("request %s does not belong to client %s", id, clientID)
	}
	if req.Status != models.RequestStatusOpen {
		return nil, fmt.Errorf("request %s is not open", id)
	}
	req.Status = models.RequestStatusCompleted
	if err := s.Repo.Update(req); err != nil {
		return nil, err
	}
	s.invalidateFeed()
	return req, nil
}

// Delete removes a request; only the owning client may delete it.
func (s *DefaultRequestService) Delete(id, clientID string) error {
	req, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if req.ClientID != clientID {
		return fmt.Errorf("request %s does not belong to client %s", id, clientID)
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidateFeed()
	return nil
}

func (s *DefaultRequestService) invalidateFeed() {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(context.Background(), catalog.KindRequests); err != nil {
		utils.GetLogger().Warn("failed to invalidate requests feed cache", zap.Error(err))
	}
}

// sizeForAge maps a dog's age in years to a size class.
func sizeForAge(age int) string {
	switch {
	case age <= 2:
		return "small"
	case age <= 7:
		return "medium"
	default:
		return "large"
	}
}
