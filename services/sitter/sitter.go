// Package sitter implements sitter registration and profile management.
package sitter

import (
	"fmt"
	"strings"
	"sync"
	"time"

	sitterRepo "dogspot/database/repository/sitter"
	"dogspot/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// RegisterSitterInput carries the fields of the sitter registration wizard.
type RegisterSitterInput struct {
	Name          string                 `json:"name" binding:"required"`
	Email         string                 `json:"email" binding:"required,email"`
	Phone         string                 `json:"phone" binding:"required"`
	Password      string                 `json:"password" binding:"required,min=6"`
	Neighborhood  string                 `json:"neighborhood"`
	Description   string                 `json:"description"`
	Experience    string                 `json:"experience"`
	Neighborhoods []string               `json:"neighborhoods"`
	Services      []models.SitterService `json:"services"`
	Availability  []models.Availability  `json:"availability"`
	ProfileImage  string                 `json:"profileImage"`
}

// SitterService defines sitter profile operations. Writes notify
// subscribers; the server wires feed snapshot invalidation through
// Subscribe so stale sitter feeds never outlive a write.
type SitterService interface {
	Register(in RegisterSitterInput) (*models.Sitter, error)
	GetByID(id string) (*models.Sitter, error)
	ListByNeighborhood(neighborhood string) ([]models.Sitter, error)
	Update(sitter *models.Sitter) error
	UpdateAvailability(id string, slots []models.Availability) (*models.Sitter, error)
	Subscribe(fn func())
}

// DefaultSitterService implements SitterService.
type DefaultSitterService struct {
	Repo sitterRepo.SitterRepository

	mu   sync.Mutex
	subs []func()
}

// Register creates a new sitter profile. Ratings start at zero and the
// profile is unverified until reviewed.
func (s *DefaultSitterService) Register(in RegisterSitterInput) (*models.Sitter, error) {
	if existing, _ := s.Repo.GetByEmail(in.Email); existing != nil {
		return nil, fmt.Errorf("a sitter with email %s already exists", in.Email)
	}
	for _, svc := range in.Services {
		if _, ok := models.ServiceTypes[svc.Type]; !ok {
			return nil, fmt.Errorf("unknown service type %q", svc.Type)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	sitter := &models.Sitter{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		ProfileImage:  in.ProfileImage,
		UserType:      "sitter",
		Neighborhood:  in.Neighborhood,
		Description:   in.Description,
		Experience:    in.Experience,
		Neighborhoods: in.Neighborhoods,
		Services:      in.Services,
		Availability:  in.Availability,
		Rating:        0,
		ReviewCount:   0,
		Verified:      false,
		PasswordHash:  string(hash),
		CreatedAt:     time.Now(),
	}

	if err := s.Repo.Create(sitter); err != nil {
		return nil, err
	}
	s.changed()
	return sitter, nil
}

func (s *DefaultSitterService) GetByID(id string) (*models.Sitter, error) {
	return s.Repo.GetByID(id)
}

// ListByNeighborhood returns the sitters serving one neighborhood, or
// every sitter when the neighborhood is blank.
func (s *DefaultSitterService) ListByNeighborhood(neighborhood string) ([]models.Sitter, error) {
	neighborhood = strings.TrimSpace(neighborhood)
	if neighborhood == "" {
		return s.Repo.GetAll()
	}
	return s.Repo.GetByNeighborhood(neighborhood)
}

func (s *DefaultSitterService) Update(sitter *models.Sitter) error {
	if err := s.Repo.Update(sitter); err != nil {
		return err
	}
	s.changed()
	return nil
}

// UpdateAvailability replaces the sitter's weekly slots.
func (s *DefaultSitterService) UpdateAvailability(id string, slots []models.Availability) (*models.Sitter, error) {
	sitter, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	sitter.Availability = slots
	if err := s.Repo.Update(sitter); err != nil {
		return nil, err
	}
	s.changed()
	return sitter, nil
}

// Subscribe registers a callback invoked after every sitter write.
func (s *DefaultSitterService) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *DefaultSitterService) changed() {
	s.mu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
