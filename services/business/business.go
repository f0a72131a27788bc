// Package business implements business storefront registration and edits.
package business

import (
	"context"
	"fmt"
	"time"

	businessRepo "dogspot/database/repository/business"
	"dogspot/models"
	"dogspot/services/catalog"
	"dogspot/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RegisterBusinessInput carries the fields of the business registration form.
type RegisterBusinessInput struct {
	Name         string                   `json:"name" binding:"required"`
	Category     string                   `json:"category" binding:"required"`
	Description  string                   `json:"description"`
	Image        string                   `json:"image"`
	Gallery      []string                 `json:"gallery"`
	Address      string                   `json:"address"`
	Neighborhood string                   `json:"neighborhood" binding:"required"`
	Phone        string                   `json:"phone" binding:"required"`
	Email        string                   `json:"email"`
	Website      string                   `json:"website"`
	Services     []models.BusinessService `json:"services"`
	OpeningHours []models.OpeningHours    `json:"openingHours"`
	SpecialOffer string                   `json:"specialOffer"`
}

// BusinessService defines storefront operations.
type BusinessService interface {
	Register(in RegisterBusinessInput) (*models.Business, error)
	GetByID(id string) (*models.Business, error)
	ListByCategory(category string) ([]models.Business, error)
	Update(business *models.Business) error
	SetSpecialOffer(id, offer string) (*models.Business, error)
}

// DefaultBusinessService implements BusinessService.
type DefaultBusinessService struct {
	Repo  businessRepo.BusinessRepository
	Cache catalog.FeedCache
}

// Register creates a new storefront in one of the fixed categories.
func (s *DefaultBusinessService) Register(in RegisterBusinessInput) (*models.Business, error) {
	if _, ok := models.BusinessCategories[in.Category]; !ok {
		return nil, fmt.Errorf("unknown business category %q", in.Category)
	}

	business := &models.Business{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Category:     in.Category,
		Description:  in.Description,
		Image:        in.Image,
		Gallery:      in.Gallery,
		Address:      in.Address,
		Neighborhood: in.Neighborhood,
		Phone:        in.Phone,
		Email:        in.Email,
		Website:      in.Website,
		Rating:       0,
		ReviewCount:  0,
		Services:     in.Services,
		OpeningHours: in.OpeningHours,
		Verified:     false,
		SpecialOffer: in.SpecialOffer,
		CreatedAt:    time.Now(),
	}

	if err := s.Repo.Create(business); err != nil {
		return nil, err
	}
	s.invalidateFeed()
	return business, nil
}

// ListByCategory returns the storefronts in one category, or every
// storefront when the category is blank.
func (s *DefaultBusinessService) ListByCategory(category string) ([]models.Business, error) {
	if category == "" {
		return s.Repo.GetAll()
	}
	if _, ok := models.BusinessCategories[category]; !ok {
		return nil, fmt.Errorf("unknown business category %q", category)
	}
	return s.Repo.GetByCategory(category)
}

func (s *DefaultBusinessService) GetByID(id string) (*models.Business, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultBusinessService) Update(business *models.Business) error {
	if _, ok := models.BusinessCategories[business.Category]; !ok {
		return fmt.Errorf("unknown business category %q", business.Category)
	}
	if err := s.Repo.Update(business); err != nil {
		return err
	}
	s.invalidateFeed()
	return nil
}

// SetSpecialOffer updates the storefront's promotional banner text. An
// empty offer clears it.
func (s *DefaultBusinessService) SetSpecialOffer(id, offer string) (*models.Business, error) {
	business, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	business.SpecialOffer = offer
	if err := s.Repo.Update(business); err != nil {
		return nil, err
	}
	s.invalidateFeed()
	return business, nil
}

func (s *DefaultBusinessService) invalidateFeed() {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(context.Background(), catalog.KindBusinesses); err != nil {
		utils.GetLogger().Warn("failed to invalidate businesses feed cache", zap.Error(err))
	}
}
