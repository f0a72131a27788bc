package catalog

import (
	"context"

	businessRepo "dogspot/database/repository/business"
	requestRepo "dogspot/database/repository/request"
	sitterRepo "dogspot/database/repository/sitter"
	"dogspot/models"
	"dogspot/utils"

	"go.uber.org/zap"
)

// Cache kinds, also used by the stores for invalidation.
const (
	KindRequests   = "requests"
	KindSitters    = "sitters"
	KindBusinesses = "businesses"
)

// FeedService serves the three browse feeds: it loads the source
// collection and runs the matching pipeline over it.
type FeedService interface {
	Requests(ctx context.Context, query string, filters models.FilterOptions, currentUserID string) ([]models.Request, error)
	Sitters(ctx context.Context, query string, filters models.FilterOptions, currentUser *models.CurrentUser) ([]models.Sitter, error)
	Businesses(ctx context.Context, query string, filters models.FilterOptions, selectedCategory, sortBy string) ([]models.Business, error)
}

// DefaultFeedService implements FeedService over the Mongo repositories
// with an optional Redis snapshot cache in front.
type DefaultFeedService struct {
	RequestRepo  requestRepo.RequestRepository
	SitterRepo   sitterRepo.SitterRepository
	BusinessRepo businessRepo.BusinessRepository
	Cache        FeedCache
}

func (s *DefaultFeedService) Requests(ctx context.Context, query string, filters models.FilterOptions, currentUserID string) ([]models.Request, error) {
	var requests []models.Request
	if s.cacheGet(ctx, KindRequests, &requests) {
		return FilterAndSortRequests(requests, query, filters, currentUserID), nil
	}
	requests, err := s.RequestRepo.GetAll()
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, KindRequests, requests)
	return FilterAndSortRequests(requests, query, filters, currentUserID), nil
}

func (s *DefaultFeedService) Sitters(ctx context.Context, query string, filters models.FilterOptions, currentUser *models.CurrentUser) ([]models.Sitter, error) {
	var sitters []models.Sitter
	if s.cacheGet(ctx, KindSitters, &sitters) {
		return FilterAndSortSitters(sitters, query, filters, currentUser), nil
	}
	sitters, err := s.SitterRepo.GetAll()
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, KindSitters, sitters)
	return FilterAndSortSitters(sitters, query, filters, currentUser), nil
}

func (s *DefaultFeedService) Businesses(ctx context.Context, query string, filters models.FilterOptions, selectedCategory, sortBy string) ([]models.Business, error) {
	var businesses []models.Business
	if s.cacheGet(ctx, KindBusinesses, &businesses) {
		return FilterAndSortBusinesses(businesses, query, filters, selectedCategory, sortBy), nil
	}
	businesses, err := s.BusinessRepo.GetAll()
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, KindBusinesses, businesses)
	return FilterAndSortBusinesses(businesses, query, filters, selectedCategory, sortBy), nil
}

// cacheGet reports whether dest was populated from the cache. Cache errors
// are logged and treated as misses.
func (s *DefaultFeedService) cacheGet(ctx context.Context, kind string, dest interface{}) bool {
	if s.Cache == nil {
		return false
	}
	hit, err := s.Cache.Get(ctx, kind, dest)
	if err != nil {
		utils.GetLogger().Warn("feed cache read failed", zap.String("kind", kind), zap.Error(err))
		return false
	}
	return hit
}

func (s *DefaultFeedService) cacheSet(ctx context.Context, kind string, value interface{}) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Set(ctx, kind, value); err != nil {
		utils.GetLogger().Warn("feed cache write failed", zap.String("kind", kind), zap.Error(err))
	}
}
