// Package user implements client accounts and sign-in. It is the session
// provider the feeds consume: a valid token resolves to a CurrentUser.
package user

import (
	"fmt"
	"time"

	userRepo "dogspot/database/repository/user"
	"dogspot/models"
	"dogspot/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUserInput carries the fields of the client sign-up form.
type RegisterUserInput struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	Password     string `json:"password" binding:"required,min=6"`
	Neighborhood string `json:"neighborhood"`
}

// AuthResult is returned on successful registration or sign-in.
type AuthResult struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// UserService defines account operations.
type UserService interface {
	Register(in RegisterUserInput) (*AuthResult, error)
	Authenticate(email, password string) (*AuthResult, error)
	GetByID(id string) (*models.User, error)
	Update(user *models.User) error
	SignOut(token string) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates a client account and signs it in.
func (s *DefaultUserService) Register(in RegisterUserInput) (*AuthResult, error) {
	if existing, _ := s.Repo.GetByEmail(in.Email); existing != nil {
		return nil, fmt.Errorf("a user with email %s already exists", in.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		UserType:     "client",
		Neighborhood: in.Neighborhood,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}
	return s.issueSession(user)
}

// Authenticate verifies credentials and issues a token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResult, error) {
	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	return s.issueSession(user)
}

func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultUserService) Update(user *models.User) error {
	return s.Repo.Update(user)
}

// SignOut drops the cached session for the token.
func (s *DefaultUserService) SignOut(token string) error {
	return utils.DeleteSession(utils.GetAuthCacheClient(), utils.HashToken(token))
}

func (s *DefaultUserService) issueSession(user *models.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(user.ID, user.UserType, utils.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	session := utils.Session{
		UserID:    user.ID,
		UserType:  user.UserType,
		Name:      user.Name,
		CreatedAt: time.Now(),
	}
	if err := utils.SaveSession(utils.GetAuthCacheClient(), utils.HashToken(token), session); err != nil {
		// Session caching is best effort; the token alone is sufficient.
		utils.GetLogger().Warn("failed to cache session", zap.Error(err))
	}
	result := *user
	result.PasswordHash = ""
	return &AuthResult{User: result, Token: token}, nil
}
