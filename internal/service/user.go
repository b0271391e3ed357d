// Package service implements the business rules of the contact management
// service on top of the repository layer. Services return *apierr.Error for
// client-facing failures; anything else is an internal error.
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/mrifkiw/contact-management/internal/apierr"
	"github.com/mrifkiw/contact-management/internal/models"
	"github.com/mrifkiw/contact-management/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUserRequest is the payload for user registration.
type RegisterUserRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=100"`
	Name     string `json:"name" binding:"required,max=100"`
}

// LoginUserRequest is the payload for user login.
type LoginUserRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=100"`
}

// UpdateUserRequest is the payload for partial updates of the current user.
type UpdateUserRequest struct {
	Password *string `json:"password" binding:"omitempty,max=100"`
	Name     *string `json:"name" binding:"omitempty,max=100"`
}

// UserService covers registration, credentials and the auth guard lookup.
type UserService interface {
	Register(ctx context.Context, req RegisterUserRequest) (*models.User, error)
	Login(ctx context.Context, req LoginUserRequest) (*models.User, error)
	Update(ctx context.Context, user *models.User, req UpdateUserRequest) (*models.User, error)
	Logout(ctx context.Context, user *models.User) error
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.SugaredLogger
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo repository.UserRepository, log *zap.SugaredLogger) UserService {
	return &userService{userRepo: userRepo, log: log.With("service", "user")}
}

func (s *userService) Register(ctx context.Context, req RegisterUserRequest) (*models.User, error) {
	// Friendly pre-check; the unique index on username is the backstop for
	// the check-then-insert race.
	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apierr.Conflict("username", "Username already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Password: string(hash),
		Name:     req.Name,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	s.log.Infow("user registered", "username", user.Username)
	return user, nil
}

func (s *userService) Login(ctx context.Context, req LoginUserRequest) (*models.User, error) {
	// Unknown username and wrong password produce the same error so that
	// usernames cannot be enumerated.
	invalidCredentials := apierr.New(401, "username", "username or password wrong")

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, invalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, invalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}
	user.Token = &token
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	s.log.Infow("user logged in", "username", user.Username)
	return user, nil
}

func (s *userService) Update(ctx context.Context, user *models.User, req UpdateUserRequest) (*models.User, error) {
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hash)
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Logout(ctx context.Context, user *models.User) error {
	user.Token = nil
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}
	s.log.Infow("user logged out", "username", user.Username)
	return nil
}

func (s *userService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, apierr.Unauthorized()
	}
	user, err := s.userRepo.FindByToken(ctx, token)
	if err != nil {
		return nil, apierr.Unauthorized()
	}
	return user, nil
}

// generateToken returns a fresh opaque bearer token: 64 hex characters from
// a cryptographically secure source.
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
