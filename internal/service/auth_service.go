package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodist_api/internal/model"
	"foodist_api/internal/repository"
	"foodist_api/internal/utils"

	"github.com/sirupsen/logrus"
)

var (
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrMissingFields      = errors.New("email and password are required")
	ErrTokenExhausted     = errors.New("could not assign a unique api token")
)

// maxTokenAttempts bounds the generate/check loop during registration.
// Hitting the bound with a 122-bit token space means the store is
// misconfigured, not that the space is full.
const maxTokenAttempts = 10

// TokenGenerator produces candidate API tokens. Candidates are not
// unique on their own; Register checks each one against the store.
type TokenGenerator interface {
	Generate() string
}

// Identity is the durable id/token pair hydrated into client cookies
type Identity struct {
	UserID   int
	APIToken string
}

// AuthService provides registration and identity related services
type AuthService interface {
	Register(ctx context.Context, email, password, fullName string) error
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	GetUserInfo(ctx context.Context, username string) (*model.UserInfo, error)
	ResolveIdentity(ctx context.Context, username string) (*Identity, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
	tokenGen TokenGenerator
	logger   *logrus.Logger
	strict   bool
}

// NewAuthService creates a new AuthService. When strict is true,
// registration rejects incomplete payloads instead of silently
// accepting them.
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil, tokenGen TokenGenerator, logger *logrus.Logger, strict bool) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
		tokenGen: tokenGen,
		logger:   logger,
		strict:   strict,
	}
}

// Register creates a new user account with a freshly minted unique API
// token. An incomplete payload is accepted as a no-op unless strict
// validation is enabled; no row is written in that case.
func (s *authService) Register(ctx context.Context, email, password, fullName string) error {
	if email == "" || password == "" {
		if s.strict {
			return ErrMissingFields
		}
		s.logger.WithField("email", email).Debug("registration payload incomplete, accepted as no-op")
		return nil
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	apiToken, err := s.mintAPIToken(ctx)
	if err != nil {
		return err
	}

	var firstName *string
	if fullName != "" {
		firstName = &fullName
	}

	user := &model.User{
		Username:     email,
		PasswordHash: hashedPassword,
		FirstName:    firstName,
		ImageURL:     model.DefaultImageURL,
		APIToken:     apiToken,
		Authority:    model.AuthorityUser,
		Enabled:      true,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user in repository: %w", err)
	}
	return nil
}

// mintAPIToken loops generate/check until a candidate token is free.
// API tokens must be unique across all users; the users table unique
// constraint remains the backstop for the check/insert race.
func (s *authService) mintAPIToken(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= maxTokenAttempts; attempt++ {
		candidate := s.tokenGen.Generate()
		exists, err := s.userRepo.ExistsWithToken(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check api token uniqueness: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		s.logger.WithField("attempt", attempt).Warn("generated API token collided with an existing one")
	}
	s.logger.WithField("attempts", maxTokenAttempts).Error("exhausted attempts to mint a unique API token")
	return "", ErrTokenExhausted
}

// Login authenticates a user and returns a JWT token
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by username: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials // User not found
	}
	if !user.Enabled {
		return nil, "", ErrAccountDisabled
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials // Password mismatch
	}

	token, err := s.jwtUtil.GenerateToken(user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// GetUserInfo returns the profile projection for the given principal,
// or nil when no matching user exists.
func (s *authService) GetUserInfo(ctx context.Context, username string) (*model.UserInfo, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load user info: %w", err)
	}
	if user == nil {
		return nil, nil
	}
	return &model.UserInfo{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		ImageURL:  user.ImageURL,
	}, nil
}

// ResolveIdentity maps a principal name to its durable user id and API
// token. Returns nil without error when the principal has no user row.
func (s *authService) ResolveIdentity(ctx context.Context, username string) (*Identity, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve identity: %w", err)
	}
	if user == nil {
		return nil, nil
	}
	return &Identity{UserID: user.ID, APIToken: user.APIToken}, nil
}
