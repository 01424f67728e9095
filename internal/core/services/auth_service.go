package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/piecework_app/internal/apperrors"
	"github.com/SscSPs/piecework_app/internal/core/domain"
	portsrepo "github.com/SscSPs/piecework_app/internal/core/ports/repositories"
	"github.com/SscSPs/piecework_app/internal/dto"
	"github.com/SscSPs/piecework_app/internal/utils"
	"github.com/google/uuid"
)

// systemActor stamps records created without an authenticated user.
const systemActor = "system"

// TokenConfig holds the access token signing settings.
type TokenConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

type authService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	tokens   TokenConfig
}

// NewAuthService creates the login and user registration service.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, tokens TokenConfig, options ...ServiceOption) *authService {
	return &authService{
		BaseService: newBaseService(options...),
		userRepo:    userRepo,
		tokens:      tokens,
	}
}

var errInvalidCredentials = fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)

func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Login failed: unknown user", slog.String("username", username))
			return nil, "", time.Time{}, errInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to load user for login")
		return nil, "", time.Time{}, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "Login failed: wrong password", slog.String("user_id", user.UserID))
		return nil, "", time.Time{}, errInvalidCredentials
	}

	token, expiresAt, err := utils.GenerateJWT(user.UserID, string(user.Role), s.tokens.Secret, s.tokens.Expiry, s.tokens.Issuer, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.String("user_id", user.UserID))
		return nil, "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return user, token, expiresAt, nil
}

func (s *authService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to find user", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

func (s *authService) CreateUser(ctx context.Context, req dto.CreateUserRequest, actorID string) (*domain.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		return nil, validationErrorf("%s", err.Error())
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		MobileNumber: strings.TrimSpace(req.MobileNumber),
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
		AuditFields:  domain.NewAuditFields(actorID, s.Now()),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.logFailure(ctx, err, "Failed to save user", slog.String("username", user.Username))
		return nil, err
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return &user, nil
}

func (s *authService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" {
		return nil
	}
	_, err := s.userRepo.FindUserByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	_, err = s.CreateUser(ctx, dto.CreateUserRequest{
		Name:     "Administrator",
		Username: username,
		Password: password,
		Role:     domain.RoleAdmin,
	}, systemActor)
	if err != nil {
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}
	return nil
}
