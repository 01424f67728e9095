package services

import (
	"context"
	"time"

	"github.com/SscSPs/piecework_app/internal/core/domain"
	"github.com/SscSPs/piecework_app/internal/dto"
)

// AuthSvcFacade authenticates back-office users and issues access tokens.
type AuthSvcFacade interface {
	// Login checks the credentials and returns the user with a signed token.
	Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error)

	// GetUserByID resolves the actor behind a token.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// CreateUser registers a new back-office user.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, actorID string) (*domain.User, error)

	// EnsureAdmin creates the bootstrap admin when no user with that username exists.
	EnsureAdmin(ctx context.Context, username, password string) error
}
