package services

import (
	"context"

	"github.com/SscSPs/videotube_backend/internal/core/domain"
	"github.com/SscSPs/videotube_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves the public view of a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.PublicUser, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a new account.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.PublicUser, error)

	// UpdateAccountDetails updates the caller's full name and/or email.
	UpdateAccountDetails(ctx context.Context, userID string, req dto.UpdateAccountRequest) (*domain.PublicUser, error)

	// UpdateAvatar points the caller's avatar at an already hosted image.
	UpdateAvatar(ctx context.Context, userID string, req dto.UpdateAvatarRequest) (*domain.PublicUser, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
