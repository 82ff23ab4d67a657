package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/dto"
	"github.com/SscSPs/videotube_backend/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	BaseService
	userRepo   portsrepo.UserRepositoryFacade
	bcryptCost int
}

// NewUserService creates a new user service. A bcryptCost outside bcrypt's range falls back
// to the default cost.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, bcryptCost int) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, bcryptCost: bcryptCost}
}

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.PublicUser, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := strings.TrimSpace(req.Email)
	username := strings.ToLower(strings.TrimSpace(req.Username))
	if fullName == "" || email == "" || username == "" || strings.TrimSpace(req.Password) == "" {
		return nil, apperrors.NewBadRequest("All fields are required")
	}

	hash, err := utils.HashPasswordWithCost(req.Password, s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperrors.NewBadRequest("password must be at most 72 bytes")
		}
		s.LogError(ctx, err, "Failed to hash password during registration")
		return nil, apperrors.NewInternal("failed to hash password", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Email:        email,
		FullName:     fullName,
		Avatar:       strings.TrimSpace(req.Avatar),
		CoverImage:   strings.TrimSpace(req.CoverImage),
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflict("User with email or username already exists")
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("username", username))
		return nil, apperrors.NewInternal("failed to register user", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	public := user.Public()
	return &public, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.PublicUser, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFound("User does not exist")
		}
		s.LogError(ctx, err, "Failed to get user by ID", slog.String("user_id", userID))
		return nil, apperrors.NewInternal("failed to get user", err)
	}
	public := user.Public()
	return &public, nil
}

func (s *userService) UpdateAccountDetails(ctx context.Context, userID string, req dto.UpdateAccountRequest) (*domain.PublicUser, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := strings.TrimSpace(req.Email)
	if fullName == "" && email == "" {
		return nil, apperrors.NewBadRequest("fullName or email is required")
	}

	current, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFound("User does not exist")
		}
		s.LogError(ctx, err, "Failed to load user for update", slog.String("user_id", userID))
		return nil, apperrors.NewInternal("failed to update account", err)
	}
	if fullName == "" {
		fullName = current.FullName
	}
	if email == "" {
		email = current.Email
	}

	if err := s.userRepo.UpdateUserDetails(ctx, userID, fullName, email, time.Now().UTC()); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			return nil, apperrors.NewConflict("Email is already in use")
		case errors.Is(err, apperrors.ErrNotFound):
			return nil, apperrors.NewNotFound("User does not exist")
		}
		s.LogError(ctx, err, "Failed to update account details", slog.String("user_id", userID))
		return nil, apperrors.NewInternal("failed to update account", err)
	}

	return s.GetUserByID(ctx, userID)
}

func (s *userService) UpdateAvatar(ctx context.Context, userID string, req dto.UpdateAvatarRequest) (*domain.PublicUser, error) {
	avatar := strings.TrimSpace(req.Avatar)
	if avatar == "" {
		return nil, apperrors.NewBadRequest("Avatar is missing")
	}

	if err := s.userRepo.UpdateAvatar(ctx, userID, avatar, time.Now().UTC()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFound("User does not exist")
		}
		s.LogError(ctx, err, "Failed to update avatar", slog.String("user_id", userID))
		return nil, apperrors.NewInternal("failed to update avatar", err)
	}

	s.LogInfo(ctx, "Avatar updated", slog.String("user_id", userID))
	return s.GetUserByID(ctx, userID)
}
