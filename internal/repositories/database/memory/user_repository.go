package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube_backend/internal/core/ports/repositories"
)

// UserRepository implements portsrepo.UserRepositoryFacade using in-memory storage.
// This is useful for testing and development.
type UserRepository struct {
	users      map[string]*domain.User
	byUsername map[string]string // username -> userID
	byEmail    map[string]string // email -> userID
	mu         sync.RWMutex
}

// NewUserRepository creates a new in-memory user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:      make(map[string]*domain.User),
		byUsername: make(map[string]string),
		byEmail:    make(map[string]string),
	}
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.UserID]; exists {
		return fmt.Errorf("user %s: %w", user.UserID, apperrors.ErrDuplicate)
	}
	if _, exists := r.byUsername[user.Username]; exists {
		return fmt.Errorf("username %s: %w", user.Username, apperrors.ErrDuplicate)
	}
	if _, exists := r.byEmail[user.Email]; exists {
		return fmt.Errorf("email %s: %w", user.Email, apperrors.ErrDuplicate)
	}

	r.users[user.UserID] = cloneUser(&user)
	r.byUsername[user.Username] = user.UserID
	r.byEmail[user.Email] = user.UserID
	return nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[userID]
	if !exists {
		return nil, fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return cloneUser(user), nil
}

// FindUserByUsernameOrEmail matches the username first, then the email.
func (r *UserRepository) FindUserByUsernameOrEmail(ctx context.Context, loginKey string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, exists := r.byUsername[loginKey]
	if !exists {
		userID, exists = r.byEmail[loginKey]
	}
	if !exists {
		return nil, fmt.Errorf("user %q: %w", loginKey, apperrors.ErrNotFound)
	}
	return cloneUser(r.users[userID]), nil
}

func (r *UserRepository) UpdateUserDetails(ctx context.Context, userID string, fullName string, email string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[userID]
	if !exists {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	if ownerID, taken := r.byEmail[email]; taken && ownerID != userID {
		return fmt.Errorf("email %s: %w", email, apperrors.ErrDuplicate)
	}

	delete(r.byEmail, user.Email)
	r.byEmail[email] = userID
	user.FullName = fullName
	user.Email = email
	user.LastUpdatedAt = updatedAt
	return nil
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, userID string, avatarURL string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[userID]
	if !exists {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	user.Avatar = avatarURL
	user.LastUpdatedAt = updatedAt
	return nil
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[userID]
	if !exists {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	user.PasswordHash = passwordHash
	user.LastUpdatedAt = updatedAt
	return nil
}

func (r *UserRepository) SetRefreshToken(ctx context.Context, userID string, refreshToken string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[userID]
	if !exists {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	token := refreshToken
	user.RefreshToken = &token
	return nil
}

func (r *UserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[userID]
	if !exists {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	user.RefreshToken = nil
	return nil
}

// cloneUser returns a copy that shares no memory with the stored record.
func cloneUser(user *domain.User) *domain.User {
	u := *user
	if user.RefreshToken != nil {
		token := *user.RefreshToken
		u.RefreshToken = &token
	}
	return &u
}
