package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube_backend/internal/core/ports/repositories"
	"github.com/SscSPs/videotube_backend/internal/models"
	"github.com/SscSPs/videotube_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `user_id, username, email, full_name, avatar, cover_image, password_hash, refresh_token, created_at, last_updated_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
        INSERT INTO users (` + userColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Username,
		m.Email,
		m.FullName,
		m.Avatar,
		m.CoverImage,
		m.PasswordHash,
		m.RefreshToken,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	return translateError("failed to save user", err)
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	return r.findOne(ctx, "failed to find user by id", query, userID)
}

// FindUserByUsernameOrEmail prefers a username match when the key matches one user's
// username and another user's email.
func (r *PgxUserRepository) FindUserByUsernameOrEmail(ctx context.Context, loginKey string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + ` FROM users
        WHERE username = $1 OR email = $1
        ORDER BY (username = $1) DESC
        LIMIT 1;
    `
	return r.findOne(ctx, "failed to find user by username or email", query, loginKey)
}

func (r *PgxUserRepository) UpdateUserDetails(ctx context.Context, userID string, fullName string, email string, updatedAt time.Time) error {
	query := `UPDATE users SET full_name = $2, email = $3, last_updated_at = $4 WHERE user_id = $1;`
	return r.execOne(ctx, "failed to update user details", query, userID, fullName, email, updatedAt)
}

func (r *PgxUserRepository) UpdateAvatar(ctx context.Context, userID string, avatarURL string, updatedAt time.Time) error {
	query := `UPDATE users SET avatar = $2, last_updated_at = $3 WHERE user_id = $1;`
	return r.execOne(ctx, "failed to update avatar", query, userID, avatarURL, updatedAt)
}

func (r *PgxUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string, updatedAt time.Time) error {
	query := `UPDATE users SET password_hash = $2, last_updated_at = $3 WHERE user_id = $1;`
	return r.execOne(ctx, "failed to update password hash", query, userID, passwordHash, updatedAt)
}

func (r *PgxUserRepository) SetRefreshToken(ctx context.Context, userID string, refreshToken string) error {
	query := `UPDATE users SET refresh_token = $2 WHERE user_id = $1;`
	return r.execOne(ctx, "failed to set refresh token", query, userID, refreshToken)
}

func (r *PgxUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	query := `UPDATE users SET refresh_token = NULL WHERE user_id = $1;`
	return r.execOne(ctx, "failed to clear refresh token", query, userID)
}

func (r *PgxUserRepository) findOne(ctx context.Context, op string, query string, args ...any) (*domain.User, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(op, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, translateError(op, err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

// execOne runs an update that must touch exactly one user row.
func (r *PgxUserRepository) execOne(ctx context.Context, op string, query string, args ...any) error {
	cmdTag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return translateError(op, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
	}
	return nil
}
