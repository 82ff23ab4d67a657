package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube_backend/internal/core/ports/repositories"
	"github.com/SscSPs/videotube_backend/internal/models"
	"github.com/SscSPs/videotube_backend/internal/utils/mapping"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const usersCollection = "users"

// UserRepository implements portsrepo.UserRepositoryFacade on a MongoDB collection.
// Every operation touches a single document.
type UserRepository struct {
	users *mongo.Collection
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

// NewUserRepository returns a repository on db and makes sure the unique indexes exist.
func NewUserRepository(ctx context.Context, db *mongo.Database) (*UserRepository, error) {
	const op = "mongodb.NewUserRepository"

	r := &UserRepository{users: db.Collection(usersCollection)}
	if err := r.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r, nil
}

// NewRepositoryProvider wires the mongodb-backed repositories.
func NewRepositoryProvider(ctx context.Context, db *mongo.Database) (portsrepo.RepositoryProvider, error) {
	userRepo, err := NewUserRepository(ctx, db)
	if err != nil {
		return portsrepo.RepositoryProvider{}, err
	}
	return portsrepo.RepositoryProvider{UserRepo: userRepo}, nil
}

func (r *UserRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("users_username_key"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("users_email_key"),
		},
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}
	return nil
}

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	const op = "mongodb.SaveUser"

	_, err := r.users.InsertOne(ctx, mapping.ToModelUser(user))
	return translateError(op, err)
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, "mongodb.FindUserByID", bson.D{{Key: "_id", Value: userID}})
}

// FindUserByUsernameOrEmail matches the username first, then the email.
func (r *UserRepository) FindUserByUsernameOrEmail(ctx context.Context, loginKey string) (*domain.User, error) {
	const op = "mongodb.FindUserByUsernameOrEmail"

	user, err := r.findOne(ctx, op, bson.D{{Key: "username", Value: loginKey}})
	if errors.Is(err, apperrors.ErrNotFound) {
		return r.findOne(ctx, op, bson.D{{Key: "email", Value: loginKey}})
	}
	return user, err
}

func (r *UserRepository) UpdateUserDetails(ctx context.Context, userID string, fullName string, email string, updatedAt time.Time) error {
	return r.updateOne(ctx, "mongodb.UpdateUserDetails", userID, bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "full_name", Value: fullName},
			{Key: "email", Value: email},
			{Key: "last_updated_at", Value: updatedAt},
		}},
	})
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, userID string, avatarURL string, updatedAt time.Time) error {
	return r.updateOne(ctx, "mongodb.UpdateAvatar", userID, bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "avatar", Value: avatarURL},
			{Key: "last_updated_at", Value: updatedAt},
		}},
	})
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string, updatedAt time.Time) error {
	return r.updateOne(ctx, "mongodb.UpdatePasswordHash", userID, bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "password_hash", Value: passwordHash},
			{Key: "last_updated_at", Value: updatedAt},
		}},
	})
}

func (r *UserRepository) SetRefreshToken(ctx context.Context, userID string, refreshToken string) error {
	return r.updateOne(ctx, "mongodb.SetRefreshToken", userID, bson.D{
		{Key: "$set", Value: bson.D{{Key: "refresh_token", Value: refreshToken}}},
	})
}

func (r *UserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	return r.updateOne(ctx, "mongodb.ClearRefreshToken", userID, bson.D{
		{Key: "$unset", Value: bson.D{{Key: "refresh_token", Value: ""}}},
	})
}

func (r *UserRepository) findOne(ctx context.Context, op string, filter bson.D) (*domain.User, error) {
	var doc models.User
	if err := r.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translateError(op, err)
	}
	user := mapping.ToDomainUser(doc)
	return &user, nil
}

func (r *UserRepository) updateOne(ctx context.Context, op string, userID string, update bson.D) error {
	res, err := r.users.UpdateOne(ctx, bson.D{{Key: "_id", Value: userID}}, update)
	if err != nil {
		return translateError(op, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
	}
	return nil
}

// translateError maps driver errors onto apperrors sentinels and wraps everything with op.
func translateError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", op, apperrors.ErrDuplicate)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
