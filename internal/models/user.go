package models

// User is the persisted form of a user, shared by the postgres and mongodb stores.
// RefreshToken is NULL (postgres) or absent (mongodb) while logged out.
type User struct {
	UserID       string  `db:"user_id" bson:"_id"`
	Username     string  `db:"username" bson:"username"`
	Email        string  `db:"email" bson:"email"`
	FullName     string  `db:"full_name" bson:"full_name"`
	Avatar       string  `db:"avatar" bson:"avatar"`
	CoverImage   string  `db:"cover_image" bson:"cover_image,omitempty"`
	PasswordHash string  `db:"password_hash" bson:"password_hash"`
	RefreshToken *string `db:"refresh_token" bson:"refresh_token,omitempty"`
	AuditFields  `bson:",inline"`
}
