package models

import "time"

// AuditFields are the timestamps stored with every persisted record.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at" bson:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at" bson:"last_updated_at"`
}
