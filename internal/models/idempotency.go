package models

import "time"

// IdempotencyRecord caches the response of a completed mutating
// request so replays with the same key return the original result.
type IdempotencyRecord struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Key          string    `gorm:"size:255;uniqueIndex:idx_idempotency_scope;not null" json:"key"`
	Route        string    `gorm:"size:255;uniqueIndex:idx_idempotency_scope;not null" json:"route"`
	UserID       uint      `gorm:"uniqueIndex:idx_idempotency_scope;not null" json:"user_id"`
	ResponseBody []byte    `gorm:"type:bytea" json:"-"`
	StatusCode   int       `gorm:"not null" json:"status_code"`
	CreatedAt    time.Time `json:"created_at"`
}
