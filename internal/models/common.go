package models

import "time"

// AuditTimes holds the bookkeeping timestamps every stored row carries.
type AuditTimes struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
