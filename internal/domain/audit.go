package domain

import "time"

// Audit holds the record fields shared by every persisted entity: the
// store-assigned numeric ID and the creation/modification timestamps.
// Entities embed it by composition instead of inheriting a base type.
type Audit struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAudit returns audit fields for a not-yet-persisted record.
// The ID stays zero until the store assigns one; both timestamps are
// set to the same instant so updated_at == created_at at creation.
func NewAudit() Audit {
	now := time.Now().UTC()
	return Audit{
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch refreshes the modification timestamp. Stores call it on every
// mutation so the updated_at >= created_at invariant holds.
func (a *Audit) Touch() {
	a.UpdatedAt = time.Now().UTC()
}
