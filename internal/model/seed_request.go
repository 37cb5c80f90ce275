package model

import "time"

// Seed request lifecycle statuses. Records are created as pending; the
// remaining transitions are performed by an administrative flow outside
// this API.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusReleased = "released"
	StatusRejected = "rejected"
)

// ValidStatus reports whether s is a known seed request status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusReleased, StatusRejected:
		return true
	}
	return false
}

// SeedRequest represents a user's request for seeds from the exchange.
// The owning user id is trusted as supplied; there is no foreign key check
// at creation time.
type SeedRequest struct {
	ID          string      `json:"id" gorm:"primaryKey;size:32"`
	UserID      string      `json:"userId" gorm:"index;size:32;not null"`
	SeedType    string      `json:"seedType" gorm:"size:255;not null"`
	Description string      `json:"description" gorm:"type:text;not null"`
	ImagePath   string      `json:"imagePath,omitempty" gorm:"size:512"`
	Status      string      `json:"status" gorm:"size:20;not null;default:'pending'"`
	Progress    ProgressMap `json:"progress" gorm:"type:json"`
	CreatedAt   time.Time   `json:"createdAt"`
}
