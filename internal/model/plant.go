package model

import "time"

// Plant represents a plant a user is growing.
type Plant struct {
	ID        string    `json:"id" gorm:"primaryKey;size:32"`
	UserID    string    `json:"userId" gorm:"index;size:32;not null"`
	PlantName string    `json:"plantName" gorm:"size:255;not null"`
	Progress  int       `json:"progress" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`
}
