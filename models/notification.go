package models

import "gorm.io/gorm"

// Notification is a persisted user-facing event (milestone unlocked, badge
// earned). Live copies are pushed over the websocket hub as they are created.
type Notification struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null" json:"userId"`
	Type    string `gorm:"not null" json:"type"`
	Message string `gorm:"not null" json:"message"`
	Read    bool   `json:"read"`
}
