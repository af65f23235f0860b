package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Daily Word visibility options
const (
	VisibilityFriends = "friends"
	VisibilityPublic  = "public"
	VisibilityClose   = "close"
)

// DailyWordViewer records a single view on a Daily Word
type DailyWordViewer struct {
	UserID   uint      `json:"userId"`
	ViewedAt time.Time `json:"viewedAt"`
}

// DailyWordReply is a short reply attached to a Daily Word
type DailyWordReply struct {
	FromUserID uint      `json:"fromUserId"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

// DailyWord is an ephemeral status post: one word the user learned today.
// A user has at most one active post; posts expire 24 hours after creation.
type DailyWord struct {
	gorm.Model
	UserID     uint      `json:"userId" gorm:"index;not null"`
	Word       string    `json:"word" gorm:"not null"`
	Meaning    string    `json:"meaning" gorm:"not null"`
	Language   string    `json:"language" gorm:"not null"`
	Visibility string    `json:"visibility" gorm:"default:'friends'"`
	ExpiresAt  time.Time `json:"expiresAt" gorm:"index"`
	IsActive   bool      `json:"isActive" gorm:"default:true;index"`

	Viewers datatypes.JSONType[[]DailyWordViewer] `json:"viewers"`
	Replies datatypes.JSONType[[]DailyWordReply]  `json:"replies"`
}
