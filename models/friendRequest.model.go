package models

import "gorm.io/gorm"

const (
	FriendRequestPending  = "pending"
	FriendRequestAccepted = "accepted"
)

type FriendRequest struct {
	gorm.Model
	SenderID    uint   `json:"senderId" gorm:"index;not null"`
	RecipientID uint   `json:"recipientId" gorm:"index;not null"`
	Status      string `json:"status" gorm:"default:'pending';index"` // pending, accepted
}
