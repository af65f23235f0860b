package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FullName         string     `json:"fullName" gorm:"not null"`
	Username         string     `json:"username" gorm:"uniqueIndex;not null"`
	Email            string     `json:"email" gorm:"uniqueIndex;not null"`
	Password         string     `json:"-" gorm:"not null"`
	Bio              string     `json:"bio" gorm:"default:''"`
	ProfilePic       string     `json:"profilePic" gorm:"default:''"`
	NativeLanguage   string     `json:"nativeLanguage" gorm:"default:''"`
	LearningLanguage string     `json:"learningLanguage" gorm:"default:''"`
	Location         string     `json:"location" gorm:"default:''"`
	IsOnboarded      bool       `json:"isOnboarded" gorm:"default:false"`
	StreakCount      int        `json:"streakCount" gorm:"default:0"`
	LastStreakDate   *time.Time `json:"lastStreakDate"`

	// Friendship edges are stored in both directions, mirroring the mutual
	// add performed when a request is accepted.
	Friends []*User `json:"-" gorm:"many2many:user_friends;joinForeignKey:user_id;joinReferences:friend_id"`
}

// UserSummary is the slim shape embedded in feeds, goals and request lists.
type UserSummary struct {
	ID               uint   `json:"id"`
	FullName         string `json:"fullName"`
	Username         string `json:"username"`
	ProfilePic       string `json:"profilePic"`
	NativeLanguage   string `json:"nativeLanguage,omitempty"`
	LearningLanguage string `json:"learningLanguage,omitempty"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:               u.ID,
		FullName:         u.FullName,
		Username:         u.Username,
		ProfilePic:       u.ProfilePic,
		NativeLanguage:   u.NativeLanguage,
		LearningLanguage: u.LearningLanguage,
	}
}
