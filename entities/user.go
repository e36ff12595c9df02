package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             string     `gorm:"primaryKey;size:36" json:"id"`
	Email          string     `gorm:"uniqueIndex;size:320" json:"email"`
	Name           string     `json:"name"`
	PasswordHash   string     `json:"-"`
	IsPremium      bool       `json:"is_premium"`
	IsAdmin        bool       `json:"is_admin"`
	IsActive       bool       `gorm:"default:true" json:"is_active"`
	SubscriptionID *string    `json:"subscription_id"`
	CreatedAt      time.Time  `json:"created_at"`
	LastLogin      *time.Time `json:"last_login"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
