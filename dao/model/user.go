package model

import (
	"time"
)

// User is the login identity behind the session cookie. No roles; any
// authenticated user acts with the same rights.
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Username  string    `gorm:"uniqueIndex;type:varchar(64);not null" json:"username"`
	Password  string    `gorm:"type:varchar(256);not null" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
