package models

import (
	"time"
)

// Role represents user role types
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered account
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Username       string    `json:"username" gorm:"uniqueIndex;size:64;not null"`
	Email          string    `json:"email" gorm:"not null"`
	HashedPassword string    `json:"-" gorm:"not null"` // Hash is never exposed in JSON
	Role           Role      `json:"role" gorm:"type:varchar(10);default:'user'"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Reviews []Review `json:"-" gorm:"foreignKey:UserID"`
}
