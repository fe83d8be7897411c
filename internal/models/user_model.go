// Package models contains the models for the Guide4360 API
package models

import (
	"time"
)

const UsersTableName = "users"

// UserModel represents a registered user. Usernames are unique and
// case-sensitive; the password is stored only as a bcrypt hash.
type UserModel struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"uniqueIndex;not null" json:"username"`
	HashedPassword string    `gorm:"not null" json:"-"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (UserModel) TableName() string {
	return UsersTableName
}
