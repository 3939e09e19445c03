package model

import (
	"time"
)

// UserModel account record
type UserModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Email    string `json:"email" gorm:"not null"`
	// bcrypt hash, never serialized
	Password string `json:"-" gorm:"not null"`
	IsStaff  bool   `json:"is_staff" gorm:"default:false"`
}

// TableName custom table name
func (UserModel) TableName() string {
	return "users"
}
