package model

import (
	"time"
)

// AuthTokenModel one active login token per user; logout deletes the row
type AuthTokenModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	UserId int64 `json:"user_id" gorm:"not null;uniqueIndex"`
	// jti claim of the issued JWT
	TokenId string `json:"token_id" gorm:"not null;index"`

	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
}

// TableName custom table name
func (AuthTokenModel) TableName() string {
	return "auth_token"
}
