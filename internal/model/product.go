package model

import (
	"time"
)

// ProductModel funding product record
type ProductModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// owner, immutable after creation
	UserId int64 `json:"user_id" gorm:"not null;index"`

	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`

	// funding goal, immutable after creation
	TargetAmount int64 `json:"target_amount" gorm:"not null"`
	// fixed contribution per pledge, snapshot into each funding row
	OneTimeFunding int64 `json:"one_time_funding" gorm:"not null"`

	EndDate time.Time `json:"end_date" gorm:"not null"`

	// association, cascade removes dependent fundings
	Fundings []FundingModel `json:"fundings,omitempty" gorm:"foreignKey:ProductId;constraint:OnDelete:CASCADE"`
}

// TableName custom table name
func (ProductModel) TableName() string {
	return "product"
}
