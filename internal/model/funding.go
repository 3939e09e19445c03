package model

import (
	"time"
)

// FundingModel a single pledge against a product
type FundingModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserId    int64 `json:"user_id" gorm:"not null;index"`
	ProductId int64 `json:"product_id" gorm:"not null;index"`

	// copied from product.one_time_funding at creation, never recomputed
	Price int64 `json:"price" gorm:"not null"`
}

// TableName custom table name
func (FundingModel) TableName() string {
	return "funding"
}
