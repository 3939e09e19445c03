package handler

import (
	"fmt"
	"time"

	"github.com/yiryeong/wanted-pre-onboarding/internal/domain"
	"github.com/yiryeong/wanted-pre-onboarding/internal/model"
)

// SignupRequest registration payload
type SignupRequest struct {
	Username      string `json:"username" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required"`
	PasswordCheck string `json:"password_check" binding:"required"`
	IsStaff       bool   `json:"is_staff"`
}

// LoginRequest login payload; presence is checked in the handler so the
// caller gets a field-specific message.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateProductRequest product registration payload. end_date is taken
// as a string so both "2006-01-02 15:04:05" and RFC3339 parse.
type CreateProductRequest struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description" binding:"required"`
	TargetAmount   int64  `json:"target_amount" binding:"required"`
	OneTimeFunding int64  `json:"one_time_funding" binding:"required"`
	EndDate        string `json:"end_date" binding:"required"`
}

// UpdateProductRequest partial update; nil fields stay unchanged
type UpdateProductRequest struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	TargetAmount   *int64  `json:"target_amount"`
	OneTimeFunding *int64  `json:"one_time_funding"`
	EndDate        *string `json:"end_date"`
}

// CreateFundingRequest pledge payload; price and user_id are pointers
// so a supplied value can be told apart from an absent one.
type CreateFundingRequest struct {
	ProductId int64  `json:"product_id" binding:"required"`
	Price     *int64 `json:"price"`
	UserId    *int64 `json:"user_id"`
}

// timestampLayouts accepted end_date formats
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// ParseTimestamp parses an end_date value in any accepted layout.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp format %q", value)
}

// UserResponse account view, never carries the password
type UserResponse struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsStaff  bool   `json:"is_staff"`
}

// ProductCreateResponse view returned from create and update
type ProductCreateResponse struct {
	Id             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	TargetAmount   int64     `json:"target_amount"`
	OneTimeFunding int64     `json:"one_time_funding"`
	EndDate        time.Time `json:"end_date"`
	UserId         int64     `json:"user_id"`
	CreateDate     time.Time `json:"create_date"`
}

// ProductListResponse list view with derived statistics
type ProductListResponse struct {
	ProductCreateResponse
	Username        string `json:"username"`
	TotalFunding    int64  `json:"total_funding"`
	AchievementRate string `json:"achievement_rate"`
	DDay            int    `json:"d_day"`
}

// ProductRetrieveResponse retrieve view, adds participants_num
type ProductRetrieveResponse struct {
	ProductListResponse
	ParticipantsNum int64 `json:"participants_num"`
}

// FundingResponse pledge view
type FundingResponse struct {
	Id          int64     `json:"id"`
	UserId      int64     `json:"user_id"`
	ProductId   int64     `json:"product_id"`
	Price       int64     `json:"price"`
	FundingDate time.Time `json:"funding_date"`
}

// ToUserResponse converts an account record to its view
func ToUserResponse(user *model.UserModel) UserResponse {
	return UserResponse{
		Id:       user.Id,
		Username: user.Username,
		Email:    user.Email,
		IsStaff:  user.IsStaff,
	}
}

// ToProductCreateResponse converts a product record to the create view
func ToProductCreateResponse(product *model.ProductModel) ProductCreateResponse {
	return ProductCreateResponse{
		Id:             product.Id,
		Title:          product.Title,
		Description:    product.Description,
		TargetAmount:   product.TargetAmount,
		OneTimeFunding: product.OneTimeFunding,
		EndDate:        product.EndDate,
		UserId:         product.UserId,
		CreateDate:     product.CreatedAt,
	}
}

// ToProductListResponse converts a decorated product to the list view
func ToProductListResponse(view domain.ProductView) ProductListResponse {
	return ProductListResponse{
		ProductCreateResponse: ProductCreateResponse{
			Id:             view.Id,
			Title:          view.Title,
			Description:    view.Description,
			TargetAmount:   view.TargetAmount,
			OneTimeFunding: view.OneTimeFunding,
			EndDate:        view.EndDate,
			UserId:         view.OwnerId,
			CreateDate:     view.CreateDate,
		},
		Username:        view.Username,
		TotalFunding:    view.TotalFunding,
		AchievementRate: view.AchievementRate,
		DDay:            view.DDay,
	}
}

// ToProductListResponseList converts decorated products to list views
func ToProductListResponseList(views []domain.ProductView) []ProductListResponse {
	result := make([]ProductListResponse, len(views))
	for i, view := range views {
		result[i] = ToProductListResponse(view)
	}
	return result
}

// ToProductRetrieveResponse converts a decorated product to the
// retrieve view
func ToProductRetrieveResponse(view domain.ProductView) ProductRetrieveResponse {
	return ProductRetrieveResponse{
		ProductListResponse: ToProductListResponse(view),
		ParticipantsNum:     view.ParticipantsNum,
	}
}

// ToFundingResponse converts a pledge record to its view
func ToFundingResponse(funding *model.FundingModel) FundingResponse {
	return FundingResponse{
		Id:          funding.Id,
		UserId:      funding.UserId,
		ProductId:   funding.ProductId,
		Price:       funding.Price,
		FundingDate: funding.CreatedAt,
	}
}
