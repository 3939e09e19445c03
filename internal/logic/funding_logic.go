package logic

import (
	"errors"
	"time"

	"github.com/yiryeong/wanted-pre-onboarding/internal/domain"
	"github.com/yiryeong/wanted-pre-onboarding/internal/model"
	"gorm.io/gorm"
)

// FundingLogic pledge business logic
type FundingLogic struct {
	db *gorm.DB
}

// NewFundingLogic creates the funding business logic
func NewFundingLogic(db *gorm.DB) *FundingLogic {
	return &FundingLogic{db: db}
}

// Create records a pledge. The price is derived from the product's
// current one_time_funding; client-supplied price or foreign user id is
// rejected with no row created.
func (l *FundingLogic) Create(actor domain.Actor, req domain.FundingRequest, now time.Time) (*model.FundingModel, error) {
	if req.ProductId == 0 {
		return nil, domain.NewValidation("product_id", "product_id is required")
	}

	// conflicts on server-controlled fields win over a missing product
	if err := domain.ValidateFundingRequest(actor, req); err != nil {
		return nil, err
	}

	var product model.ProductModel
	if err := l.db.First(&product, req.ProductId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("product", req.ProductId)
		}
		return nil, domain.NewUpstream("find product", err)
	}

	funding, err := domain.NewFunding(actor, req, domain.Product{
		Id:             product.Id,
		OwnerId:        product.UserId,
		OneTimeFunding: product.OneTimeFunding,
		TargetAmount:   product.TargetAmount,
	}, now)
	if err != nil {
		return nil, err
	}

	record := model.FundingModel{
		UserId:    funding.UserId,
		ProductId: funding.ProductId,
		Price:     funding.Price,
	}
	if err := l.db.Create(&record).Error; err != nil {
		return nil, domain.NewUpstream("create funding", err)
	}

	return &record, nil
}

// Delete removes a pledge. Only the pledging user may delete it.
func (l *FundingLogic) Delete(actor domain.Actor, id int64) error {
	var record model.FundingModel
	if err := l.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewNotFound("funding", id)
		}
		return domain.NewUpstream("find funding", err)
	}

	funding := domain.Funding{Id: record.Id, UserId: record.UserId, ProductId: record.ProductId}
	if err := domain.CanDeleteFunding(funding, actor); err != nil {
		return err
	}

	if err := l.db.Delete(&model.FundingModel{}, id).Error; err != nil {
		return domain.NewUpstream("delete funding", err)
	}
	return nil
}
