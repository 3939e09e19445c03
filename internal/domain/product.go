package domain

import (
	"fmt"
	"strings"
	"time"
)

// Product is the core's view of a persisted funding product.
type Product struct {
	Id             int64
	OwnerId        int64
	Title          string
	Description    string
	TargetAmount   int64
	OneTimeFunding int64
	EndDate        time.Time
	CreateDate     time.Time
}

// ProductView is a Product plus the derived, read-only statistics.
type ProductView struct {
	Product
	Username        string
	ParticipantsNum int64
	TotalFunding    int64
	DDay            int
	AchievementRate string
}

// Decorate computes the derived statistics for a product. Pure: the
// reference date is injected, never taken from the wall clock.
func Decorate(p Product, username string, participants int64, today time.Time) ProductView {
	total := participants * p.OneTimeFunding
	return ProductView{
		Product:         p,
		Username:        username,
		ParticipantsNum: participants,
		TotalFunding:    total,
		DDay:            DaysUntil(p.EndDate, today),
		AchievementRate: fmt.Sprintf("%d%%", total*100/p.TargetAmount),
	}
}

// DaysUntil returns whole calendar days from today to end; negative when
// end is in the past.
func DaysUntil(end, today time.Time) int {
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(t).Hours() / 24)
}

// ValidateNewProduct checks the fields a product must carry at creation.
// target_amount must be positive: Decorate divides by it.
func ValidateNewProduct(p Product) error {
	if strings.TrimSpace(p.Title) == "" {
		return NewValidation("title", "title is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		return NewValidation("description", "description is required")
	}
	if p.TargetAmount <= 0 {
		return NewValidation("target_amount", "target_amount must be a positive integer")
	}
	if p.OneTimeFunding <= 0 {
		return NewValidation("one_time_funding", "one_time_funding must be a positive integer")
	}
	if p.EndDate.IsZero() {
		return NewValidation("end_date", "end_date is required")
	}
	return nil
}

// ProductUpdate carries a partial update; nil fields stay unchanged.
type ProductUpdate struct {
	Title          *string
	Description    *string
	TargetAmount   *int64
	OneTimeFunding *int64
	EndDate        *time.Time
}

// ApplyUpdate applies a partial update to a product. A supplied
// target_amount differing from the stored value is a conflict; the
// product is returned unmodified in that case.
func ApplyUpdate(p Product, upd ProductUpdate) (Product, error) {
	if upd.TargetAmount != nil && *upd.TargetAmount != p.TargetAmount {
		return p, NewConflict("target_amount", "target_amount field can't be modified.")
	}
	if upd.OneTimeFunding != nil && *upd.OneTimeFunding <= 0 {
		return p, NewValidation("one_time_funding", "one_time_funding must be a positive integer")
	}
	if upd.Title != nil {
		if strings.TrimSpace(*upd.Title) == "" {
			return p, NewValidation("title", "title is required")
		}
		p.Title = *upd.Title
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.OneTimeFunding != nil {
		p.OneTimeFunding = *upd.OneTimeFunding
	}
	if upd.EndDate != nil {
		p.EndDate = *upd.EndDate
	}
	return p, nil
}
