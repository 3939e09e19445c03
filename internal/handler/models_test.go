package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yiryeong/wanted-pre-onboarding/internal/domain"
	"github.com/yiryeong/wanted-pre-onboarding/internal/model"
)

func TestParseTimestamp(t *testing.T) {
	got, err := ParseTimestamp("2023-08-27 10:00:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 8, 27, 10, 0, 0, 0, time.UTC), got)

	got, err = ParseTimestamp("2023-08-27T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 8, 27, 10, 0, 0, 0, time.UTC), got)

	got, err = ParseTimestamp("2023-08-27")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 8, 27, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseTimestamp("not a date")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported timestamp format")

	// same stable message even when the input resembles RFC3339
	_, err = ParseTimestamp("2023-13-99T99:00:00Z")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported timestamp format")
}

func TestToProductRetrieveResponse(t *testing.T) {
	end := time.Date(2023, 8, 27, 10, 0, 0, 0, time.UTC)
	created := time.Date(2023, 8, 1, 9, 0, 0, 0, time.UTC)
	view := domain.ProductView{
		Product: domain.Product{
			Id:             1,
			OwnerId:        7,
			Title:          "t",
			Description:    "d",
			TargetAmount:   35000,
			OneTimeFunding: 10,
			EndDate:        end,
			CreateDate:     created,
		},
		Username:        "staff",
		ParticipantsNum: 2,
		TotalFunding:    20,
		DDay:            26,
		AchievementRate: "0%",
	}

	got := ToProductRetrieveResponse(view)
	assert.Equal(t, int64(1), got.Id)
	assert.Equal(t, int64(7), got.UserId)
	assert.Equal(t, int64(35000), got.TargetAmount)
	assert.Equal(t, "staff", got.Username)
	assert.Equal(t, int64(20), got.TotalFunding)
	assert.Equal(t, "0%", got.AchievementRate)
	assert.Equal(t, 26, got.DDay)
	assert.Equal(t, int64(2), got.ParticipantsNum)
	assert.Equal(t, created, got.CreateDate)
}

func TestToFundingResponse(t *testing.T) {
	pledged := time.Date(2023, 8, 1, 12, 0, 0, 0, time.UTC)
	record := &model.FundingModel{
		Id:        3,
		UserId:    5,
		ProductId: 1,
		Price:     10,
		CreatedAt: pledged,
	}

	got := ToFundingResponse(record)
	assert.Equal(t, int64(3), got.Id)
	assert.Equal(t, int64(5), got.UserId)
	assert.Equal(t, int64(1), got.ProductId)
	assert.Equal(t, int64(10), got.Price)
	assert.Equal(t, pledged, got.FundingDate)
}
