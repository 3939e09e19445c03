package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestDecorateTotalFunding(t *testing.T) {
	p := Product{Id: 1, TargetAmount: 35000, OneTimeFunding: 10, EndDate: date(2023, 8, 27)}

	view := Decorate(p, "staff", 2, date(2023, 8, 1))

	assert.Equal(t, int64(2), view.ParticipantsNum)
	assert.Equal(t, int64(20), view.TotalFunding)
	assert.Equal(t, view.ParticipantsNum*p.OneTimeFunding, view.TotalFunding)
	// 20/35000 = 0.057% floors to 0
	assert.Equal(t, "0%", view.AchievementRate)
	assert.Equal(t, "staff", view.Username)
}

func TestDecorateAchievementRate(t *testing.T) {
	tests := []struct {
		name         string
		target       int64
		oneTime      int64
		participants int64
		want         string
	}{
		{"zero pledges", 1000, 10, 0, "0%"},
		{"floors fractional percent", 35000, 10, 2, "0%"},
		{"partial", 1000, 10, 55, "55%"},
		{"exactly reached", 1000, 10, 100, "100%"},
		{"over target", 1000, 10, 250, "250%"},
		{"floors just below boundary", 300, 10, 2, "6%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{TargetAmount: tt.target, OneTimeFunding: tt.oneTime, EndDate: date(2030, 1, 1)}
			view := Decorate(p, "u", tt.participants, date(2023, 1, 1))
			assert.Equal(t, tt.want, view.AchievementRate)
		})
	}
}

func TestDecorateDDay(t *testing.T) {
	tests := []struct {
		name  string
		end   time.Time
		today time.Time
		want  int
	}{
		{"future", date(2023, 8, 27), date(2023, 8, 1), 26},
		{"same day", date(2023, 8, 27), date(2023, 8, 27), 0},
		{"past due goes negative", date(2022, 5, 15), date(2022, 5, 20), -5},
		{"ignores time of day", time.Date(2023, 8, 27, 23, 59, 0, 0, time.UTC), time.Date(2023, 8, 26, 0, 1, 0, 0, time.UTC), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntil(tt.end, tt.today))
		})
	}
}

func TestValidateNewProduct(t *testing.T) {
	valid := Product{Title: "t", Description: "d", TargetAmount: 35000, OneTimeFunding: 10, EndDate: date(2023, 8, 27)}
	require.NoError(t, ValidateNewProduct(valid))

	tests := []struct {
		name   string
		mutate func(*Product)
		field  string
	}{
		{"missing title", func(p *Product) { p.Title = " " }, "title"},
		{"missing description", func(p *Product) { p.Description = "" }, "description"},
		{"zero target", func(p *Product) { p.TargetAmount = 0 }, "target_amount"},
		{"negative target", func(p *Product) { p.TargetAmount = -1 }, "target_amount"},
		{"zero one_time_funding", func(p *Product) { p.OneTimeFunding = 0 }, "one_time_funding"},
		{"missing end_date", func(p *Product) { p.EndDate = time.Time{} }, "end_date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := ValidateNewProduct(p)
			require.Error(t, err)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestApplyUpdateTargetAmountFrozen(t *testing.T) {
	stored := Product{Id: 1, Title: "t", Description: "d", TargetAmount: 35000, OneTimeFunding: 10, EndDate: date(2023, 8, 27)}

	changed := int64(40000)
	_, err := ApplyUpdate(stored, ProductUpdate{TargetAmount: &changed})
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "target_amount", ce.Field)

	// equal value supplied is not a change
	same := stored.TargetAmount
	title := "new title"
	got, err := ApplyUpdate(stored, ProductUpdate{TargetAmount: &same, Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "new title", got.Title)
	assert.Equal(t, stored.TargetAmount, got.TargetAmount)
}

func TestApplyUpdatePartial(t *testing.T) {
	stored := Product{Id: 1, Title: "t", Description: "d", TargetAmount: 35000, OneTimeFunding: 10, EndDate: date(2023, 8, 27)}

	otf := int64(500)
	end := date(2024, 1, 1)
	got, err := ApplyUpdate(stored, ProductUpdate{OneTimeFunding: &otf, EndDate: &end})
	require.NoError(t, err)
	assert.Equal(t, int64(500), got.OneTimeFunding)
	assert.Equal(t, end, got.EndDate)
	// untouched fields survive
	assert.Equal(t, "t", got.Title)
	assert.Equal(t, "d", got.Description)

	// absent target_amount means unchanged, not a conflict
	assert.Equal(t, stored.TargetAmount, got.TargetAmount)
}

func TestApplyUpdateRejectsBadValues(t *testing.T) {
	stored := Product{Id: 1, Title: "t", TargetAmount: 100, OneTimeFunding: 10}

	zero := int64(0)
	_, err := ApplyUpdate(stored, ProductUpdate{OneTimeFunding: &zero})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	empty := "  "
	_, err = ApplyUpdate(stored, ProductUpdate{Title: &empty})
	require.ErrorAs(t, err, &ve)
}
