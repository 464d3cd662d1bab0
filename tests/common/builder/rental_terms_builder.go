//go:build unit || e2e

package builder

import (
	"time"

	"rentmarket/internal/domain/rental"
	reqdto "rentmarket/internal/handler/dto/request"
	"rentmarket/internal/usecase/commands"
	"rentmarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type RentalTermsBuilder struct {
	AssetID          uuid.UUID
	OwnerID          uuid.UUID
	AssetTitle       string
	DailyRateCents   int64
	WeeklyRateCents  *int64
	MonthlyRateCents *int64
	DepositCents     *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewRentalTermsBuilder() *RentalTermsBuilder {
	now := time.Now()
	weekly := int64(30000)
	monthly := int64(100000)
	return &RentalTermsBuilder{
		AssetID:          uuid.New(),
		OwnerID:          uuid.New(),
		AssetTitle:       "Test Asset",
		DailyRateCents:   5000,
		WeeklyRateCents:  &weekly,
		MonthlyRateCents: &monthly,
		DepositCents:     nil,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (b *RentalTermsBuilder) With(mutate func(*RentalTermsBuilder)) *RentalTermsBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RentalTermsBuilder) BuildDomain() (*rental.Terms, error) {
	return rental.NewTerms(b.AssetID, b.OwnerID, b.DailyRateCents, b.WeeklyRateCents, b.MonthlyRateCents, b.DepositCents)
}

func (b *RentalTermsBuilder) BuildView() *queries.RentalTermsView {
	return &queries.RentalTermsView{
		ID:               uuid.New(),
		AssetID:          b.AssetID,
		OwnerID:          b.OwnerID,
		AssetTitle:       b.AssetTitle,
		DailyRateCents:   b.DailyRateCents,
		WeeklyRateCents:  b.WeeklyRateCents,
		MonthlyRateCents: b.MonthlyRateCents,
		DepositCents:     b.DepositCents,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func (b *RentalTermsBuilder) BuildCreateParams() commands.CreateTermsParams {
	return commands.CreateTermsParams{
		AssetID:          b.AssetID,
		DailyRateCents:   b.DailyRateCents,
		WeeklyRateCents:  b.WeeklyRateCents,
		MonthlyRateCents: b.MonthlyRateCents,
		DepositCents:     b.DepositCents,
	}
}

func (b *RentalTermsBuilder) BuildCreateRequestDTO() reqdto.CreateRentalTermsRequest {
	return reqdto.CreateRentalTermsRequest{
		AssetID:          b.AssetID,
		DailyRateCents:   b.DailyRateCents,
		WeeklyRateCents:  b.WeeklyRateCents,
		MonthlyRateCents: b.MonthlyRateCents,
		DepositCents:     b.DepositCents,
	}
}

// Fluent builder methods
func (b *RentalTermsBuilder) WithAssetID(id uuid.UUID) *RentalTermsBuilder {
	b.AssetID = id
	return b
}

func (b *RentalTermsBuilder) WithOwnerID(id uuid.UUID) *RentalTermsBuilder {
	b.OwnerID = id
	return b
}

func (b *RentalTermsBuilder) WithDailyRate(cents int64) *RentalTermsBuilder {
	b.DailyRateCents = cents
	return b
}

func (b *RentalTermsBuilder) WithWeeklyRate(cents int64) *RentalTermsBuilder {
	b.WeeklyRateCents = &cents
	return b
}

func (b *RentalTermsBuilder) WithMonthlyRate(cents int64) *RentalTermsBuilder {
	b.MonthlyRateCents = &cents
	return b
}

func (b *RentalTermsBuilder) WithDeposit(cents int64) *RentalTermsBuilder {
	b.DepositCents = &cents
	return b
}

func (b *RentalTermsBuilder) WithDailyRateOnly() *RentalTermsBuilder {
	b.WeeklyRateCents = nil
	b.MonthlyRateCents = nil
	return b
}
