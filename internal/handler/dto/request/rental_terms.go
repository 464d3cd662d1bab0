package request

import (
	"rentmarket/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRentalTermsRequest struct {
	AssetID          uuid.UUID `json:"asset_id" binding:"required"`
	DailyRateCents   int64     `json:"daily_rate_cents" binding:"required"`
	WeeklyRateCents  *int64    `json:"weekly_rate_cents,omitempty"`
	MonthlyRateCents *int64    `json:"monthly_rate_cents,omitempty"`
	DepositCents     *int64    `json:"deposit_cents,omitempty"`
}

func (r CreateRentalTermsRequest) ToParams() commands.CreateTermsParams {
	return commands.CreateTermsParams{
		AssetID:          r.AssetID,
		DailyRateCents:   r.DailyRateCents,
		WeeklyRateCents:  r.WeeklyRateCents,
		MonthlyRateCents: r.MonthlyRateCents,
		DepositCents:     r.DepositCents,
	}
}

type UpdateRentalTermsRequest struct {
	DailyRateCents   *int64 `json:"daily_rate_cents,omitempty"`
	WeeklyRateCents  *int64 `json:"weekly_rate_cents,omitempty"`
	MonthlyRateCents *int64 `json:"monthly_rate_cents,omitempty"`
	DepositCents     *int64 `json:"deposit_cents,omitempty"`
}

func (r UpdateRentalTermsRequest) ToParams() commands.UpdateTermsParams {
	return commands.UpdateTermsParams{
		DailyRateCents:   r.DailyRateCents,
		WeeklyRateCents:  r.WeeklyRateCents,
		MonthlyRateCents: r.MonthlyRateCents,
		DepositCents:     r.DepositCents,
	}
}
