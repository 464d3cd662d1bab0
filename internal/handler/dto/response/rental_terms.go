package response

import (
	"time"

	"rentmarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type RentalTermsResponse struct {
	ID               uuid.UUID `json:"id"`
	AssetID          uuid.UUID `json:"assetId"`
	OwnerID          uuid.UUID `json:"ownerId"`
	AssetTitle       string    `json:"assetTitle"`
	DailyRateCents   int64     `json:"dailyRateCents"`
	WeeklyRateCents  *int64    `json:"weeklyRateCents,omitempty"`
	MonthlyRateCents *int64    `json:"monthlyRateCents,omitempty"`
	DepositCents     *int64    `json:"depositCents,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func FromRentalTermsView(rm *queries.RentalTermsView) *RentalTermsResponse {
	return &RentalTermsResponse{
		ID:               rm.ID,
		AssetID:          rm.AssetID,
		OwnerID:          rm.OwnerID,
		AssetTitle:       rm.AssetTitle,
		DailyRateCents:   rm.DailyRateCents,
		WeeklyRateCents:  rm.WeeklyRateCents,
		MonthlyRateCents: rm.MonthlyRateCents,
		DepositCents:     rm.DepositCents,
		CreatedAt:        rm.CreatedAt,
		UpdatedAt:        rm.UpdatedAt,
	}
}
