package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookingView struct {
	ID               uuid.UUID  `json:"id"`
	AssetID          uuid.UUID  `json:"asset_id"`
	AssetTitle       string     `json:"asset_title"`
	AssetImage       *string    `json:"asset_image,omitempty"`
	RentalTermsID    uuid.UUID  `json:"rental_terms_id"`
	RequesterID      uuid.UUID  `json:"requester_id"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          time.Time  `json:"end_date"`
	TotalAmountCents int64      `json:"total_amount_cents"`
	Status           string     `json:"status"`
	DriverName       *string    `json:"driver_name,omitempty"`
	DriverEmail      *string    `json:"driver_email,omitempty"`
	DriverPhone      *string    `json:"driver_phone,omitempty"`
	DriverLicense    *string    `json:"driver_license,omitempty"`
	NeedsDriver      bool       `json:"needs_driver"`
	PickupLocation   *string    `json:"pickup_location,omitempty"`
	DropoffLocation  *string    `json:"dropoff_location,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID               uuid.UUID `json:"id"`
	AssetID          uuid.UUID `json:"asset_id"`
	AssetTitle       string    `json:"asset_title"`
	AssetImage       *string   `json:"asset_image,omitempty"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

type RentalTermsView struct {
	ID               uuid.UUID `json:"id"`
	AssetID          uuid.UUID `json:"asset_id"`
	OwnerID          uuid.UUID `json:"owner_id"`
	AssetTitle       string    `json:"asset_title"`
	DailyRateCents   int64     `json:"daily_rate_cents"`
	WeeklyRateCents  *int64    `json:"weekly_rate_cents,omitempty"`
	MonthlyRateCents *int64    `json:"monthly_rate_cents,omitempty"`
	DepositCents     *int64    `json:"deposit_cents,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type AssetView struct {
	ID       uuid.UUID `json:"id"`
	OwnerID  uuid.UUID `json:"owner_id"`
	Title    string    `json:"title"`
	ImageURL *string   `json:"image_url,omitempty"`
}

type AvailabilityResult struct {
	Available            bool   `json:"available"`
	EstimatedAmountCents int64  `json:"estimated_amount_cents"`
	Message              string `json:"message"`
}
