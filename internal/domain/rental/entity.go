package rental

import (
	"errors"
	"time"

	"rentmarket/internal/domain/shared/money"

	"github.com/google/uuid"
)

var (
	ErrDailyRateRequired = errors.New("daily rate must be positive")
	ErrInvalidRate       = errors.New("optional rate must be positive when set")
	ErrNegativeDeposit   = errors.New("deposit cannot be negative")
	ErrOwnerRequired     = errors.New("owner is required")
)

// Terms is the pricing configuration attached to one rentable asset.
// The daily rate is mandatory; weekly and monthly rates are optional
// accelerants selected by range length at quote time. Rate changes never
// reprice bookings that were already created.
type Terms struct {
	id               uuid.UUID
	assetID          uuid.UUID
	ownerID          uuid.UUID
	dailyRateCents   int64
	weeklyRateCents  *int64
	monthlyRateCents *int64
	depositCents     *int64
	createdAt        time.Time
	updatedAt        time.Time
}

func NewTerms(
	assetID, ownerID uuid.UUID,
	dailyRateCents int64,
	weeklyRateCents, monthlyRateCents, depositCents *int64,
) (*Terms, error) {
	if ownerID == uuid.Nil {
		return nil, ErrOwnerRequired
	}
	if err := validateRates(dailyRateCents, weeklyRateCents, monthlyRateCents, depositCents); err != nil {
		return nil, err
	}

	return &Terms{
		id:               uuid.New(),
		assetID:          assetID,
		ownerID:          ownerID,
		dailyRateCents:   dailyRateCents,
		weeklyRateCents:  weeklyRateCents,
		monthlyRateCents: monthlyRateCents,
		depositCents:     depositCents,
	}, nil
}

func ReconstructTerms(
	id, assetID, ownerID uuid.UUID,
	dailyRateCents int64,
	weeklyRateCents, monthlyRateCents, depositCents *int64,
	createdAt, updatedAt time.Time,
) *Terms {
	return &Terms{
		id:               id,
		assetID:          assetID,
		ownerID:          ownerID,
		dailyRateCents:   dailyRateCents,
		weeklyRateCents:  weeklyRateCents,
		monthlyRateCents: monthlyRateCents,
		depositCents:     depositCents,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// UpdateRates mutates the rates in place. Existing bookings keep the total
// they were priced with.
func (t *Terms) UpdateRates(dailyRateCents int64, weeklyRateCents, monthlyRateCents, depositCents *int64) error {
	if err := validateRates(dailyRateCents, weeklyRateCents, monthlyRateCents, depositCents); err != nil {
		return err
	}
	t.dailyRateCents = dailyRateCents
	t.weeklyRateCents = weeklyRateCents
	t.monthlyRateCents = monthlyRateCents
	t.depositCents = depositCents
	return nil
}

func (t *Terms) IsOwnedBy(userID uuid.UUID) bool {
	return t.ownerID == userID
}

func (t *Terms) ID() uuid.UUID         { return t.id }
func (t *Terms) AssetID() uuid.UUID    { return t.assetID }
func (t *Terms) OwnerID() uuid.UUID    { return t.ownerID }
func (t *Terms) DailyRateCents() int64 { return t.dailyRateCents }
func (t *Terms) WeeklyRateCents() *int64 {
	return t.weeklyRateCents
}
func (t *Terms) MonthlyRateCents() *int64 {
	return t.monthlyRateCents
}
func (t *Terms) DepositCents() *int64 { return t.depositCents }
func (t *Terms) CreatedAt() time.Time { return t.createdAt }
func (t *Terms) UpdatedAt() time.Time { return t.updatedAt }

func (t *Terms) Deposit() money.Money {
	if t.depositCents == nil {
		return money.New(0)
	}
	return money.New(*t.depositCents)
}

func validateRates(daily int64, weekly, monthly, deposit *int64) error {
	if daily <= 0 {
		return ErrDailyRateRequired
	}
	if weekly != nil && *weekly <= 0 {
		return ErrInvalidRate
	}
	if monthly != nil && *monthly <= 0 {
		return ErrInvalidRate
	}
	if deposit != nil && *deposit < 0 {
		return ErrNegativeDeposit
	}
	return nil
}
