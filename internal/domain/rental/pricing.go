package rental

import (
	"errors"

	"rentmarket/internal/domain/shared/daterange"
	"rentmarket/internal/domain/shared/money"
)

var ErrInvalidRange = errors.New("range must span at least one day")

const (
	monthlyTierDays = 30
	weeklyTierDays  = 7
)

// Quote computes the total for an inclusive date range using tiered
// amortization. Tier priority is strict: monthly, then weekly, then daily.
// Remainder days always bill at the daily rate. A range long enough for a
// tier whose rate is not configured falls through to the next tier.
//
// Pure function: no I/O, integer-cents arithmetic only. The deposit is not
// part of the quoted total.
func Quote(t *Terms, dr daterange.DateRange) (money.Money, error) {
	days := dr.Days()
	if days < 1 {
		return money.Money{}, ErrInvalidRange
	}

	daily := money.New(t.dailyRateCents)

	if days >= monthlyTierDays && t.monthlyRateCents != nil {
		months := days / monthlyTierDays
		remainder := days % monthlyTierDays
		return money.New(*t.monthlyRateCents).Mul(months).Add(daily.Mul(remainder)), nil
	}

	if days >= weeklyTierDays && t.weeklyRateCents != nil {
		weeks := days / weeklyTierDays
		remainder := days % weeklyTierDays
		return money.New(*t.weeklyRateCents).Mul(weeks).Add(daily.Mul(remainder)), nil
	}

	return daily.Mul(days), nil
}
