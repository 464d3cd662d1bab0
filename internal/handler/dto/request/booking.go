package request

import (
	"errors"
	"time"

	"rentmarket/internal/domain/booking"
	"rentmarket/internal/usecase/commands"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var errInvalidDateFormat = errors.New("dates must be formatted as YYYY-MM-DD")

type CreateBookingRequest struct {
	AssetID         uuid.UUID `json:"asset_id" binding:"required"`
	StartDate       string    `json:"start_date" binding:"required"`
	EndDate         string    `json:"end_date" binding:"required"`
	DriverName      *string   `json:"driver_name,omitempty"`
	DriverEmail     *string   `json:"driver_email,omitempty"`
	DriverPhone     *string   `json:"driver_phone,omitempty"`
	DriverLicense   *string   `json:"driver_license,omitempty"`
	NeedsDriver     bool      `json:"needs_driver"`
	PickupLocation  *string   `json:"pickup_location,omitempty"`
	DropoffLocation *string   `json:"dropoff_location,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
}

func (r CreateBookingRequest) ToParams() (commands.CreateBookingParams, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return commands.CreateBookingParams{}, err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return commands.CreateBookingParams{}, err
	}

	return commands.CreateBookingParams{
		AssetID:   r.AssetID,
		StartDate: start,
		EndDate:   end,
		Details: booking.Details{
			DriverName:      r.DriverName,
			DriverEmail:     r.DriverEmail,
			DriverPhone:     r.DriverPhone,
			DriverLicense:   r.DriverLicense,
			NeedsDriver:     r.NeedsDriver,
			PickupLocation:  r.PickupLocation,
			DropoffLocation: r.DropoffLocation,
			Notes:           r.Notes,
		},
	}, nil
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, errInvalidDateFormat
	}
	return t, nil
}
