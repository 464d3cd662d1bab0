package response

import (
	"time"

	"rentmarket/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID               uuid.UUID `json:"id"`
	AssetID          uuid.UUID `json:"assetId"`
	AssetTitle       string    `json:"assetTitle"`
	AssetImage       *string   `json:"assetImage,omitempty"`
	RentalTermsID    uuid.UUID `json:"rentalTermsId"`
	RequesterID      uuid.UUID `json:"requesterId"`
	StartDate        string    `json:"startDate"`
	EndDate          string    `json:"endDate"`
	TotalAmountCents int64     `json:"totalAmountCents"`
	Status           string    `json:"status"`
	DriverName       *string   `json:"driverName,omitempty"`
	DriverEmail      *string   `json:"driverEmail,omitempty"`
	DriverPhone      *string   `json:"driverPhone,omitempty"`
	DriverLicense    *string   `json:"driverLicense,omitempty"`
	NeedsDriver      bool      `json:"needsDriver"`
	PickupLocation   *string   `json:"pickupLocation,omitempty"`
	DropoffLocation  *string   `json:"dropoffLocation,omitempty"`
	Notes            *string   `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID               uuid.UUID `json:"id"`
	AssetID          uuid.UUID `json:"assetId"`
	AssetTitle       string    `json:"assetTitle"`
	AssetImage       *string   `json:"assetImage,omitempty"`
	StartDate        string    `json:"startDate"`
	EndDate          string    `json:"endDate"`
	TotalAmountCents int64     `json:"totalAmountCents"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

type AvailabilityResponse struct {
	Available            bool   `json:"available"`
	EstimatedAmountCents int64  `json:"estimatedAmountCents"`
	Message              string `json:"message"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:               rm.ID,
		AssetID:          rm.AssetID,
		AssetTitle:       rm.AssetTitle,
		AssetImage:       rm.AssetImage,
		RentalTermsID:    rm.RentalTermsID,
		RequesterID:      rm.RequesterID,
		StartDate:        rm.StartDate.Format(dateLayout),
		EndDate:          rm.EndDate.Format(dateLayout),
		TotalAmountCents: rm.TotalAmountCents,
		Status:           rm.Status,
		DriverName:       rm.DriverName,
		DriverEmail:      rm.DriverEmail,
		DriverPhone:      rm.DriverPhone,
		DriverLicense:    rm.DriverLicense,
		NeedsDriver:      rm.NeedsDriver,
		PickupLocation:   rm.PickupLocation,
		DropoffLocation:  rm.DropoffLocation,
		Notes:            rm.Notes,
		CreatedAt:        rm.CreatedAt,
		UpdatedAt:        rm.UpdatedAt,
	}
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:               rm.ID,
		AssetID:          rm.AssetID,
		AssetTitle:       rm.AssetTitle,
		AssetImage:       rm.AssetImage,
		StartDate:        rm.StartDate.Format(dateLayout),
		EndDate:          rm.EndDate.Format(dateLayout),
		TotalAmountCents: rm.TotalAmountCents,
		Status:           rm.Status,
		CreatedAt:        rm.CreatedAt,
	}
}

func FromBookingList(items []*queries.BookingListItem) []*BookingListResponse {
	out := make([]*BookingListResponse, len(items))
	for i, item := range items {
		out[i] = FromBookingListItem(item)
	}
	return out
}

func FromAvailabilityResult(rm *queries.AvailabilityResult) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available:            rm.Available,
		EstimatedAmountCents: rm.EstimatedAmountCents,
		Message:              rm.Message,
	}
}
