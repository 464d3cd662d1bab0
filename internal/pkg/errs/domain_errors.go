package errs

import "errors"

// Domain-specific sentinel errors shared by the command and query layers.
// Each maps to one stable caller-visible error kind.
var (
	// Range errors
	ErrInvalidDateRange = errors.New("invalid date range")

	// Rental terms errors
	ErrInvalidRates        = errors.New("invalid rental rates")
	ErrRentalTermsNotFound = errors.New("rental terms not found")
	ErrTermsAlreadyExist   = errors.New("rental terms already exist for this asset")
	ErrActiveBookingsExist = errors.New("active bookings exist for these rental terms")

	// Asset errors
	ErrAssetNotFound = errors.New("asset not found")

	// Booking errors
	ErrBookingNotFound        = errors.New("booking not found")
	ErrBookingConflict        = errors.New("booking dates conflict with an existing booking")
	ErrInvalidStateTransition = errors.New("invalid booking state transition")

	// Authorization errors
	ErrUnauthorized = errors.New("caller is not authorized for this operation")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
