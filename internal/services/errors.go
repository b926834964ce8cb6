package services

import "errors"

// Stable machine-readable error codes returned across the service boundary.
// Handlers translate them to HTTP statuses; they never change meaning.
const (
	CodeDrawNotFound       = "DRAW_NOT_FOUND"
	CodeTicketNotFound     = "TICKET_NOT_FOUND"
	CodePackageNotFound    = "PACKAGE_NOT_FOUND"
	CodeInvalidNumbers     = "INVALID_NUMBERS"
	CodeInvalidPackage     = "INVALID_PACKAGE"
	CodeInvalidCategory    = "INVALID_CATEGORY"
	CodeNegativeBalance    = "NEGATIVE_BALANCE"
	CodeInsufficientFunds  = "INSUFFICIENT_FUNDS"
	CodeDrawCompleted      = "DRAW_COMPLETED"
	CodeDrawHasTickets     = "DRAW_HAS_TICKETS"
	CodeNoDrawsAvailable   = "NO_DRAWS_AVAILABLE"
	CodeBalanceUpdateError = "BALANCE_UPDATE_ERROR"
	CodeTicketCreateError  = "TICKET_CREATE_ERROR"
	CodeTicketsCreateError = "TICKETS_CREATE_ERROR"
	CodeSaveFailed         = "SAVE_FAILED"
	CodeLoadFailed         = "LOAD_FAILED"
)

// ServiceError is the tagged failure every domain operation returns instead
// of letting raw errors or panics cross into handler code
type ServiceError struct {
	Code    string
	Message string
}

// Error implements the error interface
func (e *ServiceError) Error() string {
	return e.Message
}

func newError(code, message string) *ServiceError {
	return &ServiceError{Code: code, Message: message}
}

// AsServiceError unwraps err into a *ServiceError when possible
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}
