package booking

import "fmt"

// FlowError is a typed error surfaced by the booking session engine so
// handlers can map failure classes onto HTTP statuses.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error codes.
const (
	CodeSessionNotFound = "sessionNotFound"
	CodeInvalidStep     = "invalidStep"
	CodeValidation      = "validation"
	CodeConfirmInFlight = "confirmInFlight"
	CodePricingPending  = "pricingPending"
	CodePayment         = "paymentFailed"
)

func NewSessionNotFoundError() error {
	return &FlowError{Code: CodeSessionNotFound, Message: "booking session not found or expired"}
}

func NewInvalidStepError(have, want string) error {
	return &FlowError{Code: CodeInvalidStep, Message: fmt.Sprintf("operation requires step %q but session is at %q", want, have)}
}

func NewValidationError(msg string) error {
	return &FlowError{Code: CodeValidation, Message: msg}
}

func NewConfirmInFlightError() error {
	return &FlowError{Code: CodeConfirmInFlight, Message: "a confirmation for this session is already in progress"}
}

func NewPricingPendingError() error {
	return &FlowError{Code: CodePricingPending, Message: "surge pricing has not been verified for the selected time slot"}
}

func NewPaymentError(msg string) error {
	return &FlowError{Code: CodePayment, Message: msg}
}
