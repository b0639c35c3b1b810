package exceptions

import (
	"medcare-client/internal/pkg/constvars"
)

// Taxonomy codes. Transport and remote failures come out of the
// gateway; the rest are local precondition failures that never touch
// the network.
const (
	CodeUnreachable           = "UNREACHABLE"
	CodeRemoteRejected        = "REMOTE_REJECTED"
	CodeAuthFailed            = "AUTH_FAILED"
	CodeEmptyCart             = "EMPTY_CART"
	CodeUnauthenticated       = "UNAUTHENTICATED"
	CodeIncompleteSelection   = "INCOMPLETE_SELECTION"
	CodeNoSymptoms            = "NO_SYMPTOMS"
	CodeNoAppointmentSelected = "NO_APPOINTMENT_SELECTED"
	CodeMissingField          = "MISSING_FIELD"
	CodeSubmitInFlight        = "SUBMIT_IN_FLIGHT"
	CodeInternal              = "INTERNAL"
	CodeStorage               = "STORAGE"
)

var (
	ErrGatewayUnreachable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, CodeUnreachable, constvars.ErrClientServiceUnreachable, constvars.ErrDevGatewayUnreachable)
	}
	ErrRateLimiterWait = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, CodeUnreachable, constvars.ErrClientServiceUnreachable, constvars.ErrDevRateLimiterWait)
	}
	ErrRemoteRejected = func(statusCode int, message string) *CustomError {
		return BuildNewCustomError(nil, statusCode, CodeRemoteRejected, message, constvars.ErrDevRemoteRejected)
	}
	ErrAuthFailed = func(statusCode int, message string) *CustomError {
		return BuildNewCustomError(nil, statusCode, CodeAuthFailed, message, constvars.ErrDevAuthFailed)
	}
	ErrEmptyCart = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, CodeEmptyCart, constvars.ErrClientEmptyCart, constvars.ErrDevEmptyCartCheckout)
	}
	ErrNotAuthenticated = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnauthorized, CodeUnauthenticated, constvars.ErrClientNotLoggedIn, constvars.ErrDevNoActiveSession)
	}
	ErrIncompleteSelection = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, CodeIncompleteSelection, constvars.ErrClientIncompleteSelection, constvars.ErrDevIncompleteSelection)
	}
	ErrNoSymptoms = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, CodeNoSymptoms, constvars.ErrClientNoSymptoms, constvars.ErrDevNoSymptomTokens)
	}
	ErrNoAppointmentSelected = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, CodeNoAppointmentSelected, constvars.ErrClientNoAppointmentSelected, constvars.ErrDevNoAppointmentBound)
	}
	ErrMissingField = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, CodeMissingField, constvars.ErrClientMissingField, constvars.ErrDevValidationFailed)
	}
	ErrSubmitInFlight = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, CodeSubmitInFlight, constvars.ErrClientSubmitInFlight, constvars.ErrDevSubmitReentered)
	}

	// Request construction and codec failures.
	ErrBuildRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeInternal, constvars.ErrClientSomethingWrong, constvars.ErrDevBuildRequest)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeInternal, constvars.ErrClientSomethingWrong, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeInternal, constvars.ErrClientSomethingWrong, constvars.ErrDevCannotParseJSON)
	}
	ErrDecodeResponse = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeInternal, constvars.ErrClientSomethingWrong, constvars.ErrDevDecodeResponse)
	}

	// Session storage failures.
	ErrSessionStorageRead = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeStorage, constvars.ErrClientSomethingWrong, constvars.ErrDevSessionStorageRead)
	}
	ErrSessionStorageWrite = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeStorage, constvars.ErrClientSomethingWrong, constvars.ErrDevSessionStorageWrite)
	}
	ErrSessionStorageClear = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, CodeStorage, constvars.ErrClientSomethingWrong, constvars.ErrDevSessionStorageClear)
	}
)
