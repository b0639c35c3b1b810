package constvars

// Client-facing messages.
const (
	ErrClientServiceUnreachable    = "the MedCare service could not be reached, please try again"
	ErrClientRequestRejected       = "the MedCare service rejected the request"
	ErrClientEmptyCart             = "your cart is empty"
	ErrClientNotLoggedIn           = "please login first"
	ErrClientIncompleteSelection   = "please select doctor and time slot"
	ErrClientNoSymptoms            = "please enter your symptoms"
	ErrClientNoAppointmentSelected = "please book or select an appointment first"
	ErrClientMissingField          = "please fill in all fields"
	ErrClientSubmitInFlight        = "a submission is already in progress"
	ErrClientSomethingWrong        = "something went wrong with the application"
)

// Developer-facing messages.
const (
	ErrDevGatewayUnreachable  = "gateway could not complete the remote call"
	ErrDevRemoteRejected      = "remote service responded with an error payload"
	ErrDevAuthFailed          = "authentication rejected by remote service"
	ErrDevEmptyCartCheckout   = "checkout invoked with an empty ledger"
	ErrDevNoActiveSession     = "mutating operation invoked without an active session"
	ErrDevIncompleteSelection = "booking submit without doctor or slot selected"
	ErrDevNoSymptomTokens     = "symptom string produced no tokens after normalization"
	ErrDevNoAppointmentBound  = "consultation invoked without a bound appointment id"
	ErrDevValidationFailed    = "validation failed"
	ErrDevSubmitReentered     = "mutating call re-entered while a previous one is in flight"
	ErrDevBuildRequest        = "failed to build HTTP request"
	ErrDevCannotMarshalJSON   = "failed to marshal JSON"
	ErrDevCannotParseJSON     = "failed to parse JSON"
	ErrDevDecodeResponse      = "failed to decode response body"
	ErrDevSessionStorageRead  = "failed to read persisted session record"
	ErrDevSessionStorageWrite = "failed to write persisted session record"
	ErrDevSessionStorageClear = "failed to clear persisted session record"
	ErrDevRateLimiterWait     = "rate limiter wait aborted"
)
