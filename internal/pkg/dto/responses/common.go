package responses

type Status struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// RemoteError is the conventional error payload of the service; the
// gateway extracts Detail when a call is rejected.
type RemoteError struct {
	Detail string `json:"detail"`
}
