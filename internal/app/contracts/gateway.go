package contracts

import "context"

// Gateway is the single chokepoint for calls to the remote MedCare
// service. Implementations normalize transport failures to
// exceptions.CodeUnreachable and error payloads to
// exceptions.CodeRemoteRejected; they never retry. A call that fails
// with CodeUnreachable has unknown effect on the server; retry policy
// belongs to the caller.
type Gateway interface {
	// Call issues one request and decodes the response body into out
	// when out is non-nil.
	Call(ctx context.Context, method, path string, body interface{}, out interface{}) error

	// CallIdempotent behaves like Call but attaches a fresh
	// idempotency key header, one per attempt. Used for purchase
	// calls, where the server is the arbiter of deduplication.
	CallIdempotent(ctx context.Context, method, path string, body interface{}, out interface{}) error

	// Ping probes the service health endpoint.
	Ping(ctx context.Context) error
}
