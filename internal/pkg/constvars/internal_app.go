package constvars

// Response body statuses the remote service emits.
const (
	RemoteStatusSuccess = "SUCCESS"
	RemoteStatusFailed  = "FAILED"
)

// Key under which the session record is persisted, regardless of the
// storage backend.
const SessionStorageKey = "medcare:session"

const (
	SessionBackendFile  = "file"
	SessionBackendRedis = "redis"
)

const ResponseUnknown = "unknown"
