package constvars

const (
	LoggingErrorMessageKey  = "error_message"
	LoggingMethodKey        = "method"
	LoggingPathKey          = "path"
	LoggingStatusCodeKey    = "status_code"
	LoggingUserIDKey        = "user_id"
	LoggingUsernameKey      = "username"
	LoggingDoctorIDKey      = "doctor_id"
	LoggingMedicineIDKey    = "medicine_id"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingTimeSlotKey      = "time_slot"
	LoggingQuantityKey      = "quantity"
	LoggingCartLineCountKey = "cart_line_count"
	LoggingTotalCostKey     = "total_cost"
	LoggingRemoteStatusKey  = "remote_status"
)
