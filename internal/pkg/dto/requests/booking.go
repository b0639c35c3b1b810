package requests

type Book struct {
	UserID   int    `json:"user_id"`
	DoctorID int    `json:"doctor_id"`
	TimeSlot string `json:"time_slot"`
}

type Reschedule struct {
	NewTimeSlot string `json:"new_time_slot"`
}
