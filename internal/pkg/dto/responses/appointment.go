package responses

type Appointment struct {
	ID       int      `json:"id"`
	UserID   int      `json:"user_id"`
	DoctorID int      `json:"doctor_id"`
	TimeSlot string   `json:"time_slot"`
	Symptoms []string `json:"symptoms,omitempty"`
}

type AppointmentList struct {
	Appointments []Appointment `json:"appointments"`
}

type Reschedule struct {
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
	NewTimeSlot string `json:"new_time_slot,omitempty"`
}
