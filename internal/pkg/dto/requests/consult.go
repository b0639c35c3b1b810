package requests

type Consult struct {
	AppointmentID int      `json:"appointment_id"`
	Symptoms      []string `json:"symptoms"`
}
