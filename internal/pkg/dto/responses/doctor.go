package responses

type Doctor struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Specialty      string   `json:"specialty"`
	AvailableSlots []string `json:"available_slots"`
}

type DoctorList struct {
	Doctors []Doctor `json:"doctors"`
}

type DoctorAvailability struct {
	AvailableSlots []string `json:"available_slots"`
}
