package responses

// PrescriptionItem is the bare line item the service returns from a
// consultation: a medicine id and a quantity, nothing display-ready.
type PrescriptionItem struct {
	MedicineID int `json:"medicine_id"`
	Quantity   int `json:"quantity"`
}

type PrescriptionEntry struct {
	AppointmentID int                `json:"appointment_id"`
	Prescription  []PrescriptionItem `json:"prescription"`
}

type PrescriptionList struct {
	Prescriptions []PrescriptionEntry `json:"prescriptions"`
}

type Consultation struct {
	Diagnosis    string             `json:"diagnosis"`
	Prescription []PrescriptionItem `json:"prescription"`
}
