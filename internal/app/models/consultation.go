package models

import "fmt"

// PrescriptionLine is a prescription line item after the
// denormalization join. Name and Price are zero-valued when the
// scoped medicine lookup failed or the id no longer resolves; Label
// then falls back to the bare id so the view never breaks.
type PrescriptionLine struct {
	MedicineID int
	Name       string
	Price      float64
	Quantity   int
}

func (l PrescriptionLine) Label() string {
	if l.Name != "" {
		return l.Name
	}
	return fmt.Sprintf("Medicine ID %d", l.MedicineID)
}

// ConsultationResult is the outcome of a consultation: the diagnosis
// plus the prescription lines, denormalized when possible.
type ConsultationResult struct {
	AppointmentID int
	Diagnosis     string
	Lines         []PrescriptionLine

	// Denormalized is false when the secondary medicine lookup failed
	// and Lines carry bare ids only.
	Denormalized bool
}

// PrescriptionView is one entry of the user's prescription history,
// resolved the same way as a consultation result.
type PrescriptionView struct {
	AppointmentID int
	Lines         []PrescriptionLine
	Denormalized  bool
}
