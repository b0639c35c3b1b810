package models

import (
	"fmt"

	"medcare-client/internal/pkg/dto/responses"
)

// CatalogSnapshot is an immutable view of the doctor and medicine
// lists taken at a single point in time. Flows receive a snapshot and
// resolve ids through it; they never mutate it, they replace it by
// re-fetching.
type CatalogSnapshot struct {
	Doctors   []responses.Doctor
	Medicines []responses.Medicine

	doctorsByID   map[int]responses.Doctor
	medicinesByID map[int]responses.Medicine
	err           error
}

func NewCatalogSnapshot(doctors []responses.Doctor, medicines []responses.Medicine, err error) *CatalogSnapshot {
	snapshot := &CatalogSnapshot{
		Doctors:       doctors,
		Medicines:     medicines,
		doctorsByID:   make(map[int]responses.Doctor, len(doctors)),
		medicinesByID: make(map[int]responses.Medicine, len(medicines)),
		err:           err,
	}
	for _, doctor := range doctors {
		snapshot.doctorsByID[doctor.ID] = doctor
	}
	for _, medicine := range medicines {
		snapshot.medicinesByID[medicine.ID] = medicine
	}
	return snapshot
}

// Err reports the fetch error recorded at load time, if any. A
// snapshot with an error still answers lookups with fallbacks.
func (s *CatalogSnapshot) Err() error {
	return s.err
}

func (s *CatalogSnapshot) Doctor(id int) (responses.Doctor, bool) {
	doctor, ok := s.doctorsByID[id]
	return doctor, ok
}

func (s *CatalogSnapshot) Medicine(id int) (responses.Medicine, bool) {
	medicine, ok := s.medicinesByID[id]
	return medicine, ok
}

// DoctorLabel resolves a doctor id to "<name> (<specialty>)", falling
// back to "Doctor <id>" when the id is not in the snapshot.
func (s *CatalogSnapshot) DoctorLabel(id int) string {
	if doctor, ok := s.doctorsByID[id]; ok {
		return fmt.Sprintf("%s (%s)", doctor.Name, doctor.Specialty)
	}
	return fmt.Sprintf("Doctor %d", id)
}

// MedicineLabel resolves a medicine id to its name, falling back to
// "Medicine <id>".
func (s *CatalogSnapshot) MedicineLabel(id int) string {
	if medicine, ok := s.medicinesByID[id]; ok {
		return medicine.Name
	}
	return fmt.Sprintf("Medicine %d", id)
}
