package contracts

import (
	"context"

	"medcare-client/internal/app/models"
	"medcare-client/internal/pkg/dto/responses"
)

type ConsultationUsecase interface {
	Appointments(ctx context.Context, userID int) ([]responses.Appointment, error)
	// Consult normalizes the raw symptom string, requests a diagnosis
	// for the appointment, and denormalizes the prescription line
	// items best-effort.
	Consult(ctx context.Context, appointmentID int, rawSymptoms string) (*models.ConsultationResult, error)
	Prescriptions(ctx context.Context, userID int) ([]models.PrescriptionView, error)
	// BuyPrescription purchases all line items of the appointment's
	// prescription. May be invoked any number of times; each attempt
	// carries its own idempotency key.
	BuyPrescription(ctx context.Context, appointmentID int) (*responses.Purchase, error)
}
