package consultations

import (
	"context"
	"fmt"
	"strings"

	"medcare-client/internal/app/contracts"
	"medcare-client/internal/app/models"
	"medcare-client/internal/pkg/constvars"
	"medcare-client/internal/pkg/dto/requests"
	"medcare-client/internal/pkg/dto/responses"
	"medcare-client/internal/pkg/exceptions"

	"go.uber.org/zap"
)

// ParseSymptoms normalizes a raw comma-separated symptom string:
// split on comma, trim whitespace, drop empty tokens.
func ParseSymptoms(raw string) []string {
	parts := strings.Split(raw, ",")
	symptoms := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			symptoms = append(symptoms, trimmed)
		}
	}
	return symptoms
}

// DefaultAppointmentID picks the appointment pre-selected for a
// consultation: the highest id is taken as the most recently created.
// This is a deliberate rule, not an artifact of array order.
func DefaultAppointmentID(list []responses.Appointment) int {
	var highest int
	for _, appointment := range list {
		if appointment.ID > highest {
			highest = appointment.ID
		}
	}
	return highest
}

type consultationUsecase struct {
	Gateway contracts.Gateway
	Log     *zap.Logger
}

func NewConsultationUsecase(gateway contracts.Gateway, logger *zap.Logger) contracts.ConsultationUsecase {
	return &consultationUsecase{
		Gateway: gateway,
		Log:     logger,
	}
}

func (uc *consultationUsecase) Appointments(ctx context.Context, userID int) ([]responses.Appointment, error) {
	var out responses.AppointmentList
	err := uc.Gateway.Call(ctx, constvars.MethodGet, fmt.Sprintf(constvars.EndpointUserAppts, userID), nil, &out)
	if err != nil {
		uc.Log.Error("consultationUsecase.Appointments remote call failed",
			zap.Int(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return nil, err
	}
	return out.Appointments, nil
}

// Consult runs the diagnosis request and then the denormalization
// join. The join is best-effort: if the scoped medicine fetch fails,
// the result still carries the diagnosis and the bare line items, so
// the primary result stays useful without it.
func (uc *consultationUsecase) Consult(ctx context.Context, appointmentID int, rawSymptoms string) (*models.ConsultationResult, error) {
	symptoms := ParseSymptoms(rawSymptoms)
	if len(symptoms) == 0 {
		return nil, exceptions.ErrNoSymptoms()
	}
	if appointmentID == 0 {
		return nil, exceptions.ErrNoAppointmentSelected()
	}

	request := requests.Consult{AppointmentID: appointmentID, Symptoms: symptoms}

	var out responses.Consultation
	err := uc.Gateway.Call(ctx, constvars.MethodPost, constvars.EndpointConsult, request, &out)
	if err != nil {
		uc.Log.Error("consultationUsecase.Consult remote call failed",
			zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}

	result := &models.ConsultationResult{
		AppointmentID: appointmentID,
		Diagnosis:     out.Diagnosis,
		Lines:         bareLines(out.Prescription),
	}

	medicines, err := uc.appointmentMedicines(ctx, appointmentID)
	if err != nil {
		uc.Log.Warn("consultationUsecase.Consult denormalization fetch failed, rendering bare prescription",
			zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return result, nil
	}

	result.Lines = enrichLines(out.Prescription, medicines)
	result.Denormalized = true

	uc.Log.Info("consultationUsecase.Consult succeeded",
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String("diagnosis", out.Diagnosis),
		zap.Int("line_count", len(result.Lines)),
	)
	return result, nil
}

func (uc *consultationUsecase) Prescriptions(ctx context.Context, userID int) ([]models.PrescriptionView, error) {
	var out responses.PrescriptionList
	err := uc.Gateway.Call(ctx, constvars.MethodGet, fmt.Sprintf(constvars.EndpointUserRx, userID), nil, &out)
	if err != nil {
		uc.Log.Error("consultationUsecase.Prescriptions remote call failed",
			zap.Int(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return nil, err
	}

	views := make([]models.PrescriptionView, 0, len(out.Prescriptions))
	for _, entry := range out.Prescriptions {
		view := models.PrescriptionView{
			AppointmentID: entry.AppointmentID,
			Lines:         bareLines(entry.Prescription),
		}
		medicines, err := uc.appointmentMedicines(ctx, entry.AppointmentID)
		if err != nil {
			uc.Log.Warn("consultationUsecase.Prescriptions denormalization fetch failed for entry",
				zap.Int(constvars.LoggingAppointmentIDKey, entry.AppointmentID),
				zap.Error(err),
			)
		} else {
			view.Lines = enrichLines(entry.Prescription, medicines)
			view.Denormalized = true
		}
		views = append(views, view)
	}
	return views, nil
}

func (uc *consultationUsecase) BuyPrescription(ctx context.Context, appointmentID int) (*responses.Purchase, error) {
	if appointmentID == 0 {
		return nil, exceptions.ErrNoAppointmentSelected()
	}

	request := requests.BuyPrescription{AppointmentID: appointmentID}

	var out responses.Purchase
	err := uc.Gateway.CallIdempotent(ctx, constvars.MethodPost, constvars.EndpointBuyPrescription, request, &out)
	if err != nil {
		uc.Log.Error("consultationUsecase.BuyPrescription remote call failed",
			zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}

	if out.Status == constvars.RemoteStatusSuccess {
		uc.Log.Info("consultationUsecase.BuyPrescription succeeded",
			zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Float64(constvars.LoggingTotalCostKey, out.TotalCost),
		)
	} else {
		uc.Log.Warn("consultationUsecase.BuyPrescription rejected by remote",
			zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.String(constvars.LoggingErrorMessageKey, out.Message),
		)
	}
	return &out, nil
}

// appointmentMedicines is the dedicated scoped lookup used for the
// denormalization join, distinct from the generic medicines list.
func (uc *consultationUsecase) appointmentMedicines(ctx context.Context, appointmentID int) ([]responses.Medicine, error) {
	var out responses.MedicineList
	err := uc.Gateway.Call(ctx, constvars.MethodGet, fmt.Sprintf(constvars.EndpointMedicinesByAppt, appointmentID), nil, &out)
	if err != nil {
		return nil, err
	}
	return out.Medicines, nil
}

func bareLines(items []responses.PrescriptionItem) []models.PrescriptionLine {
	lines := make([]models.PrescriptionLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, models.PrescriptionLine{
			MedicineID: item.MedicineID,
			Quantity:   item.Quantity,
		})
	}
	return lines
}

// enrichLines joins bare line items with the scoped medicine records.
// An item whose id no longer resolves stays bare rather than failing
// the whole view.
func enrichLines(items []responses.PrescriptionItem, medicines []responses.Medicine) []models.PrescriptionLine {
	byID := make(map[int]responses.Medicine, len(medicines))
	for _, medicine := range medicines {
		byID[medicine.ID] = medicine
	}

	lines := make([]models.PrescriptionLine, 0, len(items))
	for _, item := range items {
		line := models.PrescriptionLine{
			MedicineID: item.MedicineID,
			Quantity:   item.Quantity,
		}
		if medicine, ok := byID[item.MedicineID]; ok {
			line.Name = medicine.Name
			line.Price = medicine.Price
		}
		lines = append(lines, line)
	}
	return lines
}
