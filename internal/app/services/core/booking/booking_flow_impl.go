package booking

import (
	"context"
	"fmt"
	"sync"

	"medcare-client/internal/app/contracts"
	"medcare-client/internal/pkg/constvars"
	"medcare-client/internal/pkg/dto/requests"
	"medcare-client/internal/pkg/dto/responses"
	"medcare-client/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type bookingFlow struct {
	Gateway  contracts.Gateway
	Sessions contracts.SessionUsecase
	Catalog  contracts.CatalogUsecase
	Log      *zap.Logger

	mu    sync.Mutex
	state contracts.BookingState
	// doctorSelected tracks whether a doctor was picked at all; ids
	// are server-assigned starting at 0, so the id value alone cannot
	// signal absence.
	doctorSelected bool
	doctorID       int
	slot           string
	slots          []string
	message        string
	// generation guards slot fetches: a selection changed while a
	// fetch was in flight discards the stale result.
	generation int
}

func NewBookingFlow(
	gateway contracts.Gateway,
	sessions contracts.SessionUsecase,
	catalog contracts.CatalogUsecase,
	logger *zap.Logger,
) contracts.BookingFlow {
	return &bookingFlow{
		Gateway:  gateway,
		Sessions: sessions,
		Catalog:  catalog,
		Log:      logger,
		state:    contracts.BookingSelectingDoctor,
	}
}

func (f *bookingFlow) SeedDoctor(doctorID int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == contracts.BookingSelectingDoctor {
		f.doctorID = doctorID
		f.doctorSelected = true
	}
}

func (f *bookingFlow) SelectDoctor(ctx context.Context, doctorID int) ([]string, error) {
	f.mu.Lock()
	if f.state == contracts.BookingSubmitting {
		f.mu.Unlock()
		return nil, exceptions.ErrSubmitInFlight()
	}
	f.state = contracts.BookingSlotsLoading
	f.doctorID = doctorID
	f.doctorSelected = true
	f.slot = ""
	f.slots = nil
	f.generation++
	generation := f.generation
	f.mu.Unlock()

	var availability responses.DoctorAvailability
	err := f.Gateway.Call(ctx, constvars.MethodGet, fmt.Sprintf(constvars.EndpointDoctorSlots, doctorID), nil, &availability)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.generation != generation {
		// The flow moved on while this fetch was in flight.
		f.Log.Debug("bookingFlow.SelectDoctor stale slot result discarded",
			zap.Int(constvars.LoggingDoctorIDKey, doctorID),
		)
		return nil, nil
	}

	if err != nil {
		f.Log.Error("bookingFlow.SelectDoctor error fetching slots",
			zap.Int(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		f.state = contracts.BookingSelectingDoctor
		return nil, err
	}

	f.slots = availability.AvailableSlots
	f.state = contracts.BookingSlotsReady
	f.Log.Info("bookingFlow.SelectDoctor slots loaded",
		zap.Int(constvars.LoggingDoctorIDKey, doctorID),
		zap.Int("slot_count", len(f.slots)),
	)

	slots := make([]string, len(f.slots))
	copy(slots, f.slots)
	return slots, nil
}

func (f *bookingFlow) SelectSlot(slot string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if slot == "" {
		return exceptions.ErrIncompleteSelection()
	}
	switch f.state {
	case contracts.BookingSlotsReady, contracts.BookingRejected:
		f.slot = slot
		f.state = contracts.BookingSlotsReady
		return nil
	case contracts.BookingSubmitting:
		return exceptions.ErrSubmitInFlight()
	default:
		return exceptions.ErrIncompleteSelection()
	}
}

func (f *bookingFlow) Submit(ctx context.Context) (string, error) {
	f.mu.Lock()
	if f.state == contracts.BookingSubmitting {
		f.mu.Unlock()
		return "", exceptions.ErrSubmitInFlight()
	}
	if !f.doctorSelected || f.slot == "" {
		f.mu.Unlock()
		return "", exceptions.ErrIncompleteSelection()
	}
	session := f.Sessions.Current()
	if session == nil {
		f.mu.Unlock()
		return "", exceptions.ErrNotAuthenticated()
	}
	previous := f.state
	f.state = contracts.BookingSubmitting
	doctorID := f.doctorID
	slot := f.slot
	f.mu.Unlock()

	request := requests.Book{UserID: session.UserID, DoctorID: doctorID, TimeSlot: slot}

	var out responses.Status
	err := f.Gateway.Call(ctx, constvars.MethodPost, constvars.EndpointBook, request, &out)

	f.mu.Lock()
	if err != nil {
		f.state = previous
		f.mu.Unlock()
		f.Log.Error("bookingFlow.Submit remote call failed",
			zap.Int(constvars.LoggingDoctorIDKey, doctorID),
			zap.String(constvars.LoggingTimeSlotKey, slot),
			zap.Error(err),
		)
		return "", err
	}

	if out.Status != constvars.RemoteStatusSuccess {
		f.state = contracts.BookingRejected
		f.message = out.Message
		f.mu.Unlock()
		f.Log.Warn("bookingFlow.Submit rejected by remote",
			zap.Int(constvars.LoggingDoctorIDKey, doctorID),
			zap.String(constvars.LoggingTimeSlotKey, slot),
			zap.String(constvars.LoggingErrorMessageKey, out.Message),
		)
		return "", nil
	}

	f.state = contracts.BookingBooked
	f.message = ""
	f.mu.Unlock()

	snapshot := f.Catalog.Load(ctx)
	label := snapshot.DoctorLabel(doctorID)
	f.Log.Info("bookingFlow.Submit booked",
		zap.Int(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingTimeSlotKey, slot),
	)
	return label, nil
}

func (f *bookingFlow) State() contracts.BookingState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *bookingFlow) DoctorID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.doctorID
}

func (f *bookingFlow) Slots() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	slots := make([]string, len(f.slots))
	copy(slots, f.slots)
	return slots
}

func (f *bookingFlow) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// Cancel is independent of the flow's booking state machine and is
// idempotent from the client's perspective.
func (f *bookingFlow) Cancel(ctx context.Context, list []responses.Appointment, appointmentID int) ([]responses.Appointment, error) {
	var out responses.Status
	err := f.Gateway.Call(ctx, constvars.MethodDelete, fmt.Sprintf(constvars.EndpointAppointment, appointmentID), nil, &out)
	if err != nil {
		f.Log.Error("bookingFlow.Cancel remote call failed",
			zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return list, err
	}
	if out.Status != constvars.RemoteStatusSuccess {
		return list, exceptions.ErrRemoteRejected(constvars.StatusOK, out.Message)
	}

	filtered := make([]responses.Appointment, 0, len(list))
	for _, appointment := range list {
		if appointment.ID != appointmentID {
			filtered = append(filtered, appointment)
		}
	}
	f.Log.Info("bookingFlow.Cancel appointment cancelled",
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return filtered, nil
}

func (f *bookingFlow) Reschedule(ctx context.Context, appointmentID int, newSlot string) (*responses.Reschedule, error) {
	if newSlot == "" {
		return nil, exceptions.ErrIncompleteSelection()
	}

	request := requests.Reschedule{NewTimeSlot: newSlot}

	var out responses.Reschedule
	err := f.Gateway.Call(ctx, constvars.MethodPost, fmt.Sprintf(constvars.EndpointReschedule, appointmentID), request, &out)
	if err != nil {
		f.Log.Error("bookingFlow.Reschedule remote call failed",
			zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.String(constvars.LoggingTimeSlotKey, newSlot),
			zap.Error(err),
		)
		return nil, err
	}
	return &out, nil
}
