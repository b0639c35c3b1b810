package contracts

import (
	"context"

	"medcare-client/internal/pkg/dto/responses"
)

// BookingState is the booking flow's state machine position.
type BookingState string

const (
	BookingSelectingDoctor BookingState = "SELECTING_DOCTOR"
	BookingSlotsLoading    BookingState = "SLOTS_LOADING"
	BookingSlotsReady      BookingState = "SLOTS_READY"
	BookingSubmitting      BookingState = "SUBMITTING"
	BookingBooked          BookingState = "BOOKED"
	BookingRejected        BookingState = "REJECTED"
)

type BookingFlow interface {
	// SeedDoctor pre-selects a doctor supplied externally (deep link)
	// without fetching slots.
	SeedDoctor(doctorID int)
	// SelectDoctor picks a doctor and fetches its available slots.
	SelectDoctor(ctx context.Context, doctorID int) ([]string, error)
	SelectSlot(slot string) error
	// Submit commits the booking. On SUCCESS it returns the doctor
	// label for confirmation; on a rejected booking it returns an
	// empty label with the flow in BookingRejected and Message set.
	Submit(ctx context.Context) (string, error)

	State() BookingState
	DoctorID() int
	Slots() []string
	// Message is the server rejection message after BookingRejected.
	Message() string

	// Cancel deletes a booked appointment. On SUCCESS the appointment
	// is removed from the given list; otherwise the list is returned
	// unchanged along with the error.
	Cancel(ctx context.Context, list []responses.Appointment, appointmentID int) ([]responses.Appointment, error)
	// Reschedule moves an appointment to a new slot.
	Reschedule(ctx context.Context, appointmentID int, newSlot string) (*responses.Reschedule, error)
}
