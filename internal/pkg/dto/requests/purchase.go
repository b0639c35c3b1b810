package requests

import "medcare-client/internal/app/models"

type BuyBulk struct {
	UserID int               `json:"user_id"`
	Items  []models.CartLine `json:"items"`
}

type BuyPrescription struct {
	AppointmentID int `json:"appointment_id"`
}
