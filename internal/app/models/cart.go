package models

// CartLine is a local, uncommitted cart entry. Lines are unique by
// MedicineID; quantity is always at least 1.
type CartLine struct {
	MedicineID int `json:"medicine_id"`
	Quantity   int `json:"quantity"`
}
