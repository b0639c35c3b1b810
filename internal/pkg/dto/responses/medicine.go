package responses

// Medicine is the catalog view of a medicine. Quantity is only set on
// the appointment-scoped lookup, where the service annotates each
// entry with the prescribed amount.
type Medicine struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Quantity int     `json:"quantity,omitempty"`
}

type MedicineList struct {
	Medicines []Medicine `json:"medicines"`
}

type MedicineSearchResult struct {
	Results []Medicine `json:"results"`
}
