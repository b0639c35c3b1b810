package responses

type Purchase struct {
	Status    string  `json:"status"`
	TotalCost float64 `json:"total_cost,omitempty"`
	Message   string  `json:"message,omitempty"`
}

type Restock struct {
	Status   string `json:"status"`
	NewStock int    `json:"new_stock"`
}
