package responses

type Auth struct {
	Status string `json:"status,omitempty"`
	UserID int    `json:"user_id"`
}
