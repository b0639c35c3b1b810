package requests

type Rating struct {
	DoctorID int `json:"-" validate:"required"`
	UserID   int `json:"user_id" validate:"required"`
	Rating   int `json:"rating" validate:"required,min=1,max=5"`
}
