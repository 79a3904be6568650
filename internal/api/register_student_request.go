package api

// swagger:model api.RegisterStudentRequest
type RegisterStudentRequest struct {
	Email     string `json:"email" validate:"required,email" example:"student@example.com"`
	Password  string `json:"password" validate:"required" example:"Secret123"`
	FirstName string `json:"first_name" validate:"required" example:"Bob"`
	LastName  string `json:"last_name" validate:"required" example:"Jones"`
}
