package api

// swagger:model api.RegisterTeacherRequest
type RegisterTeacherRequest struct {
	Email           string  `json:"email" validate:"required,email" example:"teacher@example.com"`
	Password        string  `json:"password" validate:"required" example:"Secret123"`
	FirstName       string  `json:"first_name" validate:"required" example:"Alice"`
	LastName        string  `json:"last_name" validate:"required" example:"Smith"`
	PhoneNumber     *string `json:"phone_number,omitempty"`
	LinkedInAccount *string `json:"linkedin_account,omitempty"`
}
