package api

// swagger:model api.TeacherResponse
type TeacherResponse struct {
	TeacherID       int     `json:"teacher_id" example:"7"`
	Email           string  `json:"email" example:"teacher@example.com"`
	FirstName       string  `json:"first_name" example:"Alice"`
	LastName        string  `json:"last_name" example:"Smith"`
	PhoneNumber     *string `json:"phone_number,omitempty"`
	LinkedInAccount *string `json:"linkedin_account,omitempty"`
	UserID          int     `json:"user_id" example:"42"`
}
