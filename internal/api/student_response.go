package api

// swagger:model api.StudentResponse
type StudentResponse struct {
	StudentID int    `json:"student_id" example:"3"`
	Email     string `json:"email" example:"student@example.com"`
	FirstName string `json:"first_name" example:"Bob"`
	LastName  string `json:"last_name" example:"Jones"`
	UserID    int    `json:"user_id" example:"43"`
}
