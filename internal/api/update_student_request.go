package api

// UpdateStudentRequest carries optional fields; nil means keep the
// stored value. Email is immutable.
// swagger:model api.UpdateStudentRequest
type UpdateStudentRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1"`
	Password  *string `json:"password,omitempty"`
}
