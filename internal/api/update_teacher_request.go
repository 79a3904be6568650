package api

// UpdateTeacherRequest carries optional fields; nil means keep the
// stored value. Email is immutable.
// swagger:model api.UpdateTeacherRequest
type UpdateTeacherRequest struct {
	FirstName       *string `json:"first_name,omitempty" validate:"omitempty,min=1"`
	LastName        *string `json:"last_name,omitempty" validate:"omitempty,min=1"`
	PhoneNumber     *string `json:"phone_number,omitempty"`
	LinkedInAccount *string `json:"linkedin_account,omitempty"`
	Password        *string `json:"password,omitempty"`
}
