package api

// UpdateCourseRequest carries optional fields; nil means keep the stored
// value.
// swagger:model api.UpdateCourseRequest
type UpdateCourseRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=50"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=1"`
	Objectives  *string `json:"objectives,omitempty" validate:"omitempty,min=1"`
	IsPremium   *bool   `json:"is_premium,omitempty"`
}
