package api

// swagger:model api.CreateSectionRequest
type CreateSectionRequest struct {
	Title            string  `json:"title" validate:"required,max=100" example:"Introduction"`
	Content          string  `json:"content" validate:"required"`
	Description      *string `json:"description,omitempty"`
	ExternalResource *string `json:"external_resource,omitempty"`
	CourseID         int     `json:"course_id" validate:"required" example:"1"`
}
