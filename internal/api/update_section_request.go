package api

// UpdateSectionRequest is a full field replace for a section.
// swagger:model api.UpdateSectionRequest
type UpdateSectionRequest struct {
	Title            string  `json:"title" validate:"required,max=100"`
	Content          string  `json:"content" validate:"required"`
	Description      *string `json:"description,omitempty"`
	ExternalResource *string `json:"external_resource,omitempty"`
}
