package api

// swagger:model api.SectionResponse
type SectionResponse struct {
	SectionID        int     `json:"section_id" example:"10"`
	Title            string  `json:"title" example:"Introduction"`
	Content          string  `json:"content"`
	Description      *string `json:"description,omitempty"`
	ExternalResource *string `json:"external_resource,omitempty"`
	CourseID         int     `json:"course_id" example:"1"`
}
