package api

// swagger:model api.CourseWithSectionsResponse
type CourseWithSectionsResponse struct {
	CourseID    int               `json:"course_id" example:"1"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Objectives  string            `json:"objectives"`
	OwnerID     int               `json:"owner_id"`
	IsPremium   bool              `json:"is_premium"`
	Rating      float64           `json:"rating"`
	Sections    []SectionResponse `json:"sections"`
}
