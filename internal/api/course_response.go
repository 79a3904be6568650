package api

// swagger:model api.CourseResponse
type CourseResponse struct {
	CourseID    int     `json:"course_id" example:"1"`
	Title       string  `json:"title" example:"English_for_Beginners"`
	Description string  `json:"description"`
	Objectives  string  `json:"objectives"`
	OwnerID     int     `json:"owner_id" example:"7"`
	IsPremium   bool    `json:"is_premium" example:"false"`
	Rating      float64 `json:"rating" example:"0"`
}
