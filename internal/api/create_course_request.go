package api

// swagger:model api.CreateCourseRequest
type CreateCourseRequest struct {
	Title       string `json:"title" validate:"required,max=50" example:"English_for_Beginners"`
	Description string `json:"description" validate:"required" example:"Introductory course into the world of English!"`
	Objectives  string `json:"objectives" validate:"required" example:"Give new students a grasp of the basics."`
	IsPremium   bool   `json:"is_premium" example:"false"`
}
