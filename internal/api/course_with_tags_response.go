package api

// swagger:model api.CourseWithTagsResponse
type CourseWithTagsResponse struct {
	Course CourseResponse `json:"course"`
	Tags   []TagResponse  `json:"tags"`
}
