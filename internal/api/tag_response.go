package api

// swagger:model api.TagResponse
type TagResponse struct {
	TagID   int    `json:"tag_id" example:"5"`
	TagName string `json:"tag_name" example:"grammar"`
}
