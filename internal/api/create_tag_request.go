package api

// swagger:model api.CreateTagRequest
type CreateTagRequest struct {
	TagName string `json:"tag_name" validate:"required,max=50" example:"grammar"`
}
