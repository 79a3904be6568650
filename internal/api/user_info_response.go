package api

// swagger:model api.UserInfoResponse
type UserInfoResponse struct {
	ID    int    `json:"id" example:"42"`
	Email string `json:"email" example:"alice@example.com"`
	Role  string `json:"role" example:"student"`
}
