package model

type Teacher struct {
	ID              int     `db:"teacher_id" json:"teacher_id"`
	Email           string  `db:"email" json:"email"`
	FirstName       string  `db:"first_name" json:"first_name"`
	LastName        string  `db:"last_name" json:"last_name"`
	PasswordHash    string  `db:"password_hash" json:"-"`
	PhoneNumber     *string `db:"phone_number" json:"phone_number,omitempty"`
	LinkedInAccount *string `db:"linkedin_account" json:"linkedin_account,omitempty"`
	UserID          int     `db:"users_user_id" json:"user_id"`
}
