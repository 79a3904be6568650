package model

type Student struct {
	ID           int    `db:"student_id" json:"student_id"`
	Email        string `db:"email" json:"email"`
	FirstName    string `db:"first_name" json:"first_name"`
	LastName     string `db:"last_name" json:"last_name"`
	PasswordHash string `db:"password_hash" json:"-"`
	UserID       int    `db:"users_user_id" json:"user_id"`
}
