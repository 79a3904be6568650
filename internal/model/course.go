package model

type Course struct {
	ID          int     `db:"course_id" json:"course_id"`
	Title       string  `db:"title" json:"title"`
	Description string  `db:"description" json:"description"`
	Objectives  string  `db:"objectives" json:"objectives"`
	OwnerID     int     `db:"owner_id" json:"owner_id"`
	IsPremium   bool    `db:"is_premium" json:"is_premium"`
	Rating      float64 `db:"rating" json:"rating"`
}
