package model

type Tag struct {
	ID   int    `db:"tag_id" json:"tag_id"`
	Name string `db:"tag_name" json:"tag_name"`
}
