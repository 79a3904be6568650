package model

type Section struct {
	ID               int     `db:"section_id" json:"section_id"`
	Title            string  `db:"title" json:"title"`
	Content          string  `db:"content" json:"content"`
	Description      *string `db:"description" json:"description,omitempty"`
	ExternalResource *string `db:"external_resource" json:"external_resource,omitempty"`
	CourseID         int     `db:"course_id" json:"course_id"`
}
