package model

type Enrollment struct {
	StudentID int `db:"students_student_id" json:"student_id"`
	CourseID  int `db:"courses_course_id" json:"course_id"`
}

// StudentReport is one row of the teacher's enrolled-students report.
type StudentReport struct {
	StudentID   int    `db:"student_id" json:"student_id"`
	FirstName   string `db:"first_name" json:"first_name"`
	LastName    string `db:"last_name" json:"last_name"`
	Email       string `db:"email" json:"email"`
	CourseID    int    `db:"course_id" json:"course_id"`
	CourseTitle string `db:"course_title" json:"course_title"`
}
