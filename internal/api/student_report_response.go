package api

// StudentReportRow is one row of the teacher's enrolled-students report.
// swagger:model api.StudentReportRow
type StudentReportRow struct {
	StudentID   int    `json:"student_id" example:"3"`
	FirstName   string `json:"first_name" example:"Bob"`
	LastName    string `json:"last_name" example:"Jones"`
	Email       string `json:"email" example:"student@example.com"`
	CourseID    int    `json:"course_id" example:"1"`
	CourseTitle string `json:"course_title" example:"English_for_Beginners"`
}
