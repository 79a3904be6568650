package store

import (
	"context"
	"fmt"

	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/database"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/model"
)

func IsEnrolled(ctx context.Context, q database.Querier, studentID, courseID int) (bool, error) {
	row := q.QueryRow(ctx,
		`SELECT count(*) FROM enrollments
		 WHERE students_student_id = $1 AND courses_course_id = $2`,
		studentID,
		courseID,
	)
	var n int
	if err := row.Scan(&n); err != nil {
		return false, fmt.Errorf("IsEnrolled: %w", err)
	}
	return n > 0, nil
}

// PremiumEnrollmentCount counts the student's current premium-course
// enrollments, for the subscription cap check.
func PremiumEnrollmentCount(ctx context.Context, q database.Querier, studentID int) (int, error) {
	row := q.QueryRow(ctx,
		`SELECT count(*) FROM enrollments
		 JOIN courses ON enrollments.courses_course_id = courses.course_id
		 WHERE enrollments.students_student_id = $1 AND courses.is_premium = TRUE`,
		studentID,
	)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("PremiumEnrollmentCount: %w", err)
	}
	return n, nil
}

func Subscribe(ctx context.Context, q database.Querier, studentID, courseID int) error {
	_, err := q.Exec(ctx,
		`INSERT INTO enrollments (students_student_id, courses_course_id) VALUES ($1, $2)`,
		studentID,
		courseID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("Subscribe: %w", ErrConflict)
		}
		return fmt.Errorf("Subscribe: %w", err)
	}
	return nil
}

func Unsubscribe(ctx context.Context, q database.Querier, studentID, courseID int) error {
	tag, err := q.Exec(ctx,
		`DELETE FROM enrollments
		 WHERE students_student_id = $1 AND courses_course_id = $2`,
		studentID,
		courseID,
	)
	if err != nil {
		return fmt.Errorf("Unsubscribe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("Unsubscribe: %w", ErrConflict)
	}
	return nil
}

func CountEnrollmentsForCourse(ctx context.Context, q database.Querier, courseID int) (int, error) {
	row := q.QueryRow(ctx,
		`SELECT count(*) FROM enrollments WHERE courses_course_id = $1`,
		courseID,
	)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("CountEnrollmentsForCourse: %w", err)
	}
	return n, nil
}

// StudentsByTeacher lists every student enrolled in any course owned by
// the teacher, one row per (student, course) pair.
func StudentsByTeacher(ctx context.Context, q database.Querier, teacherID int) ([]model.StudentReport, error) {
	rows, err := q.Query(ctx,
		`SELECT s.student_id, s.first_name, s.last_name, s.email, c.course_id, c.title
		 FROM students s
		 JOIN enrollments e ON s.student_id = e.students_student_id
		 JOIN courses c ON e.courses_course_id = c.course_id
		 WHERE c.owner_id = $1
		 ORDER BY c.course_id, s.student_id`,
		teacherID,
	)
	if err != nil {
		return nil, fmt.Errorf("StudentsByTeacher: %w", err)
	}
	defer rows.Close()

	var out []model.StudentReport
	for rows.Next() {
		var r model.StudentReport
		if err := rows.Scan(
			&r.StudentID,
			&r.FirstName,
			&r.LastName,
			&r.Email,
			&r.CourseID,
			&r.CourseTitle,
		); err != nil {
			return nil, fmt.Errorf("StudentsByTeacher: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("StudentsByTeacher: %w", err)
	}
	return out, nil
}
