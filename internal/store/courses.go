package store

import (
	"context"
	"fmt"

	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/database"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/model"
)

const courseColumns = `course_id, title, description, objectives, owner_id, is_premium, rating`

func CreateCourse(ctx context.Context, q database.Querier, c *model.Course) (*model.Course, error) {
	row := q.QueryRow(ctx,
		`INSERT INTO courses (title, description, objectives, owner_id, is_premium)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING course_id, rating`,
		c.Title,
		c.Description,
		c.Objectives,
		c.OwnerID,
		c.IsPremium,
	)
	if err := row.Scan(&c.ID, &c.Rating); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("CreateCourse: %w", ErrConflict)
		}
		return nil, fmt.Errorf("CreateCourse: %w", err)
	}
	return c, nil
}

func GetCourseByID(ctx context.Context, q database.Querier, courseID int) (*model.Course, error) {
	row := q.QueryRow(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE course_id = $1`,
		courseID,
	)
	c := &model.Course{}
	if err := scanCourse(row, c); err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("GetCourseByID: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetCourseByID: %w", err)
	}
	return c, nil
}

// ListCoursesForStudent returns non-premium courses plus premium courses
// the student is enrolled in, optionally filtered by a case-insensitive
// title substring.
func ListCoursesForStudent(ctx context.Context, q database.Querier, studentID int, title string) ([]model.Course, error) {
	rows, err := q.Query(ctx,
		`SELECT `+courseColumns+` FROM courses
		 WHERE (is_premium = FALSE
		        OR course_id IN (SELECT courses_course_id FROM enrollments WHERE students_student_id = $1))
		   AND title ILIKE '%' || $2 || '%'
		 ORDER BY course_id`,
		studentID,
		title,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCoursesForStudent: %w", err)
	}
	return collectCourses(rows, "ListCoursesForStudent")
}

// ListCoursesForTeacher returns non-premium courses plus every course the
// teacher owns.
func ListCoursesForTeacher(ctx context.Context, q database.Querier, teacherID int, title string) ([]model.Course, error) {
	rows, err := q.Query(ctx,
		`SELECT `+courseColumns+` FROM courses
		 WHERE (is_premium = FALSE OR owner_id = $1)
		   AND title ILIKE '%' || $2 || '%'
		 ORDER BY course_id`,
		teacherID,
		title,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCoursesForTeacher: %w", err)
	}
	return collectCourses(rows, "ListCoursesForTeacher")
}

// UpdateCourse replaces the provided fields; nil pointers keep the stored
// value.
func UpdateCourse(ctx context.Context, q database.Querier, courseID int, title, description, objectives *string, isPremium *bool) (*model.Course, error) {
	row := q.QueryRow(ctx,
		`UPDATE courses
		 SET title = COALESCE($2, title),
		     description = COALESCE($3, description),
		     objectives = COALESCE($4, objectives),
		     is_premium = COALESCE($5, is_premium)
		 WHERE course_id = $1
		 RETURNING `+courseColumns,
		courseID,
		title,
		description,
		objectives,
		isPremium,
	)
	c := &model.Course{}
	if err := scanCourse(row, c); err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("UpdateCourse: %w", ErrNotFound)
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("UpdateCourse: %w", ErrConflict)
		}
		return nil, fmt.Errorf("UpdateCourse: %w", err)
	}
	return c, nil
}

func DeleteCourse(ctx context.Context, q database.Querier, courseID int) error {
	tag, err := q.Exec(ctx,
		`DELETE FROM courses WHERE course_id = $1`,
		courseID,
	)
	if err != nil {
		return fmt.Errorf("DeleteCourse: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteCourse: %w", ErrNotFound)
	}
	return nil
}

type courseScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row courseScanner, c *model.Course) error {
	return row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Objectives,
		&c.OwnerID,
		&c.IsPremium,
		&c.Rating,
	)
}

func collectCourses(rows interface {
	courseScanner
	Next() bool
	Err() error
	Close()
}, op string) ([]model.Course, error) {
	defer rows.Close()
	var out []model.Course
	for rows.Next() {
		var c model.Course
		if err := scanCourse(rows, &c); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}
