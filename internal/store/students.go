package store

import (
	"context"
	"fmt"

	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/database"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/model"
)

func CreateStudent(ctx context.Context, q database.Querier, s *model.Student) (*model.Student, error) {
	row := q.QueryRow(ctx,
		`INSERT INTO students (email, first_name, last_name, password_hash, users_user_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING student_id`,
		s.Email,
		s.FirstName,
		s.LastName,
		s.PasswordHash,
		s.UserID,
	)
	if err := row.Scan(&s.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("CreateStudent: %w", ErrConflict)
		}
		return nil, fmt.Errorf("CreateStudent: %w", err)
	}
	return s, nil
}

func GetStudentByUserID(ctx context.Context, q database.Querier, userID int) (*model.Student, error) {
	row := q.QueryRow(ctx,
		`SELECT student_id, email, first_name, last_name, password_hash, users_user_id
		 FROM students WHERE users_user_id = $1`,
		userID,
	)
	s := &model.Student{}
	if err := row.Scan(
		&s.ID,
		&s.Email,
		&s.FirstName,
		&s.LastName,
		&s.PasswordHash,
		&s.UserID,
	); err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("GetStudentByUserID: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetStudentByUserID: %w", err)
	}
	return s, nil
}

// UpdateStudent replaces the provided fields; nil pointers keep the
// stored value.
func UpdateStudent(ctx context.Context, q database.Querier, studentID int, firstName, lastName, passwordHash *string) (*model.Student, error) {
	row := q.QueryRow(ctx,
		`UPDATE students
		 SET first_name = COALESCE($2, first_name),
		     last_name = COALESCE($3, last_name),
		     password_hash = COALESCE($4, password_hash)
		 WHERE student_id = $1
		 RETURNING student_id, email, first_name, last_name, password_hash, users_user_id`,
		studentID,
		firstName,
		lastName,
		passwordHash,
	)
	s := &model.Student{}
	if err := row.Scan(
		&s.ID,
		&s.Email,
		&s.FirstName,
		&s.LastName,
		&s.PasswordHash,
		&s.UserID,
	); err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("UpdateStudent: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("UpdateStudent: %w", err)
	}
	return s, nil
}
