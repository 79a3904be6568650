package store

import (
	"context"
	"fmt"

	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/database"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/model"
)

func CreateTeacher(ctx context.Context, q database.Querier, t *model.Teacher) (*model.Teacher, error) {
	row := q.QueryRow(ctx,
		`INSERT INTO teachers (email, first_name, last_name, password_hash, phone_number, linkedin_account, users_user_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING teacher_id`,
		t.Email,
		t.FirstName,
		t.LastName,
		t.PasswordHash,
		t.PhoneNumber,
		t.LinkedInAccount,
		t.UserID,
	)
	if err := row.Scan(&t.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("CreateTeacher: %w", ErrConflict)
		}
		return nil, fmt.Errorf("CreateTeacher: %w", err)
	}
	return t, nil
}

func GetTeacherByUserID(ctx context.Context, q database.Querier, userID int) (*model.Teacher, error) {
	row := q.QueryRow(ctx,
		`SELECT teacher_id, email, first_name, last_name, password_hash, phone_number, linkedin_account, users_user_id
		 FROM teachers WHERE users_user_id = $1`,
		userID,
	)
	t := &model.Teacher{}
	if err := row.Scan(
		&t.ID,
		&t.Email,
		&t.FirstName,
		&t.LastName,
		&t.PasswordHash,
		&t.PhoneNumber,
		&t.LinkedInAccount,
		&t.UserID,
	); err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("GetTeacherByUserID: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetTeacherByUserID: %w", err)
	}
	return t, nil
}

// UpdateTeacher replaces the provided fields; nil pointers keep the
// stored value.
func UpdateTeacher(ctx context.Context, q database.Querier, teacherID int, firstName, lastName, phoneNumber, linkedInAccount, passwordHash *string) (*model.Teacher, error) {
	row := q.QueryRow(ctx,
		`UPDATE teachers
		 SET first_name = COALESCE($2, first_name),
		     last_name = COALESCE($3, last_name),
		     phone_number = COALESCE($4, phone_number),
		     linkedin_account = COALESCE($5, linkedin_account),
		     password_hash = COALESCE($6, password_hash)
		 WHERE teacher_id = $1
		 RETURNING teacher_id, email, first_name, last_name, password_hash, phone_number, linkedin_account, users_user_id`,
		teacherID,
		firstName,
		lastName,
		phoneNumber,
		linkedInAccount,
		passwordHash,
	)
	t := &model.Teacher{}
	if err := row.Scan(
		&t.ID,
		&t.Email,
		&t.FirstName,
		&t.LastName,
		&t.PasswordHash,
		&t.PhoneNumber,
		&t.LinkedInAccount,
		&t.UserID,
	); err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("UpdateTeacher: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("UpdateTeacher: %w", err)
	}
	return t, nil
}
