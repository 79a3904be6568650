package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/database"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/store"
)

type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleNone    Role = "none"
)

// ResolveRole classifies a user by existence lookups in the profile
// tables. A user holds at most one profile.
func ResolveRole(ctx context.Context, q database.Querier, userID int) (Role, error) {
	if _, err := store.GetTeacherByUserID(ctx, q, userID); err == nil {
		return RoleTeacher, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return RoleNone, fmt.Errorf("ResolveRole: %w", err)
	}

	if _, err := store.GetStudentByUserID(ctx, q, userID); err == nil {
		return RoleStudent, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return RoleNone, fmt.Errorf("ResolveRole: %w", err)
	}

	return RoleNone, nil
}
