package store

import (
	"context"
	"fmt"

	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/database"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/model"
)

func CreateTag(ctx context.Context, q database.Querier, name string) (*model.Tag, error) {
	row := q.QueryRow(ctx,
		`INSERT INTO course_tags (tag_name) VALUES ($1) RETURNING tag_id`,
		name,
	)
	t := &model.Tag{Name: name}
	if err := row.Scan(&t.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("CreateTag: %w", ErrConflict)
		}
		return nil, fmt.Errorf("CreateTag: %w", err)
	}
	return t, nil
}

func GetTagByID(ctx context.Context, q database.Querier, tagID int) (*model.Tag, error) {
	row := q.QueryRow(ctx,
		`SELECT tag_id, tag_name FROM course_tags WHERE tag_id = $1`,
		tagID,
	)
	t := &model.Tag{}
	if err := row.Scan(&t.ID, &t.Name); err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("GetTagByID: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetTagByID: %w", err)
	}
	return t, nil
}

func DeleteTag(ctx context.Context, q database.Querier, tagID int) error {
	tag, err := q.Exec(ctx,
		`DELETE FROM course_tags WHERE tag_id = $1`,
		tagID,
	)
	if err != nil {
		return fmt.Errorf("DeleteTag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteTag: %w", ErrNotFound)
	}
	return nil
}

// IsTagAttached reports whether the mapping row exists. The mapping table
// has no unique constraint, so this check is the idempotency guard.
func IsTagAttached(ctx context.Context, q database.Querier, courseID, tagID int) (bool, error) {
	row := q.QueryRow(ctx,
		`SELECT count(*) FROM course_tag_mapping
		 WHERE courses_course_id = $1 AND course_tags_tag_id = $2`,
		courseID,
		tagID,
	)
	var n int
	if err := row.Scan(&n); err != nil {
		return false, fmt.Errorf("IsTagAttached: %w", err)
	}
	return n > 0, nil
}

func AttachTag(ctx context.Context, q database.Querier, courseID, tagID int) error {
	_, err := q.Exec(ctx,
		`INSERT INTO course_tag_mapping (courses_course_id, course_tags_tag_id) VALUES ($1, $2)`,
		courseID,
		tagID,
	)
	if err != nil {
		return fmt.Errorf("AttachTag: %w", err)
	}
	return nil
}

func DetachTag(ctx context.Context, q database.Querier, courseID, tagID int) error {
	tag, err := q.Exec(ctx,
		`DELETE FROM course_tag_mapping
		 WHERE courses_course_id = $1 AND course_tags_tag_id = $2`,
		courseID,
		tagID,
	)
	if err != nil {
		return fmt.Errorf("DetachTag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DetachTag: %w", ErrConflict)
	}
	return nil
}

// DetachAllForTag clears a tag's mappings ahead of deleting the tag.
func DetachAllForTag(ctx context.Context, q database.Querier, tagID int) error {
	_, err := q.Exec(ctx,
		`DELETE FROM course_tag_mapping WHERE course_tags_tag_id = $1`,
		tagID,
	)
	if err != nil {
		return fmt.Errorf("DetachAllForTag: %w", err)
	}
	return nil
}

// DetachAllForCourse clears a course's mappings ahead of deleting the
// course.
func DetachAllForCourse(ctx context.Context, q database.Querier, courseID int) error {
	_, err := q.Exec(ctx,
		`DELETE FROM course_tag_mapping WHERE courses_course_id = $1`,
		courseID,
	)
	if err != nil {
		return fmt.Errorf("DetachAllForCourse: %w", err)
	}
	return nil
}

func ListTagsForCourse(ctx context.Context, q database.Querier, courseID int) ([]model.Tag, error) {
	rows, err := q.Query(ctx,
		`SELECT t.tag_id, t.tag_name
		 FROM course_tags t
		 JOIN course_tag_mapping m ON t.tag_id = m.course_tags_tag_id
		 WHERE m.courses_course_id = $1
		 ORDER BY t.tag_id`,
		courseID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListTagsForCourse: %w", err)
	}
	defer rows.Close()

	var out []model.Tag
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("ListTagsForCourse: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListTagsForCourse: %w", err)
	}
	return out, nil
}
