package store

import (
	"context"
	"fmt"

	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/database"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/model"
)

func CreateSection(ctx context.Context, q database.Querier, s *model.Section) (*model.Section, error) {
	row := q.QueryRow(ctx,
		`INSERT INTO sections (title, content, description, external_resource, course_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING section_id`,
		s.Title,
		s.Content,
		s.Description,
		s.ExternalResource,
		s.CourseID,
	)
	if err := row.Scan(&s.ID); err != nil {
		return nil, fmt.Errorf("CreateSection: %w", err)
	}
	return s, nil
}

func GetSectionByID(ctx context.Context, q database.Querier, sectionID int) (*model.Section, error) {
	row := q.QueryRow(ctx,
		`SELECT section_id, title, content, description, external_resource, course_id
		 FROM sections WHERE section_id = $1`,
		sectionID,
	)
	s := &model.Section{}
	if err := row.Scan(
		&s.ID,
		&s.Title,
		&s.Content,
		&s.Description,
		&s.ExternalResource,
		&s.CourseID,
	); err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("GetSectionByID: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetSectionByID: %w", err)
	}
	return s, nil
}

// ListSectionsByCourse returns a course's sections ordered by section id,
// descending when sortDesc is set, optionally filtered by a
// case-insensitive title substring.
func ListSectionsByCourse(ctx context.Context, q database.Querier, courseID int, title string, sortDesc bool) ([]model.Section, error) {
	order := "ASC"
	if sortDesc {
		order = "DESC"
	}
	rows, err := q.Query(ctx,
		`SELECT section_id, title, content, description, external_resource, course_id
		 FROM sections
		 WHERE course_id = $1 AND title ILIKE '%' || $2 || '%'
		 ORDER BY section_id `+order,
		courseID,
		title,
	)
	if err != nil {
		return nil, fmt.Errorf("ListSectionsByCourse: %w", err)
	}
	defer rows.Close()

	var out []model.Section
	for rows.Next() {
		var s model.Section
		if err := rows.Scan(
			&s.ID,
			&s.Title,
			&s.Content,
			&s.Description,
			&s.ExternalResource,
			&s.CourseID,
		); err != nil {
			return nil, fmt.Errorf("ListSectionsByCourse: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListSectionsByCourse: %w", err)
	}
	return out, nil
}

// UpdateSection is a full field replace, matching the update payload.
func UpdateSection(ctx context.Context, q database.Querier, s *model.Section) error {
	tag, err := q.Exec(ctx,
		`UPDATE sections
		 SET title = $1, content = $2, description = $3, external_resource = $4
		 WHERE section_id = $5`,
		s.Title,
		s.Content,
		s.Description,
		s.ExternalResource,
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateSection: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateSection: %w", ErrNotFound)
	}
	return nil
}

func DeleteSection(ctx context.Context, q database.Querier, sectionID int) error {
	tag, err := q.Exec(ctx,
		`DELETE FROM sections WHERE section_id = $1`,
		sectionID,
	)
	if err != nil {
		return fmt.Errorf("DeleteSection: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteSection: %w", ErrNotFound)
	}
	return nil
}

// DeleteSectionsByCourse removes all child sections ahead of a course
// delete (the schema has no cascading deletes).
func DeleteSectionsByCourse(ctx context.Context, q database.Querier, courseID int) error {
	_, err := q.Exec(ctx,
		`DELETE FROM sections WHERE course_id = $1`,
		courseID,
	)
	if err != nil {
		return fmt.Errorf("DeleteSectionsByCourse: %w", err)
	}
	return nil
}
