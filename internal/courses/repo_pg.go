package courses

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) GetBySkill(ctx context.Context, skill string) (Course, error) {
	const query = `
SELECT id, skill, title, url, created_at
FROM courses
WHERE lower(skill) = lower($1)
LIMIT 1`
	var course Course
	var title sql.NullString
	err := r.DB.QueryRowContext(ctx, query, skill).Scan(
		&course.ID,
		&course.Skill,
		&title,
		&course.URL,
		&course.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Course{}, ErrNoCourse
		}
		return Course{}, err
	}
	if title.Valid {
		course.Title = title.String
	}
	return course, nil
}

func (r *PGRepo) Upsert(ctx context.Context, course Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	const query = `
INSERT INTO courses (id, skill, title, url, created_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT ((lower(skill))) DO UPDATE SET
  title = EXCLUDED.title,
  url = EXCLUDED.url`
	_, err := r.DB.ExecContext(ctx, query,
		course.ID,
		course.Skill,
		nullableString(course.Title),
		course.URL,
	)
	return err
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
