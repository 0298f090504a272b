package pgx

import (
	"context"
	"errors"

	"github.com/open-dossier/archive/backend/pkg/common"

	"github.com/jackc/pgx/v5"
)

const entityColumns = `
	id,
	name,
	type,
	COALESCE(role, ''),
	COALESCE(description, ''),
	red_flag_rating,
	mention_count
`

func scanEntity(row pgx.Row) (common.Entity, error) {
	var e common.Entity
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Type,
		&e.Role,
		&e.Description,
		&e.RedFlagRating,
		&e.MentionCount,
	)
	return e, err
}

// GetEntity returns the entity with the given id, or nil if it does not
// exist. Absence is not an error.
func (s *ArchiveStorage) GetEntity(ctx context.Context, id int64) (*common.Entity, error) {
	row := s.conn.QueryRow(ctx, `
		SELECT `+entityColumns+`
		FROM entities
		WHERE id = $1
	`, id)

	e, err := scanEntity(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetEntitiesByIDs returns the entities matching the given ids, ordered by id.
func (s *ArchiveStorage) GetEntitiesByIDs(ctx context.Context, ids []int64) ([]common.Entity, error) {
	if len(ids) == 0 {
		return []common.Entity{}, nil
	}

	rows, err := s.conn.Query(ctx, `
		SELECT `+entityColumns+`
		FROM entities
		WHERE id = ANY($1)
		ORDER BY id
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEntities(rows)
}

// ListEntities returns every entity in the corpus, ordered by id.
func (s *ArchiveStorage) ListEntities(ctx context.Context) ([]common.Entity, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT `+entityColumns+`
		FROM entities
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEntities(rows)
}

// ListEntitiesByType returns every entity of the given type, ordered by id.
func (s *ArchiveStorage) ListEntitiesByType(ctx context.Context, entityType string) ([]common.Entity, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT `+entityColumns+`
		FROM entities
		WHERE type = $1
		ORDER BY id
	`, entityType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEntities(rows)
}

func collectEntities(rows pgx.Rows) ([]common.Entity, error) {
	entities := make([]common.Entity, 0)
	for rows.Next() {
		e, err := scanEntity(rows)
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entities, nil
}
