package pgx

import (
	"context"

	"github.com/open-dossier/archive/backend/pkg/common"

	"github.com/jackc/pgx/v5"
)

const edgeColumns = `
	id,
	source_id,
	target_id,
	type,
	weight,
	confidence,
	created_at
`

func scanEdge(row pgx.Row) (common.Edge, error) {
	var e common.Edge
	err := row.Scan(
		&e.ID,
		&e.SourceID,
		&e.TargetID,
		&e.Type,
		&e.Weight,
		&e.Confidence,
		&e.Timestamp,
	)
	return e, err
}

// EdgesForEntities returns every edge where any of the given entities is
// source or target, ordered by id. The graph slicer calls this once per
// BFS frontier level, so traversal cost scales with depth rather than
// corpus size.
func (s *ArchiveStorage) EdgesForEntities(ctx context.Context, ids []int64) ([]common.Edge, error) {
	if len(ids) == 0 {
		return []common.Edge{}, nil
	}

	rows, err := s.conn.Query(ctx, `
		SELECT `+edgeColumns+`
		FROM relationships
		WHERE source_id = ANY($1) OR target_id = ANY($1)
		ORDER BY id
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEdges(rows)
}

// ListEdges returns every relationship edge in the corpus, ordered by id.
func (s *ArchiveStorage) ListEdges(ctx context.Context) ([]common.Edge, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT `+edgeColumns+`
		FROM relationships
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEdges(rows)
}

func collectEdges(rows pgx.Rows) ([]common.Edge, error) {
	edges := make([]common.Edge, 0)
	for rows.Next() {
		e, err := scanEdge(rows)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return edges, nil
}
