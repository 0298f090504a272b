package pgx

import (
	"context"

	"github.com/open-dossier/archive/backend/pkg/common"
)

// ListDocuments returns every document in the corpus, ordered by id.
// Provenance is a nullable metadata column; the auditor only needs to know
// whether it is present.
func (s *ArchiveStorage) ListDocuments(ctx context.Context) ([]common.Document, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT
			id,
			title,
			evidence_type,
			COALESCE(source_collection, ''),
			provenance IS NOT NULL,
			created_at
		FROM documents
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	documents := make([]common.Document, 0)
	for rows.Next() {
		var d common.Document
		err := rows.Scan(
			&d.ID,
			&d.Title,
			&d.EvidenceType,
			&d.SourceCollection,
			&d.HasProvenance,
			&d.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		documents = append(documents, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return documents, nil
}
