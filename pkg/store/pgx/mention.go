package pgx

import (
	"context"

	"github.com/open-dossier/archive/backend/pkg/common"

	"github.com/jackc/pgx/v5"
)

// Mentions carry the evidence type of the document they come from. The
// join is LEFT so mentions of deleted documents still surface (with an
// empty evidence type, which the scorer weights at the unknown default).
const mentionQuery = `
	SELECT
		m.entity_id,
		m.document_id,
		COALESCE(d.evidence_type, ''),
		COALESCE(m.context_snippet, '')
	FROM entity_mentions m
	LEFT JOIN documents d ON d.id = m.document_id
`

// MentionsForEntity returns every mention of one entity.
func (s *ArchiveStorage) MentionsForEntity(ctx context.Context, entityID int64) ([]common.Mention, error) {
	rows, err := s.conn.Query(ctx, mentionQuery+`
		WHERE m.entity_id = $1
		ORDER BY m.id
	`, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMentions(rows)
}

// ListMentions returns every mention in the corpus, including orphaned
// ones whose entity id no longer resolves.
func (s *ArchiveStorage) ListMentions(ctx context.Context) ([]common.Mention, error) {
	rows, err := s.conn.Query(ctx, mentionQuery+`
		ORDER BY m.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMentions(rows)
}

func collectMentions(rows pgx.Rows) ([]common.Mention, error) {
	mentions := make([]common.Mention, 0)
	for rows.Next() {
		var m common.Mention
		err := rows.Scan(
			&m.EntityID,
			&m.DocumentID,
			&m.EvidenceType,
			&m.ContextSnippet,
		)
		if err != nil {
			return nil, err
		}
		mentions = append(mentions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return mentions, nil
}
