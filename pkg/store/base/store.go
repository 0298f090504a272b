package base

import (
	"context"

	"github.com/open-dossier/archive/backend/pkg/common"
)

// ArchiveStore is the read-only view of the relational store the scoring
// engine computes over. Implementations translate raw rows into the typed
// records in pkg/common exactly once, at this boundary.
//
// Lookups for ids that do not exist return empty results, not errors:
// absence is a valid, common state for this analytics surface. Only real
// store failures (connection, query errors) surface as errors, and those
// bubble untouched to the HTTP boundary.
type ArchiveStore interface {
	// GetEntity returns the entity with the given id, or nil if no such
	// entity exists.
	GetEntity(ctx context.Context, id int64) (*common.Entity, error)

	// GetEntitiesByIDs returns the entities matching the given ids.
	// Missing ids are simply absent from the result.
	GetEntitiesByIDs(ctx context.Context, ids []int64) ([]common.Entity, error)

	// ListEntities returns every entity in the corpus.
	ListEntities(ctx context.Context) ([]common.Entity, error)

	// ListEntitiesByType returns every entity of the given type.
	ListEntitiesByType(ctx context.Context, entityType string) ([]common.Entity, error)

	// EdgesForEntities returns every edge touching any of the given
	// entities as either endpoint. Graph traversal calls this once per
	// BFS frontier level.
	EdgesForEntities(ctx context.Context, ids []int64) ([]common.Edge, error)

	// ListEdges returns every relationship edge in the corpus.
	ListEdges(ctx context.Context) ([]common.Edge, error)

	// MentionsForEntity returns the mentions of one entity, each carrying
	// the evidence type of the document it came from.
	MentionsForEntity(ctx context.Context, entityID int64) ([]common.Mention, error)

	// ListMentions returns every mention in the corpus, including
	// orphaned ones whose entity no longer exists.
	ListMentions(ctx context.Context) ([]common.Mention, error)

	// ListDocuments returns every document in the corpus.
	ListDocuments(ctx context.Context) ([]common.Document, error)
}
