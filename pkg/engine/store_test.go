package engine

import (
	"context"
	"sort"

	"github.com/open-dossier/archive/backend/pkg/common"
)

// memStore is an in-memory base.ArchiveStore for engine tests. It mimics
// the pgx adapter's ordering guarantees (everything ordered by id).
type memStore struct {
	entities  []common.Entity
	edges     []common.Edge
	mentions  []common.Mention
	documents []common.Document
}

func (s *memStore) GetEntity(_ context.Context, id int64) (*common.Entity, error) {
	for _, e := range s.entities {
		if e.ID == id {
			copy := e
			return &copy, nil
		}
	}
	return nil, nil
}

func (s *memStore) GetEntitiesByIDs(_ context.Context, ids []int64) ([]common.Entity, error) {
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make([]common.Entity, 0)
	for _, e := range s.entities {
		if want[e.ID] {
			out = append(out, e)
		}
	}
	sortEntities(out)
	return out, nil
}

func (s *memStore) ListEntities(_ context.Context) ([]common.Entity, error) {
	out := append([]common.Entity(nil), s.entities...)
	sortEntities(out)
	return out, nil
}

func (s *memStore) ListEntitiesByType(_ context.Context, entityType string) ([]common.Entity, error) {
	out := make([]common.Entity, 0)
	for _, e := range s.entities {
		if e.Type == entityType {
			out = append(out, e)
		}
	}
	sortEntities(out)
	return out, nil
}

func (s *memStore) EdgesForEntities(_ context.Context, ids []int64) ([]common.Edge, error) {
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make([]common.Edge, 0)
	for _, e := range s.edges {
		if want[e.SourceID] || want[e.TargetID] {
			out = append(out, e)
		}
	}
	sortEdges(out)
	return out, nil
}

func (s *memStore) ListEdges(_ context.Context) ([]common.Edge, error) {
	out := append([]common.Edge(nil), s.edges...)
	sortEdges(out)
	return out, nil
}

func (s *memStore) MentionsForEntity(_ context.Context, entityID int64) ([]common.Mention, error) {
	out := make([]common.Mention, 0)
	for _, m := range s.mentions {
		if m.EntityID == entityID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *memStore) ListMentions(_ context.Context) ([]common.Mention, error) {
	return append([]common.Mention(nil), s.mentions...), nil
}

func (s *memStore) ListDocuments(_ context.Context) ([]common.Document, error) {
	return append([]common.Document(nil), s.documents...), nil
}

func sortEntities(entities []common.Entity) {
	sort.Slice(entities, func(i, j int) bool { return entities[i].ID < entities[j].ID })
}

func sortEdges(edges []common.Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].ID < edges[j].ID })
}
