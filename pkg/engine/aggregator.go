package engine

import (
	"context"
	"sort"

	"github.com/open-dossier/archive/backend/pkg/common"
	"github.com/open-dossier/archive/backend/pkg/store/base"
)

// Aggregator collects and filters the incident edges of one entity into a
// normalized, deduplicated relationship list.
type Aggregator struct {
	store base.ArchiveStore
}

// NewAggregator creates an aggregator over the given store.
func NewAggregator(store base.ArchiveStore) *Aggregator {
	return &Aggregator{
		store: store,
	}
}

// Relationships returns the entity's incident edges from the entity's point
// of view, filtered conjunctively by the supplied floors and date window.
//
// Edges where the entity is source or target are both included; each is
// reframed so only the counterpart is carried. If the same counterpart
// appears via multiple edge types every typed edge is kept, but exact
// (counterpart, type) duplicates collapse to the highest-weight instance.
// Results are ordered by weight descending, then counterpart id ascending,
// then type ascending, so repeated calls are deterministic.
//
// A nonexistent entity yields an empty list: absence of relationships is a
// valid, common state, not an error.
func (a *Aggregator) Relationships(
	ctx context.Context,
	entityID int64,
	filter common.RelationshipFilter,
) ([]common.Relationship, error) {
	entity, err := a.store.GetEntity(ctx, entityID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return []common.Relationship{}, nil
	}

	edges, err := a.store.EdgesForEntities(ctx, []int64{entityID})
	if err != nil {
		return nil, err
	}

	type dedupeKey struct {
		counterpart int64
		edgeType    string
	}

	best := make(map[dedupeKey]common.Relationship)
	for _, edge := range edges {
		if !filter.Matches(edge) {
			continue
		}

		counterpart := edge.TargetID
		if edge.TargetID == entityID {
			counterpart = edge.SourceID
		}

		rel := common.Relationship{
			CounterpartID: counterpart,
			Type:          edge.Type,
			Weight:        edge.Weight,
			Confidence:    edge.Confidence,
			Timestamp:     edge.Timestamp,
		}

		key := dedupeKey{counterpart: counterpart, edgeType: edge.Type}
		if existing, ok := best[key]; !ok || rel.Weight > existing.Weight {
			best[key] = rel
		}
	}

	relationships := make([]common.Relationship, 0, len(best))
	for _, rel := range best {
		relationships = append(relationships, rel)
	}

	sort.Slice(relationships, func(i, j int) bool {
		if relationships[i].Weight != relationships[j].Weight {
			return relationships[i].Weight > relationships[j].Weight
		}
		if relationships[i].CounterpartID != relationships[j].CounterpartID {
			return relationships[i].CounterpartID < relationships[j].CounterpartID
		}
		return relationships[i].Type < relationships[j].Type
	})

	return relationships, nil
}
