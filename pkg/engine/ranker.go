package engine

import (
	"context"
	"sort"

	"github.com/open-dossier/archive/backend/pkg/common"
	"github.com/open-dossier/archive/backend/pkg/store/base"
)

// DefaultRankEntityType restricts the connectivity ranking to people. The
// product ranks people by network centrality, not organizations or
// locations; the restriction is a named parameter rather than a hardcode
// so it can be revisited without touching the algorithm.
const DefaultRankEntityType = "person"

// Ranker produces the corpus-wide connectivity ranking.
type Ranker struct {
	store base.ArchiveStore
}

// NewRanker creates a ranker over the given store.
func NewRanker(store base.ArchiveStore) *Ranker {
	return &Ranker{
		store: store,
	}
}

// TopConnected returns up to limit entities of the given type ranked by
// incident-edge count. An edge where source equals target counts once.
// Ordering is total: connectivity descending, then mention count
// descending, then id ascending, so pagination via limit is stable.
//
// An empty entityType falls back to DefaultRankEntityType.
func (r *Ranker) TopConnected(
	ctx context.Context,
	limit int,
	entityType string,
) ([]common.RankedEntity, error) {
	if entityType == "" {
		entityType = DefaultRankEntityType
	}

	entities, err := r.store.ListEntitiesByType(ctx, entityType)
	if err != nil {
		return nil, err
	}

	edges, err := r.store.ListEdges(ctx)
	if err != nil {
		return nil, err
	}

	connectivity := make(map[int64]int)
	for _, edge := range edges {
		connectivity[edge.SourceID]++
		if edge.TargetID != edge.SourceID {
			connectivity[edge.TargetID]++
		}
	}

	ranked := make([]common.RankedEntity, 0, len(entities))
	for _, e := range entities {
		ranked = append(ranked, common.RankedEntity{
			ID:            e.ID,
			Name:          e.Name,
			Type:          e.Type,
			Role:          e.Role,
			RedFlagRating: e.RedFlagRating,
			MentionCount:  e.MentionCount,
			Connectivity:  connectivity[e.ID],
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Connectivity != ranked[j].Connectivity {
			return ranked[i].Connectivity > ranked[j].Connectivity
		}
		if ranked[i].MentionCount != ranked[j].MentionCount {
			return ranked[i].MentionCount > ranked[j].MentionCount
		}
		return ranked[i].ID < ranked[j].ID
	})

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
