package engine

import (
	"context"
	"sort"

	"github.com/open-dossier/archive/backend/pkg/common"
	"github.com/open-dossier/archive/backend/pkg/store/base"
)

// DefaultMaxGraphDepth is the hard cap on traversal depth. Very high-degree
// seeds make deeper slices unboundedly expensive, so the cap is enforced
// regardless of what the caller asks for.
const DefaultMaxGraphDepth = 4

// Slicer extracts a bounded-depth subgraph around a seed entity for
// visualization.
type Slicer struct {
	store    base.ArchiveStore
	maxDepth int
}

// NewSlicer creates a slicer over the given store. maxDepth <= 0 falls
// back to DefaultMaxGraphDepth.
func NewSlicer(store base.ArchiveStore, maxDepth int) *Slicer {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxGraphDepth
	}
	return &Slicer{
		store:    store,
		maxDepth: maxDepth,
	}
}

// MaxDepth returns the enforced depth ceiling.
func (s *Slicer) MaxDepth() int {
	return s.maxDepth
}

// GraphSlice expands breadth-first from the seed for up to depth levels and
// returns the visited nodes and every edge seen along the way. Edges into
// already-visited nodes are recorded (they are real connectivity) but do
// not re-expand the node. Depth 0 returns just the seed; depths above the
// ceiling are clamped to it.
//
// Node and edge ordering is stable by id, so identical inputs over
// identical data produce byte-identical output. That makes the response
// cache a valid memoization of this call.
//
// A nonexistent seed yields an empty slice, not an error: callers treat it
// as "nothing to show".
func (s *Slicer) GraphSlice(
	ctx context.Context,
	seedID int64,
	depth int,
	filter common.RelationshipFilter,
) (*common.GraphSlice, error) {
	if depth > s.maxDepth {
		depth = s.maxDepth
	}
	if depth < 0 {
		depth = 0
	}

	seed, err := s.store.GetEntity(ctx, seedID)
	if err != nil {
		return nil, err
	}
	if seed == nil {
		return &common.GraphSlice{
			Nodes: []common.Entity{},
			Edges: []common.Edge{},
		}, nil
	}

	visited := map[int64]bool{seedID: true}
	frontier := []int64{seedID}

	edgeSeen := make(map[int64]bool)
	edges := make([]common.Edge, 0)

	for level := 0; level < depth && len(frontier) > 0; level++ {
		incident, err := s.store.EdgesForEntities(ctx, frontier)
		if err != nil {
			return nil, err
		}

		next := make([]int64, 0)
		for _, edge := range incident {
			if !filter.Matches(edge) {
				continue
			}
			if !edgeSeen[edge.ID] {
				edgeSeen[edge.ID] = true
				edges = append(edges, edge)
			}
			for _, endpoint := range []int64{edge.SourceID, edge.TargetID} {
				if !visited[endpoint] {
					visited[endpoint] = true
					next = append(next, endpoint)
				}
			}
		}
		frontier = next
	}

	nodeIDs := make([]int64, 0, len(visited))
	for id := range visited {
		nodeIDs = append(nodeIDs, id)
	}
	sort.Slice(nodeIDs, func(i, j int) bool { return nodeIDs[i] < nodeIDs[j] })

	nodes, err := s.store.GetEntitiesByIDs(ctx, nodeIDs)
	if err != nil {
		return nil, err
	}
	// Counterparts discovered through orphaned edges have no entity row;
	// GetEntitiesByIDs drops them, which is the desired shape.
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	sort.Slice(edges, func(i, j int) bool { return edges[i].ID < edges[j].ID })

	return &common.GraphSlice{
		Nodes: nodes,
		Edges: edges,
	}, nil
}
