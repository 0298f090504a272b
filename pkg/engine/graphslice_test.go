package engine

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/open-dossier/archive/backend/pkg/common"
)

// E1 connects to E2 and E3, E2 connects onward to E4.
func sliceFixture() *memStore {
	ts := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return &memStore{
		entities: []common.Entity{
			{ID: 1, Name: "E1", Type: "person"},
			{ID: 2, Name: "E2", Type: "person"},
			{ID: 3, Name: "E3", Type: "person"},
			{ID: 4, Name: "E4", Type: "organization"},
		},
		edges: []common.Edge{
			{ID: 100, SourceID: 1, TargetID: 2, Type: "flight", Weight: 3, Confidence: 1, Timestamp: ts},
			{ID: 101, SourceID: 1, TargetID: 3, Type: "correspondence", Weight: 1, Confidence: 1, Timestamp: ts},
			{ID: 102, SourceID: 2, TargetID: 4, Type: "flight", Weight: 5, Confidence: 1, Timestamp: ts},
		},
	}
}

func nodeIDs(slice *common.GraphSlice) []int64 {
	ids := make([]int64, 0, len(slice.Nodes))
	for _, n := range slice.Nodes {
		ids = append(ids, n.ID)
	}
	return ids
}

func edgeIDs(slice *common.GraphSlice) []int64 {
	ids := make([]int64, 0, len(slice.Edges))
	for _, e := range slice.Edges {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestGraphSlice_DepthLevels(t *testing.T) {
	slicer := NewSlicer(sliceFixture(), 0)
	ctx := context.Background()

	t.Run("depth_0_is_seed_only", func(t *testing.T) {
		slice, err := slicer.GraphSlice(ctx, 1, 0, common.RelationshipFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(nodeIDs(slice), []int64{1}) || len(slice.Edges) != 0 {
			t.Fatalf("depth 0 should return just the seed, got nodes=%v edges=%v", nodeIDs(slice), edgeIDs(slice))
		}
	})

	t.Run("depth_1", func(t *testing.T) {
		slice, err := slicer.GraphSlice(ctx, 1, 1, common.RelationshipFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(nodeIDs(slice), []int64{1, 2, 3}) {
			t.Fatalf("depth 1 nodes = %v, want [1 2 3]", nodeIDs(slice))
		}
		if !reflect.DeepEqual(edgeIDs(slice), []int64{100, 101}) {
			t.Fatalf("depth 1 edges = %v, want [100 101]", edgeIDs(slice))
		}
	})

	t.Run("depth_2_adds_next_ring", func(t *testing.T) {
		slice, err := slicer.GraphSlice(ctx, 1, 2, common.RelationshipFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(nodeIDs(slice), []int64{1, 2, 3, 4}) {
			t.Fatalf("depth 2 nodes = %v, want [1 2 3 4]", nodeIDs(slice))
		}
		if !reflect.DeepEqual(edgeIDs(slice), []int64{100, 101, 102}) {
			t.Fatalf("depth 2 edges = %v, want [100 101 102]", edgeIDs(slice))
		}
	})
}

func TestGraphSlice_MonotonicDepth(t *testing.T) {
	slicer := NewSlicer(sliceFixture(), 0)
	ctx := context.Background()

	var previous map[int64]bool
	for depth := 0; depth <= 3; depth++ {
		slice, err := slicer.GraphSlice(ctx, 1, depth, common.RelationshipFilter{})
		if err != nil {
			t.Fatalf("depth %d: unexpected error: %v", depth, err)
		}
		current := make(map[int64]bool)
		for _, id := range nodeIDs(slice) {
			current[id] = true
		}
		for id := range previous {
			if !current[id] {
				t.Fatalf("node %d present at depth %d but missing at depth %d", id, depth-1, depth)
			}
		}
		previous = current
	}
}

func TestGraphSlice_Determinism(t *testing.T) {
	slicer := NewSlicer(sliceFixture(), 0)
	ctx := context.Background()

	first, err := slicer.GraphSlice(ctx, 1, 2, common.RelationshipFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := slicer.GraphSlice(ctx, 1, 2, common.RelationshipFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("repeated call diverged:\nfirst: %+v\nagain: %+v", first, again)
		}
	}
}

func TestGraphSlice_MissingSeedIsEmpty(t *testing.T) {
	slicer := NewSlicer(sliceFixture(), 0)

	slice, err := slicer.GraphSlice(context.Background(), 999, 3, common.RelationshipFilter{})
	if err != nil {
		t.Fatalf("missing seed must not be an error, got %v", err)
	}
	if len(slice.Nodes) != 0 || len(slice.Edges) != 0 {
		t.Fatalf("expected empty slice for missing seed, got nodes=%v edges=%v", nodeIDs(slice), edgeIDs(slice))
	}
}

func TestGraphSlice_DepthCeilingClamped(t *testing.T) {
	slicer := NewSlicer(sliceFixture(), 2)

	slice, err := slicer.GraphSlice(context.Background(), 1, 50, common.RelationshipFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Depth 2 already reaches the whole fixture; the point is that an
	// absurd requested depth neither errors nor loops.
	if !reflect.DeepEqual(nodeIDs(slice), []int64{1, 2, 3, 4}) {
		t.Fatalf("clamped slice nodes = %v, want [1 2 3 4]", nodeIDs(slice))
	}
}

func TestGraphSlice_CycleEdgesRecordedOnce(t *testing.T) {
	store := sliceFixture()
	// Close the triangle: an edge back into an already-visited node must
	// be recorded without re-expanding the node.
	ts := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	store.edges = append(store.edges, common.Edge{
		ID: 103, SourceID: 3, TargetID: 2, Type: "correspondence", Weight: 2, Confidence: 1, Timestamp: ts,
	})
	slicer := NewSlicer(store, 0)

	slice, err := slicer.GraphSlice(context.Background(), 1, 2, common.RelationshipFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(edgeIDs(slice), []int64{100, 101, 102, 103}) {
		t.Fatalf("edges = %v, want [100 101 102 103]", edgeIDs(slice))
	}
	if !reflect.DeepEqual(nodeIDs(slice), []int64{1, 2, 3, 4}) {
		t.Fatalf("nodes = %v, want [1 2 3 4]", nodeIDs(slice))
	}
}
