package engine

import (
	"context"
	"math"
	"testing"

	"github.com/open-dossier/archive/backend/pkg/common"
)

func TestIsLikelyJunkName(t *testing.T) {
	auditor := NewAuditor(&memStore{}, DefaultQualityConfig())

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "short_fragment", input: "Jr", want: true},
		{name: "single_rune", input: "X", want: true},
		{name: "article_prefix", input: "The Island", want: true},
		{name: "conjunction_prefix", input: "And Associates", want: true},
		{name: "discourse_prefix", input: "However Stated", want: true},
		{name: "leading_digit", input: "42nd Street Trust", want: true},
		{name: "ordinary_person", input: "Alma Reyes", want: false},
		{name: "prefix_without_space", input: "Theodore Mills", want: false},
		{name: "three_letter_name", input: "Ali", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := auditor.isLikelyJunkName(tc.input); got != tc.want {
				t.Fatalf("isLikelyJunkName(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestDataQualityMetrics_CompositeScore(t *testing.T) {
	// 4 entities, 1 junk; 2 documents; 1 orphaned mention.
	// score = 100 - 50*(1/4) - 30*(1/2) = 72.5
	store := &memStore{
		entities: []common.Entity{
			{ID: 1, Name: "Alma Reyes", Type: "person"},
			{ID: 2, Name: "Victor Hahn", Type: "person"},
			{ID: 3, Name: "The Island", Type: "location"},
			{ID: 4, Name: "Hollow Point LLC", Type: "organization"},
		},
		documents: []common.Document{
			{ID: 1, Title: "Deposition", EvidenceType: "testimony", HasProvenance: true, SourceCollection: "court"},
			{ID: 2, Title: "Ledger", EvidenceType: "financial_record", SourceCollection: "leak"},
		},
		mentions: []common.Mention{
			{EntityID: 1, DocumentID: 1, EvidenceType: "testimony"},
			{EntityID: 999, DocumentID: 2, EvidenceType: "financial_record"},
		},
	}
	auditor := NewAuditor(store, DefaultQualityConfig())

	metrics, err := auditor.DataQualityMetrics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if metrics.QualityScore != 72.5 {
		t.Fatalf("quality score = %v, want 72.5", metrics.QualityScore)
	}
	if metrics.EntityQuality.LikelyJunk != 1 {
		t.Fatalf("likely junk = %d, want 1", metrics.EntityQuality.LikelyJunk)
	}
	if metrics.DataIntegrity.OrphanedMentions != 1 {
		t.Fatalf("orphaned mentions = %d, want 1", metrics.DataIntegrity.OrphanedMentions)
	}
	if metrics.ProvenanceCoverage != 0.5 {
		t.Fatalf("provenance coverage = %v, want 0.5", metrics.ProvenanceCoverage)
	}
	if metrics.DocumentsByCollection["court"] != 1 || metrics.DocumentsByCollection["leak"] != 1 {
		t.Fatalf("documents by collection = %v", metrics.DocumentsByCollection)
	}
	if metrics.DocumentsByEvidenceType["testimony"] != 1 {
		t.Fatalf("documents by evidence type = %v", metrics.DocumentsByEvidenceType)
	}
	if metrics.HeuristicsVersion == "" {
		t.Fatal("metrics must carry the heuristics version")
	}
}

func TestDataQualityMetrics_BoundsAtExtremes(t *testing.T) {
	t.Run("empty_corpus", func(t *testing.T) {
		auditor := NewAuditor(&memStore{}, DefaultQualityConfig())
		metrics, err := auditor.DataQualityMetrics(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if metrics.QualityScore != 100 {
			t.Fatalf("empty corpus should score 100, got %v", metrics.QualityScore)
		}
	})

	t.Run("all_junk_zero_documents", func(t *testing.T) {
		store := &memStore{
			entities: []common.Entity{
				{ID: 1, Name: "X", Type: "person"},
				{ID: 2, Name: "7", Type: "person"},
			},
			mentions: []common.Mention{
				{EntityID: 900, DocumentID: 1},
				{EntityID: 901, DocumentID: 1},
				{EntityID: 902, DocumentID: 1},
			},
		}
		metrics, err := NewAuditor(store, DefaultQualityConfig()).DataQualityMetrics(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// junkRatio 1 costs 50; orphanRatio 3/max(1,0)=3 would cost 90;
		// the clamp keeps the score at the floor.
		if metrics.QualityScore != 0 {
			t.Fatalf("worst case must clamp to 0, got %v", metrics.QualityScore)
		}
		if metrics.QualityScore < 0 || metrics.QualityScore > 100 {
			t.Fatalf("score %v outside [0,100]", metrics.QualityScore)
		}
	})
}

func TestDataQualityMetrics_EntityCompleteness(t *testing.T) {
	rating := int32(2)
	store := &memStore{
		entities: []common.Entity{
			{ID: 1, Name: "Alma Reyes", Type: "person", Role: "pilot", Description: "Flew the route", RedFlagRating: &rating, MentionCount: 3},
			{ID: 2, Name: "Victor Hahn", Type: "person", MentionCount: 5},
			{ID: 3, Name: "Nora Quist", Type: "person"},
			{ID: 4, Name: "Ed Marsh", Type: "person", Role: "counsel"},
		},
	}
	metrics, err := NewAuditor(store, DefaultQualityConfig()).DataQualityMetrics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if metrics.EntityQuality.RoleCoverage != 0.5 {
		t.Fatalf("role coverage = %v, want 0.5", metrics.EntityQuality.RoleCoverage)
	}
	if metrics.EntityQuality.DescriptionCoverage != 0.25 {
		t.Fatalf("description coverage = %v, want 0.25", metrics.EntityQuality.DescriptionCoverage)
	}
	// Only entity 2 has mentions without a rating; 3 has neither.
	if metrics.EntityQuality.MentionedWithoutRating != 1 {
		t.Fatalf("mentioned without rating = %d, want 1", metrics.EntityQuality.MentionedWithoutRating)
	}
}

func TestDataQualityMetrics_OrphanedEdges(t *testing.T) {
	store := &memStore{
		entities: []common.Entity{
			{ID: 1, Name: "Alma Reyes", Type: "person"},
			{ID: 2, Name: "Victor Hahn", Type: "person"},
		},
		edges: []common.Edge{
			{ID: 1, SourceID: 1, TargetID: 2, Type: "travel"},
			{ID: 2, SourceID: 1, TargetID: 404, Type: "travel"},
			{ID: 3, SourceID: 404, TargetID: 405, Type: "travel"},
		},
	}
	metrics, err := NewAuditor(store, DefaultQualityConfig()).DataQualityMetrics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if metrics.DataIntegrity.OrphanedEdges != 2 {
		t.Fatalf("orphaned edges = %d, want 2", metrics.DataIntegrity.OrphanedEdges)
	}
}

func TestQualityConfig_CoefficientsAreConfiguration(t *testing.T) {
	cfg := DefaultQualityConfig()
	cfg.JunkWeight = 100
	cfg.OrphanWeight = 0
	cfg.Version = "test"

	store := &memStore{
		entities: []common.Entity{
			{ID: 1, Name: "X", Type: "person"},
			{ID: 2, Name: "Alma Reyes", Type: "person"},
		},
	}
	metrics, err := NewAuditor(store, cfg).DataQualityMetrics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(metrics.QualityScore-50) > 1e-9 {
		t.Fatalf("score with junk weight 100 = %v, want 50", metrics.QualityScore)
	}
	if metrics.HeuristicsVersion != "test" {
		t.Fatalf("heuristics version = %q, want test", metrics.HeuristicsVersion)
	}
}
