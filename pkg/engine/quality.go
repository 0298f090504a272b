package engine

import (
	"context"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/open-dossier/archive/backend/pkg/common"
	"github.com/open-dossier/archive/backend/pkg/store/base"

	"golang.org/x/sync/errgroup"
)

// QualityConfig holds the auditor's tuned constants. The coefficients and
// the junk-name word list have no derivation beyond tuning against the
// corpus, so they are configuration, not algorithmic truth; Version tags
// the tuning so quality scores stay comparable across snapshots.
type QualityConfig struct {
	// JunkWeight is how many points the score loses when every entity is
	// junk. Junk entities hurt trust more than orphaned references.
	JunkWeight float64

	// OrphanWeight is how many points the score loses when the orphaned
	// mention count equals the document count.
	OrphanWeight float64

	// JunkPrefixes are function words that real names never start with;
	// a name beginning with one of these followed by a space is an
	// extraction artifact.
	JunkPrefixes []string

	// Version tags this tuning of the heuristics.
	Version string
}

// DefaultQualityConfig returns the current tuning of the audit heuristics.
func DefaultQualityConfig() QualityConfig {
	return QualityConfig{
		JunkWeight:   50,
		OrphanWeight: 30,
		JunkPrefixes: []string{
			"The ", "And ", "Of ", "A ", "An ", "In ", "On ", "At ",
			"To ", "For ", "With ", "From ", "That ", "This ", "But ",
			"However ", "Also ", "Or ",
		},
		Version: "2025.1",
	}
}

// EntityQualityMetrics describes the completeness of the entity records.
type EntityQualityMetrics struct {
	TotalEntities          int     `json:"total_entities"`
	LikelyJunk             int     `json:"likely_junk"`
	RoleCoverage           float64 `json:"role_coverage"`
	DescriptionCoverage    float64 `json:"description_coverage"`
	MentionedWithoutRating int     `json:"mentioned_without_rating"`
}

// DataIntegrityMetrics counts dangling references across the corpus.
type DataIntegrityMetrics struct {
	TotalDocuments   int `json:"total_documents"`
	TotalMentions    int `json:"total_mentions"`
	OrphanedMentions int `json:"orphaned_mentions"`
	OrphanedEdges    int `json:"orphaned_edges"`
}

// DataQualityMetrics is the auditor's corpus-wide report. The junk and
// orphan counts come from lossy, precision-biased heuristics: the output
// is advisory and must never drive automated deletion.
type DataQualityMetrics struct {
	QualityScore            float64              `json:"quality_score"`
	HeuristicsVersion       string               `json:"heuristics_version"`
	ProvenanceCoverage      float64              `json:"provenance_coverage"`
	DocumentsByCollection   map[string]int       `json:"documents_by_collection"`
	DocumentsByEvidenceType map[string]int       `json:"documents_by_evidence_type"`
	EntityQuality           EntityQualityMetrics `json:"entity_quality"`
	DataIntegrity           DataIntegrityMetrics `json:"data_integrity"`
}

// Auditor runs the corpus-wide data-quality scan.
type Auditor struct {
	store  base.ArchiveStore
	config QualityConfig
}

// NewAuditor creates an auditor over the given store with the given tuning.
func NewAuditor(store base.ArchiveStore, config QualityConfig) *Auditor {
	if config.Version == "" {
		config = DefaultQualityConfig()
	}
	return &Auditor{
		store:  store,
		config: config,
	}
}

// DataQualityMetrics scans the whole corpus as of now and rolls the
// findings into a single composite score:
//
//	100 - JunkWeight*junkRatio - OrphanWeight*orphanRatio, clamped to [0,100]
//
// where junkRatio is the share of entities flagged by the junk-name
// heuristic and orphanRatio is orphaned mentions over max(1, documents).
func (a *Auditor) DataQualityMetrics(ctx context.Context) (*DataQualityMetrics, error) {
	var (
		entities  []common.Entity
		documents []common.Document
		mentions  []common.Mention
		edges     []common.Edge
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entities, err = a.store.ListEntities(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		documents, err = a.store.ListDocuments(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		mentions, err = a.store.ListMentions(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		edges, err = a.store.ListEdges(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entityIDs := make(map[int64]bool, len(entities))
	junk := 0
	withRole := 0
	withDescription := 0
	mentionedWithoutRating := 0
	for _, e := range entities {
		entityIDs[e.ID] = true
		if a.isLikelyJunkName(e.Name) {
			junk++
		}
		if e.Role != "" {
			withRole++
		}
		if e.Description != "" {
			withDescription++
		}
		if e.MentionCount > 0 && e.RedFlagRating == nil {
			mentionedWithoutRating++
		}
	}

	orphanedMentions := 0
	for _, m := range mentions {
		if !entityIDs[m.EntityID] {
			orphanedMentions++
		}
	}

	orphanedEdges := 0
	for _, e := range edges {
		if !entityIDs[e.SourceID] || !entityIDs[e.TargetID] {
			orphanedEdges++
		}
	}

	withProvenance := 0
	byCollection := make(map[string]int)
	byEvidenceType := make(map[string]int)
	for _, d := range documents {
		if d.HasProvenance {
			withProvenance++
		}
		if d.SourceCollection != "" {
			byCollection[d.SourceCollection]++
		}
		byEvidenceType[d.EvidenceType]++
	}

	junkRatio := 0.0
	if len(entities) > 0 {
		junkRatio = float64(junk) / float64(len(entities))
	}
	orphanRatio := float64(orphanedMentions) / math.Max(1, float64(len(documents)))

	score := 100 - a.config.JunkWeight*junkRatio - a.config.OrphanWeight*orphanRatio
	score = math.Min(100, math.Max(0, score))

	provenanceCoverage := 0.0
	if len(documents) > 0 {
		provenanceCoverage = float64(withProvenance) / float64(len(documents))
	}

	roleCoverage := 0.0
	descriptionCoverage := 0.0
	if len(entities) > 0 {
		roleCoverage = float64(withRole) / float64(len(entities))
		descriptionCoverage = float64(withDescription) / float64(len(entities))
	}

	return &DataQualityMetrics{
		QualityScore:            math.Round(score*10) / 10,
		HeuristicsVersion:       a.config.Version,
		ProvenanceCoverage:      provenanceCoverage,
		DocumentsByCollection:   byCollection,
		DocumentsByEvidenceType: byEvidenceType,
		EntityQuality: EntityQualityMetrics{
			TotalEntities:          len(entities),
			LikelyJunk:             junk,
			RoleCoverage:           roleCoverage,
			DescriptionCoverage:    descriptionCoverage,
			MentionedWithoutRating: mentionedWithoutRating,
		},
		DataIntegrity: DataIntegrityMetrics{
			TotalDocuments:   len(documents),
			TotalMentions:    len(mentions),
			OrphanedMentions: orphanedMentions,
			OrphanedEdges:    orphanedEdges,
		},
	}, nil
}

// isLikelyJunkName flags names that are extraction artifacts rather than
// real names. The filter is precision-biased: it under-flags on purpose,
// since it feeds a score rather than a delete action.
func (a *Auditor) isLikelyJunkName(name string) bool {
	if utf8.RuneCountInString(name) <= 2 {
		return true
	}
	first, _ := utf8.DecodeRuneInString(name)
	if unicode.IsDigit(first) {
		return true
	}
	for _, prefix := range a.config.JunkPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
