package engine

import (
	"context"
	"math"

	"github.com/open-dossier/archive/backend/pkg/common"
	"github.com/open-dossier/archive/backend/pkg/store/base"
)

// Reliability weight per evidence type, in [0,1]. Legal filings are taken
// at face value; photos establish presence but little else. Types the
// extractor has not been taught land on the unknown default.
var evidenceWeights = map[string]float64{
	"legal_filing":     1.0,
	"testimony":        0.9,
	"flight_record":    0.85,
	"financial_record": 0.8,
	"correspondence":   0.7,
	"document":         0.6,
	"photo":            0.5,
}

const unknownEvidenceWeight = 0.5

// Confidence bands are derived from the score, never stored.
const (
	confidenceBandHigh   = "High"
	confidenceBandMedium = "Medium"
	confidenceBandLow    = "Low"
)

// Scorer derives a per-entity confidence score from the reliability of the
// evidence behind its mentions.
type Scorer struct {
	store base.ArchiveStore
}

// NewScorer creates a scorer over the given store.
func NewScorer(store base.ArchiveStore) *Scorer {
	return &Scorer{
		store: store,
	}
}

// EntityConfidence scores one entity in [0,100] as the mention-count
// weighted mean of the per-evidence-type reliability weights, rounded.
// Zero mentions score 0. The per-type mention counts are returned so the
// score is auditable by the caller.
//
// A nonexistent entity behaves like one with zero mentions. Its mentions
// are not consulted: orphaned mentions of a deleted entity must not give
// it a score.
func (s *Scorer) EntityConfidence(ctx context.Context, entityID int64) (*common.ConfidenceReport, error) {
	entity, err := s.store.GetEntity(ctx, entityID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return &common.ConfidenceReport{
			Score:     0,
			Band:      confidenceBand(0),
			Breakdown: map[string]int{},
		}, nil
	}

	mentions, err := s.store.MentionsForEntity(ctx, entityID)
	if err != nil {
		return nil, err
	}

	breakdown := make(map[string]int)
	for _, m := range mentions {
		breakdown[m.EvidenceType]++
	}

	var weighted float64
	var total int
	for evidenceType, count := range breakdown {
		weight, ok := evidenceWeights[evidenceType]
		if !ok {
			weight = unknownEvidenceWeight
		}
		weighted += weight * float64(count)
		total += count
	}

	score := 0
	if total > 0 {
		score = int(math.Round(100 * weighted / float64(total)))
	}

	return &common.ConfidenceReport{
		Score:     score,
		Band:      confidenceBand(score),
		Breakdown: breakdown,
	}, nil
}

func confidenceBand(score int) string {
	switch {
	case score >= 80:
		return confidenceBandHigh
	case score >= 50:
		return confidenceBandMedium
	default:
		return confidenceBandLow
	}
}
