package common

import "time"

// Entity represents a catalogued subject of the archive: a person,
// organization, location, or any other concept extracted from the corpus.
// Entities are created by the ingestion pipeline or manual edit and are
// read-only from the scoring engine's point of view.
type Entity struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Role          string `json:"role,omitempty"`
	Description   string `json:"description,omitempty"`
	RedFlagRating *int32 `json:"red_flag_rating,omitempty"`
	MentionCount  int32  `json:"mention_count"`
}

// Document represents a source document in the archive. The evidence type
// (email, legal filing, photo, ...) drives the reliability weighting used
// by the confidence scorer.
type Document struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	EvidenceType     string    `json:"evidence_type"`
	SourceCollection string    `json:"source_collection,omitempty"`
	HasProvenance    bool      `json:"has_provenance"`
	CreatedAt        time.Time `json:"created_at"`
}

// Edge is a relationship between two entities as stored: directed, typed,
// weighted, with an extraction confidence and a timestamp. For incidence
// purposes the direction is ignored; an entity's relationships include
// edges where it is either endpoint.
//
// An edge referencing a missing entity is an orphaned edge: a data-quality
// defect, never a crash condition.
type Edge struct {
	ID         int64     `json:"id"`
	SourceID   int64     `json:"source_id"`
	TargetID   int64     `json:"target_id"`
	Type       string    `json:"type"`
	Weight     float64   `json:"weight"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}

// Relationship is an edge reframed from one entity's point of view:
// whichever endpoint the caller asked about becomes implicit and only the
// counterpart is carried. This is the shape the aggregator returns.
type Relationship struct {
	CounterpartID int64     `json:"counterpart_id"`
	Type          string    `json:"type"`
	Weight        float64   `json:"weight"`
	Confidence    float64   `json:"confidence"`
	Timestamp     time.Time `json:"timestamp"`
}

// Mention links an entity to a document it appears in. The evidence type is
// denormalized from the document at read time. A mention referencing a
// missing entity is an orphaned mention, a data-quality defect.
type Mention struct {
	EntityID       int64  `json:"entity_id"`
	DocumentID     int64  `json:"document_id"`
	EvidenceType   string `json:"evidence_type"`
	ContextSnippet string `json:"context_snippet,omitempty"`
}

// RelationshipFilter narrows an incidence query. Nil fields mean no floor
// and open-ended dates; supplied fields are conjunctive.
type RelationshipFilter struct {
	MinWeight     *float64
	MinConfidence *float64
	DateFrom      *time.Time
	DateTo        *time.Time
}

// Matches reports whether the edge passes every supplied filter.
func (f RelationshipFilter) Matches(e Edge) bool {
	if f.MinWeight != nil && e.Weight < *f.MinWeight {
		return false
	}
	if f.MinConfidence != nil && e.Confidence < *f.MinConfidence {
		return false
	}
	if f.DateFrom != nil && e.Timestamp.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && e.Timestamp.After(*f.DateTo) {
		return false
	}
	return true
}

// GraphSlice is a bounded-depth subgraph around a seed entity, produced for
// visualization. It is derived on demand and never persisted beyond the
// response cache.
type GraphSlice struct {
	Nodes []Entity `json:"nodes"`
	Edges []Edge   `json:"edges"`
}

// RankedEntity is one row of the connectivity ranking. Display attributes
// are included so callers never need a second lookup.
type RankedEntity struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Role          string `json:"role,omitempty"`
	RedFlagRating *int32 `json:"red_flag_rating,omitempty"`
	MentionCount  int32  `json:"mention_count"`
	Connectivity  int    `json:"connectivity"`
}

// ConfidenceReport summarizes how reliable the evidence behind an entity's
// mentions is. Breakdown holds the raw per-evidence-type mention counts so
// the score is reproducible by the caller.
type ConfidenceReport struct {
	Score     int            `json:"score"`
	Band      string         `json:"band"`
	Breakdown map[string]int `json:"breakdown"`
}
