// Package engine implements the read-oriented evidence computations of the
// archive: relationship aggregation, bounded graph slicing, connectivity
// ranking, evidence confidence scoring, corpus data-quality auditing, and
// red-flag classification.
//
// Every computation is a pure read over the store adapter and sees whatever
// snapshot the adapter provides; the engine never writes and never holds
// locks across a multi-step computation.
package engine

import (
	"github.com/open-dossier/archive/backend/pkg/store/base"
)

// Engine bundles the evidence computations over one store adapter.
type Engine struct {
	Aggregator *Aggregator
	Slicer     *Slicer
	Ranker     *Ranker
	Scorer     *Scorer
	Auditor    *Auditor
}

// Options configures the tunable parts of the engine. Zero values fall
// back to the defaults documented on each field.
type Options struct {
	// MaxGraphDepth is the hard cap on graph-slice traversal depth.
	// Defaults to DefaultMaxGraphDepth.
	MaxGraphDepth int

	// Quality holds the auditor's tuned heuristics. Defaults to
	// DefaultQualityConfig().
	Quality QualityConfig
}

// New creates an engine over the given store.
func New(store base.ArchiveStore, opts Options) *Engine {
	if opts.MaxGraphDepth <= 0 {
		opts.MaxGraphDepth = DefaultMaxGraphDepth
	}
	if opts.Quality.Version == "" {
		opts.Quality = DefaultQualityConfig()
	}

	agg := NewAggregator(store)
	return &Engine{
		Aggregator: agg,
		Slicer:     NewSlicer(store, opts.MaxGraphDepth),
		Ranker:     NewRanker(store),
		Scorer:     NewScorer(store),
		Auditor:    NewAuditor(store, opts.Quality),
	}
}
