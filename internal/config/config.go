package config

import (
	"time"

	"github.com/open-dossier/archive/backend/internal/util"
	"github.com/open-dossier/archive/backend/pkg/engine"
)

// Config collects every tunable the server reads from the environment.
// Loaded once at startup and passed down by injection; nothing reads the
// environment after that.
type Config struct {
	Port          string
	DatabaseURL   string
	MigrationsDir string

	// AggregateTTL caches graph slices, rankings, and quality metrics;
	// EntityTTL caches entity-scoped lookups, which are mutated more
	// often and therefore go stale faster.
	AggregateTTL  time.Duration
	EntityTTL     time.Duration
	SweepInterval time.Duration

	MaxGraphDepth         int
	DefaultRankEntityType string

	// EventQueue is the queue the ingestion pipeline publishes change
	// events to; any message there invalidates the response cache.
	EventQueue string

	Quality engine.QualityConfig
}

// Load reads the configuration from the environment with production
// defaults.
func Load() *Config {
	quality := engine.DefaultQualityConfig()
	quality.JunkWeight = util.GetEnvNumeric("QUALITY_JUNK_WEIGHT", 50)
	quality.OrphanWeight = util.GetEnvNumeric("QUALITY_ORPHAN_WEIGHT", 30)

	return &Config{
		Port:          util.GetEnvString("PORT", "8080"),
		DatabaseURL:   util.GetEnv("DATABASE_URL"),
		MigrationsDir: util.GetEnvString("MIGRATIONS_DIR", "migrations"),

		AggregateTTL:  time.Duration(util.GetEnvInt("CACHE_TTL_AGGREGATE_SECONDS", 300)) * time.Second,
		EntityTTL:     time.Duration(util.GetEnvInt("CACHE_TTL_ENTITY_SECONDS", 60)) * time.Second,
		SweepInterval: time.Duration(util.GetEnvInt("CACHE_SWEEP_SECONDS", 60)) * time.Second,

		MaxGraphDepth:         util.GetEnvInt("GRAPH_MAX_DEPTH", engine.DefaultMaxGraphDepth),
		DefaultRankEntityType: util.GetEnvString("RANK_ENTITY_TYPE", engine.DefaultRankEntityType),

		EventQueue: util.GetEnvString("EVENT_QUEUE", "archive_events"),

		Quality: quality,
	}
}
