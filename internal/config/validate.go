package config

import (
	"fmt"
	"slices"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Storage.validate(c.Database); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Grading.validate(); err != nil {
		return fmt.Errorf("grading: %w", err)
	}
	if err := c.Exercise.validate(); err != nil {
		return fmt.Errorf("exercise: %w", err)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Limit <= 0 || c.RateLimit.Window <= 0) {
		return fmt.Errorf("rate_limit: limit and window must be > 0 when enabled")
	}

	return nil
}

func (s *StorageConfig) validate(db DatabaseConfig) error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))
	if !slices.Contains([]string{DriverPostgres, DriverSQLite}, s.Driver) {
		return fmt.Errorf("driver must be %q or %q (got %q)", DriverPostgres, DriverSQLite, s.Driver)
	}
	if s.Driver == DriverPostgres && db.DSN == "" {
		return fmt.Errorf("database.dsn is required for the postgres driver")
	}
	if s.Driver == DriverSQLite && s.SQLitePath == "" {
		return fmt.Errorf("sqlite_path is required for the sqlite driver")
	}
	return nil
}

func (g GradingConfig) validate() error {
	if g.TxTimeout <= 0 {
		return fmt.Errorf("tx_timeout must be > 0 (got %v)", g.TxTimeout)
	}
	if g.ResetRecentDefault <= 0 {
		return fmt.Errorf("reset_recent_default must be > 0 (got %d)", g.ResetRecentDefault)
	}
	if g.MaxBatchSize < 2 {
		return fmt.Errorf("max_batch_size must be >= 2 (got %d)", g.MaxBatchSize)
	}
	if g.DueFeedLimit <= 0 {
		return fmt.Errorf("due_feed_limit must be > 0 (got %d)", g.DueFeedLimit)
	}
	if g.ReplayTTL <= 0 {
		return fmt.Errorf("replay_ttl must be > 0 (got %v)", g.ReplayTTL)
	}
	return nil
}

func (e ExerciseConfig) validate() error {
	if e.DistractorCount < 1 {
		return fmt.Errorf("distractor_count must be >= 1 (got %d)", e.DistractorCount)
	}
	if e.RetryBudget < 0 {
		return fmt.Errorf("retry_budget must be >= 0 (got %d)", e.RetryBudget)
	}
	if e.MatchingMin < 2 || e.MatchingSize < e.MatchingMin {
		return fmt.Errorf("need 2 <= matching_min <= matching_size (got %d, %d)", e.MatchingMin, e.MatchingSize)
	}
	if e.PageProximity < 0 {
		return fmt.Errorf("page_proximity must be >= 0 (got %d)", e.PageProximity)
	}
	return nil
}
