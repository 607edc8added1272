// Package pipeline implements the batch transform over the delivery-order
// exports: normalization into the canonical schema, status-precedence
// deduplication, the order/item semi-join, and monetary reconciliation with
// balancing-record synthesis.
package pipeline

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"deliverect/internal/config"
	"deliverect/internal/locations"
)

// Service runs the pipeline over one fixed set of export files. All working
// state is per-run and discarded after the output datasets are built.
type Service struct {
	cfg       config.Config
	log       zerolog.Logger
	locations *locations.Table
	clock     *Clock
	tolerance decimal.Decimal

	timestampGaps map[string]int
}

func NewService(cfg config.Config, log zerolog.Logger, locs *locations.Table) (*Service, error) {
	clock, err := NewClock(cfg.SourceTimezone, cfg.TargetTimezone)
	if err != nil {
		return nil, err
	}
	return &Service{
		cfg:           cfg,
		log:           log,
		locations:     locs,
		clock:         clock,
		tolerance:     decimal.NewFromFloat(cfg.ReconcileTolerance),
		timestampGaps: map[string]int{},
	}, nil
}

// logDataQuality emits the run's data-quality counters: unresolved location
// names and degraded timestamps. Neither condition fails a run.
func (s *Service) logDataQuality() {
	if n := s.locations.UnresolvedCount(); n > 0 {
		s.log.Warn().
			Int("lookups", n).
			Strs("names", s.locations.Unresolved()).
			Msg("locations missing from canonical table")
	}
	for field, n := range s.timestampGaps {
		s.log.Warn().Str("field", field).Int("rows", n).Msg("timestamps degraded to missing")
	}
}
