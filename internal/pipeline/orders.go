package pipeline

import (
	"fmt"

	"deliverect/internal"
	"deliverect/internal/ingest"
)

// LoadOrderData builds the deduplicated order-level dataset from every
// order-level export file in the configured directory.
func (s *Service) LoadOrderData() ([]internal.OrderRecord, error) {
	rows, err := ingest.LoadOrderRows(s.cfg.OrderDetailsDir)
	if err != nil {
		return nil, fmt.Errorf("load order files: %w", err)
	}

	records := make([]internal.OrderRecord, 0, len(rows))
	for _, row := range rows {
		rec, keep := s.normalizeOrderRow(row)
		if keep {
			records = append(records, rec)
		}
	}

	deduped := Deduplicate(records)
	s.log.Info().
		Int("rows_in", len(rows)).
		Int("normalized", len(records)).
		Int("orders", len(deduped)).
		Msg("order-level dataset built")
	s.logDataQuality()
	return deduped, nil
}
