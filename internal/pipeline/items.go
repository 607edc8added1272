package pipeline

import (
	"fmt"

	"deliverect/internal"
	"deliverect/internal/ingest"
)

// LoadItemLevelDetail builds the reconciled item-level dataset. Item rows are
// filtered to the (PrimaryKey, OrderStatus) pairs that survived order-level
// deduplication, priced, checked for monetary conservation against GrossAOV,
// and topped up with balancing line items where the check fails.
func (s *Service) LoadItemLevelDetail() ([]internal.ItemRecord, error) {
	orders, err := s.LoadOrderData()
	if err != nil {
		return nil, err
	}

	rows, err := ingest.LoadItemRows(s.cfg.OrderPricingDir)
	if err != nil {
		return nil, fmt.Errorf("load item files: %w", err)
	}

	items := make([]internal.ItemRecord, 0, len(rows))
	for _, row := range rows {
		rec, keep := s.normalizeItemRow(row)
		if keep {
			items = append(items, rec)
		}
	}

	kept := SemiJoin(items, SurvivorKeys(orders))
	priceItems(kept)

	out, stats := s.Reconcile(kept)
	stats.ItemsDropped = len(items) - len(kept)
	s.log.Info().
		Int("rows_in", len(rows)).
		Int("dropped_by_join", stats.ItemsDropped).
		Int("orders", stats.Groups).
		Int("balancing_items", stats.Imbalanced).
		Msg("item-level dataset reconciled")
	return out, nil
}
