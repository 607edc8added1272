package pipeline

import (
	"sort"

	"deliverect/internal"
)

// Deduplicate collapses every PrimaryKey group to the single record whose
// status ranks best, dropping rows whose order identifier was unusable.
// The sort is stable, so ties inside a group resolve to the earliest input
// row. Output is ordered by PrimaryKey and each key appears exactly once.
func Deduplicate(orders []internal.OrderRecord) []internal.OrderRecord {
	sorted := make([]internal.OrderRecord, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].PrimaryKey != sorted[j].PrimaryKey {
			return sorted[i].PrimaryKey < sorted[j].PrimaryKey
		}
		return statusRank(sorted[i].OrderStatus) < statusRank(sorted[j].OrderStatus)
	})

	seen := make(map[string]struct{}, len(sorted))
	out := make([]internal.OrderRecord, 0, len(sorted))
	for _, rec := range sorted {
		if _, dup := seen[rec.PrimaryKey]; dup {
			continue
		}
		seen[rec.PrimaryKey] = struct{}{}
		if rec.OrderID == missingOrderID {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// SurvivorKeys returns the (PrimaryKey, OrderStatus) pairs retained by
// deduplication. The item semi-join matches against these exactly.
func SurvivorKeys(orders []internal.OrderRecord) map[internal.OrderKey]struct{} {
	keys := make(map[internal.OrderKey]struct{}, len(orders))
	for _, rec := range orders {
		keys[internal.OrderKey{PrimaryKey: rec.PrimaryKey, OrderStatus: rec.OrderStatus}] = struct{}{}
	}
	return keys
}
