package pipeline

import (
	"sort"

	"github.com/shopspring/decimal"

	"deliverect/internal"
)

var hundred = decimal.NewFromInt(100)

// ReconcileStats summarizes one reconciliation pass.
type ReconcileStats struct {
	ItemsIn      int
	ItemsKept    int
	ItemsDropped int
	Groups       int
	Imbalanced   int
}

// SemiJoin retains item rows whose (PrimaryKey, OrderStatus) pair matches a
// surviving deduplicated order. Unmatched rows are dropped outright, never
// kept with null-filled order fields.
func SemiJoin(items []internal.ItemRecord, survivors map[internal.OrderKey]struct{}) []internal.ItemRecord {
	out := make([]internal.ItemRecord, 0, len(items))
	for _, item := range items {
		key := internal.OrderKey{PrimaryKey: item.PrimaryKey, OrderStatus: item.OrderStatus}
		if _, ok := survivors[key]; ok {
			out = append(out, item)
		}
	}
	return out
}

// priceItems converts ItemPrice from minor to major currency units, derives
// the display fields, and computes TotalPrice.
func priceItems(items []internal.ItemRecord) {
	for i := range items {
		item := &items[i]
		item.ItemPrice = item.ItemPrice.Div(hundred)
		item.CleanedProductPLU = item.ProductPLU + " :" + item.ItemQuantities.String()
		// The label price divides the already-converted price by 100 again.
		// Inconsistent with TotalPrice, but it is what the report's consumers
		// have always seen; kept as-is and flagged in DESIGN.md.
		item.CleanedProductName = item.ItemQuantities.String() + "x " + item.ProductName + " " + item.ItemPrice.Div(hundred).String()
		item.TotalPrice = item.ItemPrice.Mul(item.ItemQuantities)
	}
}

// Reconcile checks monetary conservation per PrimaryKey and appends one
// balancing line item wherever the summed item totals miss the reported
// GrossAOV by at least the tolerance. The balancing amount is signed. Output
// is stably sorted by (OrderPlacedDate, OrderPlacedTime, PrimaryKey).
func (s *Service) Reconcile(items []internal.ItemRecord) ([]internal.ItemRecord, ReconcileStats) {
	type group struct {
		sum   decimal.Decimal
		gross decimal.Decimal
		first int
	}

	var order []string
	groups := map[string]*group{}
	for i, item := range items {
		g, ok := groups[item.PrimaryKey]
		if !ok {
			// All rows of a group share the order's GrossAOV; the first row
			// is as good as any.
			g = &group{gross: item.GrossAOV, first: i}
			groups[item.PrimaryKey] = g
			order = append(order, item.PrimaryKey)
		}
		g.sum = g.sum.Add(item.TotalPrice)
	}

	stats := ReconcileStats{ItemsIn: len(items), ItemsKept: len(items), Groups: len(groups)}

	out := make([]internal.ItemRecord, len(items), len(items)+len(groups))
	copy(out, items)
	for _, pk := range order {
		g := groups[pk]
		diff := g.gross.Sub(g.sum)
		if diff.Abs().Cmp(s.tolerance) < 0 {
			continue
		}
		base := items[g.first]
		balancing := base
		balancing.ProductName = internal.BalancingProductName
		balancing.ProductPLU = internal.BalancingProductPLU
		balancing.ItemQuantities = decimal.NewFromInt(1)
		balancing.ItemPrice = diff
		balancing.TotalPrice = diff
		balancing.CleanedProductPLU = ""
		balancing.CleanedProductName = ""
		out = append(out, balancing)
		stats.Imbalanced++
	}

	sortItems(out)
	return out, stats
}

// sortItems applies the final dataset ordering. The sort is stable and fully
// keyed, so directory-listing order never leaks into the output.
func sortItems(items []internal.ItemRecord) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].OrderPlacedDate != items[j].OrderPlacedDate {
			return items[i].OrderPlacedDate < items[j].OrderPlacedDate
		}
		if items[i].OrderPlacedTime != items[j].OrderPlacedTime {
			return items[i].OrderPlacedTime < items[j].OrderPlacedTime
		}
		return items[i].PrimaryKey < items[j].PrimaryKey
	})
}
