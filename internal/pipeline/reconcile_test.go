package pipeline

import (
	"testing"

	"deliverect/internal"
	"deliverect/internal/config"
)

func TestSemiJoinDropsNonSurvivingStatusPairs(t *testing.T) {
	items := []internal.ItemRecord{
		testItem(t, "A", "Delivered", "500", "1", "10"),
		testItem(t, "A", "New", "500", "1", "10"),
		testItem(t, "B", "Delivered", "300", "1", "3"),
	}
	survivors := map[internal.OrderKey]struct{}{
		{PrimaryKey: "A", OrderStatus: "Delivered"}: {},
	}

	kept := SemiJoin(items, survivors)
	if len(kept) != 1 {
		t.Fatalf("expected 1 surviving item, got %d", len(kept))
	}
	if kept[0].PrimaryKey != "A" || kept[0].OrderStatus != "Delivered" {
		t.Fatalf("wrong survivor: %+v", kept[0])
	}
}

func TestPriceItems(t *testing.T) {
	items := []internal.ItemRecord{testItem(t, "A", "Delivered", "500", "2", "10")}
	priceItems(items)

	if items[0].ItemPrice.String() != "5" {
		t.Errorf("ItemPrice = %s, want 5 (minor units divided once)", items[0].ItemPrice)
	}
	if items[0].TotalPrice.String() != "10" {
		t.Errorf("TotalPrice = %s, want 10", items[0].TotalPrice)
	}
	if items[0].CleanedProductPLU != "PLU-1 :2" {
		t.Errorf("CleanedProductPLU = %q", items[0].CleanedProductPLU)
	}
	// The label price carries the second division; see DESIGN.md.
	if items[0].CleanedProductName != "2x Burger 0.05" {
		t.Errorf("CleanedProductName = %q", items[0].CleanedProductName)
	}
}

func TestReconcileSynthesizesBalancingItem(t *testing.T) {
	svc := newTestService(t, config.Config{})
	items := []internal.ItemRecord{
		testItem(t, "A", "Delivered", "500", "1", "10"),
		testItem(t, "A", "Delivered", "300", "1", "10"),
	}
	priceItems(items)

	out, stats := svc.Reconcile(items)
	if stats.Imbalanced != 1 {
		t.Fatalf("Imbalanced = %d, want 1", stats.Imbalanced)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 rows incl balancing, got %d", len(out))
	}

	var balancing *internal.ItemRecord
	for i := range out {
		if out[i].ProductName == internal.BalancingProductName {
			balancing = &out[i]
		}
	}
	if balancing == nil {
		t.Fatal("no balancing item appended")
	}
	if balancing.ProductPLU != internal.BalancingProductPLU {
		t.Errorf("PLU = %q", balancing.ProductPLU)
	}
	if balancing.ItemQuantities.String() != "1" {
		t.Errorf("quantity = %s", balancing.ItemQuantities)
	}
	// 10.00 reported minus 8.00 summed.
	if balancing.ItemPrice.String() != "2" || balancing.TotalPrice.String() != "2" {
		t.Errorf("balancing amount = %s / %s, want 2", balancing.ItemPrice, balancing.TotalPrice)
	}
	// Descriptive fields copied from an existing row of the key.
	if balancing.Location != "Friedrichshain" || balancing.Channel != "Lieferando" || balancing.OrderStatus != "Delivered" {
		t.Errorf("descriptive fields not copied: %+v", balancing)
	}
}

func TestReconcileNegativeImbalance(t *testing.T) {
	svc := newTestService(t, config.Config{})
	items := []internal.ItemRecord{testItem(t, "A", "Delivered", "1200", "1", "10")}
	priceItems(items)

	out, _ := svc.Reconcile(items)
	if len(out) != 2 {
		t.Fatalf("expected balancing record, got %d rows", len(out))
	}
	last := out[len(out)-1]
	if last.TotalPrice.String() != "-2" {
		t.Errorf("balancing amount = %s, want -2", last.TotalPrice)
	}
}

func TestReconcileConservationHoldsAfterBalancing(t *testing.T) {
	svc := newTestService(t, config.Config{})
	items := []internal.ItemRecord{
		testItem(t, "A", "Delivered", "500", "1", "10"),
		testItem(t, "A", "Delivered", "300", "1", "10"),
		testItem(t, "B", "Delivered", "450", "2", "9"),
		testItem(t, "C", "Delivered", "199", "3", "7"),
	}
	priceItems(items)

	out, _ := svc.Reconcile(items)
	sums := map[string]string{}
	gross := map[string]string{}
	totals := map[string]internal.ItemRecord{}
	for _, item := range out {
		rec, ok := totals[item.PrimaryKey]
		if !ok {
			rec = item
			rec.TotalPrice = item.TotalPrice
		} else {
			rec.TotalPrice = rec.TotalPrice.Add(item.TotalPrice)
		}
		totals[item.PrimaryKey] = rec
	}
	for pk, rec := range totals {
		sums[pk] = rec.TotalPrice.String()
		gross[pk] = rec.GrossAOV.String()
		diff := rec.GrossAOV.Sub(rec.TotalPrice).Abs()
		if diff.Cmp(dec(t, "0.001")) >= 0 {
			t.Errorf("key %s not conserved: sum=%s gross=%s", pk, sums[pk], gross[pk])
		}
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	svc := newTestService(t, config.Config{})
	items := []internal.ItemRecord{
		testItem(t, "A", "Delivered", "500", "1", "10"),
		testItem(t, "A", "Delivered", "300", "1", "10"),
	}
	priceItems(items)

	once, _ := svc.Reconcile(items)
	twice, stats := svc.Reconcile(once)
	if stats.Imbalanced != 0 {
		t.Fatalf("second pass found %d imbalances, want 0", stats.Imbalanced)
	}
	if len(twice) != len(once) {
		t.Fatalf("second pass added rows: %d -> %d", len(once), len(twice))
	}
}

func TestReconcileBalancedGroupUntouched(t *testing.T) {
	svc := newTestService(t, config.Config{})
	items := []internal.ItemRecord{
		testItem(t, "A", "Delivered", "500", "2", "10"),
	}
	priceItems(items)

	out, stats := svc.Reconcile(items)
	if stats.Imbalanced != 0 || len(out) != 1 {
		t.Fatalf("balanced group must stay untouched: %d rows, %d imbalances", len(out), stats.Imbalanced)
	}
}

func TestReconcileFinalOrdering(t *testing.T) {
	svc := newTestService(t, config.Config{})
	a := testItem(t, "B", "Delivered", "100", "1", "1")
	a.OrderPlacedDate = "2023-01-16"
	b := testItem(t, "A", "Delivered", "100", "1", "1")
	b.OrderPlacedDate = "2023-01-15"
	b.OrderPlacedTime = "20:00:00"
	c := testItem(t, "C", "Delivered", "100", "1", "1")
	c.OrderPlacedDate = "2023-01-15"
	c.OrderPlacedTime = "08:00:00"

	items := []internal.ItemRecord{a, b, c}
	priceItems(items)
	out, _ := svc.Reconcile(items)

	got := []string{out[0].PrimaryKey, out[1].PrimaryKey, out[2].PrimaryKey}
	want := []string{"C", "A", "B"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}
