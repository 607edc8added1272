package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"deliverect/internal"
	"deliverect/internal/config"
	"deliverect/internal/locations"
)

const locationsCSV = "Location,Cleaned Name\n" +
	"Birdie Birdie Friedrichshain,Friedrichshain\n" +
	"Birria & the Beast Kreuzberg,Kreuzberg\n" +
	"Birdie Birdie Schoneberg,Schoneberg\n"

func newTestService(t *testing.T, cfg config.Config) *Service {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "locations.csv")
	if err := os.WriteFile(path, []byte(locationsCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	locs, err := locations.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.SourceTimezone == "" {
		cfg.SourceTimezone = "UTC"
	}
	if cfg.TargetTimezone == "" {
		cfg.TargetTimezone = "Europe/Berlin"
	}
	if cfg.ReconcileTolerance == 0 {
		cfg.ReconcileTolerance = 0.001
	}

	svc, err := NewService(cfg, zerolog.Nop(), locs)
	if err != nil {
		t.Fatal(err)
	}
	return svc
}

func dec(t *testing.T, v string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(v)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func testItem(t *testing.T, pk, status, priceMinor, qty, gross string) internal.ItemRecord {
	t.Helper()
	return internal.ItemRecord{
		PrimaryKey:      pk,
		OrderID:         "#1001",
		Location:        "Friedrichshain",
		Brand:           "Birdie",
		Channel:         "Lieferando",
		OrderPlacedDate: "2023-01-15",
		OrderPlacedTime: "13:30:00",
		OrderStatus:     status,
		GrossAOV:        dec(t, gross),
		ProductPLU:      "PLU-1",
		ProductName:     "Burger",
		ItemPrice:       dec(t, priceMinor),
		ItemQuantities:  dec(t, qty),
	}
}
