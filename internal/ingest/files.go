// Package ingest locates and reads the delivery-platform export files,
// mapping their raw column names onto the canonical field set. Order
// identifiers are always carried as text so large IDs never collapse into
// scientific notation.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Filename substrings that select the two export feeds within a directory.
const (
	orderFilePattern = "Orders"
	itemFilePattern  = "Order Level Pricing"
)

// Row is one raw export row on canonical field names, untouched text values.
type Row struct {
	OrderPlacedDateTime      string
	CourierDepartureDateTime string
	ScheduledDateTime        string

	Location     string
	OrderID      string
	Brand        string
	Channel      string
	OrderStatus  string
	DeliveryType string
	PaymentType  string

	GrossAOV          string
	PromotionsOnItems string
	DeliveryCost      string
	Tip               string
	TotalOrderAmount  string

	IsTestOrder string

	ProductPLU  string
	ProductName string

	ItemPrice      string
	ItemQuantities string
}

// Discover lists the .csv files in dir whose names contain pattern, sorted by
// name. Listing order must not be observable downstream; sorting keeps the
// intermediate row stacking stable anyway.
func Discover(dir, pattern string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".csv") && strings.Contains(name, pattern) {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadOrderRows reads every order-level export file in dir.
func LoadOrderRows(dir string) ([]Row, error) {
	return loadRows(dir, orderFilePattern, orderRowFromRecord)
}

// LoadItemRows reads every item-level ("Order Level Pricing") file in dir.
func LoadItemRows(dir string) ([]Row, error) {
	return loadRows(dir, itemFilePattern, itemRowFromRecord)
}

func loadRows(dir, pattern string, convert func(map[string]string) Row) ([]Row, error) {
	paths, err := Discover(dir, pattern)
	if err != nil {
		return nil, err
	}
	var rows []Row
	for _, path := range paths {
		blob, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		parsed, err := ParseCSV(blob)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		for _, record := range parsed {
			rows = append(rows, convert(record))
		}
	}
	return rows, nil
}

// orderRowFromRecord maps the order-level feed's headers. PickupTimeUTC is
// the placement timestamp; CreatedTimeUTC is the courier departure.
func orderRowFromRecord(record map[string]string) Row {
	row := sharedRowFromRecord(record)
	row.OrderPlacedDateTime = record["PickupTimeUTC"]
	row.CourierDepartureDateTime = record["CreatedTimeUTC"]
	row.ScheduledDateTime = record["ScheduledTimeUTC"]
	return row
}

// itemRowFromRecord maps the item-level feed's headers, which report
// CreatedTimeUTC as the placement timestamp and add per-item pricing.
func itemRowFromRecord(record map[string]string) Row {
	row := sharedRowFromRecord(record)
	row.OrderPlacedDateTime = record["CreatedTimeUTC"]
	row.ItemPrice = record["ItemPrice"]
	row.ItemQuantities = record["ItemQuantities"]
	return row
}

func sharedRowFromRecord(record map[string]string) Row {
	return Row{
		Location:          record["Location"],
		OrderID:           RepairScientificNotation(record["OrderID"]),
		Brand:             record["Brands"],
		Channel:           record["Channel"],
		OrderStatus:       record["Status"],
		DeliveryType:      record["Type"],
		PaymentType:       record["Payment"],
		GrossAOV:          record["SubTotal"],
		PromotionsOnItems: record["DiscountTotal"],
		DeliveryCost:      record["DeliveryCost"],
		Tip:               record["DriverTip"],
		TotalOrderAmount:  record["OrderTotalAmount"],
		IsTestOrder:       record["IsTestOrder"],
		ProductPLU:        record["ProductPLUs"],
		ProductName:       record["ProductNames"],
	}
}

// RepairScientificNotation undoes the corruption an order ID suffers when a
// spreadsheet re-save coerces IDs with an E in third position into a number.
// Values without an E+ marker pass through unchanged.
func RepairScientificNotation(value string) string {
	coefficient, exponent, found := strings.Cut(value, "E+")
	if !found {
		return value
	}
	exp, err := strconv.Atoi(exponent)
	if err != nil {
		return value
	}
	return strings.ReplaceAll(coefficient, ".", "") + "E" + strconv.Itoa(exp-2)
}
