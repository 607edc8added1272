package pipeline

import (
	"strings"

	"deliverect/internal"
	"deliverect/internal/ingest"
	"deliverect/internal/util"
)

// statusPrecedence ranks the known order statuses; rank 0 wins deduplication.
// Statuses missing from the table rank after every known one.
var statusPrecedence = map[string]int{
	"Delivered":          0,
	"Auto Finalized":     1,
	"In Delivery":        2,
	"Ready For Pickup":   3,
	"Prepared":           4,
	"Preparing":          5,
	"Accepted":           6,
	"Deliverect Parsed":  7,
	"New":                8,
	"Scheduled":          9,
	"Cancel":             10,
	"Canceled":           11,
	"Failed Resolved":    12,
	"Failed":             13,
	"Delivery Cancelled": 14,
	"Manual Retry":       15,
	"Failed Cancel":      16,
}

func statusRank(status string) int {
	if rank, ok := statusPrecedence[status]; ok {
		return rank
	}
	return len(statusPrecedence)
}

// The brand vocabulary collapses to exactly two labels. Everything
// downstream keys on that two-value split, so the substring test must stay
// case-insensitive and must run after the null inference.
const (
	brandBirria     = "Birria"
	brandBirdie     = "Birdie"
	brandBirriaFull = "Birria & the Beast"
	brandBirdieFull = "Birdie Birdie"

	statusDuplicate = "Duplicate"
	missingOrderID  = "#nan"

	primaryKeySeparator = " - "
)

// NormalizeOrderID coerces a raw order identifier to its canonical "#"
// prefixed text form. Missing identifiers become the "#nan" marker and are
// excluded after deduplication.
func NormalizeOrderID(raw string) string {
	id := strings.TrimSpace(raw)
	if id == "" || strings.EqualFold(id, "nan") {
		return missingOrderID
	}
	return "#" + id
}

// NormalizeBrand applies the comma cut, the null inference from the raw
// location, and the final two-value collapse.
func NormalizeBrand(rawBrand, rawLocation string) string {
	brand := rawBrand
	if i := strings.Index(brand, ","); i >= 0 {
		brand = brand[:i]
	}
	brand = strings.TrimSpace(brand)
	if brand == "" || strings.EqualFold(brand, "nan") {
		if containsFold(rawLocation, "beast") {
			brand = brandBirriaFull
		} else {
			brand = brandBirdieFull
		}
	}
	if containsFold(brand, "beast") {
		return brandBirria
	}
	return brandBirdie
}

// NormalizeChannel renames the one channel the platform reports under its
// legacy label.
func NormalizeChannel(raw string) string {
	return strings.ReplaceAll(raw, "TakeAway Com", "Lieferando")
}

// NormalizeStatus rewrites underscores to spaces and title-cases the result.
func NormalizeStatus(raw string) string {
	return util.TitleCase(strings.ReplaceAll(raw, "_", " "))
}

// BuildPrimaryKey concatenates the natural key identifying one real-world
// order occurrence. Not unique in the raw feed; unique after deduplication.
func BuildPrimaryKey(orderID, location, placedDate string) string {
	return orderID + primaryKeySeparator + location + primaryKeySeparator + placedDate
}

func locWithBrand(location, brand string) string {
	first := brand
	if i := strings.IndexFunc(brand, func(r rune) bool { return r == ' ' }); i >= 0 {
		first = brand[:i]
	}
	return location + primaryKeySeparator + first
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// normalizeOrderRow builds one OrderRecord. The second return is false for
// rows carrying the "Duplicate" sentinel status, which never enter the
// dataset.
func (s *Service) normalizeOrderRow(row ingest.Row) (internal.OrderRecord, bool) {
	status := NormalizeStatus(row.OrderStatus)
	if status == statusDuplicate {
		return internal.OrderRecord{}, false
	}

	placedDate, placedTime := s.splitLogged("order_placed", row.OrderPlacedDateTime)
	courierDate, courierTime := s.splitLogged("courier_departure", row.CourierDepartureDateTime)
	scheduledDate, scheduledTime := s.splitLogged("order_scheduled", row.ScheduledDateTime)

	orderID := NormalizeOrderID(row.OrderID)
	brand := NormalizeBrand(row.Brand, row.Location)
	location := s.resolveLocation(row.Location)

	gross, _ := util.ParseMoney(row.GrossAOV)
	promos, _ := util.ParseMoney(row.PromotionsOnItems)
	delivery, _ := util.ParseMoney(row.DeliveryCost)
	tip, _ := util.ParseMoney(row.Tip)

	return internal.OrderRecord{
		PrimaryKey:   BuildPrimaryKey(orderID, location, placedDate),
		OrderID:      orderID,
		Location:     location,
		LocWithBrand: locWithBrand(location, brand),
		Brand:        brand,
		DeliveryType: row.DeliveryType,
		Channel:      NormalizeChannel(row.Channel),

		OrderPlacedDate: placedDate,
		OrderPlacedTime: placedTime,

		OrderStatus: status,
		PaymentType: row.PaymentType,

		GrossAOV:          gross,
		PromotionsOnItems: promos,
		DeliveryCost:      delivery,
		Tip:               tip,

		IsTestOrder: util.ParseBool(row.IsTestOrder),

		CourierDepartureFromRxDate: courierDate,
		CourierDepartureFromRxTime: courierTime,
		ScheduledOrderDate:         scheduledDate,
		ScheduledOrderTime:         scheduledTime,

		ProductPLU:  row.ProductPLU,
		ProductName: util.CleanProductName(row.ProductName),
	}, true
}

// normalizeItemRow builds one ItemRecord. ItemPrice stays in minor currency
// units here; the reconciler owns the division.
func (s *Service) normalizeItemRow(row ingest.Row) (internal.ItemRecord, bool) {
	status := NormalizeStatus(row.OrderStatus)
	if status == statusDuplicate {
		return internal.ItemRecord{}, false
	}

	placedDate, placedTime := s.splitLogged("order_placed", row.OrderPlacedDateTime)

	orderID := NormalizeOrderID(row.OrderID)
	brand := NormalizeBrand(row.Brand, row.Location)
	location := s.resolveLocation(row.Location)

	gross, _ := util.ParseMoney(row.GrossAOV)
	promos, _ := util.ParseMoney(row.PromotionsOnItems)
	delivery, _ := util.ParseMoney(row.DeliveryCost)
	tip, _ := util.ParseMoney(row.Tip)
	total, _ := util.ParseMoney(row.TotalOrderAmount)
	price, _ := util.ParseMoney(row.ItemPrice)
	qty, _ := util.ParseQuantity(row.ItemQuantities)

	return internal.ItemRecord{
		PrimaryKey:   BuildPrimaryKey(orderID, location, placedDate),
		OrderID:      orderID,
		Location:     location,
		LocWithBrand: locWithBrand(location, brand),
		Brand:        brand,
		DeliveryType: row.DeliveryType,
		Channel:      NormalizeChannel(row.Channel),

		OrderPlacedDate: placedDate,
		OrderPlacedTime: placedTime,

		OrderStatus: status,
		PaymentType: row.PaymentType,

		GrossAOV:          gross,
		PromotionsOnItems: promos,
		DeliveryCost:      delivery,
		Tip:               tip,
		TotalOrderAmount:  total,

		IsTestOrder: util.ParseBool(row.IsTestOrder),

		ProductPLU:  row.ProductPLU,
		ProductName: util.CleanProductName(row.ProductName),

		ItemPrice:      price,
		ItemQuantities: qty,
	}, true
}

// resolveLocation maps a raw location through the canonical-name table.
// Unmapped names keep their folded raw value; the miss is counted and logged
// once per run summary.
func (s *Service) resolveLocation(raw string) string {
	cleaned, ok := s.locations.Resolve(raw)
	if !ok {
		s.log.Debug().Str("location", raw).Msg("location not in canonical table")
	}
	return cleaned
}

// splitLogged degrades an unparseable timestamp to empty components for the
// row instead of failing the batch.
func (s *Service) splitLogged(field, value string) (string, string) {
	date, clock, err := s.clock.Split(value)
	if err != nil {
		s.timestampGaps[field]++
		s.log.Debug().Str("field", field).Str("value", value).Msg("unparseable timestamp")
		return "", ""
	}
	return date, clock
}
