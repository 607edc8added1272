package internal

import "github.com/shopspring/decimal"

// OrderRecord is one normalized order-level row. After deduplication the
// PrimaryKey is unique across the dataset.
type OrderRecord struct {
	PrimaryKey   string
	OrderID      string
	Location     string
	LocWithBrand string
	Brand        string
	DeliveryType string
	Channel      string

	OrderPlacedDate string
	OrderPlacedTime string

	OrderStatus string
	PaymentType string

	GrossAOV          decimal.Decimal
	PromotionsOnItems decimal.Decimal
	DeliveryCost      decimal.Decimal
	Tip               decimal.Decimal

	IsTestOrder bool

	CourierDepartureFromRxDate string
	CourierDepartureFromRxTime string
	ScheduledOrderDate         string
	ScheduledOrderTime         string

	ProductPLU  string
	ProductName string
}

// ItemRecord is one normalized item-level row, carrying the order-level
// monetary fields of the order it belongs to. TotalPrice is ItemPrice after
// minor-to-major conversion multiplied by ItemQuantities.
type ItemRecord struct {
	PrimaryKey   string
	OrderID      string
	Location     string
	LocWithBrand string
	Brand        string
	DeliveryType string
	Channel      string

	OrderPlacedDate string
	OrderPlacedTime string

	OrderStatus string
	PaymentType string

	GrossAOV          decimal.Decimal
	PromotionsOnItems decimal.Decimal
	DeliveryCost      decimal.Decimal
	Tip               decimal.Decimal
	TotalOrderAmount  decimal.Decimal

	IsTestOrder bool

	ProductPLU  string
	ProductName string

	ItemPrice      decimal.Decimal
	ItemQuantities decimal.Decimal

	CleanedProductPLU  string
	CleanedProductName string

	TotalPrice decimal.Decimal
}

// OrderKey identifies the surviving (PrimaryKey, OrderStatus) pair of a
// deduplicated order. Item rows are retained only when their own pair matches
// one of these exactly.
type OrderKey struct {
	PrimaryKey  string
	OrderStatus string
}

// Sentinel values for synthesized balancing line items.
const (
	BalancingProductName = "Balancing Item"
	BalancingProductPLU  = "x-xx-xxx-x"
)
