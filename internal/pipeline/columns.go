package pipeline

import (
	"deliverect/internal"
)

// Output column orders are fixed: identity fields, order-placed date/time,
// status/payment, financials, flags, auxiliary times, and line-item fields
// trailing. Row position is the only index.

var orderHeaders = []string{
	"PrimaryKey", "OrderID", "Location", "LocWithBrand", "Brand", "DeliveryType", "Channel",
	"OrderPlacedDate", "OrderPlacedTime",
	"OrderStatus", "PaymentType",
	"GrossAOV", "PromotionsOnItems", "DeliveryCost", "Tip",
	"IsTestOrder",
	"CourierDepartureFromRxTime",
	"ProductPLU", "ProductName",
}

var itemHeaders = []string{
	"PrimaryKey", "OrderID", "Location", "LocWithBrand", "Brand", "DeliveryType", "Channel",
	"OrderPlacedDate", "OrderPlacedTime",
	"OrderStatus", "PaymentType",
	"GrossAOV", "PromotionsOnItems", "DeliveryCost", "Tip", "TotalOrderAmount",
	"IsTestOrder",
	"ProductPLU", "ProductName", "ItemPrice", "ItemQuantities",
	"CleanedProductPLU", "CleanedProductName", "TotalPrice",
}

func orderCells(rec internal.OrderRecord) []string {
	return []string{
		rec.PrimaryKey, rec.OrderID, rec.Location, rec.LocWithBrand, rec.Brand, rec.DeliveryType, rec.Channel,
		rec.OrderPlacedDate, rec.OrderPlacedTime,
		rec.OrderStatus, rec.PaymentType,
		rec.GrossAOV.String(), rec.PromotionsOnItems.String(), rec.DeliveryCost.String(), rec.Tip.String(),
		formatBool(rec.IsTestOrder),
		rec.CourierDepartureFromRxTime,
		rec.ProductPLU, rec.ProductName,
	}
}

func itemCells(rec internal.ItemRecord) []string {
	return []string{
		rec.PrimaryKey, rec.OrderID, rec.Location, rec.LocWithBrand, rec.Brand, rec.DeliveryType, rec.Channel,
		rec.OrderPlacedDate, rec.OrderPlacedTime,
		rec.OrderStatus, rec.PaymentType,
		rec.GrossAOV.String(), rec.PromotionsOnItems.String(), rec.DeliveryCost.String(), rec.Tip.String(), rec.TotalOrderAmount.String(),
		formatBool(rec.IsTestOrder),
		rec.ProductPLU, rec.ProductName, rec.ItemPrice.String(), rec.ItemQuantities.String(),
		rec.CleanedProductPLU, rec.CleanedProductName, rec.TotalPrice.String(),
	}
}

// formatBool matches the True/False casing of the upstream report.
func formatBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
