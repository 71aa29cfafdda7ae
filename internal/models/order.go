package models

import "github.com/shopspring/decimal"

// DateLayout is how order timestamps are rendered in listings.
const DateLayout = "2006-01-02 15:04:05"

type Order struct {
	ID           int             `json:"order_id"`
	CustomerName string          `json:"customer_name"`
	Total        decimal.Decimal `json:"total"`
	Date         string          `json:"date"` // DateLayout или "" если даты нет
}

type OrderDetail struct {
	OrderID   int             `json:"order_id"`
	ProductID int             `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

// OrderLine is an order detail joined with the product it refers to.
type OrderLine struct {
	OrderDetail
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type OrderWithDetails struct { // заказ со всеми позициями
	Order
	Items []OrderLine `json:"items"`
}

// OrderRequest is the payload for a new order. Numeric fields accept JSON
// numbers or numeric strings; anything else fails to decode.
type OrderRequest struct {
	CustomerName string               `json:"customer_name" validate:"required,max=100"`
	GrandTotal   decimal.Decimal      `json:"grand_total"`
	Details      []OrderDetailRequest `json:"order_details" validate:"dive"`
}

type OrderDetailRequest struct {
	ProductID  int             `json:"product_id" validate:"gt=0"`
	Quantity   decimal.Decimal `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type OrderStats struct {
	TotalOrders  int             `json:"total_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}
