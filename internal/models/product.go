package models

import "github.com/shopspring/decimal"

type Product struct {
	ID           int             `json:"product_id"`
	Name         string          `json:"product_name" validate:"required,max=100"`
	UnitID       int             `json:"unit" validate:"gt=0"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	UnitName     string          `json:"uom_name,omitempty"` // только при чтении, из unit_convert
}

type ProductStats struct {
	TotalProducts int `json:"total_products"`
	LowStockItems int `json:"low_stock_items"`
}
