package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// QuantityPlaces matches the scale of order_details.quantity.
const QuantityPlaces = 3

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the tagged fields plus the money rules the tags cannot express.
func (r *OrderRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.GrandTotal.IsNegative() {
		return errors.New("grand_total must not be negative")
	}
	for i, d := range r.Details {
		if !d.Quantity.IsPositive() {
			return fmt.Errorf("order_details[%d]: quantity must be positive", i)
		}
		if !d.Quantity.Equal(d.Quantity.Round(QuantityPlaces)) {
			return fmt.Errorf("order_details[%d]: quantity allows at most %d decimal places", i, QuantityPlaces)
		}
		if d.TotalPrice.IsNegative() {
			return fmt.Errorf("order_details[%d]: total_price must not be negative", i)
		}
	}
	return nil
}

func (p *Product) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}
	if p.PricePerUnit.IsNegative() {
		return errors.New("price_per_unit must not be negative")
	}
	return nil
}
