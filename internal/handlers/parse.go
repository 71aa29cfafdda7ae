package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"grocerystore/internal/models"

	"github.com/shopspring/decimal"
)

type orderItemArg struct {
	ProductID int
	Quantity  decimal.Decimal
}

func parseID(args string) (int, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return 0, fmt.Errorf("missing id")
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id must be a positive number, got %q", fields[0])
	}
	return id, nil
}

// parseProduct reads "name|unit_id|price".
func parseProduct(args string) (models.Product, error) {
	data := strings.Split(args, "|")
	if len(data) != 3 {
		return models.Product{}, fmt.Errorf("expected name|unit_id|price")
	}

	unitID, err := strconv.Atoi(strings.TrimSpace(data[1]))
	if err != nil {
		return models.Product{}, fmt.Errorf("unit_id must be a number, got %q", data[1])
	}
	price, err := decimal.NewFromString(strings.TrimSpace(data[2]))
	if err != nil {
		return models.Product{}, fmt.Errorf("price must be a number, got %q", data[2])
	}

	product := models.Product{
		Name:         strings.TrimSpace(data[0]),
		UnitID:       unitID,
		PricePerUnit: price,
	}
	return product, product.Validate()
}

// parseProductUpdate reads "id|name|unit_id|price".
func parseProductUpdate(args string) (models.Product, error) {
	idPart, rest, ok := strings.Cut(args, "|")
	if !ok {
		return models.Product{}, fmt.Errorf("expected id|name|unit_id|price")
	}
	id, err := parseID(idPart)
	if err != nil {
		return models.Product{}, err
	}
	product, err := parseProduct(rest)
	if err != nil {
		return models.Product{}, err
	}
	product.ID = id
	return product, nil
}

// parseOrder reads "customer|product_id:quantity,product_id:quantity".
func parseOrder(args string) (string, []orderItemArg, error) {
	customer, itemsPart, ok := strings.Cut(args, "|")
	customer = strings.TrimSpace(customer)
	if !ok || customer == "" {
		return "", nil, fmt.Errorf("expected customer|product_id:quantity,...")
	}

	var items []orderItemArg
	for _, raw := range strings.Split(itemsPart, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		idPart, qtyPart, ok := strings.Cut(raw, ":")
		if !ok {
			return "", nil, fmt.Errorf("item %q: expected product_id:quantity", raw)
		}
		id, err := strconv.Atoi(strings.TrimSpace(idPart))
		if err != nil {
			return "", nil, fmt.Errorf("item %q: product_id must be a number", raw)
		}
		qty, err := decimal.NewFromString(strings.TrimSpace(qtyPart))
		if err != nil {
			return "", nil, fmt.Errorf("item %q: quantity must be a number", raw)
		}
		items = append(items, orderItemArg{ProductID: id, Quantity: qty})
	}
	if len(items) == 0 {
		return "", nil, fmt.Errorf("order has no items")
	}
	return customer, items, nil
}
