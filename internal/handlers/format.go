package handlers

import (
	"fmt"
	"strings"

	"grocerystore/internal/models"

	"github.com/shopspring/decimal"
)

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatProduct(p models.Product) string {
	return fmt.Sprintf("#%d %s - %s per %s", p.ID, p.Name, money(p.PricePerUnit), p.UnitName)
}

func formatOrder(o models.Order) string {
	date := o.Date
	if date == "" {
		date = "no date"
	}
	return fmt.Sprintf("#%d %s - %s (%s)", o.ID, o.CustomerName, money(o.Total), date)
}

func formatOrderDetails(o *models.OrderWithDetails) string {
	var sb strings.Builder
	sb.WriteString(formatOrder(o.Order))
	sb.WriteString("\n")
	if len(o.Items) == 0 {
		sb.WriteString("\nNo items.")
		return sb.String()
	}
	for _, item := range o.Items {
		name := item.ProductName
		if name == "" {
			name = fmt.Sprintf("product #%d (deleted)", item.ProductID)
		}
		fmt.Fprintf(&sb, "\n%s x %s @ %s = %s",
			name, item.Quantity.String(), money(item.UnitPrice), money(item.Total))
	}
	return sb.String()
}

func formatList[T any](title string, items []T, format func(T) string) string {
	if len(items) == 0 {
		return title + "\n\nNothing here yet."
	}
	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n")
	for _, item := range items {
		sb.WriteString("\n")
		sb.WriteString(format(item))
	}
	return sb.String()
}
