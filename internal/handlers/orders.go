package handlers

import (
	"context"
	"errors"

	"grocerystore/internal/models"
	"grocerystore/internal/repo"

	"github.com/shopspring/decimal"
)

func (h *Handler) listOrders(ctx context.Context) Reply {
	orders, err := h.orders.AllOrders(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("list orders failed")
		return text("Could not load orders.")
	}
	return text("%s", formatList("Orders", orders, formatOrder))
}

func (h *Handler) showOrder(ctx context.Context, args string) Reply {
	orderID, err := parseID(args)
	if err != nil {
		return text("Usage: /order <id>")
	}

	order, err := h.orders.GetOrder(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return text("Order #%d not found.", orderID)
	}
	if err != nil {
		h.log.Error().Err(err).Int("order_id", orderID).Msg("get order failed")
		return text("Could not load order #%d.", orderID)
	}
	return text("%s", formatOrderDetails(order))
}

func (h *Handler) orderStats(ctx context.Context) Reply {
	stats, err := h.orders.Statistics(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("order statistics failed")
		return text("Could not load order statistics.")
	}
	return text("Orders: %d\nRevenue: %s", stats.TotalOrders, money(stats.TotalRevenue))
}

// createOrder prices every item from the catalogue: line total is
// price_per_unit * quantity, the grand total is their sum.
func (h *Handler) createOrder(ctx context.Context, chatID int64, args string) Reply {
	customer, items, err := parseOrder(args)
	if err != nil {
		return text("Bad order: %v\nUsage: /create_order customer|product_id:quantity,...", err)
	}

	req := models.OrderRequest{CustomerName: customer, GrandTotal: decimal.Zero}
	for _, item := range items {
		product, err := h.products.GetProduct(ctx, item.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			return text("Product #%d not found.", item.ProductID)
		}
		if err != nil {
			return text("Could not load product #%d.", item.ProductID)
		}

		lineTotal := product.PricePerUnit.Mul(item.Quantity).Round(2)
		req.Details = append(req.Details, models.OrderDetailRequest{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			TotalPrice: lineTotal,
		})
		req.GrandTotal = req.GrandTotal.Add(lineTotal)
	}

	if err := req.Validate(); err != nil {
		return text("Bad order: %v", err)
	}

	orderID, err := h.orders.InsertOrder(ctx, req)
	if err != nil {
		return text("Could not create the order.")
	}
	h.log.Info().Int64("chat_id", chatID).Int("order_id", orderID).Str("total", money(req.GrandTotal)).Msg("order created")
	return text("Created order #%d for %s, total %s.", orderID, customer, money(req.GrandTotal))
}

func (h *Handler) deleteOrder(ctx context.Context, chatID int64, args string) Reply {
	orderID, err := parseID(args)
	if err != nil {
		return text("Usage: /delete_order <id>")
	}

	h.setPending(chatID, func(ctx context.Context) Reply {
		deleted, err := h.orders.DeleteOrder(ctx, orderID)
		if err != nil {
			return text("Could not delete order #%d.", orderID)
		}
		if !deleted {
			return text("Order #%d not found.", orderID)
		}
		h.log.Info().Int64("chat_id", chatID).Int("order_id", orderID).Msg("order deleted")
		return text("Deleted order #%d with its items.", orderID)
	})
	return text("Send + to delete order #%d and all of its items.", orderID)
}
