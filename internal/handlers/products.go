package handlers

import (
	"context"
	"errors"
	"strconv"

	"grocerystore/internal/models"
	"grocerystore/internal/repo"
)

func (h *Handler) listProducts(ctx context.Context) Reply {
	products, err := h.products.AllProducts(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("list products failed")
		return text("Could not load products.")
	}
	return text("%s", formatList("Products", products, formatProduct))
}

func (h *Handler) listUnits(ctx context.Context) Reply {
	units, err := h.units.AllUnits(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("list units failed")
		return text("Could not load units.")
	}
	return text("%s", formatList("Units of measure", units, func(u models.UnitOfMeasure) string {
		return u.Name + " (id " + strconv.Itoa(u.ID) + ")"
	}))
}

func (h *Handler) productStats(ctx context.Context) Reply {
	stats, err := h.products.Statistics(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("product statistics failed")
		return text("Could not load product statistics.")
	}
	return text("Products: %d\nLow stock: %d", stats.TotalProducts, stats.LowStockItems)
}

func (h *Handler) createProduct(ctx context.Context, chatID int64, args string) Reply {
	product, err := parseProduct(args)
	if err != nil {
		return text("Bad product: %v\nUsage: /create_product name|unit_id|price", err)
	}

	id, err := h.products.CreateProduct(ctx, &product)
	if err != nil {
		return text("Could not create product.")
	}
	h.log.Info().Int64("chat_id", chatID).Int("product_id", id).Msg("product created")
	return text("Created product #%d %s.", id, product.Name)
}

func (h *Handler) updateProduct(ctx context.Context, chatID int64, args string) Reply {
	product, err := parseProductUpdate(args)
	if err != nil {
		return text("Bad product: %v\nUsage: /update_product id|name|unit_id|price", err)
	}

	// update ничего не сообщает о несуществующем id, проверяем заранее
	if _, err := h.products.GetProduct(ctx, product.ID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return text("Product #%d not found.", product.ID)
		}
		return text("Could not load product #%d.", product.ID)
	}

	id, err := h.products.UpdateProduct(ctx, &product)
	if err != nil {
		return text("Could not update product #%d.", product.ID)
	}
	h.log.Info().Int64("chat_id", chatID).Int("product_id", id).Msg("product updated")
	return text("Updated product #%d: %s, unit %d, %s.", id, product.Name, product.UnitID, money(product.PricePerUnit))
}

func (h *Handler) deleteProduct(ctx context.Context, chatID int64, args string) Reply {
	productID, err := parseID(args)
	if err != nil {
		return text("Usage: /delete_product <id>")
	}

	product, err := h.products.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return text("Product #%d not found.", productID)
		}
		return text("Could not load product #%d.", productID)
	}

	h.setPending(chatID, func(ctx context.Context) Reply {
		if err := h.products.DeleteProduct(ctx, productID); err != nil {
			return text("Could not delete product #%d.", productID)
		}
		h.log.Info().Int64("chat_id", chatID).Int("product_id", productID).Msg("product deleted")
		return text("Deleted product #%d.", productID)
	})
	return text("Send + to delete product %s (#%d).", product.Name, productID)
}
