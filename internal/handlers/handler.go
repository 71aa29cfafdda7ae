package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"grocerystore/internal/auth"
	"grocerystore/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

type OrderStore interface {
	AllOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, orderID int) (*models.OrderWithDetails, error)
	Statistics(ctx context.Context) (models.OrderStats, error)
	DeleteOrder(ctx context.Context, orderID int) (bool, error)
	InsertOrder(ctx context.Context, order models.OrderRequest) (int, error)
}

type ProductStore interface {
	AllProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, productID int) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) (int, error)
	UpdateProduct(ctx context.Context, product *models.Product) (int, error)
	DeleteProduct(ctx context.Context, productID int) error
	Statistics(ctx context.Context) (models.ProductStats, error)
}

type UnitStore interface {
	AllUnits(ctx context.Context) ([]models.UnitOfMeasure, error)
}

var errNotLoggedIn = errors.New("not logged in")

// Reply is what the bot sends back for one message or button press.
type Reply struct {
	Text     string
	Keyboard *tgbotapi.InlineKeyboardMarkup
}

func text(format string, args ...any) Reply {
	return Reply{Text: fmt.Sprintf(format, args...)}
}

// pendingAction waits for a "+" from the same chat before it runs.
type pendingAction func(ctx context.Context) Reply

type Handler struct {
	orders   OrderStore
	products ProductStore
	units    UnitStore

	issuer       *auth.Issuer
	passwordHash string
	log          *zerolog.Logger

	mu             sync.Mutex
	tokens         map[int64]string        // чат -> JWT после /login
	waitingConfirm map[int64]pendingAction // чат -> удаление, ждущее "+"
}

func NewHandler(orders OrderStore, products ProductStore, units UnitStore,
	issuer *auth.Issuer, passwordHash string, log *zerolog.Logger) *Handler {
	return &Handler{
		orders:         orders,
		products:       products,
		units:          units,
		issuer:         issuer,
		passwordHash:   passwordHash,
		log:            log,
		tokens:         make(map[int64]string),
		waitingConfirm: make(map[int64]pendingAction),
	}
}

// HandleMessage dispatches one chat message. command is empty for plain text.
func (h *Handler) HandleMessage(ctx context.Context, chatID int64, command, args, message string) Reply {
	if pending := h.takePending(chatID); pending != nil && command == "" {
		if strings.TrimSpace(message) == "+" {
			return pending(ctx)
		}
		return text("Cancelled.")
	}

	if command == "" {
		return text("Unknown command. Send /help for the list of commands.")
	}

	switch command {
	case "start":
		return startReply()
	case "help":
		return text(helpText)
	case "login":
		return h.login(chatID, args)
	case "logout":
		h.mu.Lock()
		delete(h.tokens, chatID)
		h.mu.Unlock()
		return text("Logged out.")
	case "products":
		return h.listProducts(ctx)
	case "units":
		return h.listUnits(ctx)
	case "product_stats":
		return h.productStats(ctx)
	case "orders":
		return h.listOrders(ctx)
	case "order":
		return h.showOrder(ctx, args)
	case "order_stats":
		return h.orderStats(ctx)
	}

	admin := map[string]func(context.Context, int64, string) Reply{
		"create_product": h.createProduct,
		"update_product": h.updateProduct,
		"delete_product": h.deleteProduct,
		"create_order":   h.createOrder,
		"delete_order":   h.deleteOrder,
	}
	fn, ok := admin[command]
	if !ok {
		return text("Unknown command /%s. Send /help for the list of commands.", command)
	}
	if err := h.requireAdmin(chatID); err != nil {
		return text("Use /login <password> first.")
	}
	return fn(ctx, chatID, args)
}

func (h *Handler) login(chatID int64, args string) Reply {
	password := strings.TrimSpace(args)
	if password == "" {
		return text("Usage: /login <password>")
	}
	if err := auth.CheckPassword(password, h.passwordHash); err != nil {
		h.log.Warn().Int64("chat_id", chatID).Err(err).Msg("admin login rejected")
		return text("Wrong password.")
	}

	token, err := h.issuer.Issue(chatID)
	if err != nil {
		h.log.Error().Err(err).Int64("chat_id", chatID).Msg("token issue failed")
		return text("Could not start a session, try again.")
	}

	h.mu.Lock()
	h.tokens[chatID] = token
	h.mu.Unlock()
	return text("Logged in.")
}

func (h *Handler) requireAdmin(chatID int64) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	token, ok := h.tokens[chatID]
	if !ok {
		return errNotLoggedIn
	}
	if _, err := h.issuer.Verify(token, chatID); err != nil {
		delete(h.tokens, chatID) // просроченный токен больше не нужен
		return err
	}
	return nil
}

func (h *Handler) setPending(chatID int64, action pendingAction) {
	h.mu.Lock()
	h.waitingConfirm[chatID] = action
	h.mu.Unlock()
}

func (h *Handler) takePending(chatID int64) pendingAction {
	h.mu.Lock()
	defer h.mu.Unlock()

	action := h.waitingConfirm[chatID]
	delete(h.waitingConfirm, chatID)
	return action
}

const helpText = `/products - all products
/units - units of measure
/product_stats - product statistics
/orders - all orders, newest first
/order <id> - order with its items
/order_stats - order count and revenue
/login <password> - start an admin session
/logout - end the admin session

Admin:
/create_product name|unit_id|price
/update_product id|name|unit_id|price
/delete_product <id>
/create_order customer|product_id:quantity,product_id:quantity
/delete_order <id>`

func startReply() Reply {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Products", "products"),
			tgbotapi.NewInlineKeyboardButtonData("Units", "units"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Orders", "orders"),
			tgbotapi.NewInlineKeyboardButtonData("Order stats", "order_stats"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Product stats", "product_stats"),
			tgbotapi.NewInlineKeyboardButtonData("Help", "help"),
		),
	)
	return Reply{Text: "Grocery store admin. Choose an action:", Keyboard: &keyboard}
}
