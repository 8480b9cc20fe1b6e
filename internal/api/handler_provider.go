package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/phamdv/gamestore/internal/repos/cart"
	"github.com/phamdv/gamestore/internal/repos/games"
	"github.com/phamdv/gamestore/internal/repos/library"
	"github.com/phamdv/gamestore/internal/repos/users"
	"github.com/phamdv/gamestore/internal/services/commerce"
)

// HandlerProvider wraps the commerce service and exposes HTTP handlers.
type HandlerProvider struct {
	svc *commerce.Service
}

// NewHandler returns a new handler provider.
func NewHandler(svc *commerce.Service) *HandlerProvider {
	return &HandlerProvider{svc: svc}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps domain sentinels to HTTP statuses. Anything
// unrecognized (store failures included) becomes an opaque 500; the
// atomic unit has already rolled back, so the caller may retry.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, commerce.ErrAdminNotAllowed):
		writeError(w, http.StatusForbidden, "admin accounts cannot transact")
	case errors.Is(err, commerce.ErrInsufficientFunds):
		writeError(w, http.StatusConflict, "insufficient funds")
	case errors.Is(err, cart.ErrAlreadyInCart):
		writeError(w, http.StatusConflict, "game already in cart")
	case errors.Is(err, library.ErrAlreadyOwned):
		writeError(w, http.StatusConflict, "game already owned")
	case errors.Is(err, commerce.ErrEmptyCart):
		writeError(w, http.StatusBadRequest, "cart is empty")
	case errors.Is(err, commerce.ErrRefundWindowExpired):
		writeError(w, http.StatusBadRequest, "refund window expired")
	case errors.Is(err, commerce.ErrInvalidAmount):
		writeError(w, http.StatusBadRequest, "amount must be positive")
	case errors.Is(err, commerce.ErrDepositLimitExceeded):
		writeError(w, http.StatusBadRequest, "deposit would exceed wallet limit")
	case errors.Is(err, commerce.ErrNotOwned):
		writeError(w, http.StatusNotFound, "game not owned")
	case errors.Is(err, games.ErrGameNotFound):
		writeError(w, http.StatusNotFound, "game not found")
	case errors.Is(err, users.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "user not found")
	default:
		slog.Error("internal error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// parseGameIDFromPath reads `{gameID}` from chi routes like:
//
//	DELETE /cart/remove/{gameID}
//	POST   /library/refund/{gameID}
func parseGameIDFromPath(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "gameID")
	if idStr == "" {
		return 0, fmt.Errorf("missing gameID")
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid gameID")
	}

	return id, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB cap
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty body")
		}

		return fmt.Errorf("invalid JSON")
	}

	return nil
}

// --- Cart ---

type cartItemDTO struct {
	GameID   int64  `json:"game_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
}

// GetCartHandler handles GET /cart
func (h *HandlerProvider) GetCartHandler(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r)

	view, err := h.svc.Cart(r.Context(), id.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	items := make([]cartItemDTO, 0, len(view.Items))
	for _, it := range view.Items {
		items = append(items, cartItemDTO{
			GameID:   it.GameID,
			Name:     it.Name,
			Category: it.Category,
			Price:    formatAmount(it.Price),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items": items,
		"total": formatAmount(view.Total),
	})
}

// AddToCartHandler handles POST /cart/add
func (h *HandlerProvider) AddToCartHandler(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r)

	var req struct {
		GameID int64 `json:"game_id"`
	}

	err := decodeBody(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.GameID <= 0 {
		writeError(w, http.StatusBadRequest, "game_id required")
		return
	}

	err = h.svc.AddToCart(r.Context(), id.UserID, req.GameID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// RemoveFromCartHandler handles DELETE /cart/remove/{gameID}
func (h *HandlerProvider) RemoveFromCartHandler(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r)

	gameID, err := parseGameIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid gameID in path")
		return
	}

	err = h.svc.RemoveFromCart(r.Context(), id.UserID, gameID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CheckoutHandler handles POST /cart/checkout
func (h *HandlerProvider) CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r)

	newBalance, err := h.svc.Checkout(r.Context(), id.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"new_balance": formatAmount(newBalance),
	})
}

// --- Library ---

type ownedGameDTO struct {
	GameID      int64     `json:"game_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Publisher   string    `json:"publisher"`
	PricePaid   string    `json:"price_paid"`
	PurchasedAt time.Time `json:"purchased_at"`
	CanRefund   bool      `json:"can_refund"`
}

// GetLibraryHandler handles GET /library
func (h *HandlerProvider) GetLibraryHandler(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r)

	owned, err := h.svc.Library(r.Context(), id.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]ownedGameDTO, 0, len(owned))
	for _, g := range owned {
		out = append(out, ownedGameDTO{
			GameID:      g.GameID,
			Name:        g.Name,
			Category:    g.Category,
			Publisher:   g.Publisher,
			PricePaid:   formatAmount(g.PricePaid),
			PurchasedAt: g.PurchasedAt,
			CanRefund:   g.CanRefund,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

// OwnsHandler handles GET /library/owns/{gameID}
func (h *HandlerProvider) OwnsHandler(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r)

	gameID, err := parseGameIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid gameID in path")
		return
	}

	owns, err := h.svc.Owns(r.Context(), id.UserID, gameID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"owns": owns})
}

// RefundHandler handles POST /library/refund/{gameID}
func (h *HandlerProvider) RefundHandler(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r)

	gameID, err := parseGameIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid gameID in path")
		return
	}

	newBalance, err := h.svc.Refund(r.Context(), id.UserID, gameID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"new_balance": formatAmount(newBalance),
	})
}

// --- Wallet ---

// GetWalletHandler handles GET /wallet
func (h *HandlerProvider) GetWalletHandler(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r)

	balance, err := h.svc.Balance(r.Context(), id.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user_id": id.UserID,
		"balance": formatAmount(balance),
	})
}

// DepositHandler handles POST /wallet/deposit
func (h *HandlerProvider) DepositHandler(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r)

	var req struct {
		Amount string `json:"amount"`
	}

	err := decodeBody(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	newBalance, err := h.svc.Deposit(r.Context(), id.UserID, amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"new_balance": formatAmount(newBalance),
	})
}

// --- Transactions ---

type transactionDTO struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"`
	GameID      *int64    `json:"game_id,omitempty"`
	GameName    *string   `json:"game_name,omitempty"`
	BatchID     *string   `json:"batch_id,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// GetTransactionsHandler handles GET /transactions
func (h *HandlerProvider) GetTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r)

	rows, err := h.svc.History(r.Context(), id.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]transactionDTO, 0, len(rows))
	for _, row := range rows {
		dto := transactionDTO{
			ID:          row.ID,
			Type:        string(row.Type),
			Amount:      formatAmount(row.Amount),
			GameID:      row.GameID,
			GameName:    row.GameName,
			Description: row.Description,
			CreatedAt:   row.CreatedAt,
		}

		if row.BatchID != nil {
			b := row.BatchID.String()
			dto.BatchID = &b
		}

		out = append(out, dto)
	}

	writeJSON(w, http.StatusOK, out)
}

// --- Admin ---

type gameStatDTO struct {
	GameID     int64  `json:"game_id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Publisher  string `json:"publisher"`
	Price      string `json:"price"`
	SalesCount int64  `json:"sales_count"`
	TotalSales int64  `json:"total_sales"`
	Revenue    string `json:"revenue"`
}

// GetStatisticsHandler handles GET /admin/statistics
func (h *HandlerProvider) GetStatisticsHandler(w http.ResponseWriter, r *http.Request) {
	id := identityFrom(r)

	if !id.IsAdmin {
		writeError(w, http.StatusForbidden, "admin only")
		return
	}

	report, err := h.svc.Statistics(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]gameStatDTO, 0, len(report.Games))
	for _, st := range report.Games {
		out = append(out, gameStatDTO{
			GameID:     st.Game.ID,
			Name:       st.Game.Name,
			Category:   st.Game.Category,
			Publisher:  st.Game.Publisher,
			Price:      formatAmount(st.Game.Price),
			SalesCount: st.Game.SalesCount,
			TotalSales: st.TotalSales,
			Revenue:    formatAmount(st.Revenue),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"games": out,
		"summary": map[string]any{
			"total_revenue": formatAmount(report.Summary.TotalRevenue),
			"total_sales":   report.Summary.TotalSales,
			"total_games":   report.Summary.TotalGames,
		},
	})
}
