package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/czl524069797/sport-oracle/internal/trading"
)

// TradingHandler exposes the trading venue's order API.
type TradingHandler struct {
	client *trading.Client
}

// NewTradingHandler creates a new trading handler
func NewTradingHandler(client *trading.Client) *TradingHandler {
	return &TradingHandler{client: client}
}

// PlaceOrder places an order on the venue
// POST /api/trading/place
func (h *TradingHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req trading.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid order request body", err)
		return
	}
	if req.TokenID == "" {
		respondError(w, http.StatusBadRequest, "token_id is required", nil)
		return
	}

	resp, err := h.client.PlaceOrder(r.Context(), req)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to place order: "+err.Error(), err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"order_id": resp.OrderID,
		"status":   resp.Status,
	})
}

// CancelOrder cancels an existing order
// POST /api/trading/cancel
func (h *TradingHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID string `json:"order_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid cancel request body", err)
		return
	}
	if req.OrderID == "" {
		respondError(w, http.StatusBadRequest, "order_id is required", nil)
		return
	}

	resp, err := h.client.CancelOrder(r.Context(), req.OrderID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to cancel order: "+err.Error(), err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"result":  resp,
	})
}

// OpenOrders lists all open orders
// GET /api/trading/orders
func (h *TradingHandler) OpenOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.client.OpenOrders(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch orders: "+err.Error(), err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"orders":  orders,
	})
}

// Balance returns the account balance
// GET /api/trading/balance
func (h *TradingHandler) Balance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.client.AccountBalance(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch balance: "+err.Error(), err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"balance": balance,
	})
}
