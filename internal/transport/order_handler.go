package transport

import (
	"encoding/json"
	"net/http"
	"strings"

	"mesnato/internal/domain"
	"mesnato/internal/middleware"
	"mesnato/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CustomerRequest mirrors the customer block of the order payload.
type CustomerRequest struct {
	Name    string `json:"name" validate:"notblank"`
	Phone   string `json:"phone" validate:"notblank"`
	Address string `json:"address" validate:"notblank"`
	Note    string `json:"note"`
}

// OrderRequest represents the order submission payload
type OrderRequest struct {
	Customer CustomerRequest   `json:"customer"`
	Cart     []domain.CartLine `json:"cart"`
	Totals   domain.Totals     `json:"totals"`
}

func (r OrderRequest) toDomain() domain.Order {
	return domain.Order{
		Customer: domain.Customer{
			Name:    r.Customer.Name,
			Phone:   r.Customer.Phone,
			Address: r.Customer.Address,
			Note:    r.Customer.Note,
		},
		Cart:   r.Cart,
		Totals: r.Totals,
	}
}

// OrderHandler handles HTTP requests for order submission
type OrderHandler struct {
	orderService service.OrderService
	logger       *zap.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// RegisterRoutes registers the order route. The optional extra middlewares
// (rate limiting) run after CORS so throttled responses still carry CORS
// headers.
func (h *OrderHandler) RegisterRoutes(r chi.Router, extra ...func(http.Handler) http.Handler) {
	r.Route("/api/order", func(r chi.Router) {
		r.Use(middleware.OrderCORS())
		for _, mw := range extra {
			if mw != nil {
				r.Use(mw)
			}
		}
		r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
			middleware.RespondWithMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
		})
		r.Post("/", h.Submit)
	})
}

// Submit handles an order submission
func (h *OrderHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest

	// A body that is not valid JSON degrades to an empty order, so the
	// caller gets the usual missing-field response instead of a crash.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("Malformed order body", zap.Error(err))
		req = OrderRequest{}
	}

	if err := middleware.ValidateRequest(&req); err != nil {
		missing := make([]string, 0, 3)
		for _, fieldErr := range middleware.FormatValidationErrors(err) {
			missing = append(missing, fieldErr.Field)
		}

		h.logger.Debug("Order rejected, missing fields", zap.Strings("fields", missing))
		middleware.RespondWithMessage(w, http.StatusBadRequest, "Nedostaju polja: "+strings.Join(missing, ", "))
		return
	}

	if len(req.Cart) == 0 {
		h.logger.Debug("Order rejected, empty cart")
		middleware.RespondWithMessage(w, http.StatusBadRequest, "Korpa je prazna")
		return
	}

	if err := h.orderService.Place(r.Context(), req.toDomain()); err != nil {
		// Detail stays in the log; the caller only learns that dispatch
		// failed.
		h.logger.Error("Order dispatch failed", zap.Error(err))
		middleware.RespondWithMessage(w, http.StatusInternalServerError, "Slanje nije uspelo")
		return
	}

	h.logger.Info("Order dispatched",
		zap.String("customer", req.Customer.Name),
		zap.Int("items", len(req.Cart)),
		zap.Int("grams", req.Totals.Grams),
	)
	middleware.RespondWithMessage(w, http.StatusOK, "Email poslat")
}
