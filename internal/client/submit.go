// Package client implements the storefront side of the order submission
// contract: local validation, payload serialization and a single POST to
// the notification endpoint.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mesnato/internal/domain"

	"go.uber.org/zap"
)

var ErrEmptyCart = errors.New("cart is empty")

// ValidationError reports required customer fields that are blank after
// trimming. It is returned before any network I/O happens.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// TransportError means the request could not complete at all. The cart is
// untouched; resubmission is a fresh manual action.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("order submission failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServerError carries a non-success response from the endpoint, with the
// endpoint's message when the body had one.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("order rejected with status %d", e.Status)
	}
	return fmt.Sprintf("order rejected with status %d: %s", e.Status, e.Message)
}

// Submitter posts orders to the notification endpoint.
type Submitter struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

// NewSubmitter creates a Submitter for the given endpoint URL. A nil HTTP
// client gets a default with a conservative timeout so a dead endpoint
// cannot hold a submission open forever.
func NewSubmitter(endpoint string, httpClient *http.Client, logger *zap.Logger) *Submitter {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Submitter{
		endpoint: endpoint,
		client:   httpClient,
		logger:   logger,
	}
}

// Submit validates the order locally, then performs exactly one POST. On a
// nil return the endpoint has acknowledged the order; only then may the
// caller clear the cart. There is no automatic retry.
func (s *Submitter) Submit(ctx context.Context, customer domain.Customer, lines []domain.CartLine, totals domain.Totals) error {
	customer.Name = strings.TrimSpace(customer.Name)
	customer.Phone = strings.TrimSpace(customer.Phone)
	customer.Address = strings.TrimSpace(customer.Address)
	customer.Note = strings.TrimSpace(customer.Note)

	var missing []string
	if customer.Name == "" {
		missing = append(missing, "name")
	}
	if customer.Phone == "" {
		missing = append(missing, "phone")
	}
	if customer.Address == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	if len(lines) == 0 {
		return ErrEmptyCart
	}

	payload := domain.Order{
		Customer: customer,
		Cart:     lines,
		Totals:   totals,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to serialize order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("Order submission transport failure", zap.Error(err))
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		s.logger.Info("Order submitted",
			zap.Int("items", len(lines)),
			zap.Int("grams", totals.Grams),
		)
		return nil
	}

	var reply struct {
		Message string `json:"message"`
	}
	// A body that is not JSON leaves the message empty; the caller still
	// gets the status.
	_ = json.NewDecoder(resp.Body).Decode(&reply)

	s.logger.Warn("Order rejected by endpoint",
		zap.Int("status", resp.StatusCode),
		zap.String("message", reply.Message),
	)
	return &ServerError{Status: resp.StatusCode, Message: reply.Message}
}
