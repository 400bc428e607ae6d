// Package storefront models the page flow of the shop as an explicit state
// machine instead of a pile of independent booleans: one axis for which
// surface is open, one for the submission in flight. Invalid combinations
// (checkout open after confirmation, two concurrent submissions) cannot be
// represented.
package storefront

import (
	"context"
	"errors"
	"sync"

	"mesnato/internal/cart"
	"mesnato/internal/domain"

	"go.uber.org/zap"
)

// Phase is the surface the visitor currently sees.
type Phase int

const (
	PhaseBrowsing Phase = iota
	PhaseCartOpen
	PhaseCheckoutOpen
	PhaseConfirmed
)

func (p Phase) String() string {
	switch p {
	case PhaseBrowsing:
		return "browsing"
	case PhaseCartOpen:
		return "cart_open"
	case PhaseCheckoutOpen:
		return "checkout_open"
	case PhaseConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// Submission tracks the order request lifecycle, orthogonal to Phase.
type Submission int

const (
	SubmissionIdle Submission = iota
	SubmissionInFlight
	SubmissionFailed
)

var (
	ErrNotInCheckout      = errors.New("checkout is not open")
	ErrSubmissionInFlight = errors.New("an order submission is already in flight")
)

// OrderSender is the slice of the submission client the session needs.
type OrderSender interface {
	Submit(ctx context.Context, customer domain.Customer, lines []domain.CartLine, totals domain.Totals) error
}

// Session drives one visitor's cart and checkout flow.
type Session struct {
	mu         sync.Mutex
	cart       *cart.Store
	sender     OrderSender
	logger     *zap.Logger
	phase      Phase
	submission Submission
	lastErr    error
}

// NewSession creates a session in the browsing phase.
func NewSession(cartStore *cart.Store, sender OrderSender, logger *zap.Logger) *Session {
	return &Session{
		cart:   cartStore,
		sender: sender,
		logger: logger,
	}
}

// Cart exposes the session's cart store.
func (s *Session) Cart() *cart.Store {
	return s.cart
}

// Phase reports the current surface.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Submission reports the submission axis.
func (s *Session) Submission() Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submission
}

// LastError returns the error of the most recent failed submission, nil
// otherwise.
func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// OpenCart shows the cart. Opening it after a confirmation starts a new
// browsing round.
func (s *Session) OpenCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submission == SubmissionInFlight {
		return
	}
	s.phase = PhaseCartOpen
}

// CloseCart returns to browsing.
func (s *Session) CloseCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseCartOpen {
		s.phase = PhaseBrowsing
	}
}

// BeginCheckout moves from the cart view to the checkout form and resets a
// stale failure state.
func (s *Session) BeginCheckout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseCartOpen {
		return ErrNotInCheckout
	}
	s.phase = PhaseCheckoutOpen
	if s.submission == SubmissionFailed {
		s.submission = SubmissionIdle
		s.lastErr = nil
	}
	return nil
}

// CancelCheckout abandons the checkout form. The cart is untouched.
func (s *Session) CancelCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseCheckoutOpen && s.submission != SubmissionInFlight {
		s.phase = PhaseBrowsing
	}
}

// Submit sends the current cart with the given customer details. At most one
// submission can be in flight; while it runs the session reports
// SubmissionInFlight and rejects further triggers. The cart is cleared only
// after the endpoint acknowledges success; any failure preserves it so the
// visitor can resubmit manually.
func (s *Session) Submit(ctx context.Context, customer domain.Customer) error {
	s.mu.Lock()
	if s.phase != PhaseCheckoutOpen {
		s.mu.Unlock()
		return ErrNotInCheckout
	}
	if s.submission == SubmissionInFlight {
		s.mu.Unlock()
		return ErrSubmissionInFlight
	}
	s.submission = SubmissionInFlight
	lines := s.cart.Lines()
	totals := s.cart.Totals()
	s.mu.Unlock()

	// The network call runs outside the lock; the InFlight flag keeps the
	// session single-submission.
	err := s.sender.Submit(ctx, customer, lines, totals)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.submission = SubmissionFailed
		s.lastErr = err
		s.logger.Warn("Order submission failed", zap.Error(err))
		return err
	}

	s.cart.Clear()
	s.phase = PhaseConfirmed
	s.submission = SubmissionIdle
	s.lastErr = nil
	s.logger.Info("Order confirmed", zap.Int("grams", totals.Grams))
	return nil
}
