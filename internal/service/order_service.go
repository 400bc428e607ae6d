package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mesnato/internal/domain"
	"mesnato/internal/mail"
)

var ErrEmptyCart = errors.New("order has an empty cart")

// MissingFieldsError names the required customer fields absent from an
// order, in payload order.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// OrderService defines the business logic of the notification endpoint:
// validate an incoming order and dispatch the email to the shop operator.
type OrderService interface {
	Place(ctx context.Context, order domain.Order) error
}

type orderService struct {
	mailer mail.Mailer
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(mailer mail.Mailer) OrderService {
	return &orderService{mailer: mailer}
}

// Place validates the order and dispatches the notification email. The
// order is never stored; its lifetime ends with this call.
func (s *orderService) Place(ctx context.Context, order domain.Order) error {
	order.Customer.Name = strings.TrimSpace(order.Customer.Name)
	order.Customer.Phone = strings.TrimSpace(order.Customer.Phone)
	order.Customer.Address = strings.TrimSpace(order.Customer.Address)
	order.Customer.Note = strings.TrimSpace(order.Customer.Note)

	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"name", order.Customer.Name},
		{"phone", order.Customer.Phone},
		{"address", order.Customer.Address},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}

	if len(order.Cart) == 0 {
		return ErrEmptyCart
	}

	if err := s.mailer.Send(ctx, order); err != nil {
		return fmt.Errorf("failed to dispatch order email: %w", err)
	}
	return nil
}
