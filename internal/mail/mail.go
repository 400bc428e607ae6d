// Package mail turns a submitted order into the notification email sent to
// the shop operator.
package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mesnato/internal/domain"
	"mesnato/internal/pricing"

	gomail "github.com/wneessen/go-mail"
)

// ErrMissingCredential is returned when the outbound mail password is not
// present in the environment. The request fails cleanly; the process never
// crashes over it.
var ErrMissingCredential = errors.New("outbound mail credential is not configured")

// Mailer dispatches one order notification.
type Mailer interface {
	Send(ctx context.Context, order domain.Order) error
}

// Config holds the SMTP settings for the notification mailbox.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// SMTPMailer sends order notifications over authenticated SMTP. It holds no
// connection between sends; each dispatch dials, sends and closes.
type SMTPMailer struct {
	cfg Config
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, order domain.Order) error {
	if m.cfg.Password == "" {
		return ErrMissingCredential
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(m.cfg.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(Subject(order.Customer))
	msg.SetBodyString(gomail.TypeTextPlain, Body(order))

	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send order email: %w", err)
	}
	return nil
}

// Subject builds the notification subject line.
func Subject(customer domain.Customer) string {
	return fmt.Sprintf("Nova narudžbina · %s (%s)", customer.Name, customer.Phone)
}

// Body renders the plain-text order summary: customer details, itemized
// cart lines with formatted weights, and the totals.
func Body(order domain.Order) string {
	lines := []string{
		"Ime: " + order.Customer.Name,
		"Telefon: " + order.Customer.Phone,
		"Adresa: " + order.Customer.Address,
	}
	if order.Customer.Note != "" {
		lines = append(lines, "Napomena: "+order.Customer.Note)
	}

	lines = append(lines, "", "Stavke:")
	for _, item := range order.Cart {
		lines = append(lines, fmt.Sprintf("%s — %s — %s", item.Name, pricing.FormatWeight(item.Grams), item.Price))
	}

	lines = append(lines,
		"",
		"Ukupna tezina: "+pricing.FormatWeight(order.Totals.Grams),
		"Ukupna cena: "+pricing.FormatRSD(order.Totals.Price),
	)
	return strings.Join(lines, "\n")
}
