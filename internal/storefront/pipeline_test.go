package storefront

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"mesnato/internal/cart"
	"mesnato/internal/catalog"
	"mesnato/internal/client"
	"mesnato/internal/domain"
	"mesnato/internal/mail"
	"mesnato/internal/service"
	"mesnato/internal/transport"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Capturing mailer standing in for SMTP
type capturingMailer struct {
	sent []domain.Order
	err  error
}

func (m *capturingMailer) Send(ctx context.Context, order domain.Order) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, order)
	return nil
}

// newPipeline wires the full stack: cart -> session -> submission client ->
// HTTP -> order handler -> order service -> mailer.
func newPipeline(t *testing.T, mailer mail.Mailer) (*Session, func()) {
	t.Helper()

	router := chi.NewRouter()
	transport.NewOrderHandler(service.NewOrderService(mailer), zap.NewNop()).RegisterRoutes(router)
	server := httptest.NewServer(router)

	submitter := client.NewSubmitter(server.URL+"/api/order", server.Client(), zap.NewNop())
	session := NewSession(cart.NewStore(nil), submitter, zap.NewNop())
	return session, server.Close
}

func TestOrderPipelineEndToEnd(t *testing.T) {
	mailer := &capturingMailer{}
	session, shutdown := newPipeline(t, mailer)
	defer shutdown()

	cat := catalog.Default()
	suviVrat, err := cat.FindByName("Suvi Vrat")
	if err != nil {
		t.Fatalf("catalog lookup failed: %v", err)
	}

	if _, err := session.Cart().AddItem(suviVrat, 500); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if _, err := session.Cart().AddItem(suviVrat, 200); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	totals := session.Cart().Totals()
	if totals.Grams != 700 || totals.Price != 1050 {
		t.Fatalf("totals = %+v, want 700 g and 1050", totals)
	}

	session.OpenCart()
	if err := session.BeginCheckout(); err != nil {
		t.Fatalf("BeginCheckout failed: %v", err)
	}
	if err := session.Submit(context.Background(), testCustomer); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if session.Cart().Len() != 0 {
		t.Errorf("cart has %d items after confirmation, want 0", session.Cart().Len())
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("mailer dispatched %d orders, want 1", len(mailer.sent))
	}

	order := mailer.sent[0]
	if len(order.Cart) != 2 || order.Cart[0].Grams != 500 || order.Cart[1].Grams != 200 {
		t.Errorf("order cart = %+v", order.Cart)
	}
	if order.Totals.Grams != 700 || order.Totals.Price != 1050 {
		t.Errorf("order totals = %+v", order.Totals)
	}

	body := mail.Body(order)
	if !strings.Contains(body, "Suvi Vrat — 500 g — 1500 RSD") {
		t.Errorf("email body is missing the itemized line:\n%s", body)
	}
	if !strings.Contains(body, "Ukupna cena: 1.050 RSD") {
		t.Errorf("email body is missing the total:\n%s", body)
	}
}

func TestOrderPipelineDispatchFailureKeepsCart(t *testing.T) {
	mailer := &capturingMailer{err: errors.New("smtp refused the connection")}
	session, shutdown := newPipeline(t, mailer)
	defer shutdown()

	if _, err := session.Cart().AddItem(domain.Product{Name: "Mast", Price: "250 RSD"}, 1000); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	session.OpenCart()
	if err := session.BeginCheckout(); err != nil {
		t.Fatalf("BeginCheckout failed: %v", err)
	}

	err := session.Submit(context.Background(), testCustomer)

	var serverErr *client.ServerError
	if !errors.As(err, &serverErr) {
		t.Fatalf("Submit error = %v, want *client.ServerError", err)
	}
	if serverErr.Status != 500 || serverErr.Message != "Slanje nije uspelo" {
		t.Errorf("server error = %+v, want the generic 500", serverErr)
	}
	if session.Cart().Len() != 1 {
		t.Errorf("cart has %d items after a failed dispatch, want 1", session.Cart().Len())
	}
	if session.Submission() != SubmissionFailed {
		t.Errorf("submission = %v, want failed", session.Submission())
	}
}
