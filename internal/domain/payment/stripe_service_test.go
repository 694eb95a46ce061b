// internal/domain/payment/stripe_service_test.go
package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lepetitmarche/storefront-api/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStripeService(t *testing.T, handler http.HandlerFunc) (*StripeService, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Stripe.SecretKey = "sk_test_123"
	cfg.Stripe.APIBaseURL = server.URL
	cfg.Stripe.Currency = "eur"

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewStripeService(cfg, logger), server
}

func TestCreatePaymentIntent(t *testing.T) {
	svc, _ := newTestStripeService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "690", r.PostForm.Get("amount"))
		assert.Equal(t, "eur", r.PostForm.Get("currency"))
		assert.Equal(t, "true", r.PostForm.Get("automatic_payment_methods[enabled]"))
		assert.Equal(t, "2", r.PostForm.Get("metadata[cart_items_count]"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_1","client_secret":"pi_1_secret","amount":690,"currency":"eur","status":"requires_payment_method"}`))
	})

	intent, err := svc.CreatePaymentIntent(context.Background(), 690, 2)
	require.NoError(t, err)
	assert.Equal(t, "pi_1", intent.ID)
	assert.Equal(t, "pi_1_secret", intent.ClientSecret)
	assert.Equal(t, int64(690), intent.Amount)
}

func TestCreateCheckoutSession(t *testing.T) {
	svc, _ := newTestStripeService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/checkout/sessions", r.URL.Path)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "payment", r.PostForm.Get("mode"))
		assert.Equal(t, "https://shop.example/ok", r.PostForm.Get("success_url"))
		assert.Equal(t, "https://shop.example/ko", r.PostForm.Get("cancel_url"))
		assert.Equal(t, "Baguette tradition", r.PostForm.Get("line_items[0][price_data][product_data][name]"))
		assert.Equal(t, "120", r.PostForm.Get("line_items[0][price_data][unit_amount]"))
		assert.Equal(t, "2", r.PostForm.Get("line_items[0][quantity]"))
		assert.Equal(t, "450", r.PostForm.Get("line_items[1][price_data][unit_amount]"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"cs_1","url":"https://checkout.stripe.com/pay/cs_1"}`))
	})

	session, err := svc.CreateCheckoutSession(context.Background(), []SessionLine{
		{Name: "Baguette tradition", UnitAmount: 120, Quantity: 2},
		{Name: "Fromage de chèvre", UnitAmount: 450, Quantity: 1},
	}, "https://shop.example/ok", "https://shop.example/ko")
	require.NoError(t, err)
	assert.Equal(t, "cs_1", session.ID)
}

func TestAPIErrorIsSurfaced(t *testing.T) {
	svc, _ := newTestStripeService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"type":"card_error","message":"Your card was declined."}}`))
	})

	_, err := svc.CreatePaymentIntent(context.Background(), 100, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Your card was declined.")
	assert.Contains(t, err.Error(), "402")
}

func TestMissingSecretKey(t *testing.T) {
	cfg := &config.Config{}
	cfg.Stripe.APIBaseURL = "http://127.0.0.1:0"
	cfg.Stripe.Currency = "eur"
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	svc := NewStripeService(cfg, logger)

	_, err := svc.CreatePaymentIntent(context.Background(), 100, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing Stripe secret key")
}
