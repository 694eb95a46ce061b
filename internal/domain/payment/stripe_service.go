// internal/domain/payment/stripe_service.go
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lepetitmarche/storefront-api/internal/config"
	"github.com/sirupsen/logrus"
)

// StripeService turns a trusted amount into a payable artifact: a
// payment-intent client secret or a hosted checkout-session id. The
// API base URL comes from configuration so tests can point the client
// at a local server.
type StripeService struct {
	secretKey  string
	baseURL    string
	currency   string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewStripeService creates a new Stripe payment service
func NewStripeService(cfg *config.Config, logger *logrus.Logger) *StripeService {
	return &StripeService{
		secretKey: cfg.Stripe.SecretKey,
		baseURL:   strings.TrimRight(cfg.Stripe.APIBaseURL, "/"),
		currency:  cfg.Stripe.Currency,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// PaymentIntent is the subset of Stripe's payment-intent object the
// checkout flow needs.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// CheckoutSession is the subset of Stripe's checkout-session object
// the hosted flow needs.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// SessionLine is one hosted-checkout line item: unit amount in minor
// units, quantity as given by the cart snapshot.
type SessionLine struct {
	Name       string
	UnitAmount int64
	Quantity   int
}

// CreatePaymentIntent creates a payment intent for the given amount in
// minor units and returns its client secret.
func (s *StripeService) CreatePaymentIntent(ctx context.Context, amountCents int64, itemCount int) (*PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", s.currency)
	form.Set("automatic_payment_methods[enabled]", "true")
	form.Set("metadata[cart_items_count]", strconv.Itoa(itemCount))

	body, err := s.makeAPICall(ctx, http.MethodPost, "/payment_intents", form)
	if err != nil {
		return nil, err
	}

	var intent PaymentIntent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("failed to parse payment intent response: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"payment_intent": intent.ID,
		"amount_cents":   amountCents,
		"currency":       s.currency,
	}).Info("Payment intent created")

	return &intent, nil
}

// CreateCheckoutSession creates a hosted payment session with one line
// item per cart entry and the given success/cancel redirect URLs.
func (s *StripeService) CreateCheckoutSession(ctx context.Context, lines []SessionLine, successURL, cancelURL string) (*CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", successURL)
	form.Set("cancel_url", cancelURL)

	for i, line := range lines {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[price_data][currency]", s.currency)
		form.Set(prefix+"[price_data][product_data][name]", line.Name)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(line.UnitAmount, 10))
		form.Set(prefix+"[quantity]", strconv.Itoa(line.Quantity))
	}

	body, err := s.makeAPICall(ctx, http.MethodPost, "/checkout/sessions", form)
	if err != nil {
		return nil, err
	}

	var session CheckoutSession
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("failed to parse checkout session response: %w", err)
	}

	s.logger.WithField("checkout_session", session.ID).Info("Checkout session created")
	return &session, nil
}

// makeAPICall sends a form-encoded request to the Stripe API
func (s *StripeService) makeAPICall(ctx context.Context, method, endpoint string, form url.Values) ([]byte, error) {
	if s.secretKey == "" {
		return nil, fmt.Errorf("missing Stripe secret key")
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build Stripe request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stripe request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Stripe response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error struct {
				Type    string `json:"type"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("stripe API error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("stripe API error (%d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}
