// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/lepetitmarche/storefront-api/internal/config"
	"github.com/lepetitmarche/storefront-api/internal/domain/payment"
	"github.com/lepetitmarche/storefront-api/internal/domain/product"
	"github.com/sirupsen/logrus"
)

// Catalog bulk-resolves product ids to their authoritative entries.
type Catalog interface {
	ResolveProducts(ctx context.Context, ids []string) (map[string]product.Product, error)
}

// Payments turns a trusted amount into a payable artifact.
type Payments interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64, itemCount int) (*payment.PaymentIntent, error)
	CreateCheckoutSession(ctx context.Context, lines []payment.SessionLine, successURL, cancelURL string) (*payment.CheckoutSession, error)
}

// Item is one (productId, quantity) pair submitted at checkout time.
// Quantity binds as a number so fractional values can be rejected with
// the proper message instead of a bind error.
type Item struct {
	ProductID string  `json:"productId"`
	Quantity  float64 `json:"quantity"`
}

// Request is the checkout pricing request body
type Request struct {
	Items []Item `json:"items"`
}

// maxLineQuantity bounds a single line. Anything larger is not a
// plausible order and would let the int64 cents accumulator overflow,
// so the whole request is rejected.
const maxLineQuantity = 1_000_000

// PricedLine is one line of a trusted pricing result
type PricedLine struct {
	ProductID string
	Name      string
	UnitCents int64
	Quantity  int
}

// PricedOrder is the trusted pricing result for a whole request.
// Either every line priced or the request was rejected; partial
// pricing is never returned.
type PricedOrder struct {
	Lines      []PricedLine
	TotalCents int64
}

// Service recomputes authoritative prices from the catalog and
// forwards the trusted total to the payment capability. Stateless per
// request.
type Service struct {
	catalog  Catalog
	payments Payments
	config   *config.Config
	logger   *logrus.Logger
}

// NewService creates a new checkout service
func NewService(catalog Catalog, payments Payments, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		catalog:  catalog,
		payments: payments,
		config:   cfg,
		logger:   logger,
	}
}

// PriceItems re-resolves every requested product against the catalog
// and accumulates the trusted total in integer cents. Rounding is
// applied per line before multiplying by quantity so repeated
// identical lines never drift by fractional cents.
func (s *Service) PriceItems(ctx context.Context, items []Item) (*PricedOrder, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	seen := make(map[string]bool, len(items))
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if !seen[it.ProductID] {
			seen[it.ProductID] = true
			ids = append(ids, it.ProductID)
		}
	}

	resolved, err := s.catalog.ResolveProducts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve catalog prices: %w", err)
	}

	order := &PricedOrder{Lines: make([]PricedLine, 0, len(items))}
	for _, it := range items {
		p, ok := resolved[it.ProductID]
		if !ok {
			return nil, NewUnknownProductError(it.ProductID)
		}
		if it.Quantity <= 0 || it.Quantity != math.Trunc(it.Quantity) || it.Quantity > maxLineQuantity {
			return nil, ErrInvalidQuantity
		}

		quantity := int(it.Quantity)
		unitCents := int64(math.Round(p.Price * 100))
		order.Lines = append(order.Lines, PricedLine{
			ProductID: p.ID,
			Name:      p.Name,
			UnitCents: unitCents,
			Quantity:  quantity,
		})
		order.TotalCents += unitCents * int64(quantity)
	}

	return order, nil
}

// CreatePaymentIntent prices the request and returns the payment
// intent's client secret.
func (s *Service) CreatePaymentIntent(ctx context.Context, req *Request) (string, error) {
	order, err := s.PriceItems(ctx, req.Items)
	if err != nil {
		return "", err
	}

	intent, err := s.payments.CreatePaymentIntent(ctx, order.TotalCents, len(req.Items))
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"amount_cents": order.TotalCents,
		"lines":        len(order.Lines),
	}).Info("Checkout priced")

	return intent.ClientSecret, nil
}

// CreateHostedSession prices the request, builds one line item per
// entry and returns the hosted session id. The redirect URLs derive
// from the request origin, falling back to the configured base URL
// when no origin is available.
func (s *Service) CreateHostedSession(ctx context.Context, origin string, req *Request) (string, error) {
	order, err := s.PriceItems(ctx, req.Items)
	if err != nil {
		return "", err
	}

	lines := make([]payment.SessionLine, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, payment.SessionLine{
			Name:       l.Name,
			UnitAmount: l.UnitCents,
			Quantity:   l.Quantity,
		})
	}

	baseURL := s.resolveBaseURL(origin)
	successURL := baseURL + "/cart?redirect_status=succeeded&session_id={CHECKOUT_SESSION_ID}"
	cancelURL := baseURL + "/cart?redirect_status=canceled"

	session, err := s.payments.CreateCheckoutSession(ctx, lines, successURL, cancelURL)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	return session.ID, nil
}

// CheckOrigin enforces the optional origin hardening: a declared
// origin must match the configured base URL; an absent origin is
// tolerated since not all clients set the header.
func (s *Service) CheckOrigin(origin string) bool {
	if origin == "" {
		return true
	}
	return strings.HasPrefix(origin, s.config.App.BaseURL)
}

// resolveBaseURL normalizes the request origin into an absolute base
// URL, handling bare forwarded hosts without a scheme.
func (s *Service) resolveBaseURL(origin string) string {
	origin = strings.TrimRight(origin, "/")
	if origin == "" {
		return s.config.App.BaseURL
	}
	if !strings.HasPrefix(origin, "http") {
		return "https://" + origin
	}
	return origin
}
