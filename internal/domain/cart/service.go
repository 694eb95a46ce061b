// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lepetitmarche/storefront-api/internal/domain/product"
	"github.com/sirupsen/logrus"
)

// Redirect signals attached to the cart URL after a payment attempt.
const (
	RedirectStatusSucceeded = "succeeded"
	RedirectStatusCanceled  = "canceled"
)

// Notices surfaced after consuming a redirect signal.
const (
	NoticePaymentSucceeded = "Paiement réussi. Merci pour votre commande !"
	NoticePaymentCanceled  = "Paiement annulé. Vous pouvez réessayer."
)

const cartTTL = 30 * 24 * time.Hour

// Catalog resolves product ids to their display snapshot at add time.
type Catalog interface {
	GetProduct(ctx context.Context, id string) (*product.Product, error)
}

// Service owns cart state: add/remove/update/clear plus derived
// totals, persisted as a versioned record after every mutation.
type Service struct {
	store   Store
	catalog Catalog
	logger  *logrus.Logger
}

// NewService creates a new cart service
func NewService(store Store, catalog Catalog, logger *logrus.Logger) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
		logger:  logger,
	}
}

// GetCart retrieves the cart for a session
func (s *Service) GetCart(ctx context.Context, sessionID string) (*Response, error) {
	record, err := s.loadRecord(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(record), nil
}

// AddItem adds a product to the cart. If the product is already
// present only its quantity is incremented; the stored name/price/
// image snapshot is left untouched. Quantities below 1 count as 1.
func (s *Service) AddItem(ctx context.Context, sessionID string, req *AddItemRequest) (*Response, error) {
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	p, err := s.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	record, err := s.loadRecord(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range record.Items {
		if record.Items[i].ProductID == req.ProductID {
			record.Items[i].Quantity += quantity
			merged = true
			break
		}
	}

	if !merged {
		record.Items = append(record.Items, Item{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			ImageURL:  p.ImageURL,
			Quantity:  quantity,
			AddedAt:   time.Now().UTC(),
		})
	}

	s.saveRecord(ctx, sessionID, record)
	return s.toResponse(record), nil
}

// UpdateQuantity sets the quantity of a cart line. Zero or negative
// removes the line. Updating a product that is not in the cart is a
// no-op, not an error.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*Response, error) {
	record, err := s.loadRecord(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i := range record.Items {
		if record.Items[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			record.Items = append(record.Items[:i], record.Items[i+1:]...)
		} else {
			record.Items[i].Quantity = quantity
		}
		s.saveRecord(ctx, sessionID, record)
		break
	}

	return s.toResponse(record), nil
}

// RemoveItem deletes a cart line. Removing an absent product is a
// no-op.
func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) (*Response, error) {
	return s.UpdateQuantity(ctx, sessionID, productID, 0)
}

// Clear empties the cart
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Del(ctx, s.cartKey(sessionID)); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// ItemCount returns the total quantity across all lines
func (s *Service) ItemCount(ctx context.Context, sessionID string) (int, error) {
	record, err := s.loadRecord(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return CalculateTotals(record.Items).TotalQuantity, nil
}

// Reconcile consumes a post-payment redirect signal. "succeeded"
// clears the cart and returns the success notice; "canceled" leaves
// the cart untouched and returns the info notice; anything else is a
// no-op. The signal only drives local cart state, never order state.
func (s *Service) Reconcile(ctx context.Context, sessionID, status string) (string, error) {
	switch status {
	case RedirectStatusSucceeded:
		if err := s.Clear(ctx, sessionID); err != nil {
			return "", err
		}
		return NoticePaymentSucceeded, nil
	case RedirectStatusCanceled:
		return NoticePaymentCanceled, nil
	default:
		return "", nil
	}
}

func (s *Service) cartKey(sessionID string) string {
	return fmt.Sprintf("cart:v%d:session:%s", SchemaVersion, sessionID)
}

// loadRecord reads the persisted cart. A missing or malformed payload
// falls back to an empty cart; parse failures are never surfaced.
func (s *Service) loadRecord(ctx context.Context, sessionID string) (*Record, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required for cart access")
	}

	payload, found, err := s.store.Get(ctx, s.cartKey(sessionID))
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	now := time.Now().UTC()
	empty := &Record{
		Version:   SchemaVersion,
		SessionID: sessionID,
		Items:     []Item{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if !found {
		return empty, nil
	}

	var record Record
	if err := json.Unmarshal([]byte(payload), &record); err != nil || record.Version != SchemaVersion {
		s.logger.WithFields(logrus.Fields{
			"session_id": sessionID,
			"version":    record.Version,
		}).Warn("Discarding unreadable cart payload")
		return empty, nil
	}

	if record.Items == nil {
		record.Items = []Item{}
	}
	return &record, nil
}

// saveRecord persists the full item list. Persistence is best-effort:
// a write failure is logged and the in-memory state for this request
// stays authoritative.
func (s *Service) saveRecord(ctx context.Context, sessionID string, record *Record) {
	record.Version = SchemaVersion
	record.SessionID = sessionID
	record.UpdatedAt = time.Now().UTC()

	payload, err := json.Marshal(record)
	if err != nil {
		s.logger.WithError(err).WithField("session_id", sessionID).Error("Failed to serialize cart")
		return
	}

	if err := s.store.Set(ctx, s.cartKey(sessionID), string(payload), cartTTL); err != nil {
		s.logger.WithError(err).WithField("session_id", sessionID).Error("Failed to persist cart")
	}
}

func (s *Service) toResponse(record *Record) *Response {
	return &Response{
		SessionID: record.SessionID,
		Items:     record.Items,
		Totals:    CalculateTotals(record.Items),
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}
