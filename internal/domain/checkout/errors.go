// internal/domain/checkout/errors.go
package checkout

import (
	"errors"
	"fmt"
)

// ValidationError is a client-fixable rejection. The message is safe
// to surface verbatim; the whole request is rejected, never partially
// priced.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrEmptyCart rejects a missing or empty item list.
var ErrEmptyCart = &ValidationError{Message: "Panier vide"}

// ErrInvalidQuantity rejects a quantity that is not a positive
// integer.
var ErrInvalidQuantity = &ValidationError{Message: "Quantité invalide"}

// NewUnknownProductError names the offending id so the client can fix
// its cart.
func NewUnknownProductError(productID string) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf("Produit inconnu: %s", productID)}
}

// AsValidationError reports whether err is a validation rejection.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
