package contracts

import (
	"context"

	"medcare-client/internal/app/models"
	"medcare-client/internal/pkg/dto/responses"
)

// CartLedger is the local, uncommitted cart. It is discarded on
// successful checkout or on session end; it never reaches the server
// except through Checkout.
type CartLedger interface {
	// Add merges qty into an existing line for the medicine or
	// appends a new one. qty below 1 is treated as 1.
	Add(medicine responses.Medicine, qty int)
	// Remove deletes the line if present, no-op otherwise.
	Remove(medicineID int)
	Lines() []models.CartLine
	// Total prices the ledger against a catalog snapshot.
	Total(snapshot *models.CatalogSnapshot) float64
	// Clear empties the ledger without a network call.
	Clear()
	// Checkout commits the full line set in one call. The ledger
	// clears only on an explicit SUCCESS status; any other outcome
	// leaves it untouched.
	Checkout(ctx context.Context) (*responses.Purchase, error)
}
