package contracts

import (
	"context"

	"medcare-client/internal/pkg/dto/responses"
)

// RestockResult carries the new stock level plus the re-fetched
// medicine list; the restock response alone does not guarantee any
// previously cached list reflects it. Medicines is empty when the
// re-fetch failed after the restock committed.
type RestockResult struct {
	NewStock  int
	Medicines []responses.Medicine
}

type PharmacyUsecase interface {
	Restock(ctx context.Context, medicineID, quantity int) (*RestockResult, error)
	SalesReport(ctx context.Context) (*responses.SalesReport, error)
}
