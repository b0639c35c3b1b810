package contracts

import (
	"context"

	"medcare-client/internal/app/models"
	"medcare-client/internal/pkg/dto/responses"
)

type CatalogUsecase interface {
	// Load re-fetches the doctor and medicine lists. It never returns
	// nil: fetch failures degrade to empty views with the error
	// recorded on the snapshot.
	Load(ctx context.Context) *models.CatalogSnapshot

	SearchMedicines(ctx context.Context, name string) ([]responses.Medicine, error)
}
