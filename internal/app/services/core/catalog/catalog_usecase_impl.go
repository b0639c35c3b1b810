package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"medcare-client/internal/app/contracts"
	"medcare-client/internal/app/models"
	"medcare-client/internal/pkg/constvars"
	"medcare-client/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type catalogUsecase struct {
	Gateway contracts.Gateway
	Log     *zap.Logger
}

func NewCatalogUsecase(gateway contracts.Gateway, logger *zap.Logger) contracts.CatalogUsecase {
	return &catalogUsecase{
		Gateway: gateway,
		Log:     logger,
	}
}

// Load re-fetches both reference lists. Either fetch failing degrades
// that view to an empty sequence with the error recorded on the
// snapshot; a dependent flow keeps working on fallback labels.
func (uc *catalogUsecase) Load(ctx context.Context) *models.CatalogSnapshot {
	var fetchErrs []error

	var doctorList responses.DoctorList
	if err := uc.Gateway.Call(ctx, constvars.MethodGet, constvars.EndpointDoctors, nil, &doctorList); err != nil {
		uc.Log.Warn("catalogUsecase.Load error fetching doctors",
			zap.Error(err),
		)
		fetchErrs = append(fetchErrs, err)
	}

	var medicineList responses.MedicineList
	if err := uc.Gateway.Call(ctx, constvars.MethodGet, constvars.EndpointMedicines, nil, &medicineList); err != nil {
		uc.Log.Warn("catalogUsecase.Load error fetching medicines",
			zap.Error(err),
		)
		fetchErrs = append(fetchErrs, err)
	}

	uc.Log.Debug("catalogUsecase.Load snapshot built",
		zap.Int("doctor_count", len(doctorList.Doctors)),
		zap.Int("medicine_count", len(medicineList.Medicines)),
	)
	return models.NewCatalogSnapshot(doctorList.Doctors, medicineList.Medicines, errors.Join(fetchErrs...))
}

func (uc *catalogUsecase) SearchMedicines(ctx context.Context, name string) ([]responses.Medicine, error) {
	path := fmt.Sprintf(constvars.EndpointMedicineSearch, url.QueryEscape(name))

	var result responses.MedicineSearchResult
	if err := uc.Gateway.Call(ctx, constvars.MethodGet, path, nil, &result); err != nil {
		uc.Log.Error("catalogUsecase.SearchMedicines remote call failed",
			zap.String("query", name),
			zap.Error(err),
		)
		return nil, err
	}
	return result.Results, nil
}
