package pharmacy

import (
	"context"
	"fmt"

	"medcare-client/internal/app/contracts"
	"medcare-client/internal/pkg/constvars"
	"medcare-client/internal/pkg/dto/responses"
	"medcare-client/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type pharmacyUsecase struct {
	Gateway contracts.Gateway
	Log     *zap.Logger
}

func NewPharmacyUsecase(gateway contracts.Gateway, logger *zap.Logger) contracts.PharmacyUsecase {
	return &pharmacyUsecase{
		Gateway: gateway,
		Log:     logger,
	}
}

// Restock increases a medicine's stock and re-fetches the full list:
// the restock response alone does not guarantee any cached list
// reflects the new level. Medicine ids are server-assigned starting
// at 0, so only negative ids are rejected locally.
func (uc *pharmacyUsecase) Restock(ctx context.Context, medicineID, quantity int) (*contracts.RestockResult, error) {
	if medicineID < 0 || quantity < 1 {
		return nil, exceptions.ErrMissingField(nil)
	}

	var out responses.Restock
	err := uc.Gateway.Call(ctx, constvars.MethodPost, fmt.Sprintf(constvars.EndpointRestock, medicineID, quantity), nil, &out)
	if err != nil {
		uc.Log.Error("pharmacyUsecase.Restock remote call failed",
			zap.Int(constvars.LoggingMedicineIDKey, medicineID),
			zap.Int(constvars.LoggingQuantityKey, quantity),
			zap.Error(err),
		)
		return nil, err
	}
	if out.Status != constvars.RemoteStatusSuccess {
		return nil, exceptions.ErrRemoteRejected(constvars.StatusOK, out.Status)
	}

	// The restock already committed; a failed re-fetch must not make
	// the mutation look failed. The caller gets the confirmed stock
	// level and an empty list.
	var medicineList responses.MedicineList
	if err := uc.Gateway.Call(ctx, constvars.MethodGet, constvars.EndpointMedicines, nil, &medicineList); err != nil {
		uc.Log.Warn("pharmacyUsecase.Restock error re-fetching medicines",
			zap.Error(err),
		)
	}

	uc.Log.Info("pharmacyUsecase.Restock succeeded",
		zap.Int(constvars.LoggingMedicineIDKey, medicineID),
		zap.Int("new_stock", out.NewStock),
	)
	return &contracts.RestockResult{
		NewStock:  out.NewStock,
		Medicines: medicineList.Medicines,
	}, nil
}

func (uc *pharmacyUsecase) SalesReport(ctx context.Context) (*responses.SalesReport, error) {
	var out responses.SalesReport
	err := uc.Gateway.Call(ctx, constvars.MethodGet, constvars.EndpointSalesReport, nil, &out)
	if err != nil {
		uc.Log.Error("pharmacyUsecase.SalesReport remote call failed",
			zap.Error(err),
		)
		return nil, err
	}
	return &out, nil
}
