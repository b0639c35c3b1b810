package cart

import (
	"context"
	"sync"

	"medcare-client/internal/app/contracts"
	"medcare-client/internal/app/models"
	"medcare-client/internal/pkg/constvars"
	"medcare-client/internal/pkg/dto/requests"
	"medcare-client/internal/pkg/dto/responses"
	"medcare-client/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type cartLedger struct {
	Gateway  contracts.Gateway
	Sessions contracts.SessionUsecase
	Log      *zap.Logger

	mu    sync.Mutex
	lines []models.CartLine
}

func NewCartLedger(
	gateway contracts.Gateway,
	sessions contracts.SessionUsecase,
	logger *zap.Logger,
) contracts.CartLedger {
	return &cartLedger{
		Gateway:  gateway,
		Sessions: sessions,
		Log:      logger,
	}
}

func (c *cartLedger) Add(medicine responses.Medicine, qty int) {
	if qty < 1 {
		qty = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].MedicineID == medicine.ID {
			c.lines[i].Quantity += qty
			c.Log.Debug("cartLedger.Add merged into existing line",
				zap.Int(constvars.LoggingMedicineIDKey, medicine.ID),
				zap.Int(constvars.LoggingQuantityKey, c.lines[i].Quantity),
			)
			return
		}
	}
	c.lines = append(c.lines, models.CartLine{MedicineID: medicine.ID, Quantity: qty})
	c.Log.Debug("cartLedger.Add new line",
		zap.Int(constvars.LoggingMedicineIDKey, medicine.ID),
		zap.Int(constvars.LoggingQuantityKey, qty),
	)
}

func (c *cartLedger) Remove(medicineID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].MedicineID == medicineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *cartLedger) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]models.CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *cartLedger) Total(snapshot *models.CatalogSnapshot) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, line := range c.lines {
		if medicine, ok := snapshot.Medicine(line.MedicineID); ok {
			total += medicine.Price * float64(line.Quantity)
		}
	}
	return total
}

func (c *cartLedger) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Checkout sends the full line set in one call. The ledger clears
// only on an explicit SUCCESS from the response body; rejections,
// transport failures and FAILED bodies leave it intact so the user
// can retry or edit.
func (c *cartLedger) Checkout(ctx context.Context) (*responses.Purchase, error) {
	lines := c.Lines()
	if len(lines) == 0 {
		return nil, exceptions.ErrEmptyCart()
	}

	session := c.Sessions.Current()
	if session == nil {
		return nil, exceptions.ErrNotAuthenticated()
	}

	request := requests.BuyBulk{UserID: session.UserID, Items: lines}

	var out responses.Purchase
	err := c.Gateway.CallIdempotent(ctx, constvars.MethodPost, constvars.EndpointBuyBulk, request, &out)
	if err != nil {
		c.Log.Error("cartLedger.Checkout remote call failed",
			zap.Int(constvars.LoggingUserIDKey, session.UserID),
			zap.Int(constvars.LoggingCartLineCountKey, len(lines)),
			zap.Error(err),
		)
		return nil, err
	}

	if out.Status == constvars.RemoteStatusSuccess {
		c.Clear()
		c.Log.Info("cartLedger.Checkout succeeded",
			zap.Int(constvars.LoggingUserIDKey, session.UserID),
			zap.Float64(constvars.LoggingTotalCostKey, out.TotalCost),
		)
	} else {
		c.Log.Warn("cartLedger.Checkout rejected by remote",
			zap.Int(constvars.LoggingUserIDKey, session.UserID),
			zap.String(constvars.LoggingRemoteStatusKey, out.Status),
			zap.String(constvars.LoggingErrorMessageKey, out.Message),
		)
	}
	return &out, nil
}
