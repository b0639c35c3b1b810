package ratings

import (
	"context"
	"fmt"

	"medcare-client/internal/app/contracts"
	"medcare-client/internal/pkg/constvars"
	"medcare-client/internal/pkg/dto/requests"
	"medcare-client/internal/pkg/dto/responses"
	"medcare-client/internal/pkg/exceptions"
	"medcare-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type ratingUsecase struct {
	Gateway contracts.Gateway
	Log     *zap.Logger
}

func NewRatingUsecase(gateway contracts.Gateway, logger *zap.Logger) contracts.RatingUsecase {
	return &ratingUsecase{
		Gateway: gateway,
		Log:     logger,
	}
}

func (uc *ratingUsecase) Fetch(ctx context.Context, doctorID int) (*responses.RatingSummary, error) {
	var out responses.RatingSummary
	err := uc.Gateway.Call(ctx, constvars.MethodGet, fmt.Sprintf(constvars.EndpointRatings, doctorID), nil, &out)
	if err != nil {
		uc.Log.Error("ratingUsecase.Fetch remote call failed",
			zap.Int(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}
	return &out, nil
}

// Submit posts a rating and re-fetches the summary so the caller sees
// the server-computed average; the client never computes averages
// incrementally.
func (uc *ratingUsecase) Submit(ctx context.Context, doctorID, userID, rating int) (*responses.RatingSummary, error) {
	request := requests.Rating{DoctorID: doctorID, UserID: userID, Rating: rating}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrMissingField(err)
	}

	var out responses.Status
	err := uc.Gateway.Call(ctx, constvars.MethodPost, fmt.Sprintf(constvars.EndpointRatings, doctorID), request, &out)
	if err != nil {
		uc.Log.Error("ratingUsecase.Submit remote call failed",
			zap.Int(constvars.LoggingDoctorIDKey, doctorID),
			zap.Int(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return nil, err
	}
	if out.Status != constvars.RemoteStatusSuccess {
		return nil, exceptions.ErrRemoteRejected(constvars.StatusOK, out.Message)
	}

	uc.Log.Info("ratingUsecase.Submit rating accepted",
		zap.Int(constvars.LoggingDoctorIDKey, doctorID),
		zap.Int(constvars.LoggingUserIDKey, userID),
		zap.Int("rating", rating),
	)
	return uc.Fetch(ctx, doctorID)
}
