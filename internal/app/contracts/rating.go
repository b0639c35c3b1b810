package contracts

import (
	"context"

	"medcare-client/internal/pkg/dto/responses"
)

type RatingUsecase interface {
	Fetch(ctx context.Context, doctorID int) (*responses.RatingSummary, error)
	// Submit posts a rating and, on success, re-fetches the summary so
	// the caller sees the server-computed average.
	Submit(ctx context.Context, doctorID, userID, rating int) (*responses.RatingSummary, error)
}
