package contracts

import (
	"context"

	"medcare-client/internal/app/models"
)

// SessionStorage persists the single session record under a fixed
// key. Load returns (nil, nil) when no record exists.
type SessionStorage interface {
	Load(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Clear(ctx context.Context) error
}

type SessionUsecase interface {
	// Restore loads the persisted session into memory; absence is not
	// an error.
	Restore(ctx context.Context) error
	Login(ctx context.Context, username, password string) (*models.Session, error)
	Signup(ctx context.Context, username, password string) (*models.Session, error)
	// Logout clears memory and persisted state unconditionally.
	Logout(ctx context.Context)
	// Current returns the active session, or nil when absent.
	Current() *models.Session
}
