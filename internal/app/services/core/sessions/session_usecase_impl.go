package sessions

import (
	"context"
	"errors"
	"sync"

	"medcare-client/internal/app/contracts"
	"medcare-client/internal/app/models"
	"medcare-client/internal/pkg/constvars"
	"medcare-client/internal/pkg/dto/requests"
	"medcare-client/internal/pkg/dto/responses"
	"medcare-client/internal/pkg/exceptions"
	"medcare-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type sessionUsecase struct {
	Gateway contracts.Gateway
	Storage contracts.SessionStorage
	Log     *zap.Logger

	mu      sync.Mutex
	current *models.Session
}

func NewSessionUsecase(
	gateway contracts.Gateway,
	storage contracts.SessionStorage,
	logger *zap.Logger,
) contracts.SessionUsecase {
	return &sessionUsecase{
		Gateway: gateway,
		Storage: storage,
		Log:     logger,
	}
}

func (uc *sessionUsecase) Restore(ctx context.Context) error {
	session, err := uc.Storage.Load(ctx)
	if err != nil {
		uc.Log.Error("sessionUsecase.Restore error loading persisted session",
			zap.Error(err),
		)
		return err
	}

	uc.mu.Lock()
	uc.current = session
	uc.mu.Unlock()

	if session != nil {
		uc.Log.Info("sessionUsecase.Restore session restored",
			zap.Int(constvars.LoggingUserIDKey, session.UserID),
			zap.String(constvars.LoggingUsernameKey, session.Username),
		)
	}
	return nil
}

func (uc *sessionUsecase) Login(ctx context.Context, username, password string) (*models.Session, error) {
	request := requests.Login{Username: username, Password: password}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrMissingField(err)
	}
	return uc.authenticate(ctx, constvars.EndpointLogin, username, request)
}

func (uc *sessionUsecase) Signup(ctx context.Context, username, password string) (*models.Session, error) {
	request := requests.Signup{Username: username, Password: password}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrMissingField(err)
	}
	return uc.authenticate(ctx, constvars.EndpointSignup, username, request)
}

// authenticate runs one credential exchange. On any failure the prior
// session, in memory and persisted, is left untouched.
func (uc *sessionUsecase) authenticate(ctx context.Context, path, username string, request interface{}) (*models.Session, error) {
	var out responses.Auth
	err := uc.Gateway.Call(ctx, constvars.MethodPost, path, request, &out)
	if err != nil {
		uc.Log.Error("sessionUsecase.authenticate remote call failed",
			zap.String(constvars.LoggingPathKey, path),
			zap.String(constvars.LoggingUsernameKey, username),
			zap.Error(err),
		)
		if exceptions.IsCode(err, exceptions.CodeRemoteRejected) {
			var customError *exceptions.CustomError
			errors.As(err, &customError)
			return nil, exceptions.ErrAuthFailed(customError.StatusCode, customError.ClientMessage)
		}
		return nil, err
	}

	session := &models.Session{UserID: out.UserID, Username: username}
	if err := uc.Storage.Save(ctx, session); err != nil {
		uc.Log.Error("sessionUsecase.authenticate error persisting session",
			zap.Int(constvars.LoggingUserIDKey, session.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.mu.Lock()
	uc.current = session
	uc.mu.Unlock()

	uc.Log.Info("sessionUsecase.authenticate session established",
		zap.Int(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingUsernameKey, session.Username),
	)
	return session, nil
}

func (uc *sessionUsecase) Logout(ctx context.Context) {
	uc.mu.Lock()
	uc.current = nil
	uc.mu.Unlock()

	// Logout cannot fail; a storage error only gets logged.
	if err := uc.Storage.Clear(ctx); err != nil {
		uc.Log.Warn("sessionUsecase.Logout error clearing persisted session",
			zap.Error(err),
		)
	}
	uc.Log.Info("sessionUsecase.Logout session cleared")
}

func (uc *sessionUsecase) Current() *models.Session {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.current == nil {
		return nil
	}
	session := *uc.current
	return &session
}
