package sessionfile

import (
	"context"
	"os"

	"medcare-client/internal/app/config"
	"medcare-client/internal/app/contracts"
	"medcare-client/internal/app/models"
	"medcare-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// fileStorage keeps the single session record in a JSON file so it
// survives process restarts.
type fileStorage struct {
	Path string
}

func NewSessionFileStorage(internalConfig *config.InternalConfig) contracts.SessionStorage {
	return &fileStorage{
		Path: internalConfig.Session.FilePath,
	}
}

func (s *fileStorage) Load(ctx context.Context) (*models.Session, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, exceptions.ErrSessionStorageRead(err)
	}

	session := new(models.Session)
	if err := json.Unmarshal(data, session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (s *fileStorage) Save(ctx context.Context, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	if err := os.WriteFile(s.Path, data, 0o600); err != nil {
		return exceptions.ErrSessionStorageWrite(err)
	}
	return nil
}

func (s *fileStorage) Clear(ctx context.Context) error {
	err := os.Remove(s.Path)
	if err != nil && !os.IsNotExist(err) {
		return exceptions.ErrSessionStorageClear(err)
	}
	return nil
}
