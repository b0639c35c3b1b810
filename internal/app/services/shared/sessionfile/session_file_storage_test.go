package sessionfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"medcare-client/internal/app/config"
	"medcare-client/internal/app/contracts"
	"medcare-client/internal/app/models"
	"medcare-client/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStorage(t *testing.T) (contracts.SessionStorage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	storage := NewSessionFileStorage(&config.InternalConfig{
		Session: config.Session{FilePath: path},
	})
	return storage, path
}

func TestFileStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("Load Absent Returns Nil Nil", func(t *testing.T) {
		storage, _ := newStorage(t)

		session, err := storage.Load(ctx)

		require.NoError(t, err, "a missing file means no session, not a failure")
		assert.Nil(t, session)
	})

	t.Run("Save Then Load", func(t *testing.T) {
		storage, path := newStorage(t)

		require.NoError(t, storage.Save(ctx, &models.Session{UserID: 7, Username: "asha"}))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		session, err := storage.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, 7, session.UserID)
		assert.Equal(t, "asha", session.Username)
	})

	t.Run("Clear Is Idempotent", func(t *testing.T) {
		storage, _ := newStorage(t)

		require.NoError(t, storage.Save(ctx, &models.Session{UserID: 7, Username: "asha"}))
		require.NoError(t, storage.Clear(ctx))
		require.NoError(t, storage.Clear(ctx), "clearing an already absent record is not a failure")

		session, err := storage.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("Corrupt File Surfaces A Parse Error", func(t *testing.T) {
		storage, path := newStorage(t)

		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		_, err := storage.Load(ctx)

		require.Error(t, err)
		assert.True(t, exceptions.IsCode(err, exceptions.CodeInternal))
	})
}
