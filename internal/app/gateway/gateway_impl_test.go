package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"medcare-client/internal/app/config"
	"medcare-client/internal/app/contracts"
	"medcare-client/internal/pkg/constvars"
	"medcare-client/internal/pkg/dto/responses"
	"medcare-client/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGateway(baseURL string) contracts.Gateway {
	internalConfig := &config.InternalConfig{
		Gateway: config.Gateway{
			BaseURL:        baseURL,
			TimeoutSeconds: 5,
		},
	}
	return NewRemoteGateway(internalConfig, zap.NewNop())
}

func TestRemoteGateway_Call(t *testing.T) {
	t.Run("Decodes Response Body", func(t *testing.T) {
		router := chi.NewRouter()
		router.Get("/doctors", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.Write([]byte(`{"doctors":[{"id":1,"name":"Dr. Mehta","specialty":"Cardiology"}]}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		gateway := newTestGateway(server.URL)

		var out responses.DoctorList
		err := gateway.Call(context.Background(), constvars.MethodGet, constvars.EndpointDoctors, nil, &out)

		require.NoError(t, err)
		require.Len(t, out.Doctors, 1)
		assert.Equal(t, "Dr. Mehta", out.Doctors[0].Name)
	})

	t.Run("Unreachable Service", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()

		gateway := newTestGateway(server.URL)

		err := gateway.Call(context.Background(), constvars.MethodGet, constvars.EndpointDoctors, nil, nil)

		require.Error(t, err)
		assert.True(t, exceptions.IsCode(err, exceptions.CodeUnreachable), "transport failure should map to CodeUnreachable")
		assert.Equal(t, constvars.ErrClientServiceUnreachable, exceptions.ClientMessage(err))
	})

	t.Run("Rejection With Detail Payload", func(t *testing.T) {
		router := chi.NewRouter()
		router.Post("/book", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"detail":"Slot already taken"}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		gateway := newTestGateway(server.URL)

		err := gateway.Call(context.Background(), constvars.MethodPost, constvars.EndpointBook, map[string]int{"doctor_id": 1}, nil)

		require.Error(t, err)
		assert.True(t, exceptions.IsCode(err, exceptions.CodeRemoteRejected))
		assert.Equal(t, "Slot already taken", exceptions.ClientMessage(err), "detail field should surface as the client message")

		var customError *exceptions.CustomError
		require.ErrorAs(t, err, &customError)
		assert.Equal(t, http.StatusConflict, customError.StatusCode)
	})

	t.Run("Rejection Without Detail Payload", func(t *testing.T) {
		router := chi.NewRouter()
		router.Get("/doctors", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("boom"))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		gateway := newTestGateway(server.URL)

		err := gateway.Call(context.Background(), constvars.MethodGet, constvars.EndpointDoctors, nil, nil)

		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientRequestRejected, exceptions.ClientMessage(err), "non-JSON error bodies fall back to the generic message")
	})

	t.Run("Sets Content Type Only With Body", func(t *testing.T) {
		var contentTypes []string
		router := chi.NewRouter()
		router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			contentTypes = append(contentTypes, r.Header.Get(constvars.HeaderContentType))
			w.WriteHeader(http.StatusOK)
		})
		router.Post("/book", func(w http.ResponseWriter, r *http.Request) {
			contentTypes = append(contentTypes, r.Header.Get(constvars.HeaderContentType))
			w.Write([]byte(`{"status":"SUCCESS"}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		gateway := newTestGateway(server.URL)

		require.NoError(t, gateway.Ping(context.Background()))
		require.NoError(t, gateway.Call(context.Background(), constvars.MethodPost, constvars.EndpointBook, map[string]int{"doctor_id": 1}, nil))

		require.Len(t, contentTypes, 2)
		assert.Empty(t, contentTypes[0])
		assert.Equal(t, constvars.MIMEApplicationJSON, contentTypes[1])
	})
}

func TestRemoteGateway_CallIdempotent(t *testing.T) {
	t.Run("Fresh Key Per Attempt", func(t *testing.T) {
		var keys []string
		router := chi.NewRouter()
		router.Post("/buy_bulk", func(w http.ResponseWriter, r *http.Request) {
			keys = append(keys, r.Header.Get(constvars.HeaderIdempotencyKey))
			w.Write([]byte(`{"status":"SUCCESS","total_cost":12.5}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		gateway := newTestGateway(server.URL)

		var out responses.Purchase
		require.NoError(t, gateway.CallIdempotent(context.Background(), constvars.MethodPost, constvars.EndpointBuyBulk, map[string]int{"user_id": 1}, &out))
		require.NoError(t, gateway.CallIdempotent(context.Background(), constvars.MethodPost, constvars.EndpointBuyBulk, map[string]int{"user_id": 1}, &out))

		require.Len(t, keys, 2)
		assert.NotEmpty(t, keys[0])
		assert.NotEmpty(t, keys[1])
		assert.NotEqual(t, keys[0], keys[1], "each attempt should carry its own idempotency key")
	})
}

func TestRemoteGateway_Ping(t *testing.T) {
	t.Run("Hits Health Endpoint", func(t *testing.T) {
		pinged := false
		router := chi.NewRouter()
		router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			pinged = true
			w.Write([]byte(`{"status":"ok"}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		gateway := newTestGateway(server.URL)

		require.NoError(t, gateway.Ping(context.Background()))
		assert.True(t, pinged)
	})
}
