package pharmacy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"medcare-client/internal/app/config"
	"medcare-client/internal/app/contracts"
	"medcare-client/internal/app/gateway"
	"medcare-client/internal/pkg/dto/responses"
	"medcare-client/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGateway(baseURL string) contracts.Gateway {
	internalConfig := &config.InternalConfig{
		Gateway: config.Gateway{BaseURL: baseURL, TimeoutSeconds: 5},
	}
	return gateway.NewRemoteGateway(internalConfig, zap.NewNop())
}

func TestPharmacyUsecase_Restock(t *testing.T) {
	t.Run("Validation Never Reaches Network", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer server.Close()

		usecase := NewPharmacyUsecase(newTestGateway(server.URL), zap.NewNop())

		_, err := usecase.Restock(context.Background(), -1, 20)
		require.Error(t, err)
		assert.True(t, exceptions.IsCode(err, exceptions.CodeMissingField))

		_, err = usecase.Restock(context.Background(), 7, 0)
		require.Error(t, err)
		assert.True(t, exceptions.IsCode(err, exceptions.CodeMissingField))

		assert.Zero(t, calls)
	})

	t.Run("Restocks Medicine With ID Zero", func(t *testing.T) {
		router := chi.NewRouter()
		router.Post("/medicines/{id}/restock", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "0", chi.URLParam(r, "id"))
			assert.Equal(t, "20", r.URL.Query().Get("quantity"))
			w.Write([]byte(`{"status":"SUCCESS","new_stock":30}`))
		})
		router.Get("/medicines", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"medicines":[{"id":0,"name":"Paracetamol","price":2.5,"stock":30}]}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		usecase := NewPharmacyUsecase(newTestGateway(server.URL), zap.NewNop())

		result, err := usecase.Restock(context.Background(), 0, 20)

		require.NoError(t, err, "id 0 is a valid server-assigned id")
		assert.Equal(t, 30, result.NewStock)
	})

	t.Run("Re-Fetch Failure Keeps Confirmed Stock", func(t *testing.T) {
		router := chi.NewRouter()
		router.Post("/medicines/{id}/restock", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"SUCCESS","new_stock":25}`))
		})
		router.Get("/medicines", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		server := httptest.NewServer(router)
		defer server.Close()

		usecase := NewPharmacyUsecase(newTestGateway(server.URL), zap.NewNop())

		result, err := usecase.Restock(context.Background(), 7, 20)

		require.NoError(t, err, "a committed restock must not surface as a failure")
		assert.Equal(t, 25, result.NewStock)
		assert.Empty(t, result.Medicines)
	})

	t.Run("Restocks And Re-Fetches Medicines", func(t *testing.T) {
		router := chi.NewRouter()
		router.Post("/medicines/{id}/restock", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "7", chi.URLParam(r, "id"))
			assert.Equal(t, "20", r.URL.Query().Get("quantity"))
			w.Write([]byte(`{"status":"SUCCESS","new_stock":25}`))
		})
		router.Get("/medicines", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"medicines":[{"id":7,"name":"Amoxicillin","price":8.0,"stock":25}]}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		usecase := NewPharmacyUsecase(newTestGateway(server.URL), zap.NewNop())

		result, err := usecase.Restock(context.Background(), 7, 20)

		require.NoError(t, err)
		assert.Equal(t, 25, result.NewStock)
		require.Len(t, result.Medicines, 1)
		assert.Equal(t, 25, result.Medicines[0].Stock, "the returned list reflects the new level")
	})

	t.Run("Unknown Medicine Rejected By Remote", func(t *testing.T) {
		router := chi.NewRouter()
		router.Post("/medicines/{id}/restock", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"Medicine not found"}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		usecase := NewPharmacyUsecase(newTestGateway(server.URL), zap.NewNop())

		_, err := usecase.Restock(context.Background(), 99, 20)

		require.Error(t, err)
		assert.True(t, exceptions.IsCode(err, exceptions.CodeRemoteRejected))
		assert.Equal(t, "Medicine not found", exceptions.ClientMessage(err))
	})
}

func TestPharmacyUsecase_SalesReport(t *testing.T) {
	t.Run("Decodes Pair Rows", func(t *testing.T) {
		router := chi.NewRouter()
		router.Get("/reports/sales", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"total_revenue":21.0,"medicine_sales":[["Paracetamol",5.0],["Ibuprofen",16.0]]}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		usecase := NewPharmacyUsecase(newTestGateway(server.URL), zap.NewNop())

		report, err := usecase.SalesReport(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 21.0, report.TotalRevenue)
		require.Len(t, report.MedicineSales, 2)
		assert.Equal(t, responses.MedicineSale{Name: "Paracetamol", Revenue: 5.0}, report.MedicineSales[0])
		assert.Equal(t, responses.MedicineSale{Name: "Ibuprofen", Revenue: 16.0}, report.MedicineSales[1])
	})

	t.Run("Decodes Object Rows", func(t *testing.T) {
		router := chi.NewRouter()
		router.Get("/reports/sales", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"total_revenue":5.0,"medicine_sales":[{"name":"Paracetamol","revenue":5.0}]}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		usecase := NewPharmacyUsecase(newTestGateway(server.URL), zap.NewNop())

		report, err := usecase.SalesReport(context.Background())

		require.NoError(t, err)
		require.Len(t, report.MedicineSales, 1)
		assert.Equal(t, "Paracetamol", report.MedicineSales[0].Name)
	})

	t.Run("Empty Report", func(t *testing.T) {
		router := chi.NewRouter()
		router.Get("/reports/sales", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"total_revenue":0.0,"medicine_sales":[]}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		usecase := NewPharmacyUsecase(newTestGateway(server.URL), zap.NewNop())

		report, err := usecase.SalesReport(context.Background())

		require.NoError(t, err)
		assert.Zero(t, report.TotalRevenue)
		assert.Empty(t, report.MedicineSales)
	})
}
