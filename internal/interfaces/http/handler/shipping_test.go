package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shippingapp "github.com/storeadmin/backend/internal/application/shipping"
	"github.com/storeadmin/backend/internal/domain/geography"
	"github.com/storeadmin/backend/internal/domain/store"
	"github.com/storeadmin/backend/internal/interfaces/http/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memSettingsStore keeps one settings aggregate per store in memory.
type memSettingsStore struct {
	settings map[uuid.UUID]*store.StoreSettings
}

func newMemSettingsStore() *memSettingsStore {
	return &memSettingsStore{settings: make(map[uuid.UUID]*store.StoreSettings)}
}

func (m *memSettingsStore) Load(_ context.Context, storeID uuid.UUID) (*store.StoreSettings, error) {
	if s, ok := m.settings[storeID]; ok {
		return s.Clone(), nil
	}
	return store.DefaultSettings(storeID), nil
}

func (m *memSettingsStore) Save(_ context.Context, settings *store.StoreSettings) error {
	m.settings[settings.StoreID] = settings.Clone()
	return nil
}

func newShippingTestRouter() (*gin.Engine, *memSettingsStore) {
	data := newMemSettingsStore()
	catalog := []geography.Governorate{
		{Name: "Giza", Cities: []string{"Haram", "Dokki"}},
	}
	h := NewShippingHandler(shippingapp.NewService(data, catalog))

	engine := gin.New()
	api := engine.Group("/api/v1")
	h.RegisterRoutes(api)
	return engine, data
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, storeID uuid.UUID, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if storeID != uuid.Nil {
		req.Header.Set(StoreIDHeader, storeID.String())
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestShippingHandlerCreateCompany(t *testing.T) {
	engine, data := newShippingTestRouter()
	storeID := uuid.New()

	t.Run("creates company", func(t *testing.T) {
		w := doJSON(t, engine, "POST", "/api/v1/shipping/companies", storeID,
			gin.H{"name": "Bosta"})

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
		assert.NotNil(t, data.settings[storeID].FindCompany("Bosta"))
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		w := doJSON(t, engine, "POST", "/api/v1/shipping/companies", storeID,
			gin.H{"name": "Bosta"})

		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "ALREADY_EXISTS", resp.Error.Code)
	})

	t.Run("missing name is a bad request", func(t *testing.T) {
		w := doJSON(t, engine, "POST", "/api/v1/shipping/companies", storeID, gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing store header is a bad request", func(t *testing.T) {
		w := doJSON(t, engine, "POST", "/api/v1/shipping/companies", uuid.Nil,
			gin.H{"name": "Aramex"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestShippingHandlerGetCompany(t *testing.T) {
	engine, _ := newShippingTestRouter()
	storeID := uuid.New()

	w := doJSON(t, engine, "GET", "/api/v1/shipping/companies/Nowhere", storeID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestShippingHandlerZoneFlow(t *testing.T) {
	engine, data := newShippingTestRouter()
	storeID := uuid.New()

	w := doJSON(t, engine, "POST", "/api/v1/shipping/companies", storeID, gin.H{"name": "Bosta"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, engine, "POST", "/api/v1/shipping/companies/Bosta/generate-zones", storeID, gin.H{})
	require.Equal(t, http.StatusOK, w.Code)

	company := data.settings[storeID].FindCompany("Bosta")
	require.Len(t, company.Zones, 1)
	zoneID := company.Zones[0].ID

	t.Run("regenerate refuses without force", func(t *testing.T) {
		w := doJSON(t, engine, "POST", "/api/v1/shipping/companies/Bosta/generate-zones", storeID, gin.H{})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("updates zone label", func(t *testing.T) {
		w := doJSON(t, engine, "PATCH", "/api/v1/shipping/companies/Bosta/zones/"+zoneID.String(), storeID,
			gin.H{"label": "Greater Giza"})

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "Greater Giza", data.settings[storeID].FindCompany("Bosta").Zones[0].Label)
	})

	t.Run("bad zone id is a bad request", func(t *testing.T) {
		w := doJSON(t, engine, "PATCH", "/api/v1/shipping/companies/Bosta/zones/not-a-uuid", storeID,
			gin.H{"label": "x"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("saves city selection", func(t *testing.T) {
		w := doJSON(t, engine, "PUT", "/api/v1/shipping/companies/Bosta/zones/"+zoneID.String()+"/cities", storeID,
			gin.H{"cities": []string{"Haram"}})

		assert.Equal(t, http.StatusNoContent, w.Code)
		zone := data.settings[storeID].FindCompany("Bosta").Zones[0]
		require.Len(t, zone.Cities, 1)
		assert.Equal(t, "Haram", zone.Cities[0].Name)
	})
}
