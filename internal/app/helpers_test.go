package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/slotting-service/config"
	"github.com/guttosm/slotting-service/internal/domain/dto"
	"github.com/guttosm/slotting-service/internal/domain/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testConfig is a valid configuration without MongoDB.
func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:           "0",
			RequestTimeout: 10 * time.Second,
			MaxBodyBytes:   1 << 20,
			MaxUploadBytes: 5 << 20,
		},
		Logging: config.LoggingConfig{Level: "error"},
		Cache:   config.CacheConfig{Size: 100, TTL: time.Minute},
		Optimizer: config.OptimizerConfig{
			TrialWorkers:  2,
			SKUWorkers:    2,
			OracleTimeout: 5 * time.Second,
			MaxSKUs:       10,
		},
		Auth: config.AuthConfig{
			JWTSecretKey:     "test-secret",
			JWTRefreshSecret: "test-refresh-secret",
			AccessTokenTTL:   time.Minute,
			RefreshTokenTTL:  time.Hour,
		},
	}
}

func cubeRequestBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(dto.OptimizeRequest{
		Location: "Pallet Rack 1",
		Pallet:   "Standard",
		SKUs: []model.SKU{
			{Name: "Cube", Dimensions: model.Dimensions{Width: 10, Depth: 10, Height: 10}, Weight: 5},
		},
	})
	require.NoError(t, err)
	return body
}

func perform(handler http.Handler, method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decodeReport(t *testing.T, w *httptest.ResponseRecorder) model.OptimizationReport {
	t.Helper()
	var resp struct {
		Data model.OptimizationReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp.Data
}

type readiness struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
	Info   map[string]string `json:"info"`
}

func decodeReadiness(t *testing.T, w *httptest.ResponseRecorder) readiness {
	t.Helper()
	var r readiness
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r), w.Body.String())
	return r
}
