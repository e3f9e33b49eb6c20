package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartproperty-service/internal/climate"
	"github.com/smartproperty-service/internal/config"
	delivery "github.com/smartproperty-service/internal/delivery/http"
	"github.com/smartproperty-service/internal/delivery/http/handler"
	"github.com/smartproperty-service/internal/infrastructure/mapid"
	"github.com/smartproperty-service/internal/observability"
	"github.com/smartproperty-service/internal/repository/geojson"
	"github.com/smartproperty-service/internal/repository/memory"
	"github.com/smartproperty-service/internal/usecase"
)

// one lst zone with code 2 covering central Bandung
const lstLayer = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"gridcode": 2},
     "geometry": {"type": "Polygon", "coordinates": [[[107.5,-7.0],[107.7,-7.0],[107.7,-6.8],[107.5,-6.8],[107.5,-7.0]]]}}
  ]
}`

func newMapIDStub(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/styles/basic/style.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"version":8,"name":"basic"}`))
		case "/fonts/Open Sans/0-255.pbf":
			w.Header().Set("Content-Type", "application/x-protobuf")
			_, _ = w.Write([]byte{0x1a, 0x02})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	logger := zap.NewNop()
	metrics := observability.NewMetricsForTesting()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "geojson"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "geojson", "lst.geojson"), []byte(lstLayer), 0o644))

	catalog := geojson.NewZoneCatalog(root, metrics, logger)
	climateUC := usecase.NewClimateUseCase(catalog, climate.NewResolver(climate.EnginePlanar), nil, metrics, logger, time.Hour)
	propertyRepo := memory.NewPropertyRepository(memory.SeedProperties(), logger)
	pricingUC := usecase.NewPricingUseCase(climateUC, nil, metrics, logger)
	propertyUC := usecase.NewPropertyUseCase(propertyRepo, logger)
	analyticsUC := usecase.NewAnalyticsUseCase(propertyRepo, climateUC, clockwork.NewFakeClock(), logger)

	stub := newMapIDStub(t)
	basemap := mapid.NewMapIDClient(&config.MapIDConfig{APIKey: "test-key", BaseURL: stub.URL}, logger)

	cfg := &config.Config{CORS: config.CORSConfig{AllowOrigins: []string{"*"}}}
	server := delivery.NewServer(cfg, logger, metrics, delivery.Handlers{
		Climate:   handler.NewClimateHandler(climateUC, logger),
		Pricing:   handler.NewPricingHandler(pricingUC, logger),
		Property:  handler.NewPropertyHandler(propertyUC, logger),
		Analytics: handler.NewAnalyticsHandler(analyticsUC, logger),
		Map:       handler.NewMapHandler(basemap, logger),
	}, nil)
	return server.App()
}

func do(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]interface{}) {
	t.Helper()
	resp, raw := do(t, app, method, target, body)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func errorCode(body map[string]interface{}) string {
	e, _ := body["error"].(map[string]interface{})
	code, _ := e["code"].(string)
	return code
}

func data(body map[string]interface{}) map[string]interface{} {
	d, _ := body["data"].(map[string]interface{})
	return d
}

func propertyIDs(body map[string]interface{}) []float64 {
	list, _ := data(body)["properties"].([]interface{})
	out := make([]float64, 0, len(list))
	for _, item := range list {
		out = append(out, item.(map[string]interface{})["id"].(float64))
	}
	return out
}

func TestServer_Health(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/api/v1/health", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])
}

func TestServer_RequestID(t *testing.T) {
	app := newTestApp(t)

	resp, _ := do(t, app, http.MethodGet, "/api/v1/health", "")
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestServer_ClimateScores(t *testing.T) {
	app := newTestApp(t)

	t.Run("zone data with backfill", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/v1/climate/scores?lat=-6.9&lng=107.6", "")

		require.Equal(t, http.StatusOK, status)
		d := data(body)
		assert.Equal(t, float64(80), d["lst_score"])
		assert.Equal(t, "partial", d["source"])
		assert.Equal(t, []interface{}{"lst"}, d["resolved_indicators"])
		for _, key := range []string{"ndvi_score", "utfvi_score", "uhi_score", "overall_score"} {
			v, ok := d[key].(float64)
			require.True(t, ok, key)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 100.0)
		}
	})

	t.Run("outside every zone", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/v1/climate/scores?lat=-6.2&lng=106.8", "")

		require.Equal(t, http.StatusOK, status)
		// the single zone is still the nearest one
		assert.Equal(t, float64(80), data(body)["lst_score"])
	})

	t.Run("non numeric", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/v1/climate/scores?lat=abc&lng=107.6", "")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "INVALID_COORDINATES", errorCode(body))
	})

	t.Run("out of range", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/v1/climate/scores?lat=95&lng=107.6", "")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "INVALID_COORDINATES", errorCode(body))
	})
}

func TestServer_ClimateScoresBatch(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/climate/scores/batch",
		`{"points":[{"lat":-6.9,"lng":107.6},{"lat":-6.2,"lng":106.8}]}`)

	require.Equal(t, http.StatusOK, status)
	results, _ := data(body)["results"].([]interface{})
	assert.Len(t, results, 2)
	assert.Equal(t, float64(2), body["meta"].(map[string]interface{})["total"])

	status, body = doJSON(t, app, http.MethodPost, "/api/v1/climate/scores/batch", `{"points":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_REQUEST", errorCode(body))

	status, body = doJSON(t, app, http.MethodPost, "/api/v1/climate/scores/batch", `{"points":[]}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_REQUEST", errorCode(body))
}

func TestServer_RiskLayers(t *testing.T) {
	app := newTestApp(t)

	resp, raw := do(t, app, http.MethodGet, "/api/v1/climate/risk-layers", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data []struct {
			ID     string `json:"id"`
			Legend []struct {
				Color string `json:"color"`
				Label string `json:"label"`
			} `json:"legend"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Len(t, body.Data, 4)
	assert.Equal(t, "flood_risk", body.Data[0].ID)
	assert.Equal(t, "#a6cee3", body.Data[0].Legend[0].Color)
	assert.Equal(t, "Very Low Risk", body.Data[0].Legend[0].Label)
}

func TestServer_Layers(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/api/v1/layers/lst", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "FeatureCollection", body["type"])
	assert.Equal(t, float64(1), body["total_features"])
	assert.Equal(t, float64(1), body["total_pages"])
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(100), body["per_page"])

	status, body = doJSON(t, app, http.MethodGet, "/api/v1/layers/ndvi", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "LAYER_NOT_FOUND", errorCode(body))

	status, body = doJSON(t, app, http.MethodGet, "/api/v1/layers/rainfall", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_LAYER", errorCode(body))

	status, body = doJSON(t, app, http.MethodGet, "/api/v1/layers/lst?per_page=5000", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_REQUEST", errorCode(body))
}

func TestServer_PredictPrice(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/price/predict", `{
		"location": {"latitude": -6.21, "longitude": 106.82},
		"bedrooms": 3,
		"landArea": 150,
		"certificate": "SHM - Sertifikat Hak Milik",
		"propertyType": "Rumah",
		"landPricePerMeter": 12000000,
		"climateScores": {"overall_score": 75}
	}`)

	require.Equal(t, http.StatusOK, status)
	d := data(body)
	assert.Equal(t, "heuristic", d["source"])
	assert.Equal(t, 0.85, d["confidence"])
	price := d["predicted_price"].(float64)
	assert.Greater(t, price, 3e9)
	assert.Less(t, price, 3.8e9)
	factors := d["factors"].(map[string]interface{})
	assert.Equal(t, 1.8e9, factors["basePrice"])

	status, body = doJSON(t, app, http.MethodPost, "/api/v1/price/predict", `{"bedrooms": 3}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_REQUEST", errorCode(body))
}

func TestServer_Properties(t *testing.T) {
	app := newTestApp(t)

	t.Run("list", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/v1/properties", "")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, []float64{1, 2, 3, 4, 5}, propertyIDs(body))
	})

	t.Run("list filtered", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/v1/properties?min_score=80", "")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, []float64{2, 4}, propertyIDs(body))
	})

	t.Run("get", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/v1/properties/4", "")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Cilandak", data(body)["district"])
	})

	t.Run("get missing", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/v1/properties/99", "")
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "PROPERTY_NOT_FOUND", errorCode(body))
	})

	t.Run("get invalid id", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodGet, "/api/v1/properties/abc", "")
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("compare", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/v1/properties/compare?ids=2,1", "")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, []float64{1, 2}, propertyIDs(body))
	})

	t.Run("compare without ids", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/v1/properties/compare", "")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "No property IDs provided", body["error"].(map[string]interface{})["message"])
	})

	t.Run("compare unknown ids", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodGet, "/api/v1/properties/compare?ids=98,99", "")
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("recommend", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/api/v1/properties/recommend?priority=flood", "")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, []float64{2, 4, 1}, propertyIDs(body))
	})
}

func TestServer_Analytics(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{
		"/api/v1/analytics/price-by-district",
		"/api/v1/analytics/climate-by-district",
	} {
		resp, raw := do(t, app, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, resp.StatusCode, path)

		var body struct {
			Data []map[string]interface{} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Len(t, body.Data, 5, path)
	}

	status, body := doJSON(t, app, http.MethodGet, "/api/v1/analytics/dashboard-summary", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(5), data(body)["total_properties"])
	assert.Equal(t, float64(3760000000), data(body)["average_price"])
}

func TestServer_MapProxy(t *testing.T) {
	app := newTestApp(t)

	resp, raw := do(t, app, http.MethodGet, "/api/v1/map/style", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"version":8,"name":"basic"}`, string(raw))

	resp, raw = do(t, app, http.MethodGet, "/api/v1/map/resources/fonts/Open%20Sans/0-255.pbf", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/x-protobuf", resp.Header.Get("Content-Type"))
	assert.True(t, bytes.Equal([]byte{0x1a, 0x02}, raw))

	status, body := doJSON(t, app, http.MethodGet, "/api/v1/map/resources/sprites/missing.png", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "UPSTREAM_ERROR", errorCode(body))
}

func TestServer_Metrics(t *testing.T) {
	app := newTestApp(t)

	resp, raw := do(t, app, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "go_goroutines")
}

func TestServer_UnknownRoute(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/api/v1/nothing-here", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", errorCode(body))
}
