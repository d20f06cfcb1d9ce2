package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/BerylCAtieno/agriguru-agent/internal/advisor"
	"github.com/BerylCAtieno/agriguru-agent/internal/classifier"
	"github.com/BerylCAtieno/agriguru-agent/internal/knowledge"
	"github.com/BerylCAtieno/agriguru-agent/internal/location"
	"github.com/BerylCAtieno/agriguru-agent/internal/logger/loggertest"
	"github.com/BerylCAtieno/agriguru-agent/internal/models"
	"github.com/BerylCAtieno/agriguru-agent/internal/weather"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testMaxUpload = 1 << 20
	testMaxBody   = 4 << 10
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixedSource float64

func (s fixedSource) Float64() float64 { return float64(s) }

type firstChooser struct{}

func (firstChooser) Intn(int) int { return 0 }

type stubClassifier struct {
	diagnosis models.Diagnosis
	err       error
}

func (s stubClassifier) Classify(context.Context, classifier.Image) (models.Diagnosis, error) {
	return s.diagnosis, s.err
}

func newTestRouter(t *testing.T, clf classifier.Classifier) *gin.Engine {
	t.Helper()
	kb := knowledge.New()
	lookup := weather.NewLookup(fixedSource(0.5))
	resolver := location.NewResolver(kb, time.Minute, time.Minute)
	adv := advisor.New(kb, lookup, resolver,
		advisor.WithChooser(firstChooser{}),
		advisor.WithClock(func() time.Time { return time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC) }),
	)
	log := loggertest.New(t)
	return NewRouter(NewHandler(adv, lookup, resolver, kb, clf, log, WithMaxUploadBytes(testMaxUpload), WithMaxBodyBytes(testMaxBody)), log)
}

func do(t *testing.T, router http.Handler, req *http.Request) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]interface{}
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func pngImage(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func multipartRequest(t *testing.T, img []byte, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if img != nil {
		part, err := w.CreateFormFile("image", "leaf.png")
		require.NoError(t, err)
		_, err = part.Write(img)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-crop", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestIndex(t *testing.T) {
	rec, body := do(t, newTestRouter(t, classifier.Fixed{}), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "AgriGuru Farming Expert API", body["message"])
	assert.Equal(t, "active", body["status"])
	assert.Len(t, body["endpoints"], 6)
	assert.Len(t, body["features"], 5)
}

func TestHealth(t *testing.T) {
	rec, _ := do(t, newTestRouter(t, classifier.Fixed{}), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestExpertAdvice_Planting(t *testing.T) {
	router := newTestRouter(t, classifier.Fixed{})
	rec, body := do(t, router, postJSON("/api/expert-advice",
		`{"query":"How to plant rice?","crop":"rice","season":"kharif"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	advice, _ := body["advice"].(string)
	assert.Contains(t, advice, "Rice")
	assert.Contains(t, advice, "25")

	ctx, ok := body["context"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "expert_advice", ctx["query_type"])
	assert.Equal(t, "planting", ctx["advice_kind"])
	assert.Equal(t, "rice", ctx["crop"])
	assert.Equal(t, "kharif", ctx["season"])
	assert.Nil(t, ctx["location"])
	assert.Contains(t, ctx, "location")
	assert.Equal(t, "2024-06-01T08:00:00Z", ctx["timestamp"])
}

func TestExpertAdvice_BadRequests(t *testing.T) {
	router := newTestRouter(t, classifier.Fixed{})

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing query", `{}`, "Query is required"},
		{"empty query", `{"query":""}`, "Query is required"},
		{"empty body", ``, "Query is required"},
		{"null query", `{"query":null}`, "Query is required"},
		{"malformed json", `{"query":`, "Invalid JSON body"},
		{"wrong type", `{"query":42}`, "Invalid request"},
		{"not an object", `["query"]`, "Invalid request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := do(t, router, postJSON("/api/expert-advice", tt.body))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.Contains(t, body, "error")
			assert.Contains(t, body["error"], tt.want)
		})
	}
}

func TestSoilRecommendations(t *testing.T) {
	router := newTestRouter(t, classifier.Fixed{})

	rec, body := do(t, router, httptest.NewRequest(http.MethodGet, "/api/soil-recommendations?location=punjab", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	soil, ok := body["soil_data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "alluvial", soil["dominant_soil"])
	assert.Equal(t, "semi-arid", soil["climate_zone"])
	assert.Equal(t, "punjab", body["location"])
	assert.Contains(t, body["advice"], "Soil Analysis & Recommendations for punjab")

	_, body = do(t, router, httptest.NewRequest(http.MethodGet, "/api/soil-recommendations", nil))
	assert.Equal(t, "india", body["location"])
	soil = body["soil_data"].(map[string]interface{})
	assert.Equal(t, location.GenericClimateZone, soil["climate_zone"])
	assert.NotContains(t, soil, "dominant_soil")
}

func TestWeatherAdvice(t *testing.T) {
	router := newTestRouter(t, classifier.Fixed{})

	rec, body := do(t, router, postJSON("/api/weather-advice", `{}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Delhi", body["location"])
	w := body["weather_data"].(map[string]interface{})
	assert.Equal(t, "Delhi", w["location"])
	assert.Equal(t, 35.0, w["temperature"])
	assert.Len(t, w["forecast"], 3)
	assert.Contains(t, body, "soil_data")
	assert.Contains(t, body["advice"], "Weather & Farming Advice for Delhi")

	_, body = do(t, router, postJSON("/api/weather-advice", `{"location":"Jaipur, Rajasthan","crop":"wheat"}`))
	soil := body["soil_data"].(map[string]interface{})
	assert.Equal(t, "rajasthan", soil["region"])
	assert.Contains(t, body["advice"], "optimal wheat growth")

	rec, _ = do(t, router, postJSON("/api/weather-advice", `{"location":7}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarketInsights(t *testing.T) {
	rec, body := do(t, newTestRouter(t, classifier.Fixed{}),
		httptest.NewRequest(http.MethodGet, "/api/market-insights", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rice", body["crop"])
	assert.Equal(t, "india", body["location"])
	market := body["market_data"].(map[string]interface{})
	assert.Equal(t, 2500.0, market["current_price"])
	assert.Equal(t, "+5.2%", market["price_change"])
	assert.Len(t, market["price_forecast"], 3)
	assert.NotEmpty(t, body["advice"])
}

func TestSeasonalCalendar(t *testing.T) {
	router := newTestRouter(t, classifier.Fixed{})

	_, body := do(t, router, httptest.NewRequest(http.MethodGet, "/api/seasonal-calendar", nil))
	assert.Equal(t, "kharif", body["season"])
	assert.Equal(t, "india", body["location"])
	assert.Contains(t, body["seasonal_advice"], "**Kharif Season (June-October)**")

	_, body = do(t, router, httptest.NewRequest(http.MethodGet, "/api/seasonal-calendar?season=zaid", nil))
	assert.Contains(t, body["seasonal_advice"], "General Seasonal Guidelines")
}

func TestAnalyzeCrop(t *testing.T) {
	router := newTestRouter(t, classifier.Fixed{})

	rec, body := do(t, router, multipartRequest(t, pngImage(t), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	analysis := body["disease_analysis"].(map[string]interface{})
	assert.Equal(t, "healthy", analysis["disease"])
	assert.Equal(t, 0.85, analysis["confidence"])
	assert.Equal(t, "general", body["crop_type"])
	assert.Contains(t, body["expert_advice"], "General Farming Best Practices")

	_, body = do(t, router, multipartRequest(t, pngImage(t), map[string]string{"crop_type": "wheat"}))
	assert.Equal(t, "wheat", body["crop_type"])
	assert.Contains(t, body["expert_advice"], "Wheat Cultivation Overview")
}

func TestAnalyzeCrop_DiseaseAdvice(t *testing.T) {
	router := newTestRouter(t, stubClassifier{diagnosis: models.Diagnosis{Disease: "early_blight", Confidence: 0.9}})

	rec, body := do(t, router, multipartRequest(t, pngImage(t), map[string]string{"crop_type": "rice"}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "early_blight", body["disease_analysis"].(map[string]interface{})["disease"])
	assert.Contains(t, body["expert_advice"], "Rice Cultivation Overview")
}

func TestAnalyzeCrop_Errors(t *testing.T) {
	router := newTestRouter(t, classifier.Fixed{})

	rec, body := do(t, router, multipartRequest(t, nil, map[string]string{"crop_type": "rice"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No image provided", body["error"])

	rec, body = do(t, router, postJSON("/api/analyze-crop", `{}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No image provided", body["error"])

	rec, body = do(t, router, multipartRequest(t, []byte("definitely not a png"), nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "Invalid image")

	failing := newTestRouter(t, stubClassifier{err: errors.New("model unavailable")})
	rec, body = do(t, failing, multipartRequest(t, pngImage(t), nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "model unavailable", body["error"])
}

func TestRequestSizeLimits(t *testing.T) {
	router := newTestRouter(t, classifier.Fixed{})
	oversized := strings.Repeat("a", testMaxBody+1)

	tests := []struct {
		name string
		req  *http.Request
		want string
	}{
		{
			name: "image over upload limit",
			req:  multipartRequest(t, bytes.Repeat([]byte{0}, testMaxUpload+1), nil),
			want: "Image too large",
		},
		{
			name: "expert advice body",
			req:  postJSON("/api/expert-advice", `{"query":"`+oversized+`"}`),
			want: "Request body too large",
		},
		{
			name: "weather advice body",
			req:  postJSON("/api/weather-advice", `{"location":"`+oversized+`"}`),
			want: "Request body too large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := do(t, router, tt.req)
			assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
			assert.Equal(t, tt.want, body["error"])
		})
	}

	rec, _ := do(t, router, postJSON("/api/weather-advice", `{"location":"`+strings.Repeat("a", testMaxBody/2)+`"}`))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestID(t *testing.T) {
	router := newTestRouter(t, classifier.Fixed{})

	rec, _ := do(t, router, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rec, _ = do(t, router, req)
	assert.Equal(t, "abc-123", rec.Header().Get(HeaderRequestID))
}

func TestRecovery(t *testing.T) {
	router := newTestRouter(t, classifier.Fixed{})
	router.GET("/boom", func(*gin.Context) { panic("kaboom") })

	rec, body := do(t, router, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "kaboom", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t, classifier.Fixed{})
	do(t, router, httptest.NewRequest(http.MethodGet, "/health", nil))

	rec, _ := do(t, router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "agriguru_http_requests_total")
}
