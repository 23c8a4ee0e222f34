package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamida-paiman/fraudscore/internal/domain"
	"github.com/hamida-paiman/fraudscore/internal/feature"
	"github.com/hamida-paiman/fraudscore/internal/model"
	"github.com/hamida-paiman/fraudscore/internal/scoring"
)

type fixedClassifier struct {
	probability float64
}

func (f *fixedClassifier) Score(rec domain.FeatureRecord) (float64, bool, error) {
	return f.probability, f.probability >= 0.5, nil
}

func newTestRouter(probability float64) http.Handler {
	svc := scoring.NewService(&fixedClassifier{probability: probability}, feature.DefaultSchemaConfig(), nil)
	return NewRouter(svc, model.Info{Name: "fraud-logreg-test", TestAccuracy: 0.8})
}

func scoreBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(domain.RawTransaction{
		Amount:           1500,
		Quantity:         3,
		CustomerAge:      34,
		AccountAgeDays:   10,
		TransactionDate:  "2025-11-30",
		TransactionHour:  2,
		PaymentMethod:    "Credit Card",
		ProductCategory:  "Electronics",
		DeviceUsed:       "Mobile",
		CustomerLocation: "New York",
	})
	require.NoError(t, err)
	return body
}

func TestScoreEndpoint(t *testing.T) {
	router := newTestRouter(0.83)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/score", bytes.NewReader(scoreBody(t)))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var result domain.PredictionResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, 0.83, result.Probability)
	assert.True(t, result.Label)
	assert.Len(t, result.Reasons, 5)
	assert.NotEmpty(t, result.ID)
}

func TestScoreEndpointRejectsBadHour(t *testing.T) {
	router := newTestRouter(0.5)

	body := []byte(`{"amount": 100, "quantity": 1, "transaction_hour": 24}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/score", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "between 0 and 23")
}

func TestScoreEndpointRejectsMalformedJSON(t *testing.T) {
	router := newTestRouter(0.5)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/score", strings.NewReader("{nope"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestModelInfoEndpoint(t *testing.T) {
	router := newTestRouter(0.5)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/model", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var info model.Info
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))
	assert.Equal(t, "fraud-logreg-test", info.Name)
	assert.Equal(t, 0.8, info.TestAccuracy)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(0.5)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"ok"`)
}

func TestFormPageRenders(t *testing.T) {
	router := newTestRouter(0.5)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Fraud Risk Estimator")
	assert.Contains(t, rr.Body.String(), "Model test accuracy: 80%")
}

func TestFormSubmissionShowsVerdict(t *testing.T) {
	router := newTestRouter(0.83)

	form := url.Values{
		"amount":            {"1500"},
		"quantity":          {"3"},
		"age":               {"34"},
		"account_age":       {"10"},
		"trans_date":        {"2025-11-30"},
		"hour":              {"2"},
		"payment_method":    {"Credit Card"},
		"product_category":  {"Electronics"},
		"device_used":       {"Mobile"},
		"customer_location": {"New York"},
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Likely Fraudulent")
	assert.Contains(t, rr.Body.String(), "83.00%")
	assert.Contains(t, rr.Body.String(), "night-time transaction")
}

func TestFormSubmissionReportsParseError(t *testing.T) {
	router := newTestRouter(0.5)

	form := url.Values{
		"amount":            {"not-a-number"},
		"quantity":          {"1"},
		"age":               {"30"},
		"account_age":       {"100"},
		"trans_date":        {"2025-11-30"},
		"hour":              {"10"},
		"payment_method":    {"PayPal"},
		"product_category":  {"Clothing"},
		"device_used":       {"Desktop"},
		"customer_location": {"Other"},
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Something went wrong")
	assert.Contains(t, rr.Body.String(), "amount")
}
