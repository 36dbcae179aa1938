package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traiteur/internal/casebase"
	"traiteur/internal/engine"
	"traiteur/internal/knowledge"
	"traiteur/internal/learning"
	"traiteur/internal/models"
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := casebase.SampleCatalog()
	store := casebase.NewStore()
	for _, c := range casebase.SeedCases(catalog) {
		store.Add(c)
	}
	engCfg := engine.DefaultConfig()
	engCfg.Seed = 1
	eng := engine.New(catalog, store, knowledge.NewBase(), knowledge.NewIngredients(),
		nil, engCfg, learning.DefaultConfig(), nil)
	return NewServer(eng, nil, cfg)
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func proposalRequest() models.Request {
	return models.Request{
		ID:        "req-api",
		EventType: models.EventWedding,
		Season:    models.SeasonSummer,
		Guests:    110,
		PriceMin:  40,
		PriceMax:  70,
		WantsWine: true,
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, Config{})
	w := doJSON(t, s, http.MethodGet, "/health", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestProposalsEndpoint(t *testing.T) {
	s := newTestServer(t, Config{})
	w := doJSON(t, s, http.MethodPost, "/api/v1/proposals", proposalRequest(), nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res engine.ProposeResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.NotEmpty(t, res.Proposals)
}

func TestProposalsEndpointNoValidProposals(t *testing.T) {
	s := newTestServer(t, Config{})
	req := proposalRequest()
	req.PriceMin = 1
	req.PriceMax = 5

	w := doJSON(t, s, http.MethodPost, "/api/v1/proposals", req, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Error   string   `json:"error"`
		Reasons []string `json:"reasons"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "no valid proposals", body.Error)
	assert.NotEmpty(t, body.Reasons)
}

func TestProposalsEndpointMalformedBody(t *testing.T) {
	s := newTestServer(t, Config{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/proposals", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeedbackEndpoint(t *testing.T) {
	s := newTestServer(t, Config{})

	cw := doJSON(t, s, http.MethodGet, "/api/v1/cases/case-wedding-classic", nil, nil)
	require.Equal(t, http.StatusOK, cw.Code)
	var stored models.Case
	require.NoError(t, json.Unmarshal(cw.Body.Bytes(), &stored))

	w := doJSON(t, s, http.MethodPost, "/api/v1/feedback", feedbackBody{
		Request:  stored.Request,
		Menu:     stored.Menu,
		Feedback: models.Feedback{Score: 5.0, Success: true},
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res engine.FeedbackResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.NotEmpty(t, res.Retention.Action)
}

func TestCaseFeedbackEndpointUnknownCase(t *testing.T) {
	s := newTestServer(t, Config{})
	w := doJSON(t, s, http.MethodPost, "/api/v1/cases/case-missing/feedback",
		models.Feedback{Score: 4.0}, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCasesEndpoint(t *testing.T) {
	s := newTestServer(t, Config{})
	w := doJSON(t, s, http.MethodGet, "/api/v1/cases", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Positive(t, body.Count)
}

func TestWeightsEndpoint(t *testing.T) {
	s := newTestServer(t, Config{})
	w := doJSON(t, s, http.MethodGet, "/api/v1/weights", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var weights map[string]float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &weights))

	sum := 0.0
	for _, v := range weights {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

func TestAuthMiddleware(t *testing.T) {
	s := newTestServer(t, Config{JWTSecret: "test-secret"})

	w := doJSON(t, s, http.MethodGet, "/api/v1/cases", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/v1/cases", nil, map[string]string{
		"Authorization": "Bearer not-a-token",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "tests",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	w = doJSON(t, s, http.MethodGet, "/api/v1/cases", nil, map[string]string{
		"Authorization": "Bearer " + signed,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Health stays open regardless of the auth configuration.
	w = doJSON(t, s, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
