package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hacktx/financial-navigator/internal/calculation"
	"github.com/hacktx/financial-navigator/internal/config"
	"github.com/hacktx/financial-navigator/internal/domain"
	"github.com/hacktx/financial-navigator/internal/repository"
	"github.com/hacktx/financial-navigator/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestServer(t *testing.T, withRepo bool) *Server {
	t.Helper()
	engine := calculation.NewEngine()
	engine.SetStreakSource(calculation.FixedStreak(2))

	var opts []service.Option
	if withRepo {
		repo, err := repository.New(domain.RepositoryConfig{
			Driver:     "sqlite",
			SQLitePath: filepath.Join(t.TempDir(), "api.db"),
		})
		require.NoError(t, err)
		t.Cleanup(func() { repo.Close() })
		opts = append(opts, service.WithRepository(repo))
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	opts = append(opts, service.WithLogger(logger))
	nav := service.New(engine, config.NewInputParser().CreateExampleCatalog(), opts...)

	cfg := domain.ServerConfig{Host: "localhost", Port: 8080, ReadTimeout: 30, WriteTimeout: 30}
	return NewServer(cfg, nav, logger, "test-v1")
}

func profileBody(t *testing.T, mutate func(p *domain.FinancialProfile)) []byte {
	t.Helper()
	p := config.NewInputParser().CreateExampleProfile()
	if mutate != nil {
		mutate(p)
	}
	body, err := json.Marshal(p)
	require.NoError(t, err)
	return body
}

func do(t *testing.T, s *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	return rr
}

func TestHealthEndpoint(t *testing.T) {
	s := createTestServer(t, false)
	rr := do(t, s, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "test-v1", resp["version"])
	assert.NotEmpty(t, rr.Header().Get(RequestIDHeader))
	assert.NotEmpty(t, rr.Header().Get(TraceIDHeader))
}

func TestRequestIDPropagation(t *testing.T) {
	s := createTestServer(t, false)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)

	assert.Equal(t, "req-123", rr.Header().Get(RequestIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	s := createTestServer(t, false)
	req := httptest.NewRequest(http.MethodOptions, "/v1/analyze", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestAnalyzeEndpoint(t *testing.T) {
	s := createTestServer(t, false)

	t.Run("Success", func(t *testing.T) {
		rr := do(t, s, http.MethodPost, "/v1/analyze", profileBody(t, nil))
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var report domain.Report
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
		assert.Len(t, report.Scenarios, 4)
		assert.Len(t, report.Achievements, 10)
		assert.Len(t, report.Schedules, 3)
		assert.Equal(t, 2, report.Stats.Streak)
	})

	t.Run("InvalidProfile", func(t *testing.T) {
		body := profileBody(t, func(p *domain.FinancialProfile) { p.PersonalInfo.CreditScore = 200 })
		rr := do(t, s, http.MethodPost, "/v1/analyze", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "credit score")
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		rr := do(t, s, http.MethodPost, "/v1/analyze", []byte("{"))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("UnknownField", func(t *testing.T) {
		rr := do(t, s, http.MethodPost, "/v1/analyze", []byte(`{"salary": 1}`))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("CSVFormat", func(t *testing.T) {
		rr := do(t, s, http.MethodPost, "/v1/analyze?format=scenarios", profileBody(t, nil))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/csv; charset=utf-8", rr.Header().Get("Content-Type"))
		assert.True(t, strings.HasPrefix(rr.Body.String(), "Scenario,Type,InterestRate"))
	})

	t.Run("ConsoleFormat", func(t *testing.T) {
		rr := do(t, s, http.MethodPost, "/v1/analyze?format=text", profileBody(t, nil))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "FINANCIAL NAVIGATOR REPORT")
	})

	t.Run("UnsupportedFormat", func(t *testing.T) {
		rr := do(t, s, http.MethodPost, "/v1/analyze?format=pdf", profileBody(t, nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCalculatorEndpoints(t *testing.T) {
	s := createTestServer(t, false)

	t.Run("HealthScore", func(t *testing.T) {
		rr := do(t, s, http.MethodPost, "/v1/health-score", profileBody(t, nil))
		require.Equal(t, http.StatusOK, rr.Code)

		var resp HealthScoreResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 49, resp.Score.Overall)
		assert.Equal(t, domain.TierNeedsAttention, resp.Tier)
		assert.Equal(t, "0.48", resp.DebtToIncomeRatio.String())
		require.Len(t, resp.Advice, 1)
		assert.Equal(t, domain.AdviceWarning, resp.Advice[0].Type)
	})

	t.Run("Scenarios", func(t *testing.T) {
		rr := do(t, s, http.MethodPost, "/v1/scenarios", profileBody(t, nil))
		require.Equal(t, http.StatusOK, rr.Code)

		var resp ScenariosResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Scenarios, 4)
		assert.Len(t, resp.Schedules, 3)
		assert.NotContains(t, resp.Schedules, domain.ScenarioLease)
		assert.Len(t, resp.Schedules[domain.ScenarioConservative], 5)
	})

	t.Run("Quote", func(t *testing.T) {
		body := []byte(`{"principal": 20000, "interestRate": 6.5, "term": 72, "downPayment": "0"}`)
		rr := do(t, s, http.MethodPost, "/v1/quote", body)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var resp QuoteResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "336.20", resp.Quote.MonthlyPayment.StringFixed(2))
		assert.Len(t, resp.Schedule, 6)
	})

	t.Run("QuoteInvalidTerm", func(t *testing.T) {
		rr := do(t, s, http.MethodPost, "/v1/quote", []byte(`{"principal": 20000, "interestRate": 6.5, "term": 0}`))
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		rr = do(t, s, http.MethodPost, "/v1/quote", []byte(`{"principal": 20000, "interestRate": 6.5, "term": 12000}`))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "term must be between 1 and 600 months")
	})

	t.Run("Vehicles", func(t *testing.T) {
		body := []byte(`{"profile": ` + string(profileBody(t, nil)) + `}`)
		rr := do(t, s, http.MethodPost, "/v1/vehicles", body)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var resp VehiclesResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 6, resp.Total)
		for _, m := range resp.Matches {
			assert.True(t, resp.Filter.Allows(m.Vehicle), m.ID)
		}
	})

	t.Run("VehiclesPartialFilter", func(t *testing.T) {
		body := []byte(`{"profile": ` + string(profileBody(t, nil)) + `, "filter": {"minPrice": "0", "vehicleType": "all"}}`)
		rr := do(t, s, http.MethodPost, "/v1/vehicles", body)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var resp VehiclesResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Filter.MaxMonthlyPayment.Equal(decimal.NewFromInt(400)))
		assert.True(t, resp.Filter.MaxPrice.Equal(decimal.NewFromInt(30000)))
		ids := []string{}
		for _, m := range resp.Matches {
			ids = append(ids, m.ID)
		}
		assert.ElementsMatch(t, []string{"corolla-cross", "prius"}, ids)
	})

	t.Run("VehiclesMissingProfile", func(t *testing.T) {
		rr := do(t, s, http.MethodPost, "/v1/vehicles", []byte(`{}`))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Achievements", func(t *testing.T) {
		rr := do(t, s, http.MethodPost, "/v1/achievements", profileBody(t, nil))
		require.Equal(t, http.StatusOK, rr.Code)

		var resp AchievementsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Achievements, 10)
		assert.Equal(t, domain.UnlockedCount(resp.Achievements), resp.Unlocked)
		assert.Equal(t, 2, resp.Stats.Streak)
	})
}

func TestProfileEndpoints_NoRepository(t *testing.T) {
	s := createTestServer(t, false)

	rr := do(t, s, http.MethodPut, "/v1/profiles/user-1", profileBody(t, nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	rr = do(t, s, http.MethodGet, "/v1/profiles/user-1/report", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestProfileEndpoints(t *testing.T) {
	s := createTestServer(t, true)

	rr := do(t, s, http.MethodPut, "/v1/profiles/user-1", profileBody(t, nil))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = do(t, s, http.MethodGet, "/v1/profiles/user-1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var got ProfileResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "user-1", got.UserID)
	require.NotNil(t, got.Profile)

	rr = do(t, s, http.MethodGet, "/v1/profiles/user-1/report", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var report domain.Report
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Len(t, report.Scenarios, 4)

	rr = do(t, s, http.MethodPut, "/v1/profiles/user-2", profileBody(t, func(p *domain.FinancialProfile) { p.Preferences.Budget = p.Preferences.Budget.Neg() }))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, s, http.MethodPost, "/v1/profiles", profileBody(t, nil))
	require.Equal(t, http.StatusCreated, rr.Code)
	var created ProfileResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Len(t, created.UserID, 36)

	rr = do(t, s, http.MethodGet, "/v1/profiles", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), created.UserID)
	assert.Contains(t, rr.Body.String(), `"count":2`)

	rr = do(t, s, http.MethodGet, "/v1/profiles/nobody", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	rr = do(t, s, http.MethodGet, "/v1/profiles/nobody/report", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, s, http.MethodDelete, "/v1/profiles/user-1", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = do(t, s, http.MethodDelete, "/v1/profiles/user-1", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
