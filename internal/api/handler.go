package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hacktx/financial-navigator/internal/calculation"
	"github.com/hacktx/financial-navigator/internal/domain"
	"github.com/hacktx/financial-navigator/internal/output"
	"github.com/hacktx/financial-navigator/internal/service"
	"github.com/shopspring/decimal"
)

const maxBodyBytes = 1 << 20

// Handler holds dependencies for API handlers.
type Handler struct {
	nav     *service.Navigator
	logger  *slog.Logger
	version string
}

// NewHandler creates a new API handler.
func NewHandler(nav *service.Navigator, logger *slog.Logger, version string) *Handler {
	return &Handler{nav: nav, logger: logger, version: version}
}

type errorResponse struct {
	Error string `json:"error"`
}

// HealthScoreResponse is the response for POST /v1/health-score.
type HealthScoreResponse struct {
	Score             domain.FinancialHealthScore `json:"score"`
	Tier              domain.HealthTier           `json:"tier"`
	DebtToIncomeRatio decimal.Decimal             `json:"debtToIncomeRatio"`
	Advice            []domain.Advice             `json:"advice"`
}

// ScenariosResponse is the response for POST /v1/scenarios.
type ScenariosResponse struct {
	Scenarios []domain.FinancingOption              `json:"scenarios"`
	Schedules map[string][]domain.AmortizationPoint `json:"schedules"`
}

// QuoteRequest is the request body for POST /v1/quote.
type QuoteRequest struct {
	Principal    decimal.Decimal `json:"principal"`
	InterestRate decimal.Decimal `json:"interestRate"`
	Term         int             `json:"term"`
	DownPayment  decimal.Decimal `json:"downPayment"`
}

// QuoteResponse is the response for POST /v1/quote.
type QuoteResponse struct {
	Quote    domain.PaymentQuote        `json:"quote"`
	Schedule []domain.AmortizationPoint `json:"schedule"`
}

// VehiclesRequest is the request body for POST /v1/vehicles. A missing filter
// uses the window derived from the profile; so do a zero maxPrice,
// maxMonthlyPayment or an empty vehicleType.
type VehiclesRequest struct {
	Profile *domain.FinancialProfile `json:"profile"`
	Filter  *domain.VehicleFilter    `json:"filter,omitempty"`
}

// VehiclesResponse is the response for POST /v1/vehicles.
type VehiclesResponse struct {
	Filter  domain.VehicleFilter           `json:"filter"`
	Matches []domain.VehicleRecommendation `json:"matches"`
	Total   int                            `json:"total"`
}

// AchievementsResponse is the response for POST /v1/achievements.
type AchievementsResponse struct {
	Achievements []domain.Achievement `json:"achievements"`
	Unlocked     int                  `json:"unlocked"`
	Stats        domain.UserStats     `json:"stats"`
}

// ProfileResponse is the response of the profile endpoints.
type ProfileResponse struct {
	UserID  string                   `json:"userId"`
	Profile *domain.FinancialProfile `json:"profile,omitempty"`
}

// Health returns server health status.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	components := h.nav.Status(r.Context())
	status := "healthy"
	for _, s := range components {
		if s != "ok" && s != "disabled" {
			status = "degraded"
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":     status,
		"version":    h.version,
		"components": components,
	})
}

// Analyze handles POST /v1/analyze. The optional format query parameter
// selects any registered report formatter; the default is JSON.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.decodeProfile(w, r)
	if !ok {
		return
	}
	report, err := h.nav.Analyze(r.Context(), profile)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeReport(w, r, report)
}

// HealthScore handles POST /v1/health-score.
func (h *Handler) HealthScore(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.decodeProfile(w, r)
	if !ok {
		return
	}
	score, err := h.nav.Health(profile)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, HealthScoreResponse{
		Score:             score,
		Tier:              score.Tier(),
		DebtToIncomeRatio: profile.PersonalInfo.DebtToIncomeRatio(),
		Advice:            calculation.GenerateAdvice(profile, score),
	})
}

// Scenarios handles POST /v1/scenarios.
func (h *Handler) Scenarios(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.decodeProfile(w, r)
	if !ok {
		return
	}
	scenarios, err := h.nav.Scenarios(profile)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	schedules := make(map[string][]domain.AmortizationPoint)
	for _, sc := range scenarios {
		if sc.Type == domain.FinancingLoan {
			schedules[sc.ID] = calculation.AmortizationSchedule(profile.Principal(), sc)
		}
	}
	writeJSON(w, http.StatusOK, ScenariosResponse{Scenarios: scenarios, Schedules: schedules})
}

// Quote handles POST /v1/quote.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if !h.decode(w, r, &req) {
		return
	}
	quote, err := h.nav.Quote(req.Principal, req.InterestRate, req.Term, req.DownPayment)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	schedule := calculation.AmortizationSchedule(quote.Principal, domain.FinancingOption{
		Type:           domain.FinancingLoan,
		InterestRate:   quote.InterestRate,
		Term:           quote.Term,
		MonthlyPayment: quote.MonthlyPayment,
	})
	writeJSON(w, http.StatusOK, QuoteResponse{Quote: quote, Schedule: schedule})
}

// Vehicles handles POST /v1/vehicles.
func (h *Handler) Vehicles(w http.ResponseWriter, r *http.Request) {
	var req VehiclesRequest
	if !h.decode(w, r, &req) {
		return
	}
	matches, filter, err := h.nav.Recommend(req.Profile, req.Filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, VehiclesResponse{Filter: filter, Matches: matches, Total: len(h.nav.Catalog())})
}

// Achievements handles POST /v1/achievements.
func (h *Handler) Achievements(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.decodeProfile(w, r)
	if !ok {
		return
	}
	achievements, err := h.nav.Achievements(profile)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, AchievementsResponse{
		Achievements: achievements,
		Unlocked:     domain.UnlockedCount(achievements),
		Stats:        h.nav.Stats(profile),
	})
}

// CreateProfile handles POST /v1/profiles.
func (h *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.decodeProfile(w, r)
	if !ok {
		return
	}
	userID, err := h.nav.CreateProfile(r.Context(), profile)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ProfileResponse{UserID: userID, Profile: profile})
}

// ListProfiles handles GET /v1/profiles.
func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	ids, err := h.nav.ListProfiles(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"userIds": ids, "count": len(ids)})
}

// PutProfile handles PUT /v1/profiles/{userID}.
func (h *Handler) PutProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	profile, ok := h.decodeProfile(w, r)
	if !ok {
		return
	}
	if err := h.nav.SaveProfile(r.Context(), userID, profile); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ProfileResponse{UserID: userID, Profile: profile})
}

// GetProfile handles GET /v1/profiles/{userID}.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	profile, err := h.nav.LoadProfile(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ProfileResponse{UserID: userID, Profile: profile})
}

// DeleteProfile handles DELETE /v1/profiles/{userID}.
func (h *Handler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := h.nav.DeleteProfile(r.Context(), chi.URLParam(r, "userID")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UserReport handles GET /v1/profiles/{userID}/report.
func (h *Handler) UserReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.nav.AnalyzeUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeReport(w, r, report)
}

func (h *Handler) decodeProfile(w http.ResponseWriter, r *http.Request) (*domain.FinancialProfile, bool) {
	var profile domain.FinancialProfile
	if !h.decode(w, r, &profile) {
		return nil, false
	}
	return &profile, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid JSON request body: %v", err)})
		return false
	}
	return true
}

func (h *Handler) writeReport(w http.ResponseWriter, r *http.Request, report *domain.Report) {
	format := r.URL.Query().Get("format")
	if format == "" || output.NormalizeFormatName(format) == "json" {
		writeJSON(w, http.StatusOK, report)
		return
	}

	var buf bytes.Buffer
	if err := output.GenerateReport(report, format, &buf); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentType(output.NormalizeFormatName(format)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func contentType(format string) string {
	switch format {
	case "csv", "schedule-csv":
		return "text/csv; charset=utf-8"
	case "yaml":
		return "application/yaml"
	default:
		return "text/plain; charset=utf-8"
	}
}

// writeError maps domain errors onto HTTP status codes.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidProfile),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, output.ErrUnsupportedFormat):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrProfileNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrRepositoryUnavailable):
		status = http.StatusServiceUnavailable
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "path", r.URL.Path, "request_id", GetRequestID(r.Context()), "error", err)
		msg = "internal server error"
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
