// Package service combines the calculation engine with the vehicle catalog,
// the report cache and the profile repository.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hacktx/financial-navigator/internal/calculation"
	"github.com/hacktx/financial-navigator/internal/domain"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrRepositoryUnavailable is returned by profile operations when no repository is configured.
var ErrRepositoryUnavailable = errors.New("profile repository not configured")

var tracer = otel.Tracer("navigator-service")

// Navigator is safe for concurrent use as long as its collaborators are.
type Navigator struct {
	engine     *calculation.Engine
	catalog    []domain.Vehicle
	catalogKey string

	cache  domain.Cache
	ttl    time.Duration
	repo   domain.ProfileRepository
	logger *slog.Logger
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithCache memoizes reports in c for ttl.
func WithCache(c domain.Cache, ttl time.Duration) Option {
	return func(n *Navigator) {
		n.cache = c
		n.ttl = ttl
	}
}

// WithRepository enables the profile operations.
func WithRepository(r domain.ProfileRepository) Option {
	return func(n *Navigator) { n.repo = r }
}

// WithLogger sets the structured logger. Nil keeps slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.logger = l
		}
	}
}

// New creates a Navigator scoring profiles against catalog. The catalog is
// copied; later changes by the caller are not observed.
func New(engine *calculation.Engine, catalog []domain.Vehicle, opts ...Option) *Navigator {
	if engine == nil {
		engine = calculation.NewEngine()
	}
	n := &Navigator{
		engine:  engine,
		catalog: append([]domain.Vehicle(nil), catalog...),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.logger = n.logger.With("component", "navigator")
	n.catalogKey = fingerprint(n.catalog)
	return n
}

// Catalog returns a copy of the vehicle catalog.
func (n *Navigator) Catalog() []domain.Vehicle {
	return append([]domain.Vehicle(nil), n.catalog...)
}

// Analyze runs the engine over profile, serving repeated requests for the
// same profile from the cache when one is configured.
func (n *Navigator) Analyze(ctx context.Context, profile *domain.FinancialProfile) (*domain.Report, error) {
	ctx, span := tracer.Start(ctx, "navigator.Analyze")
	defer span.End()

	if err := profile.Validate(); err != nil {
		recordError(span, err)
		return nil, err
	}

	key, err := n.reportKey(profile)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	if report := n.cached(ctx, key); report != nil {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return report, nil
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	report, err := n.engine.Analyze(ctx, profile, n.catalog)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("health.overall", report.Health.Overall),
		attribute.Int("matches", len(report.Matches)),
	)

	n.store(ctx, key, report)
	return report, nil
}

// Health scores profile without touching the cache.
func (n *Navigator) Health(profile *domain.FinancialProfile) (domain.FinancialHealthScore, error) {
	return n.engine.Health(profile)
}

// Scenarios returns the four financing options for profile.
func (n *Navigator) Scenarios(profile *domain.FinancialProfile) ([]domain.FinancingOption, error) {
	return n.engine.Scenarios(profile)
}

// Recommend scores the catalog against profile and applies the filter. A nil
// filter uses the profile's default window; unset ceilings and type are taken
// from it.
func (n *Navigator) Recommend(profile *domain.FinancialProfile, filter *domain.VehicleFilter) ([]domain.VehicleRecommendation, domain.VehicleFilter, error) {
	recs, err := n.engine.Recommend(profile, n.catalog)
	if err != nil {
		return nil, domain.VehicleFilter{}, err
	}
	f := calculation.DefaultFilter(profile)
	if filter != nil {
		f = calculation.CompleteFilter(*filter, profile)
	}
	return calculation.FilterRecommendations(recs, f), f, nil
}

// Achievements evaluates the gamification rules for profile.
func (n *Navigator) Achievements(profile *domain.FinancialProfile) ([]domain.Achievement, error) {
	return n.engine.Achievements(profile)
}

// Stats derives the dashboard counters for an already validated profile.
func (n *Navigator) Stats(profile *domain.FinancialProfile) domain.UserStats {
	return calculation.ComputeUserStats(profile, n.engine.Streak)
}

// Quote runs the custom payment calculator.
func (n *Navigator) Quote(principal, rate decimal.Decimal, term int, down decimal.Decimal) (domain.PaymentQuote, error) {
	return n.engine.Quote(principal, rate, term, down)
}

// CreateProfile stores profile under a freshly generated user id.
func (n *Navigator) CreateProfile(ctx context.Context, profile *domain.FinancialProfile) (string, error) {
	userID := uuid.NewString()
	if err := n.SaveProfile(ctx, userID, profile); err != nil {
		return "", err
	}
	return userID, nil
}

// SaveProfile validates and stores profile for userID.
func (n *Navigator) SaveProfile(ctx context.Context, userID string, profile *domain.FinancialProfile) error {
	ctx, span := tracer.Start(ctx, "navigator.SaveProfile", trace.WithAttributes(attribute.String("user.id", userID)))
	defer span.End()

	if n.repo == nil {
		return ErrRepositoryUnavailable
	}
	if userID == "" {
		return fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if err := profile.Validate(); err != nil {
		recordError(span, err)
		return err
	}
	if err := n.repo.SaveProfile(ctx, userID, profile); err != nil {
		recordError(span, err)
		return fmt.Errorf("failed to save profile %s: %w", userID, err)
	}
	n.logger.Info("profile saved", "user_id", userID)
	return nil
}

// LoadProfile returns the stored profile for userID.
func (n *Navigator) LoadProfile(ctx context.Context, userID string) (*domain.FinancialProfile, error) {
	if n.repo == nil {
		return nil, ErrRepositoryUnavailable
	}
	return n.repo.GetProfile(ctx, userID)
}

// DeleteProfile removes the stored profile for userID.
func (n *Navigator) DeleteProfile(ctx context.Context, userID string) error {
	if n.repo == nil {
		return ErrRepositoryUnavailable
	}
	if err := n.repo.DeleteProfile(ctx, userID); err != nil {
		return err
	}
	n.logger.Info("profile deleted", "user_id", userID)
	return nil
}

// ListProfiles returns every stored user id.
func (n *Navigator) ListProfiles(ctx context.Context) ([]string, error) {
	if n.repo == nil {
		return nil, ErrRepositoryUnavailable
	}
	return n.repo.ListUserIDs(ctx)
}

// AnalyzeUser loads the stored profile for userID and analyzes it.
func (n *Navigator) AnalyzeUser(ctx context.Context, userID string) (*domain.Report, error) {
	profile, err := n.LoadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return n.Analyze(ctx, profile)
}

// Status reports "ok", "disabled" or the ping error of each collaborator.
func (n *Navigator) Status(ctx context.Context) map[string]string {
	status := map[string]string{"repository": "disabled", "cache": "disabled"}
	if n.repo != nil {
		status["repository"] = pingStatus(n.repo.Ping(ctx))
	}
	if n.cache != nil {
		status["cache"] = pingStatus(n.cache.Ping(ctx))
	}
	return status
}

// Close releases the cache and the repository.
func (n *Navigator) Close() error {
	var errs []error
	if n.cache != nil {
		errs = append(errs, n.cache.Close())
	}
	if n.repo != nil {
		errs = append(errs, n.repo.Close())
	}
	return errors.Join(errs...)
}

func (n *Navigator) reportKey(profile *domain.FinancialProfile) (string, error) {
	data, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("failed to encode profile: %w", err)
	}
	sum := sha256.Sum256(append([]byte(n.catalogKey+":"), data...))
	return hex.EncodeToString(sum[:]), nil
}

func (n *Navigator) cached(ctx context.Context, key string) *domain.Report {
	if n.cache == nil {
		return nil
	}
	data, err := n.cache.Get(ctx, key)
	if err != nil {
		n.logger.Warn("cache read failed", "error", err)
		return nil
	}
	if data == nil {
		return nil
	}
	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		n.logger.Warn("discarding corrupt cache entry", "key", key, "error", err)
		_ = n.cache.Delete(ctx, key)
		return nil
	}
	return &report
}

func (n *Navigator) store(ctx context.Context, key string, report *domain.Report) {
	if n.cache == nil {
		return
	}
	data, err := json.Marshal(report)
	if err != nil {
		n.logger.Warn("failed to encode report for cache", "error", err)
		return
	}
	if err := n.cache.Set(ctx, key, data, n.ttl); err != nil {
		n.logger.Warn("cache write failed", "error", err)
	}
}

func fingerprint(catalog []domain.Vehicle) string {
	data, _ := json.Marshal(catalog)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:8])
}

func pingStatus(err error) string {
	if err != nil {
		return "error: " + err.Error()
	}
	return "ok"
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
