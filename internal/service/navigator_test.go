package service

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/hacktx/financial-navigator/internal/cache"
	"github.com/hacktx/financial-navigator/internal/calculation"
	"github.com/hacktx/financial-navigator/internal/config"
	"github.com/hacktx/financial-navigator/internal/domain"
	"github.com/hacktx/financial-navigator/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNavigator(t *testing.T, opts ...Option) *Navigator {
	t.Helper()
	engine := calculation.NewEngine()
	engine.SetStreakSource(calculation.FixedStreak(4))
	return New(engine, config.NewInputParser().CreateExampleCatalog(), opts...)
}

func newTestRepo(t *testing.T) *repository.SQLRepository {
	t.Helper()
	repo, err := repository.New(domain.RepositoryConfig{
		Driver:     "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "navigator.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func exampleProfile() *domain.FinancialProfile {
	return config.NewInputParser().CreateExampleProfile()
}

func toJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestAnalyze_MemoizesReports(t *testing.T) {
	lru := cache.NewLRUCache(10)
	nav := newTestNavigator(t, WithCache(lru, time.Minute))
	ctx := context.Background()

	first, err := nav.Analyze(ctx, exampleProfile())
	require.NoError(t, err)
	size, _ := lru.Stats()
	assert.Equal(t, 1, size)

	second, err := nav.Analyze(ctx, exampleProfile())
	require.NoError(t, err)
	assert.Equal(t, toJSON(t, first), toJSON(t, second))
	size, _ = lru.Stats()
	assert.Equal(t, 1, size)

	changed := exampleProfile()
	changed.PersonalInfo.CreditScore = 810
	third, err := nav.Analyze(ctx, changed)
	require.NoError(t, err)
	assert.NotEqual(t, first.Health.Credit.String(), third.Health.Credit.String())
	size, _ = lru.Stats()
	assert.Equal(t, 2, size)
}

func TestAnalyze_MatchesEngineWithoutCache(t *testing.T) {
	nav := newTestNavigator(t)
	engine := calculation.NewEngine()
	engine.SetStreakSource(calculation.FixedStreak(4))

	got, err := nav.Analyze(context.Background(), exampleProfile())
	require.NoError(t, err)
	want, err := engine.Analyze(context.Background(), exampleProfile(), config.NewInputParser().CreateExampleCatalog())
	require.NoError(t, err)
	assert.Equal(t, toJSON(t, want), toJSON(t, got))
}

func TestAnalyze_InvalidProfileIsNotCached(t *testing.T) {
	lru := cache.NewLRUCache(10)
	nav := newTestNavigator(t, WithCache(lru, time.Minute))

	bad := exampleProfile()
	bad.PersonalInfo.CreditScore = 900
	_, err := nav.Analyze(context.Background(), bad)
	assert.ErrorIs(t, err, domain.ErrInvalidProfile)

	_, err = nav.Analyze(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidProfile)

	size, _ := lru.Stats()
	assert.Equal(t, 0, size)
}

func TestAnalyze_CorruptCacheEntryIsRecomputed(t *testing.T) {
	lru := cache.NewLRUCache(10)
	nav := newTestNavigator(t, WithCache(lru, time.Minute))
	ctx := context.Background()

	key, err := nav.reportKey(exampleProfile())
	require.NoError(t, err)
	require.NoError(t, lru.Set(ctx, key, []byte("{not json"), time.Minute))

	report, err := nav.Analyze(ctx, exampleProfile())
	require.NoError(t, err)
	assert.Len(t, report.Scenarios, 4)

	data, err := lru.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestReportKey_DependsOnCatalog(t *testing.T) {
	a := newTestNavigator(t)
	catalog := config.NewInputParser().CreateExampleCatalog()[:2]
	b := New(calculation.NewEngine(), catalog)

	ka, err := a.reportKey(exampleProfile())
	require.NoError(t, err)
	kb, err := b.reportKey(exampleProfile())
	require.NoError(t, err)
	assert.NotEqual(t, ka, kb)
	assert.Len(t, ka, 64)
}

func TestProfiles(t *testing.T) {
	nav := newTestNavigator(t, WithRepository(newTestRepo(t)))
	ctx := context.Background()

	require.NoError(t, nav.SaveProfile(ctx, "user-1", exampleProfile()))

	loaded, err := nav.LoadProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, loaded.Preferences.Budget.Equal(exampleProfile().Preferences.Budget))

	report, err := nav.AnalyzeUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 4, report.Stats.Streak)

	id, err := nav.CreateProfile(ctx, exampleProfile())
	require.NoError(t, err)
	assert.Len(t, id, 36)

	ids, err := nav.ListProfiles(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"user-1", id}, ids)

	require.NoError(t, nav.DeleteProfile(ctx, "user-1"))
	_, err = nav.AnalyzeUser(ctx, "user-1")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.ErrorIs(t, nav.DeleteProfile(ctx, "user-1"), domain.ErrProfileNotFound)
}

func TestSaveProfile_Rejects(t *testing.T) {
	nav := newTestNavigator(t, WithRepository(newTestRepo(t)))
	ctx := context.Background()

	bad := exampleProfile()
	bad.Preferences.LoanTerm = 0
	assert.ErrorIs(t, nav.SaveProfile(ctx, "user-1", bad), domain.ErrInvalidProfile)
	assert.ErrorIs(t, nav.SaveProfile(ctx, "", exampleProfile()), domain.ErrInvalidInput)

	ids, err := nav.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestProfiles_NoRepository(t *testing.T) {
	nav := newTestNavigator(t)
	ctx := context.Background()

	assert.ErrorIs(t, nav.SaveProfile(ctx, "u", exampleProfile()), ErrRepositoryUnavailable)
	_, err := nav.LoadProfile(ctx, "u")
	assert.ErrorIs(t, err, ErrRepositoryUnavailable)
	_, err = nav.AnalyzeUser(ctx, "u")
	assert.ErrorIs(t, err, ErrRepositoryUnavailable)
	assert.ErrorIs(t, nav.DeleteProfile(ctx, "u"), ErrRepositoryUnavailable)
	_, err = nav.ListProfiles(ctx)
	assert.ErrorIs(t, err, ErrRepositoryUnavailable)
}

func TestRecommend(t *testing.T) {
	nav := newTestNavigator(t)
	profile := exampleProfile()

	matches, filter, err := nav.Recommend(profile, nil)
	require.NoError(t, err)
	assert.Equal(t, calculation.DefaultFilter(profile), filter)
	for _, m := range matches {
		assert.True(t, filter.Allows(m.Vehicle), m.ID)
	}

	wide := domain.VehicleFilter{
		MinPrice:          decimal.Zero,
		MaxPrice:          decimal.NewFromInt(1_000_000),
		MaxMonthlyPayment: decimal.NewFromInt(100_000),
		VehicleType:       domain.VehicleTypeAny,
	}
	all, _, err := nav.Recommend(profile, &wide)
	require.NoError(t, err)
	assert.Len(t, all, len(nav.Catalog()))
}

func TestStatusAndClose(t *testing.T) {
	nav := newTestNavigator(t)
	assert.Equal(t, map[string]string{"repository": "disabled", "cache": "disabled"}, nav.Status(context.Background()))

	nav = newTestNavigator(t, WithCache(cache.NewLRUCache(1), time.Minute), WithRepository(newTestRepo(t)))
	assert.Equal(t, map[string]string{"repository": "ok", "cache": "ok"}, nav.Status(context.Background()))
	assert.NoError(t, nav.Close())
}
