package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hacktx/financial-navigator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() *domain.FinancialProfile {
	return &domain.FinancialProfile{
		PersonalInfo: domain.PersonalInfo{
			AnnualIncome:     decimal.NewFromInt(50000),
			MonthlyExpenses:  decimal.NewFromInt(2000),
			CreditScore:      700,
			EmploymentStatus: domain.EmploymentEmployed,
		},
		Preferences: domain.Preferences{
			Budget:      decimal.NewFromInt(25000),
			DownPayment: decimal.NewFromInt(5000),
			LoanTerm:    60,
			VehicleType: domain.VehicleSedan,
			Lifestyle:   []string{"eco-conscious"},
		},
		Goals: domain.Goals{
			MonthlyPaymentTarget: decimal.RequireFromString("412.50"),
			FinancialGoals:       []string{"save"},
			Timeline:             12,
		},
	}
}

func openTestRepo(t *testing.T) *SQLRepository {
	t.Helper()
	repo, err := New(domain.RepositoryConfig{
		Driver:     "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "data", "navigator-test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSQLiteRepository(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	t.Run("Ping", func(t *testing.T) {
		require.NoError(t, repo.Ping(ctx))
	})

	t.Run("SaveAndGetProfile", func(t *testing.T) {
		require.NoError(t, repo.SaveProfile(ctx, "user-001", testProfile()))

		got, err := repo.GetProfile(ctx, "user-001")
		require.NoError(t, err)
		assert.Equal(t, 700, got.PersonalInfo.CreditScore)
		assert.True(t, got.Goals.MonthlyPaymentTarget.Equal(decimal.RequireFromString("412.5")))
		assert.Equal(t, []string{"eco-conscious"}, got.Preferences.Lifestyle)
		assert.Equal(t, domain.VehicleSedan, got.Preferences.VehicleType)
	})

	t.Run("SaveReplacesExisting", func(t *testing.T) {
		updated := testProfile()
		updated.PersonalInfo.CreditScore = 780
		require.NoError(t, repo.SaveProfile(ctx, "user-001", updated))

		got, err := repo.GetProfile(ctx, "user-001")
		require.NoError(t, err)
		assert.Equal(t, 780, got.PersonalInfo.CreditScore)
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := repo.GetProfile(ctx, "nobody")
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	})

	t.Run("ListUserIDs", func(t *testing.T) {
		require.NoError(t, repo.SaveProfile(ctx, "user-000", testProfile()))

		ids, err := repo.ListUserIDs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"user-000", "user-001"}, ids)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteProfile(ctx, "user-000"))
		_, err := repo.GetProfile(ctx, "user-000")
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)

		err = repo.DeleteProfile(ctx, "user-000")
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	})

	t.Run("InvalidInput", func(t *testing.T) {
		assert.ErrorIs(t, repo.SaveProfile(ctx, "", testProfile()), domain.ErrInvalidInput)
		assert.ErrorIs(t, repo.SaveProfile(ctx, "user-002", nil), domain.ErrInvalidInput)
	})
}

func TestRepository_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navigator.db")
	cfg := domain.RepositoryConfig{Driver: "sqlite", SQLitePath: path}

	repo, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, repo.SaveProfile(context.Background(), "user-001", testProfile()))
	require.NoError(t, repo.Close())

	reopened, err := New(cfg)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.GetProfile(context.Background(), "user-001")
	require.NoError(t, err)
	assert.True(t, got.Preferences.Budget.Equal(decimal.NewFromInt(25000)))
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(domain.RepositoryConfig{Driver: "mysql"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestRebind(t *testing.T) {
	query := `SELECT profile FROM profiles WHERE user_id = ? AND updated_at > ?`

	pg := &SQLRepository{driver: "postgres"}
	assert.Equal(t, `SELECT profile FROM profiles WHERE user_id = $1 AND updated_at > $2`, pg.rebind(query))

	lite := &SQLRepository{driver: "sqlite"}
	assert.Equal(t, query, lite.rebind(query))
}

func TestPostgresDSN(t *testing.T) {
	dsn := postgresDSN(domain.RepositoryConfig{PostgresUser: "nav", PostgresPassword: "secret"})
	assert.Equal(t, "host=localhost port=5432 user=nav password=secret dbname=navigator sslmode=disable", dsn)
}
