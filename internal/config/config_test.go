package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no stray .env

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "DEVSITES404 API", cfg.App.Name)
	require.Equal(t, "1.0.0", cfg.App.Version)
	require.Equal(t, "8001", cfg.App.Port)
	require.Equal(t, "0.0.0.0:8001", cfg.App.Addr())
	require.False(t, cfg.App.Debug)
	require.Equal(t, "sqlite:///./devsites.db", cfg.Database.URL)
	require.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	require.Equal(t, 86400, cfg.CORS.MaxAge)
	require.Equal(t, 100, cfg.API.DefaultPageSize)
	require.Equal(t, 500, cfg.API.MaxPageSize)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv("DEBUG", "true")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/devsites?sslmode=disable")
	t.Setenv("ALLOWED_ORIGINS", "https://devsites404.com,https://www.devsites404.com")
	t.Setenv("DEFAULT_PAGE_SIZE", "20")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9000", cfg.App.Port)
	require.True(t, cfg.App.Debug)
	require.True(t, cfg.Database.IsPostgres())
	require.Equal(t, []string{"https://devsites404.com", "https://www.devsites404.com"}, cfg.CORS.AllowedOrigins)
	require.False(t, cfg.CORS.AllowsAnyOrigin())
	require.Equal(t, 20, cfg.API.DefaultPageSize)
}

func TestLoad_RejectsBadPageSizes(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DEFAULT_PAGE_SIZE", "600")

	_, err := Load()
	require.Error(t, err)
}

func TestDatabaseConfig(t *testing.T) {
	tests := []struct {
		url        string
		isPostgres bool
		sqlitePath string
	}{
		{"sqlite:///./devsites.db", false, "./devsites.db"},
		{"sqlite://devsites.db", false, "devsites.db"},
		{":memory:", false, ":memory:"},
		{"postgres://localhost/devsites", true, ""},
		{"postgresql://localhost/devsites", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			c := DatabaseConfig{URL: tt.url}
			require.Equal(t, tt.isPostgres, c.IsPostgres())
			if !tt.isPostgres {
				require.Equal(t, tt.sqlitePath, c.GetSQLitePath())
			}
		})
	}
}
