package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/league-admin/internal/platform/database"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=true in dev by default")
		}
	})
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "league-admin-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "league-admin-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}

func TestLoad_DatabaseDefaultsByDriver(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DB_URL", "")

	t.Run("sqlite by default", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.DB.Driver != database.DriverSQLite {
			t.Fatalf("unexpected driver: %s", cfg.DB.Driver)
		}
		if cfg.DB.URL != "league.db" {
			t.Fatalf("unexpected sqlite url: %q", cfg.DB.URL)
		}
		if !cfg.DB.AutoMigrate {
			t.Fatalf("expected DB_AUTO_MIGRATE=true by default")
		}
		if cfg.DB.MaxOpenConns != 10 || cfg.DB.MaxIdleConns != 5 || cfg.DB.ConnMaxLifetime != 30*time.Minute {
			t.Fatalf("unexpected pool defaults: %+v", cfg.DB)
		}
	})

	t.Run("postgres default url", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "POSTGRES")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.DB.Driver != database.DriverPostgres {
			t.Fatalf("unexpected driver: %s", cfg.DB.Driver)
		}
		if cfg.DB.URL == "" {
			t.Fatalf("expected a default postgres url")
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mysql")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for DB_DRIVER=mysql")
		}
	})
}

func TestLoad_DatabasePoolValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DB_DRIVER", "sqlite")

	cases := map[string]string{
		"DB_MAX_OPEN_CONNS":    "0",
		"DB_MAX_IDLE_CONNS":    "-1",
		"DB_CONN_MAX_LIFETIME": "soon",
		"DB_AUTO_MIGRATE":      "maybe",
		"DB_BINARY_PARAMETERS": "not-bool",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("CACHE_ENABLED", "")
		t.Setenv("CACHE_TTL", "")
		t.Setenv("CACHE_DRIVER", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.CacheEnabled {
			t.Fatalf("expected cache enabled by default")
		}
		if cfg.CacheDriver != CacheDriverMemory {
			t.Fatalf("unexpected default cache driver: %s", cfg.CacheDriver)
		}
		if cfg.CacheTTL != 60*time.Second {
			t.Fatalf("unexpected default cache ttl: %s", cfg.CacheTTL)
		}
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid CACHE_TTL")
		}
	})

	t.Run("redis requires url", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "")
		t.Setenv("CACHE_DRIVER", "redis")
		t.Setenv("REDIS_URL", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when CACHE_DRIVER=redis without REDIS_URL")
		}
	})

	t.Run("redis configured", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "")
		t.Setenv("CACHE_DRIVER", "redis")
		t.Setenv("REDIS_URL", "redis://localhost:6379/0")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.RedisURL != "redis://localhost:6379/0" {
			t.Fatalf("unexpected redis url: %q", cfg.RedisURL)
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("CACHE_DRIVER", "memcached")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for CACHE_DRIVER=memcached")
		}
	})
}

func TestLoadDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("LEAGUE_ADMIN_TEST_A=from-file\nLEAGUE_ADMIN_TEST_B=from-file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	t.Setenv("LEAGUE_ADMIN_TEST_A", "from-env")
	t.Setenv("LEAGUE_ADMIN_TEST_B", "")
	os.Unsetenv("LEAGUE_ADMIN_TEST_B")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if got := os.Getenv("LEAGUE_ADMIN_TEST_A"); got != "from-env" {
		t.Fatalf("expected existing value to win, got %q", got)
	}
	if got := os.Getenv("LEAGUE_ADMIN_TEST_B"); got != "from-file" {
		t.Fatalf("expected value from file, got %q", got)
	}

	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("missing file must be ignored: %v", err)
	}
}

func TestParseUptraceDSNFromOTLPHeaders(t *testing.T) {
	got := parseUptraceDSNFromOTLPHeaders(`foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)
	if got != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected dsn: %q", got)
	}
	if parseUptraceDSNFromOTLPHeaders("foo=bar") != "" {
		t.Fatalf("expected empty dsn without uptrace-dsn header")
	}
}
