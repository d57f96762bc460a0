package config

import (
	"testing"
	"time"
)

// --- MustLoad ---

func TestMustLoad_PanicsOnInvalidConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose") // invalid -> Load() error
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustLoad should panic on invalid config")
		}
	}()
	_ = MustLoad()
}

// --- Load success + normalization + parsing ---

func TestLoad_Success_DefaultsAndOverrides(t *testing.T) {
	// Server timeouts / sizes (valid)
	t.Setenv("PORT", "8088")
	t.Setenv("READ_TIMEOUT", "2s")
	t.Setenv("READ_HEADER_TIMEOUT", "1s")
	t.Setenv("WRITE_TIMEOUT", "3s")
	t.Setenv("IDLE_TIMEOUT", "4s")
	t.Setenv("MAX_HEADER_BYTES", "8192")
	t.Setenv("GIN_MODE", "weird") // will normalize to "release"

	// Logging / Docs
	t.Setenv("LOG_LEVEL", "warning") // will normalize to "warn"
	t.Setenv("LOG_PRETTY", "yes")
	t.Setenv("SWAGGER_ENABLED", "on")
	t.Setenv("API_BASE_PATH", "api/v1/") // no leading slash + trailing slash -> "/api/v1"

	// App
	t.Setenv("DB_PATH", "db.sqlite")
	t.Setenv("DATA_PATH", "videos.csv")
	t.Setenv("LOAD_TIMEOUT", "90s")
	t.Setenv("RELOAD_CRON", " 0 3 * * * ")

	// Search
	t.Setenv("THRESHOLD", "0.5")
	t.Setenv("RECALL_PROFILE", "true")
	t.Setenv("MAX_RESULTS", "50")

	// Emotion classifier
	t.Setenv("EMOTION_CMD", "python3 scripts/infer_emotion.py")
	t.Setenv("EMOTION_TIMEOUT", "10s")

	// Rate limiting (invalids fall back to defaults)
	t.Setenv("RATE_RPS", "x")
	t.Setenv("RATE_BURST", "nope")

	// CORS
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Port != "8088" || cfg.ReadTimeout != 2*time.Second || cfg.MaxHeaderBytes != 8192 {
		t.Fatalf("server settings wrong: %+v", cfg)
	}
	if cfg.GinMode != "release" {
		t.Fatalf("GinMode = %q, want release", cfg.GinMode)
	}
	if cfg.LogLevel != "warn" || !cfg.LogPretty || !cfg.SwaggerEnabled {
		t.Fatalf("logging settings wrong: %+v", cfg)
	}
	if cfg.APIBasePath != "/api/v1" {
		t.Fatalf("APIBasePath = %q", cfg.APIBasePath)
	}
	if cfg.DataPath != "videos.csv" || cfg.LoadTimeout != 90*time.Second {
		t.Fatalf("app settings wrong: %+v", cfg)
	}
	if cfg.ReloadCron != "0 3 * * *" {
		t.Fatalf("ReloadCron = %q", cfg.ReloadCron)
	}
	if cfg.Search.Threshold != 0.5 || !cfg.Search.RecallProfile || cfg.Search.MaxResults != 50 {
		t.Fatalf("search settings wrong: %+v", cfg.Search)
	}
	wantCmd := []string{"python3", "scripts/infer_emotion.py"}
	if len(cfg.Emotion.Command) != 2 || cfg.Emotion.Command[0] != wantCmd[0] || cfg.Emotion.Command[1] != wantCmd[1] {
		t.Fatalf("Emotion.Command = %v, want %v", cfg.Emotion.Command, wantCmd)
	}
	if cfg.Emotion.Timeout != 10*time.Second {
		t.Fatalf("Emotion.Timeout = %v", cfg.Emotion.Timeout)
	}
	if cfg.RateRPS != 5.0 || cfg.RateBurst != 10 {
		t.Fatalf("rate limits should fall back to defaults: %v %d", cfg.RateRPS, cfg.RateBurst)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[0] != "https://a.example" {
		t.Fatalf("CORS origins = %v", cfg.CORS.AllowedOrigins)
	}
}

// --- Validation failures ---

func TestLoad_ValidationErrors(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"threshold too high", "THRESHOLD", "1.5"},
		{"threshold zero", "THRESHOLD", "0.0"},
		{"negative rate", "RATE_RPS", "-1"},
		{"zero burst", "RATE_BURST", "0"},
		{"sample ratio", "OTEL_TRACES_SAMPLER_ARG", "2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Setenv(c.key, c.value)
			if _, err := Load(); err == nil {
				t.Fatalf("Load() with %s=%s should fail", c.key, c.value)
			}
		})
	}
}

// --- Helpers ---

func TestNormalizeBasePath(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", "/"},
		{"/", "/"},
		{"api", "/api"},
		{"/api/v1/", "/api/v1"},
		{"  /api  ", "/api"},
	}
	for _, c := range cases {
		if got := normalizeBasePath(c.in); got != c.want {
			t.Errorf("normalizeBasePath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSplitFields(t *testing.T) {
	if got := splitFields(""); got != nil {
		t.Fatalf("splitFields empty = %v", got)
	}
	got := splitFields("  python3  run.py  ")
	if len(got) != 2 || got[0] != "python3" || got[1] != "run.py" {
		t.Fatalf("splitFields = %v", got)
	}
}
