package config

import (
	"testing"
	"time"
)

// setEnv sets an environment variable for the duration of the test.
func setEnv(t *testing.T, k, v string) {
	t.Helper()
	t.Setenv(k, v)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.GinMode != "release" {
		t.Errorf("GinMode = %q", cfg.GinMode)
	}
	if cfg.MaxPromptLen != 240 {
		t.Errorf("MaxPromptLen = %d", cfg.MaxPromptLen)
	}
	if cfg.GiftCount != 8 {
		t.Errorf("GiftCount = %d", cfg.GiftCount)
	}
	if cfg.CacheTTL != 20*time.Minute {
		t.Errorf("CacheTTL = %v", cfg.CacheTTL)
	}
	if cfg.RateWindow != time.Minute {
		t.Errorf("RateWindow = %v", cfg.RateWindow)
	}
	if cfg.RateMax != 10 || cfg.DailyMax != 50 {
		t.Errorf("limits = %d/%d, want 10/50", cfg.RateMax, cfg.DailyMax)
	}
	if cfg.TestMode {
		t.Error("TestMode must default to false")
	}
	if cfg.APIBasePath != "/" {
		t.Errorf("APIBasePath = %q", cfg.APIBasePath)
	}
}

func TestLoad_TestModeRelaxesLimits(t *testing.T) {
	setEnv(t, "TEST_MODE", "true")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.TestMode {
		t.Fatal("TestMode not set")
	}
	if cfg.RateMax != 20 || cfg.DailyMax != 100 {
		t.Fatalf("limits = %d/%d, want 20/100", cfg.RateMax, cfg.DailyMax)
	}
}

func TestLoad_ExplicitLimitsWinOverTestMode(t *testing.T) {
	setEnv(t, "TEST_MODE", "1")
	setEnv(t, "RATE_MAX", "5")
	setEnv(t, "DAILY_MAX", "7")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RateMax != 5 || cfg.DailyMax != 7 {
		t.Fatalf("limits = %d/%d, want 5/7", cfg.RateMax, cfg.DailyMax)
	}
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	cases := []struct{ k, v string }{
		{"LOG_LEVEL", "verbose"},
		{"MAX_PROMPT_LEN", "0"},
		{"GIFT_COUNT", "-1"},
		{"CACHE_TTL", "-1m"},
		{"RATE_WINDOW", "-10s"},
		{"RATE_MAX", "0"},
		{"RATE_BURST", "0"},
		{"OTEL_TRACES_SAMPLER_ARG", "1.5"},
	}
	for _, tc := range cases {
		t.Run(tc.k, func(t *testing.T) {
			setEnv(t, tc.k, tc.v)
			if _, err := Load(); err == nil {
				t.Fatalf("%s=%s: expected validation error", tc.k, tc.v)
			}
		})
	}
}

func TestLoad_NormalizesLogLevelAndGinMode(t *testing.T) {
	setEnv(t, "LOG_LEVEL", "WARNING")
	setEnv(t, "GIN_MODE", "bogus")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.GinMode != "release" {
		t.Errorf("GinMode = %q", cfg.GinMode)
	}
}

func TestNormalizeBasePath(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", "/"},
		{"/", "/"},
		{"api", "/api"},
		{"/api/", "/api"},
		{" /api/v1 ", "/api/v1"},
	}
	for _, tc := range cases {
		if got := normalizeBasePath(tc.in); got != tc.want {
			t.Errorf("normalizeBasePath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGetHelpers(t *testing.T) {
	setEnv(t, "X_STR", "v")
	setEnv(t, "X_INT", "42")
	setEnv(t, "X_BOOL", "on")
	setEnv(t, "X_DUR", "90s")
	setEnv(t, "X_FLOAT", "0.5")

	if got := getenv("X_STR", "d"); got != "v" {
		t.Errorf("getenv = %q", got)
	}
	if got := getint("X_INT", 0); got != 42 {
		t.Errorf("getint = %d", got)
	}
	if !getbool("X_BOOL", false) {
		t.Error("getbool = false")
	}
	if got := getdur("X_DUR", 0); got != 90*time.Second {
		t.Errorf("getdur = %v", got)
	}
	if got := getfloat("X_FLOAT", 0); got != 0.5 {
		t.Errorf("getfloat = %v", got)
	}

	// Unset / malformed values fall back to defaults.
	if got := getint("X_MISSING", 7); got != 7 {
		t.Errorf("getint default = %d", got)
	}
	setEnv(t, "X_BAD", "zzz")
	if got := getdur("X_BAD", time.Second); got != time.Second {
		t.Errorf("getdur default = %v", got)
	}
}
