package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/fuelrecon")
	t.Setenv("JWT_ACCESS_SECRET", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want development", cfg.Environment)
	}
	if cfg.HTTP.Port != 7090 {
		t.Errorf("HTTP.Port = %d, want 7090", cfg.HTTP.Port)
	}
	if cfg.Recon.VarianceToleranceL != 5 {
		t.Errorf("VarianceToleranceL = %v, want 5", cfg.Recon.VarianceToleranceL)
	}
	want := []string{"Movement Report", "Split Report", "IFS Extract"}
	if !reflect.DeepEqual(cfg.Recon.UploadReportTypes, want) {
		t.Errorf("UploadReportTypes = %v, want %v", cfg.Recon.UploadReportTypes, want)
	}
}

func TestLoadRequiresDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("JWT_ACCESS_SECRET", "secret")

	if _, err := Load(); err == nil {
		t.Error("Load accepted empty DB_DSN")
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/fuelrecon")
	t.Setenv("JWT_ACCESS_SECRET", "")

	if _, err := Load(); err == nil {
		t.Error("Load accepted empty JWT_ACCESS_SECRET")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/fuelrecon")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("RECON_VARIANCE_TOLERANCE_L", "2.5")
	t.Setenv("RECON_UPLOAD_REPORT_TYPES", "Movement Report, Custom Extract")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Environment != "production" {
		t.Errorf("Environment = %q, want production", cfg.Environment)
	}
	if cfg.HTTP.Port != 9100 {
		t.Errorf("HTTP.Port = %d, want 9100", cfg.HTTP.Port)
	}
	if cfg.Recon.VarianceToleranceL != 2.5 {
		t.Errorf("VarianceToleranceL = %v, want 2.5", cfg.Recon.VarianceToleranceL)
	}
	want := []string{"Movement Report", "Custom Extract"}
	if !reflect.DeepEqual(cfg.Recon.UploadReportTypes, want) {
		t.Errorf("UploadReportTypes = %v, want %v", cfg.Recon.UploadReportTypes, want)
	}
}

func TestParseList(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"  ", nil},
		{"a", []string{"a"}},
		{"a, b ,c", []string{"a", "b", "c"}},
		{"a,,b", []string{"a", "b"}},
	}
	for _, tc := range cases {
		got := parseList(tc.raw)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("parseList(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
