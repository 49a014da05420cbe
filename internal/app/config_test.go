package app

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AppAddr != ":8080" {
		t.Fatalf("addr %q", cfg.AppAddr)
	}
	if cfg.POSAPIURL == "" {
		t.Fatal("pos api url default missing")
	}
	if cfg.ReportCurrency != "TZS" {
		t.Fatalf("currency %q", cfg.ReportCurrency)
	}
	if cfg.IsProduction() {
		t.Fatal("default env must not be production")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("POS_API_URL", "http://pos.internal:9000")
	t.Setenv("REPORT_CURRENCY", "KES")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.IsProduction() {
		t.Fatal("expected production")
	}
	if cfg.POSAPIURL != "http://pos.internal:9000" || cfg.ReportCurrency != "KES" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}
