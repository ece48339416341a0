package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"DATA_DIR", "HOME_COUNTRY", "ROUTE_QUERIES", "LOG_MAX_AGE_DAYS", "REPORT_FORMAT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HomeCountry != "US" {
		t.Errorf("home country = %q, want US", cfg.HomeCountry)
	}
	if cfg.ReportFormat != "text" {
		t.Errorf("report format = %q, want text", cfg.ReportFormat)
	}
	if len(cfg.Routes) != 1 || cfg.Routes[0] != (RouteQuery{From: "Los Angeles", To: "Doncaster"}) {
		t.Errorf("routes = %+v, want default query", cfg.Routes)
	}
}

func TestLoadRouteQueries(t *testing.T) {
	t.Setenv("ROUTE_QUERIES", "A:B; Los Angeles : New York ;")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Routes) != 2 {
		t.Fatalf("routes = %d, want 2", len(cfg.Routes))
	}
	if cfg.Routes[1] != (RouteQuery{From: "Los Angeles", To: "New York"}) {
		t.Fatalf("second route = %+v", cfg.Routes[1])
	}
}

func TestLoadInvalidInt(t *testing.T) {
	t.Setenv("LOG_MAX_AGE_DAYS", "week")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-numeric LOG_MAX_AGE_DAYS")
	}
}

func TestParseRouteQueryRejectsMissingEnd(t *testing.T) {
	if _, err := ParseRouteQuery("Los Angeles"); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := ParseRouteQuery("A:"); err == nil {
		t.Fatalf("expected error")
	}
}
