package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Default route query of the report.
const (
	DefaultRouteFrom = "Los Angeles"
	DefaultRouteTo   = "Doncaster"
)

// RouteQuery is a single start/end pair to resolve against the route graph.
type RouteQuery struct {
	From string
	To   string
}

// Config holds every setting of a report run.
type Config struct {
	DataDir      string
	HomeCountry  string
	RatesPath    string
	ReportFormat string
	Routes       []RouteQuery

	LogLevel      string
	LogFormat     string
	LogOutput     string
	LogMaxAgeDays int

	ReportDBPath    string
	DatabaseURL     string
	ParquetPath     string
	MetricsTextfile string
}

// Load reads the configuration from the environment. Call godotenv.Load
// first to pick up a local .env file.
func Load() (*Config, error) {
	routes, err := ParseRouteQueries(Get("ROUTE_QUERIES", DefaultRouteFrom+":"+DefaultRouteTo))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	maxAge, err := GetInt("LOG_MAX_AGE_DAYS", 0)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return &Config{
		DataDir:      Get("DATA_DIR", "data"),
		HomeCountry:  Get("HOME_COUNTRY", "US"),
		RatesPath:    Get("RATES_PATH", ""),
		ReportFormat: Get("REPORT_FORMAT", "text"),
		Routes:       routes,

		LogLevel:      Get("LOG_LEVEL", "info"),
		LogFormat:     Get("LOG_FORMAT", "json"),
		LogOutput:     Get("LOG_OUTPUT", "stderr"),
		LogMaxAgeDays: maxAge,

		ReportDBPath:    Get("REPORT_DB_PATH", ""),
		DatabaseURL:     Get("DATABASE_URL", ""),
		ParquetPath:     Get("PARQUET_PATH", ""),
		MetricsTextfile: Get("METRICS_TEXTFILE", ""),
	}, nil
}

// Get returns the trimmed value of key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) (int, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}

// ParseRouteQueries parses "From:To" pairs separated by ';'.
func ParseRouteQueries(s string) ([]RouteQuery, error) {
	var out []RouteQuery
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		q, err := ParseRouteQuery(part)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

// ParseRouteQuery parses a single "From:To" pair.
func ParseRouteQuery(s string) (RouteQuery, error) {
	from, to, ok := strings.Cut(s, ":")
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if !ok || from == "" || to == "" {
		return RouteQuery{}, fmt.Errorf("parse route query: %q is not in From:To form", s)
	}
	return RouteQuery{From: from, To: to}, nil
}
