package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/khelsetu/arena/internal/platform/logging"
	"github.com/khelsetu/arena/internal/usecase"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                       string
	ServiceName                  string
	ServiceVersion               string
	HTTPAddr                     string
	DBURL                        string
	DBDisablePreparedBinary      bool
	CacheEnabled                 bool
	CacheTTL                     time.Duration
	CORSAllowedOrigins           []string
	ReadTimeout                  time.Duration
	WriteTimeout                 time.Duration
	PprofEnabled                 bool
	PprofAddr                    string
	LeaderboardDefaultView       usecase.View
	LeaderboardWorkers           int
	GeodataEnabled               bool
	GeodataBaseURL               string
	GeodataAPIKey                string
	GeodataTimeout               time.Duration
	GeodataCircuitEnabled        bool
	GeodataCircuitFailureCount   int
	GeodataCircuitOpenTimeout    time.Duration
	GeodataCircuitHalfOpenMaxReq int
	UptraceEnabled               bool
	UptraceDSN                   string
	PyroscopeEnabled             bool
	PyroscopeServerAddress       string
	PyroscopeAppName             string
	PyroscopeAuthToken           string
	PyroscopeBasicAuthUser       string
	PyroscopeBasicAuthPassword   string
	PyroscopeUploadRate          time.Duration
	LogLevel                     logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if appEnv != EnvDev && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when APP_ENV=%s", appEnv)
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY: %w", err)
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	readTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	if readTimeout <= 0 {
		return Config{}, fmt.Errorf("HTTP_READ_TIMEOUT must be > 0")
	}

	writeTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
	}
	if writeTimeout <= 0 {
		return Config{}, fmt.Errorf("HTTP_WRITE_TIMEOUT must be > 0")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}

	leaderboardView, err := parseLeaderboardView(getEnv("LEADERBOARD_DEFAULT_VIEW", "district"))
	if err != nil {
		return Config{}, err
	}

	leaderboardWorkers, err := getEnvAsInt("LEADERBOARD_WORKERS", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse LEADERBOARD_WORKERS: %w", err)
	}
	if leaderboardWorkers <= 0 {
		return Config{}, fmt.Errorf("LEADERBOARD_WORKERS must be > 0")
	}

	geodataEnabled, err := strconv.ParseBool(getEnv("GEODATA_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse GEODATA_ENABLED: %w", err)
	}

	geodataTimeout, err := time.ParseDuration(getEnv("GEODATA_TIMEOUT", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse GEODATA_TIMEOUT: %w", err)
	}
	if geodataTimeout <= 0 {
		return Config{}, fmt.Errorf("GEODATA_TIMEOUT must be > 0")
	}

	geodataCircuitEnabled, err := strconv.ParseBool(getEnv("GEODATA_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse GEODATA_CIRCUIT_ENABLED: %w", err)
	}

	geodataCircuitFailureCount, err := getEnvAsInt("GEODATA_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse GEODATA_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if geodataCircuitFailureCount <= 0 {
		return Config{}, fmt.Errorf("GEODATA_CIRCUIT_FAILURE_COUNT must be > 0")
	}

	geodataCircuitOpenTimeout, err := time.ParseDuration(getEnv("GEODATA_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse GEODATA_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if geodataCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("GEODATA_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}

	geodataCircuitHalfOpenMaxReq, err := getEnvAsInt("GEODATA_CIRCUIT_HALF_OPEN_MAX_REQUESTS", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse GEODATA_CIRCUIT_HALF_OPEN_MAX_REQUESTS: %w", err)
	}
	if geodataCircuitHalfOpenMaxReq <= 0 {
		return Config{}, fmt.Errorf("GEODATA_CIRCUIT_HALF_OPEN_MAX_REQUESTS must be > 0")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}

	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}

	pyroscopeServer := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServer == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}

	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	serviceName := getEnv("SERVICE_NAME", "arena-api")

	cfg := Config{
		AppEnv:                       appEnv,
		ServiceName:                  serviceName,
		ServiceVersion:               getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:                     getEnv("HTTP_ADDR", ":8080"),
		DBURL:                        dbURL,
		DBDisablePreparedBinary:      dbDisablePreparedBinary,
		CacheEnabled:                 cacheEnabled,
		CacheTTL:                     cacheTTL,
		CORSAllowedOrigins:           splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                  readTimeout,
		WriteTimeout:                 writeTimeout,
		PprofEnabled:                 pprofEnabled,
		PprofAddr:                    getEnv("PPROF_ADDR", ":6060"),
		LeaderboardDefaultView:       leaderboardView,
		LeaderboardWorkers:           leaderboardWorkers,
		GeodataEnabled:               geodataEnabled,
		GeodataBaseURL:               getEnv("GEODATA_BASE_URL", "https://api.countrystatecity.in/v1"),
		GeodataAPIKey:                strings.TrimSpace(getEnv("GEODATA_API_KEY", "")),
		GeodataTimeout:               geodataTimeout,
		GeodataCircuitEnabled:        geodataCircuitEnabled,
		GeodataCircuitFailureCount:   geodataCircuitFailureCount,
		GeodataCircuitOpenTimeout:    geodataCircuitOpenTimeout,
		GeodataCircuitHalfOpenMaxReq: geodataCircuitHalfOpenMaxReq,
		UptraceEnabled:               uptraceEnabled,
		UptraceDSN:                   uptraceDSN,
		PyroscopeEnabled:             pyroscopeEnabled,
		PyroscopeServerAddress:       pyroscopeServer,
		PyroscopeAppName:             getEnv("PYROSCOPE_APP_NAME", serviceName),
		PyroscopeAuthToken:           strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:       strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:   strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:          pyroscopeUploadRate,
		LogLevel:                     parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseLeaderboardView(v string) (usecase.View, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case string(usecase.ViewGlobal):
		return usecase.ViewGlobal, nil
	case string(usecase.ViewState):
		return usecase.ViewState, nil
	case string(usecase.ViewDistrict):
		return usecase.ViewDistrict, nil
	default:
		return "", fmt.Errorf("invalid LEADERBOARD_DEFAULT_VIEW %q: valid values are %s, %s, %s",
			v, usecase.ViewGlobal, usecase.ViewState, usecase.ViewDistrict)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
