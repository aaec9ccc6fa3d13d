package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "PORT_STATUS_CONFIG"
	baseURLEnv     = "PORT_STATUS_BASE_URL"
	databasePath   = "PORT_STATUS_DB_PATH"
	geojsonPathEnv = "PORT_STATUS_GEOJSON_PATH"
	metricsAddrEnv = "PORT_STATUS_METRICS_ADDR"
	logLevelEnv    = "PORT_STATUS_LOG_LEVEL"
	logFormatEnv   = "PORT_STATUS_LOG_FORMAT"
)

// Config holds the settings required across the application.
type Config struct {
	Source      SourceConfig      `yaml:"source"`
	Fetch       FetchConfig       `yaml:"fetch"`
	Database    DatabaseConfig    `yaml:"database"`
	Export      ExportConfig      `yaml:"export"`
	Metrics     MetricsConfig     `yaml:"metrics"`
	Logging     LoggingConfig     `yaml:"logging"`
	Coordinates CoordinatesConfig `yaml:"coordinates"`
}

// SourceConfig points at the authority's status pages.
type SourceConfig struct {
	BaseURL   string `yaml:"baseUrl"`
	UserAgent string `yaml:"userAgent"`
}

// Duration wraps time.Duration so YAML can carry values like "250ms".
type Duration time.Duration

// UnmarshalYAML parses either a Go duration string or a bare nanosecond count.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		var ns int64
		if scanErr := value.Decode(&ns); scanErr != nil {
			return err
		}
		parsed = time.Duration(ns)
	}
	*d = Duration(parsed)
	return nil
}

// Std converts back to the standard library type.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// FetchConfig tunes politeness and retry behavior.
type FetchConfig struct {
	RateLimit      Duration `yaml:"rateLimit"`
	Timeout        Duration `yaml:"timeout"`
	MaxRetries     int      `yaml:"maxRetries"`
	BackoffBase    Duration `yaml:"backoffBase"`
	RetryableCodes []int    `yaml:"retryableStatusCodes"`
}

// DatabaseConfig describes the SQLite file location.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ExportConfig describes the GeoJSON hand-off for the map frontend.
type ExportConfig struct {
	GeoJSONPath string `yaml:"geojsonPath"`
}

// MetricsConfig enables the Prometheus listener when an address is set.
type MetricsConfig struct {
	ListenAddr string `yaml:"listenAddr"`
}

// LoggingConfig selects log verbosity and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Coordinate is a single curated lat/lon pair.
type Coordinate struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

// CoordinatesConfig injects the read-only coordinate tables: zone centroids
// keyed by zone name and sub-port overrides keyed by "ZONE|SUBPORT".
type CoordinatesConfig struct {
	Zones    map[string]Coordinate `yaml:"zones"`
	SubPorts map[string]Coordinate `yaml:"subPorts"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides on top of the built-in defaults.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(baseURLEnv); v != "" {
		c.Source.BaseURL = v
	}
	if v := os.Getenv(databasePath); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(geojsonPathEnv); v != "" {
		c.Export.GeoJSONPath = v
	}
	if v := os.Getenv(metricsAddrEnv); v != "" {
		c.Metrics.ListenAddr = v
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(logFormatEnv); v != "" {
		c.Logging.Format = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Source.BaseURL != "" {
		base.Source.BaseURL = override.Source.BaseURL
	}
	if override.Source.UserAgent != "" {
		base.Source.UserAgent = override.Source.UserAgent
	}

	if override.Fetch.RateLimit > 0 {
		base.Fetch.RateLimit = override.Fetch.RateLimit
	}
	if override.Fetch.Timeout > 0 {
		base.Fetch.Timeout = override.Fetch.Timeout
	}
	if override.Fetch.MaxRetries > 0 {
		base.Fetch.MaxRetries = override.Fetch.MaxRetries
	}
	if override.Fetch.BackoffBase > 0 {
		base.Fetch.BackoffBase = override.Fetch.BackoffBase
	}
	if len(override.Fetch.RetryableCodes) > 0 {
		base.Fetch.RetryableCodes = override.Fetch.RetryableCodes
	}

	if override.Database.Path != "" {
		base.Database.Path = override.Database.Path
	}
	if override.Export.GeoJSONPath != "" {
		base.Export.GeoJSONPath = override.Export.GeoJSONPath
	}
	if override.Metrics.ListenAddr != "" {
		base.Metrics.ListenAddr = override.Metrics.ListenAddr
	}
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	// Curated coordinates from the file extend the built-in tables; file
	// entries win on conflict.
	for name, pt := range override.Coordinates.Zones {
		base.Coordinates.Zones[name] = pt
	}
	for key, pt := range override.Coordinates.SubPorts {
		base.Coordinates.SubPorts[key] = pt
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Source: SourceConfig{
			BaseURL:   "https://www.navcen.uscg.gov/port-status",
			UserAgent: "PortStatusMonitor/1.0",
		},
		Fetch: FetchConfig{
			RateLimit:      Duration(time.Second),
			Timeout:        Duration(20 * time.Second),
			MaxRetries:     3,
			BackoffBase:    Duration(2 * time.Second),
			RetryableCodes: []int{429, 500, 502, 503, 504},
		},
		Database: DatabaseConfig{Path: "port_status.db"},
		Export:   ExportConfig{GeoJSONPath: "api/ports.geojson"},
		Metrics:  MetricsConfig{ListenAddr: ""},
		Logging:  LoggingConfig{Level: "info", Format: "text"},
		Coordinates: CoordinatesConfig{
			Zones:    defaultZoneCentroids(),
			SubPorts: defaultSubPortCoordinates(),
		},
	}
}
