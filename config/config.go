// Package config reads the TOML configuration of the quickspot command.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/hupe1980/quickspot"
	"github.com/hupe1980/quickspot/blobstore/httpstore"
	"github.com/hupe1980/quickspot/blobstore/s3"
	"github.com/hupe1980/quickspot/codec"
	"github.com/hupe1980/quickspot/textnorm"
)

//go:embed config.toml.sample
var configTemplate string

type Config struct {
	Sources             []string    `toml:"sources"`
	KeyField            string      `toml:"key_field"`
	SearchFields        []string    `toml:"search_fields"`
	Normalizer          string      `toml:"normalizer"`
	Codec               string      `toml:"codec"`
	PartialMatches      bool        `toml:"partial_matches"`
	OccurrenceWeighting bool        `toml:"occurrence_weighting"`
	DefaultSort         string      `toml:"default_sort"`
	MaxResults          int         `toml:"max_results"`
	EmptyQuery          string      `toml:"empty_query"`
	ReloadDebounce      Duration    `toml:"reload_debounce"`
	Log                 LogConfig   `toml:"log"`
	HTTP                HTTPConfig  `toml:"http"`
	S3                  S3Config    `toml:"s3"`
	Minio               MinioConfig `toml:"minio"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type HTTPConfig struct {
	RequestsPerSecond float64  `toml:"requests_per_second"`
	Burst             int      `toml:"burst"`
	Timeout           Duration `toml:"timeout"`
	MaxBytes          int64    `toml:"max_bytes"`
}

type S3Config struct {
	Region      string `toml:"region"`
	Endpoint    string `toml:"endpoint"`
	PartSize    int64  `toml:"part_size"`
	Concurrency int    `toml:"concurrency"`
}

type MinioConfig struct {
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	Secure    bool   `toml:"secure"`
	Region    string `toml:"region"`
}

type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func GetDefaultConfig() *Config {
	return &Config{
		KeyField:            "name",
		Normalizer:          "simplify",
		Codec:               "go-json",
		PartialMatches:      true,
		OccurrenceWeighting: true,
		DefaultSort:         "alphabetical",
		MaxResults:          10,
		EmptyQuery:          "nothing",
		ReloadDebounce:      Duration{250 * time.Millisecond},
		Log:                 LogConfig{Level: "warn", Format: "text"},
		HTTP: HTTPConfig{
			RequestsPerSecond: 5,
			Burst:             1,
			Timeout:           Duration{httpstore.DefaultTimeout},
		},
		S3: S3Config{
			PartSize:    s3.DefaultPartSize,
			Concurrency: 5,
		},
		Minio: MinioConfig{
			Endpoint: "localhost:9000",
		},
	}
}

// LoadConfig reads configPath over the defaults. A missing file yields the
// defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := GetDefaultConfig()

	if configPath == "" {
		return config, nil
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate reports the first setting that names an unknown choice.
func (c *Config) Validate() error {
	if _, ok := textnorm.ByName(c.Normalizer); !ok {
		return fmt.Errorf("config: unknown normalizer %q", c.Normalizer)
	}
	if _, ok := codec.ByName(c.Codec); !ok {
		return fmt.Errorf("config: unknown codec %q", c.Codec)
	}
	switch c.DefaultSort {
	case "", "alphabetical", "none":
	default:
		return fmt.Errorf("config: unknown default_sort %q", c.DefaultSort)
	}
	switch c.EmptyQuery {
	case "", "nothing", "all":
	default:
		return fmt.Errorf("config: unknown empty_query %q", c.EmptyQuery)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.MaxResults < 0 {
		return fmt.Errorf("config: max_results must not be negative")
	}
	return nil
}

// SaveTemplateConfig writes the commented sample configuration.
func SaveTemplateConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(configPath, []byte(configTemplate), 0o644)
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if c.Log.Level == "" {
		return slog.LevelWarn, nil
	}
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	return lvl, nil
}

// Logger builds the logger described by the log section.
func (c *Config) Logger() *quickspot.Logger {
	lvl, err := c.LogLevel()
	if err != nil {
		lvl = slog.LevelWarn
	}
	if strings.EqualFold(c.Log.Format, "json") {
		return quickspot.NewJSONLogger(lvl)
	}
	return quickspot.NewTextLogger(lvl)
}

// Options maps the store settings to quickspot options. Call Validate first;
// unknown names fall back to the defaults.
func (c *Config) Options() []quickspot.Option {
	opts := []quickspot.Option{
		quickspot.WithKeyField(c.KeyField),
		quickspot.WithPartialMatches(c.PartialMatches),
	}

	if len(c.SearchFields) > 0 {
		opts = append(opts, quickspot.WithSearchFields(c.SearchFields...))
	}
	if n, ok := textnorm.ByName(c.Normalizer); ok {
		opts = append(opts, quickspot.WithNormalizer(n))
	}
	if cd, ok := codec.ByName(c.Codec); ok {
		opts = append(opts, quickspot.WithCodec(cd))
	}
	if !c.OccurrenceWeighting {
		opts = append(opts, quickspot.WithoutOccurrenceWeighting())
	}
	if c.DefaultSort == "none" {
		opts = append(opts, quickspot.WithoutDefaultSort())
	}

	return opts
}

// LookupOptions maps the prompt settings to lookup options.
func (c *Config) LookupOptions() []quickspot.LookupOption {
	mode := quickspot.EmptyShowsNothing
	if c.EmptyQuery == "all" {
		mode = quickspot.EmptyShowsAll
	}
	return []quickspot.LookupOption{
		quickspot.WithEmptyQuery(mode),
		quickspot.WithMaxResults(c.MaxResults),
	}
}

// HTTPStore builds the store used for http(s) sources.
func (c *Config) HTTPStore() *httpstore.Store {
	return httpstore.New("", func(o *httpstore.Options) {
		o.Client = &http.Client{Timeout: c.HTTP.Timeout.Duration}
		o.RequestsPerSecond = c.HTTP.RequestsPerSecond
		o.Burst = c.HTTP.Burst
		o.MaxBytes = c.HTTP.MaxBytes
	})
}

// S3Options returns the download tuning for s3 sources.
func (c *Config) S3Options(o *s3.Options) {
	if c.S3.PartSize > 0 {
		o.PartSize = c.S3.PartSize
	}
	if c.S3.Concurrency > 0 {
		o.Concurrency = c.S3.Concurrency
	}
}
