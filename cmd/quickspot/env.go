package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/urfave/cli/v3"

	"github.com/hupe1980/quickspot"
	"github.com/hupe1980/quickspot/codec"
	"github.com/hupe1980/quickspot/config"
	"github.com/hupe1980/quickspot/source"
)

// env bundles what every command needs: the configuration, a loader wired to
// the configured backends, and the resolved list of sources.
type env struct {
	cfg     *config.Config
	logger  *quickspot.Logger
	loader  *source.Loader
	sources []string
}

func newEnv(ctx context.Context, c *cli.Command) (*env, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sources := cfg.Sources
	if data := c.StringSlice("data"); len(data) > 0 {
		sources = data
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no data sources: pass --data or set sources in %s", c.String("config"))
	}

	if c.Bool("debug") {
		cfg.Log.Level = "debug"
	}
	logger := cfg.Logger()

	loaderOpts := []source.Option{
		source.WithLogger(logger.Logger),
		source.WithHTTPStore(cfg.HTTPStore()),
	}

	if usesScheme(sources, "s3") {
		client, err := newS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		loaderOpts = append(loaderOpts, source.WithS3(client, cfg.S3Options))
	}

	if usesScheme(sources, "minio") {
		client, err := minio.New(cfg.Minio.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
			Secure: cfg.Minio.Secure,
			Region: cfg.Minio.Region,
		})
		if err != nil {
			return nil, fmt.Errorf("creating minio client: %w", err)
		}
		loaderOpts = append(loaderOpts, source.WithMinio(client))
	}

	if cd, ok := codec.ByName(cfg.Codec); ok {
		loaderOpts = append(loaderOpts, source.WithCodec(cd))
	}

	return &env{
		cfg:     cfg,
		logger:  logger,
		loader:  source.NewLoader(loaderOpts...),
		sources: sources,
	}, nil
}

func newS3Client(ctx context.Context, cfg config.S3Config) (*awss3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = &cfg.Endpoint
			o.UsePathStyle = true
		}
	}), nil
}

// open loads the sources and indexes them.
func (e *env) open(ctx context.Context) (*quickspot.Store, error) {
	opts := append(e.cfg.Options(), quickspot.WithLogger(e.logger))
	store, err := quickspot.Open(ctx, e.loader, e.sources, opts...)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("store ready", slog.Int("records", store.Len()))
	return store, nil
}

func usesScheme(uris []string, scheme string) bool {
	prefix := scheme + "://"
	for _, u := range uris {
		if strings.HasPrefix(strings.ToLower(u), prefix) {
			return true
		}
	}
	return false
}
