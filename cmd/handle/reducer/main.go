package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/chain"
	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/config"
	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/model"
	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/policy"
	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/reducer"
	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/repository/clickhouse"
	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/service/ingester"
	"github.com/goodnatureofminers/handleinsight-backend/internal/logging"
	"github.com/goodnatureofminers/handleinsight-backend/internal/metrics"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type cliConfig struct {
	ClickhouseDSN             string        `long:"clickhouse-dsn" env:"HANDLE_REDUCER_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	Network                   model.Network `long:"network" env:"HANDLE_REDUCER_NETWORK" description:"network name" choice:"mainnet" choice:"preprod" choice:"preview" required:"true"`
	ConfigPath                string        `long:"config" env:"HANDLE_REDUCER_CONFIG" description:"path to the YAML reducer configuration"`
	PolicyIDHex               string        `long:"policy-id" env:"HANDLE_REDUCER_POLICY_ID" description:"handle policy id (hex), defaults to the mainnet policy on mainnet"`
	KeyPrefixHandleToAddress  string        `long:"key-prefix-handle-to-address" env:"HANDLE_REDUCER_KEY_PREFIX_HANDLE_TO_ADDRESS" description:"key prefix of the handle to address projection"`
	KeyPrefixAddressToHandles string        `long:"key-prefix-address-to-handles" env:"HANDLE_REDUCER_KEY_PREFIX_ADDRESS_TO_HANDLES" description:"key prefix of the address to handles projection"`
	MissingData               string        `long:"missing-data" env:"HANDLE_REDUCER_MISSING_DATA" description:"action on unresolved consumed outputs" choice:"default" choice:"fail" choice:"skip" choice:"warn"`
	LookupErrors              string        `long:"lookup-errors" env:"HANDLE_REDUCER_LOOKUP_ERRORS" description:"action on failed history lookups" choice:"default" choice:"fail" choice:"skip" choice:"warn"`
	StartHeight               uint64        `long:"start-height" env:"HANDLE_REDUCER_START_HEIGHT" description:"first block height to reduce"`
	ChunkSize                 uint64        `long:"chunk-size" env:"HANDLE_REDUCER_CHUNK_SIZE" description:"blocks reduced per iteration" default:"100"`
	Workers                   int           `long:"workers" env:"HANDLE_REDUCER_WORKERS" description:"concurrent block fetches" default:"8"`
	LookupCacheTTL            time.Duration `long:"lookup-cache-ttl" env:"HANDLE_REDUCER_LOOKUP_CACHE_TTL" description:"how long outputs of reduced blocks stay cached, 0 disables the cache" default:"10m"`
	MetricsAddr               string        `long:"metrics-addr" env:"HANDLE_REDUCER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	LogLevel                  string        `long:"log-level" env:"HANDLE_REDUCER_LOG_LEVEL" description:"minimum log level" default:"info"`
	LogFile                   string        `long:"log-file" env:"HANDLE_REDUCER_LOG_FILE" description:"optional JSON log file, rotated by size"`
	LogMaxSizeMB              int           `long:"log-max-size" env:"HANDLE_REDUCER_LOG_MAX_SIZE" description:"log file size in megabytes before rotation" default:"100"`
	LogMaxBackups             int           `long:"log-max-backups" env:"HANDLE_REDUCER_LOG_MAX_BACKUPS" description:"rotated log files to keep" default:"5"`
	LogMaxAgeDays             int           `long:"log-max-age" env:"HANDLE_REDUCER_LOG_MAX_AGE" description:"days to keep rotated log files" default:"14"`
}

func main() {
	cfg := cliConfig{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	logger, err := logging.New(logging.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("handle reducer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg cliConfig, logger *zap.Logger) error {
	file, err := loadConfig(cfg)
	if err != nil {
		return err
	}

	blockReducer, err := reducer.New(file.Reducer, file.Policy, logger.Named("reducer"))
	if err != nil {
		return fmt.Errorf("init reducer: %w", err)
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			logger.Warn("close repository", zap.Error(closeErr))
		}
	}()

	var lookup ingester.OutputLookup = repo
	if cfg.LookupCacheTTL > 0 {
		lookup = chain.NewCachedLookup(repo, cfg.LookupCacheTTL)
	}

	svc, err := ingester.NewReducerService(
		repo,
		clickhouse.NewSource(repo, cfg.Network),
		lookup,
		blockReducer,
		metrics.NewReducerIngester(cfg.Network),
		cfg.Network,
		logger,
		ingester.Options{
			StartHeight: cfg.StartHeight,
			ChunkSize:   cfg.ChunkSize,
			WorkerCount: cfg.Workers,
		},
	)
	if err != nil {
		return err
	}

	logger.Info("starting handle reducer",
		zap.String("network", string(cfg.Network)),
		zap.String("policy_id", file.Reducer.PolicyIDHex),
		zap.Stringer("missing_data", file.Policy.MissingData),
		zap.Stringer("lookup_errors", file.Policy.LookupErrors),
	)
	return svc.Run(ctx)
}

func loadConfig(cfg cliConfig) (config.File, error) {
	var (
		file config.File
		err  error
	)
	if cfg.ConfigPath != "" {
		if file, err = config.Load(cfg.ConfigPath); err != nil {
			return config.File{}, err
		}
	}

	overrides := config.Overrides{
		PolicyIDHex:               cfg.PolicyIDHex,
		KeyPrefixHandleToAddress:  cfg.KeyPrefixHandleToAddress,
		KeyPrefixAddressToHandles: cfg.KeyPrefixAddressToHandles,
	}
	if overrides.MissingData, err = parseAction(cfg.MissingData); err != nil {
		return config.File{}, fmt.Errorf("missing-data: %w", err)
	}
	if overrides.LookupErrors, err = parseAction(cfg.LookupErrors); err != nil {
		return config.File{}, fmt.Errorf("lookup-errors: %w", err)
	}
	file = file.Override(overrides)

	if file.Reducer.PolicyIDHex == "" && cfg.Network == model.Mainnet {
		file.Reducer.PolicyIDHex = reducer.MainnetHandlePolicyID
	}
	return file, nil
}

func parseAction(value string) (*policy.ErrorAction, error) {
	if value == "" {
		return nil, nil
	}
	action, err := policy.ParseErrorAction(value)
	if err != nil {
		return nil, err
	}
	return &action, nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
