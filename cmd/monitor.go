package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"threatwatch/internal/checkpoint"
	"threatwatch/internal/classifier"
	"threatwatch/internal/config"
	"threatwatch/internal/core"
	"threatwatch/internal/correlation"
	"threatwatch/internal/db"
	"threatwatch/internal/dedup"
	"threatwatch/internal/ethereum"
	"threatwatch/internal/gate"
	"threatwatch/internal/http/handler"
	"threatwatch/internal/http/handler/middleware"
	"threatwatch/internal/http/payload"
	"threatwatch/internal/http/server"
	"threatwatch/internal/ledger"
	"threatwatch/internal/metrics"
	"threatwatch/internal/repository"
	"threatwatch/internal/retry"
	"threatwatch/internal/sink"
	"threatwatch/pkg/jwt"
	"threatwatch/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("threatwatch", zapcore.InfoLevel)
	defer func() { _ = logger.Sync() }()

	cfg, err := config.NewMonitor()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	// expect a signal to gracefully stop the monitor
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	client, err := ethclient.DialContext(ctx, cfg.NodeURL)
	if err != nil {
		logger.Errorw("ethereum node connection failed", "error", err)
		return err
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		logger.Errorw("failed to read chain id", "error", err)
		return err
	}

	rpcRetry := retry.DefaultPolicy()
	rpcRetry.MaxAttempts = cfg.RPCRetryAttempts
	rpcRetry.BaseDelay = cfg.RPCRetryBaseDelay
	rpcRetry.MaxDelay = cfg.RPCRetryMaxDelay

	// chain source
	ethService := ethereum.NewEthService(logger, client, ethereum.Config{
		MaxBlockRange:    cfg.MaxBlockRange,
		FetchConcurrency: ethereum.DefaultConfig().FetchConcurrency,
		Retry:            rpcRetry,
	})

	// scoring
	heuristic := classifier.NewHeuristic(cfg.NormalGasPrice, cfg.HighGasMultiple, cfg.HighValue)
	scorer := classifier.NewClient(logger, classifier.Config{
		URL:          cfg.ClassifierURL,
		Timeout:      cfg.ClassifierTimeout,
		ModelVersion: cfg.ModelVersion,
	}, heuristic)

	engine := correlation.NewEngine(correlation.DefaultWeights(), correlation.Thresholds{
		HighGasPrice: heuristic.HighGasPrice,
		HighValue:    cfg.HighValue,
	}, correlation.NewBurstTracker(cfg.BurstWindow, cfg.BurstCount))

	// ledger
	contract, err := ledger.NewReportContract(client, cfg.LedgerAddress, cfg.ReporterKey, chainID)
	if err != nil {
		logger.Errorw("failed to bind report contract", "error", err)
		return err
	}
	reporterCfg := ledger.DefaultConfig()
	reporterCfg.GasMarginPercent = cfg.GasMarginPercent
	reporterCfg.ConfirmTimeout = cfg.ConfirmTimeout
	reporterCfg.ConfirmBlocks = cfg.ConfirmBlocks
	reporterCfg.Retry.MaxAttempts = rpcRetry.MaxAttempts
	reporterCfg.Retry.BaseDelay = rpcRetry.BaseDelay
	reporterCfg.Retry.MaxDelay = rpcRetry.MaxDelay
	reporter := ledger.NewReporter(logger, contract, reporterCfg)

	store, err := checkpoint.NewFileStore(cfg.CheckpointPath)
	if err != nil {
		logger.Errorw("failed to open checkpoint", "error", err, "path", cfg.CheckpointPath)
		return err
	}

	// metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	monitorMetrics := metrics.NewMonitorMetrics()
	if err = monitorMetrics.Register(registry); err != nil {
		logger.Errorw("failed to register metrics", "error", err)
		return err
	}

	opts := []core.Option{core.WithMetrics(monitorMetrics)}

	var history handler.AlertHistory
	if cfg.DBConnectionURL != "" {
		dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
		if err != nil {
			logger.Errorw("failed to connect to database", "error", err)
			return err
		}

		repo := repository.NewAlertRepository(dbConn)
		if err = repo.Migrate(); err != nil {
			logger.Errorw("failed to migrate tables to database", "error", err)
			return err
		}
		opts = append(opts, core.WithRecorder(repo))
		history = repo
	}

	if len(cfg.KafkaBrokers) > 0 {
		kafkaSink, err := sink.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaAlertTopic, nil)
		if err != nil {
			logger.Errorw("failed to connect to kafka", "error", err, "brokers", cfg.KafkaBrokers)
			return err
		}
		defer func() {
			if err := kafkaSink.Close(); err != nil {
				logger.Warnw("failed to close kafka producer", "error", err)
			}
		}()
		opts = append(opts, core.WithEventSink(kafkaSink))
	}

	monitorCfg := core.DefaultConfig()
	monitorCfg.PollInterval = cfg.PollInterval
	monitorCfg.CheckpointInterval = cfg.CheckpointInterval
	monitorCfg.StatsInterval = cfg.StatsInterval
	monitorCfg.ResubscribeDelay = cfg.ResubscribeDelay
	monitorCfg.ShutdownGrace = cfg.ShutdownGrace
	monitorCfg.Concurrency = cfg.AnalysisConcurrency
	monitorCfg.StallAttempts = cfg.AlertStallAttempts
	monitorCfg.Redelivery.BaseDelay = cfg.AlertRetryBaseDelay
	monitorCfg.Redelivery.MaxDelay = cfg.AlertRetryMaxDelay
	monitorCfg.StartBlock = cfg.StartBlock

	monitor := core.NewMonitor(
		logger,
		monitorCfg,
		ethService,
		scorer,
		engine,
		gate.NewGate(cfg.AlertThreshold, cfg.AlertCooldown),
		dedup.NewSet(cfg.DedupCapacity),
		reporter,
		store,
		opts...)
	if history == nil {
		history = monitor.History()
	}

	// status api
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	if cfg.JWTSecret != "" {
		statusHlr := handler.NewStatusHandler(
			logger,
			payload.DecodeValidator{},
			monitor,
			history,
			jwt.NewJWTService([]byte(cfg.JWTSecret)))
		statusHlr.Register(mux)
	} else {
		logger.Infow("JWT_SECRET not set, status api disabled")
	}

	// middleware
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, cfg.APIPort)
	return run(ctx, monitor, srv)
}

func run(ctx context.Context, monitor *core.Monitor, srv *server.HTTPServer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errChan := srv.Run()
	monitorErr := make(chan error, 1)
	go func() {
		monitorErr <- monitor.Run(ctx)
	}()

	var err error
	select {
	case err = <-monitorErr:
	case err = <-errChan:
		// the monitor still writes its final checkpoint
		cancel()
		err = errors.Join(fmt.Errorf("status server: %w", err), <-monitorErr)
	}

	if sdErr := srv.Shutdown(); sdErr != nil {
		return errors.Join(err, sdErr)
	}
	return err
}
