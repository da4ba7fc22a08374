package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/babylonlabs-io/wallet-risk-checker/internal/api"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/clients/chainclient"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/clients/predictionclient"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/clients/subnetclient"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/config"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/db"
	dbmodel "github.com/babylonlabs-io/wallet-risk-checker/internal/db/model"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/observability/metrics"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/observability/tracing"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/services"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the wallet risk checker HTTP server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msgf("error while loading config file: %s", cfgPath)
	}

	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error while parsing log level")
	}
	zerolog.SetGlobalLevel(level)

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up wallet checks db model")
	}

	// create new db client
	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	defer func() {
		if err := dbClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("error while disconnecting db client")
		}
	}()

	var predictionClient predictionclient.PredictionInterface
	predictionClient = predictionclient.NewClient(&cfg.Prediction)
	predictionClient = predictionclient.NewClientWithMetrics(predictionClient)

	var chainClient chainclient.ChainInterface
	if cfg.Chain.Enabled() {
		client, err := chainclient.NewClient(ctx, &cfg.Chain)
		if err != nil {
			log.Fatal().Err(err).Msg("error while creating chain client")
		}
		defer client.Close()
		chainClient = chainclient.NewChainClientWithMetrics(client)
	}

	var statsProvider subnetclient.SubnetStatsProvider
	switch cfg.Chain.StatsMode {
	case types.StatsModeChain:
		statsProvider = subnetclient.NewChainProvider(chainClient, cfg.Chain.StatsMethod)
	default:
		statsProvider = subnetclient.NewMockProvider()
	}
	log.Info().Str("stats_mode", cfg.Chain.StatsMode.String()).Msg("Subnet stats provider selected")

	service := services.NewService(cfg, db.NewDbWithMetrics(dbClient), predictionClient, statsProvider, chainClient)

	// initialize metrics with the metrics port from config
	metrics.Init(cfg.Metrics.GetMetricsAddress())

	pendingPoller := service.StartPendingChecksPoller(ctx)
	defer pendingPoller.Stop()

	server := api.New(cfg, service)
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("server stopped unexpectedly")
		}
		return err
	case <-ctx.Done():
		log.Info().Msg("Shutting down wallet risk checker server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
