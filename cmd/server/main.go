package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-task-tamer/internal/config"
	"github.com/MKhiriev/go-task-tamer/internal/handler"
	"github.com/MKhiriev/go-task-tamer/internal/locker"
	"github.com/MKhiriev/go-task-tamer/internal/logger"
	"github.com/MKhiriev/go-task-tamer/internal/server"
	"github.com/MKhiriev/go-task-tamer/internal/service"
	"github.com/MKhiriev/go-task-tamer/internal/store"
	"github.com/MKhiriev/go-task-tamer/internal/workers"
	"github.com/MKhiriev/go-task-tamer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("task-tamer-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	rdb, err := store.NewRedisClient(ctx, cfg.Storage.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting redis")
	}

	var lock locker.Locker = locker.NewLocalLocker()
	if rdb != nil {
		defer rdb.Close()
		lock = locker.NewRedisLocker(rdb, cfg.Storage.Redis.LockTTL, log)
	}

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, lock, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, rdb, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	bgWorkers := workers.NewWorkers(services, storages, cfg.Workers, log)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.RunServer(gCtx) })
	g.Go(func() error { return bgWorkers.Run(gCtx) })

	if err = g.Wait(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return
	}

	log.Info().Msg("server stopped")
}

func printBuildInfo() {
	for _, line := range []struct{ name, value string }{
		{"Build version", buildVersion},
		{"Build date", buildDate},
		{"Build commit", buildCommit},
	} {
		if line.value == "" {
			line.value = "N/A"
		}
		fmt.Printf("%s: %s\n", line.name, line.value)
	}
}
