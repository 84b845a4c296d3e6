package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-task-tamer/internal/client"
	"github.com/MKhiriev/go-task-tamer/internal/config"
	"github.com/MKhiriev/go-task-tamer/internal/logger"
	"github.com/MKhiriev/go-task-tamer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("tamer")

	configPath, err := config.DefaultClientConfigPath()
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving profile path")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := client.NewApp(configPath, log,
		client.WithBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)),
	)

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
