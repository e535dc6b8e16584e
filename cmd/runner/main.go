package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-slide-form/internal/client"
	"github.com/MKhiriev/go-slide-form/internal/config"
	"github.com/MKhiriev/go-slide-form/internal/logger"
	"github.com/MKhiriev/go-slide-form/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewClientLogger("slideform-runner")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	app, err := client.NewApp(cfg, build, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init runner app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "slideform-runner: %v\n", err)
		stop()
		os.Exit(1)
	}
}
