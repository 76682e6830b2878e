package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/patientkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/patientkeeper/internal/client/cli"
	"github.com/dmitrijs2005/patientkeeper/internal/client/config"
	"github.com/dmitrijs2005/patientkeeper/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		stop()
	}()

	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)
	app := cli.NewApp(cfg, logger, os.Stdin, os.Stdout)

	app.Run(ctx)

}
