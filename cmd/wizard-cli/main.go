package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"orderwizard/cmd"
	"orderwizard/internal/adapters/in/cli"
	"orderwizard/internal/pkg/i18n"

	"github.com/labstack/gommon/log"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	var (
		outFlag  = flag.String("out", ".", "Directory the CSV export is written to")
		langFlag = flag.String("lang", configs.DefaultLocale, "Prompt language (es-MX, en)")
		apiFlag  = flag.String("api", configs.OrderAPIURL, "Base URL of the order API")
	)
	flag.Parse()

	configs.OrderAPIURL = *apiFlag
	locale, ok := i18n.Parse(*langFlag)
	if !ok {
		locale = configs.Locale()
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: configs.SlogLevel()}))

	dispatcher, err := cmd.NewSubmissionDispatcher(configs, logger)
	if err != nil {
		log.Fatalf("Error building dispatcher: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := cli.NewRunner(cli.NewSurveyDriver(os.Stdout), dispatcher, locale, *outFlag, logger)
	_, err = runner.Run(ctx)
	dispatcher.Wait()

	if err != nil && !errors.Is(err, cli.ErrAborted) {
		log.Fatalf("Wizard failed: %v", err)
	}
}
