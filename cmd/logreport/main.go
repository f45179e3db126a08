package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"log-report/internal/aggregators"
	"log-report/internal/app"
	"log-report/internal/shared/configs"
)

func main() {
	registry := aggregators.NewDefaultReportRegistry()

	reportTypes := make([]string, 0)
	for _, t := range registry.Types() {
		reportTypes = append(reportTypes, t.String())
	}

	// Load configuration
	flags := configs.NewFlagSet("logreport", reportTypes, os.Stderr)
	cfg, err := configs.LoadConfig(flags, os.Args[1:])
	if err != nil {
		if errors.Is(err, configs.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(2)
	}

	// Initialize application
	application, err := app.New(cfg, registry, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	if err := application.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
