package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"ledger/internal/cli"
	"ledger/internal/console"
	"ledger/internal/log"
	"ledger/internal/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file for local use (missing file is fine)
	if err := cli.LoadEnvFile(); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		return err
	}

	logger, err := cli.SetupLogger(cfg)
	if err != nil {
		return err
	}

	manager := services.NewLedgerManager(services.WithLogger(logger))

	// Optional startup import; a failure is reported but the session still starts
	if cfg.ImportFile != "" {
		if err := manager.ImportFile(cfg.ImportFile); err != nil {
			logger.Error("Startup import failed", log.FieldOperation, log.OpStartup, log.FieldFile, cfg.ImportFile, log.FieldError, err)
			fmt.Fprintf(os.Stdout, "error: %v\n", err)
		}
	}

	ctx, stop := cli.ShutdownContext(context.Background())
	defer stop()

	term := console.New(manager, os.Stdin, os.Stdout,
		console.WithExportFile(cfg.ExportFile),
		console.WithLogger(logger),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Ending the console ends the session
		defer stop()
		return term.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Session ending", log.FieldOperation, log.OpShutdown, log.FieldLedgerSize, manager.Len())
		return nil
	})

	logger.Info("Session started", log.FieldOperation, log.OpStartup, log.FieldFile, cfg.ExportFile)
	return g.Wait()
}
