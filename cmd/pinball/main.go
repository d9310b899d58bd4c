package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"pinball/internal/config"
	"pinball/internal/game"
	"pinball/internal/logger"
)

func main() {
	configPath := flag.String("config", "pinball.yaml", "path to the YAML config file")
	logLevel := flag.String("log-level", "", "override the configured log level")
	dev := flag.Bool("dev", false, "human readable log output")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	// The config path stays relative to where the user launched us.
	if abs, err := filepath.Abs(*configPath); err == nil {
		*configPath = abs
	}
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	boot, err := logger.New(*logLevel, *dev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pinball: logger: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		boot.Fatal("invalid config", zap.String("path", *configPath), zap.Error(err))
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	log, err := logger.New(cfg.LogLevel, *dev)
	if err != nil {
		boot.Fatal("failed to build logger", zap.Error(err))
	}
	defer log.Sync()

	g, err := game.New(cfg, log)
	if err != nil {
		log.Fatal("failed to start", zap.Error(err))
	}
	log.Info("starting", zap.String("config", *configPath), zap.String("log_level", cfg.LogLevel))
	g.Run()
}
