package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/Bcollado0310/agora-erp/pkg/config"
	"github.com/Bcollado0310/agora-erp/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		format  = flag.String("format", "text", "Output format: text, json")
		verbose = flag.Bool("verbose", false, "Include the full sales history in text output")
		demo    = flag.Bool("demo", false, "Run the scripted mutation sequence before rendering")
		help    = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := initLogger(appCfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	cmd := commands.NewDashboardCommand(commands.Config{
		Format:  *format,
		Verbose: *verbose,
		Demo:    *demo,
		Help:    *help,
	}, appCfg, zapLogger)

	if err := cmd.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}
