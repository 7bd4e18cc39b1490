package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"immoforecast/internal/config"
	"immoforecast/internal/report"
	"immoforecast/internal/results"
	"immoforecast/internal/server"
	"immoforecast/internal/share"
	"immoforecast/pkg/bankability"
	"immoforecast/pkg/constants"
	"immoforecast/pkg/output"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	pdfPath := flag.String("pdf", "", "write a PDF report for the first simulation to this path")
	emitShare := flag.Bool("share", false, "print a share token for each simulation")
	serve := flag.Bool("serve", false, "start the HTTP API instead of computing once")
	serverConfigLocation := flag.String("server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	flag.Parse()

	if *serve {
		runServer(*serverConfigLocation, *logLevel)
		return
	}

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty // Default to pretty format
	}
	if outputFormat != constants.OutputFormatPretty && outputFormat != constants.OutputFormatCSV {
		logger.Fatal(fmt.Sprintf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, outputFormat),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// Compute results for every configured simulation.
	engine := results.NewEngine(logger)
	borrower := bankability.Profile{
		MonthlyIncome: conf.Borrower.MonthlyIncome,
		MonthlyDebt:   conf.Borrower.MonthlyDebt,
	}
	items := make([]output.Named, 0, len(conf.Simulations))
	for _, sim := range conf.Simulations {
		item := output.Named{Name: sim.Name, Result: engine.Calculate(sim.Data)}
		if borrower.Declared() {
			indicator := bankability.Evaluate(borrower, item.Result.MonthlyPayment, item.Result.MonthlyRealRent)
			item.Bankability = &indicator
		}
		items = append(items, item)

		if *emitShare {
			token, shareErr := share.Encode(sim)
			if shareErr != nil {
				logger.Error("failed to encode share token",
					zap.String("op", "main"),
					zap.String("simulation", sim.Name),
					zap.Error(shareErr),
				)
				continue
			}
			fmt.Printf("%s: #share=%s\n", sim.Name, token)
		}
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(items)
	case constants.OutputFormatCSV:
		output.CsvFormat(items)
	}

	if *pdfPath != "" && len(items) > 0 {
		file, pdfErr := os.Create(*pdfPath)
		if pdfErr != nil {
			logger.Fatal("failed to create PDF report file",
				zap.String("op", "main"),
				zap.Error(pdfErr),
			)
		}
		defer func() {
			_ = file.Close()
		}()
		if pdfErr := report.Generate(file, items[0].Name, items[0].Result, items[0].Bankability); pdfErr != nil {
			logger.Fatal("failed to write PDF report",
				zap.String("op", "main"),
				zap.Error(pdfErr),
			)
		}
		logger.Info("wrote PDF report",
			zap.String("op", "main"),
			zap.String("path", *pdfPath),
		)
	}
}

func runServer(configLocation, logLevelOverride string) {
	cfg, err := server.LoadConfig(configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", configLocation, err)
		return
	}

	logger, err := initializeLogger(cfg.Logging, logLevelOverride)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	handler := server.NewHandler(logger, cfg.BodySizeBytes(), version)
	logger.Info("starting HTTP API",
		zap.String("op", "main"),
		zap.String("address", cfg.Address),
	)
	if err := http.ListenAndServe(cfg.Address, handler); err != nil {
		logger.Fatal("server failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
