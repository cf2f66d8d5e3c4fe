package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stevenkilzer/calc/internal/config"
	"github.com/stevenkilzer/calc/internal/sample"
	"github.com/stevenkilzer/calc/internal/store"
	"github.com/stevenkilzer/calc/pkg/constants"
	"github.com/stevenkilzer/calc/pkg/finance"
	"github.com/stevenkilzer/calc/pkg/output"
	"github.com/stevenkilzer/calc/pkg/validation"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

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

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

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

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

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
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	horizonFlag := flag.Int("horizon", 0, "projection horizon in months override")
	sampleFlag := flag.Bool("sample", false, "run the built-in sample project instead of a configuration file")
	flag.Parse()

	conf := &config.Configuration{}
	if !*sampleFlag {
		loaded, err := config.LoadConfiguration(*configLocation)
		if err != nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
			os.Exit(1)
		}
		conf = loaded
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
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
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	if !*sampleFlag {
		// Validate configuration and display any warnings
		warnings := conf.ValidateConfiguration()
		for _, warning := range warnings {
			logger.Warn("Configuration warning: "+warning,
				zap.String("op", "main"),
			)
		}
	}

	horizon := conf.HorizonMonths()
	if *horizonFlag > 0 {
		horizon = *horizonFlag
	}

	type projectInput struct {
		name      string
		startDate string
		data      store.ProjectData
	}

	inputs := make([]projectInput, 0, len(conf.Projects))
	if *sampleFlag {
		demo := sample.NewProject("sample", "Sample Project")
		inputs = append(inputs, projectInput{name: demo.Name, data: demo.Data})
	} else {
		for _, project := range conf.Projects {
			inputs = append(inputs, projectInput{
				name:      project.Name,
				startDate: project.StartDate,
				data:      project.Data(),
			})
		}
	}

	engine := finance.NewEngine(logger)
	results := make([]output.Result, 0, len(inputs))
	for _, input := range inputs {
		fin := finance.CalculateFinancials(input.data.Snapshot())
		projection := engine.Project(fin, horizon)

		logger.Debug("computed project",
			zap.String("op", "main"),
			zap.String("name", input.name),
			zap.Float64("netRevenue", fin.NetRevenue),
			zap.Float64("monthlyPayment", fin.MonthlyPayment),
		)

		results = append(results, output.Result{
			Name:       input.name,
			StartDate:  input.startDate,
			Financials: fin,
			Projection: projection,
		})
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(results)
	case constants.OutputFormatCSV:
		output.CsvFormat(results)
	}
}
