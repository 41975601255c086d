// cmd/assessment-engine/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"assessment-engine/internal/assessment"
	"assessment-engine/internal/common/config"
	commonerrors "assessment-engine/internal/common/errors"
	"assessment-engine/internal/common/logger"
	"assessment-engine/internal/common/observability"
	"assessment-engine/internal/common/validation"
	"assessment-engine/internal/models"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (default: configs/config.yaml lookup)")
	outputPath := flag.String("output", "", "report destination for a single input ('-' or empty: stdout)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	if cfg.Metrics.Enabled {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.Metrics.ListenAddress, nil); err != nil {
				zapLog.Warn("metrics listener stopped", zap.Error(err))
			}
		}()
		zapLog.Info("metrics listener started", zap.String("address", cfg.Metrics.ListenAddress))
	}

	engine, err := assessment.New(log, obs)
	if err != nil {
		zapLog.Fatal("engine initialization failed", zap.Error(err))
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	if *outputPath != "" && len(inputs) > 1 {
		zapLog.Fatal("-output is only valid with a single input")
	}

	ctx := context.Background()
	failed := false
	for _, input := range inputs {
		dest := *outputPath
		if dest == "" && len(inputs) > 1 {
			// Batch mode: write each report next to its input.
			dest = strings.TrimSuffix(input, ".json") + ".report.json"
		}
		if err := run(ctx, engine, cfg, input, dest); err != nil {
			log.WithError(err).Error("evaluation failed", map[string]interface{}{"input": input})
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func run(ctx context.Context, engine *assessment.Engine, cfg *config.Config, inputPath, dest string) error {
	raw, err := readInput(inputPath)
	if err != nil {
		return err
	}

	result, err := validation.ValidateAssessmentInput(raw)
	if err != nil {
		return commonerrors.NewInputParseFailedError(err)
	}
	if !result.Valid {
		return commonerrors.NewInputSchemaFailedError(result.GetErrorMessages())
	}

	var input models.AssessmentInput
	if err := json.Unmarshal(raw, &input); err != nil {
		return commonerrors.NewInputParseFailedError(err)
	}

	report, err := engine.Evaluate(ctx, &input)
	if err != nil {
		return err
	}

	return writeReport(report, cfg, dest)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeReport(report *assessment.Report, cfg *config.Config, dest string) error {
	var data []byte
	var err error
	if cfg.Report.Pretty {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = json.Marshal(report)
	}
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if dest == "" || dest == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return commonerrors.NewReportWriteFailedError(dest, err)
	}
	return nil
}
