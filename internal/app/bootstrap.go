package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/olusolaa/filelog/internal/config"
	"github.com/olusolaa/filelog/internal/core/ports"
	"github.com/olusolaa/filelog/internal/errors"
	"github.com/olusolaa/filelog/internal/filelog"
	"github.com/olusolaa/filelog/internal/limiter"
	"github.com/olusolaa/filelog/internal/log"
	jsonreporter "github.com/olusolaa/filelog/internal/reporting/json"
	"github.com/olusolaa/filelog/internal/reporting/text"
)

// Streams lets callers redirect report output and diagnostics.
type Streams struct {
	Out io.Writer
	Err io.Writer
}

func BuildApplicationFromViper(ctx context.Context, v *viper.Viper, streams Streams) (*Application, error) {
	if streams.Out == nil {
		streams.Out = os.Stdout
	}
	if streams.Err == nil {
		streams.Err = os.Stderr
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(ctx, cfg); err != nil {
		return nil, err
	}

	logger, err := log.NewLogger(log.Config{
		Level:  cfg.Settings.LogLevel,
		Format: cfg.Settings.LogFormat,
		Writer: streams.Err,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "logger initialization failed")
	}
	logger.Debugf(ctx, "Logger initialized (Level: %s, Format: %s)", cfg.Settings.LogLevel, cfg.Settings.LogFormat)
	if v.ConfigFileUsed() != "" {
		logger.Debugf(ctx, "Using configuration file: %s", v.ConfigFileUsed())
	}

	files := filelog.New(cfg.Storage, logger.WithFields(map[string]any{"component": "filelog"}))
	if dir := files.Directory(); dir != "" {
		logger.Debugf(ctx, "Log directory configured: %s", dir)
	}

	reporter, err := newReporter(cfg, streams.Out, logger)
	if err != nil {
		return nil, err
	}

	lim := limiter.New(ctx, cfg.Settings.IngestRPS, logger.WithFields(map[string]any{"component": "limiter"}))

	return NewApplication(files, files, reporter, lim, logger), nil
}

func validateConfig(ctx context.Context, cfg *config.Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	err := validate.StructCtx(ctx, cfg)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(err, errors.CodeConfigValidation, "configuration validation failed")
	}
	var details strings.Builder
	details.WriteString("Configuration validation failed:")
	for _, fe := range validationErrors {
		details.WriteString(fmt.Sprintf("\n - Field '%s': Failed on '%s' validation (value: '%v')", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return errors.NewUserFacing(errors.CodeConfigValidation, details.String(), "Please check your configuration file, environment or flags.")
}

func newReporter(cfg *config.Config, out io.Writer, logger ports.Logger) (ports.Reporter, error) {
	reportLog := logger.WithFields(map[string]any{"component": "reporter", "type": cfg.Settings.ReporterType})
	switch cfg.Settings.ReporterType {
	case text.ReporterTypeText:
		return text.NewReporter(text.Config{NoColor: cfg.Settings.NoColor}, out, reportLog)
	case jsonreporter.ReporterTypeJSON:
		return jsonreporter.NewReporter(jsonreporter.Config{}, out, reportLog)
	default:
		return nil, errors.NewUserFacing(errors.CodeConfigValidation,
			fmt.Sprintf("unsupported reporter type: %s", cfg.Settings.ReporterType), "Supported: text, json")
	}
}
