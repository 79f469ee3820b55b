package json

import (
	"context"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/olusolaa/filelog/internal/core/domain"
	"github.com/olusolaa/filelog/internal/core/ports"
)

const ReporterTypeJSON = "json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Config struct{}

type Reporter struct {
	config Config
	writer io.Writer
	logger ports.Logger
}

func NewReporter(cfg Config, w io.Writer, logger ports.Logger) (*Reporter, error) {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{
		config: cfg,
		writer: w,
		logger: logger,
	}, nil
}

type jsonReport struct {
	Summary jsonSummary `json:"summary"`
	Entries []jsonEntry `json:"entries"`
}

type jsonSummary struct {
	Total   int `json:"total"`
	Info    int `json:"info"`
	Warning int `json:"warning"`
	Error   int `json:"error"`
}

type jsonEntry struct {
	Time    string       `json:"time"`
	Level   domain.Level `json:"level"`
	Message string       `json:"message"`
}

func (r *Reporter) Report(ctx context.Context, entries []domain.Entry) error {
	report := jsonReport{
		Summary: jsonSummary{Total: len(entries)},
		Entries: make([]jsonEntry, 0, len(entries)),
	}

	for _, e := range entries {
		if ctx.Err() != nil {
			r.logger.Warnf(ctx, "JSON report generation cancelled.")
			return ctx.Err()
		}

		switch e.Level {
		case domain.LevelInfo:
			report.Summary.Info++
		case domain.LevelWarning:
			report.Summary.Warning++
		case domain.LevelError:
			report.Summary.Error++
		}

		report.Entries = append(report.Entries, jsonEntry{
			Time:    e.Time.Format(domain.TimestampLayout),
			Level:   e.Level,
			Message: e.Message,
		})
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		r.logger.Errorf(ctx, err, "Failed to encode JSON report")
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}

	r.logger.Debugf(ctx, "JSON report generated with %d entries", len(entries))
	return nil
}
