package app

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/olusolaa/filelog/internal/core/domain"
	"github.com/olusolaa/filelog/internal/core/ports"
	"github.com/olusolaa/filelog/internal/errors"
)

// Waiter paces Ingest.
type Waiter interface {
	Wait(ctx context.Context) error
}

type Application struct {
	Writer   ports.LevelWriter
	Reader   ports.EntryReader
	Reporter ports.Reporter
	Limiter  Waiter
	Logger   ports.Logger
}

func NewApplication(writer ports.LevelWriter, reader ports.EntryReader, reporter ports.Reporter, limiter Waiter, logger ports.Logger) *Application {
	return &Application{
		Writer:   writer,
		Reader:   reader,
		Reporter: reporter,
		Limiter:  limiter,
		Logger:   logger,
	}
}

// Write dispatches to the writer method of level.
func (a *Application) Write(ctx context.Context, level domain.Level, message string) error {
	var err error
	switch level {
	case domain.LevelInfo:
		err = a.Writer.Info(message)
	case domain.LevelWarning:
		err = a.Writer.Warning(message)
	case domain.LevelError:
		err = a.Writer.Error(message)
	default:
		return errors.NewUserFacing(errors.CodeInvalidLevel, "invalid log level: "+string(level), "Use one of: info, warning, error.")
	}
	if err != nil {
		a.Logger.Errorf(ctx, err, "Failed to write %s entry", level)
		return err
	}
	a.Logger.Debugf(ctx, "Appended %s entry", level)
	return nil
}

// Ingest writes one entry per non-empty line of r and returns how many were
// written. It stops at the first failure.
func (a *Application) Ingest(ctx context.Context, level domain.Level, r io.Reader) (int, error) {
	if !level.Valid() {
		return 0, errors.NewUserFacing(errors.CodeInvalidLevel, "invalid log level: "+string(level), "Use one of: info, warning, error.")
	}

	written := 0
	br := bufio.NewReader(r)
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return written, errors.Wrap(readErr, errors.CodeFileReadError, "failed to read ingest input")
		}

		msg := strings.TrimRight(line, "\r\n")
		if msg != "" {
			if err := a.Limiter.Wait(ctx); err != nil {
				return written, err
			}
			if err := a.Write(ctx, level, msg); err != nil {
				return written, err
			}
			written++
		}

		if readErr == io.EOF {
			break
		}
	}

	a.Logger.Infof(ctx, "Ingested %d %s entries", written, level)
	return written, nil
}

// Show reports the entries of levels, a comma separated list; empty means all.
func (a *Application) Show(ctx context.Context, levels string) error {
	parsed, err := parseLevels(levels)
	if err != nil {
		return err
	}

	entries, err := a.Reader.ReadAll(ctx, parsed...)
	if err != nil {
		a.Logger.Errorf(ctx, err, "Failed to read log entries")
		return err
	}
	a.Logger.Debugf(ctx, "Read %d entries", len(entries))

	return a.Reporter.Report(ctx, entries)
}
