package ports

import (
	"context"

	"github.com/olusolaa/filelog/internal/core/domain"
)

//go:generate mockery --name LevelWriter --output ./mocks --outpkg mocks --case underscore

// LevelWriter appends one line per call to the file of the matching level.
type LevelWriter interface {
	Info(message string) error
	Warning(message string) error
	Error(message string) error
}

type EntryReader interface {
	ReadAll(ctx context.Context, levels ...domain.Level) ([]domain.Entry, error)
}
