package ports

import (
	"context"

	"github.com/olusolaa/filelog/internal/core/domain"
)

type Reporter interface {
	Report(ctx context.Context, entries []domain.Entry) error
}
