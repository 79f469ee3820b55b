package filelog

import (
	"bufio"
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/olusolaa/filelog/internal/core/domain"
	"github.com/olusolaa/filelog/internal/errors"
)

// ReadEntries parses the file of one level. A missing file yields no entries
// and malformed lines are skipped.
func (l *FileLogger) ReadEntries(ctx context.Context, level domain.Level) ([]domain.Entry, error) {
	if !level.Valid() {
		return nil, errors.Newf(errors.CodeInvalidLevel, "invalid log level: %s", level)
	}

	dir, err := l.resolveDirectory()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, level.FileName())

	f, err := l.fs.Open(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			l.logger.Debugf(ctx, "log file %s does not exist yet", path)
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.CodeFileReadError, "failed to open log file "+path)
	}
	defer f.Close()

	var entries []domain.Entry
	r := bufio.NewReader(f)
	for lineNo := 1; ; lineNo++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line, readErr := r.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, errors.Wrap(readErr, errors.CodeFileReadError, "failed to read log file "+path)
		}
		if line != "" {
			entry, err := domain.ParseLine(line, l.loc)
			if err != nil {
				l.logger.Warnf(ctx, "skipping line %d of %s: %v", lineNo, path, err)
			} else if entry.Level != level {
				l.logger.Warnf(ctx, "skipping line %d of %s: level %s does not belong here", lineNo, path, entry.Level)
			} else {
				entries = append(entries, entry)
			}
		}
		if readErr == io.EOF {
			break
		}
	}
	return entries, nil
}

// ReadAll reads the given levels, all of them when none are given, and merges
// the entries by timestamp. Entries with equal timestamps keep level order.
func (l *FileLogger) ReadAll(ctx context.Context, levels ...domain.Level) ([]domain.Entry, error) {
	if len(levels) == 0 {
		levels = domain.Levels()
	}

	perLevel := make([][]domain.Entry, len(levels))
	g, gctx := errgroup.WithContext(ctx)
	for i, level := range levels {
		g.Go(func() error {
			entries, err := l.ReadEntries(gctx, level)
			if err != nil {
				return err
			}
			perLevel[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []domain.Entry
	for _, entries := range perLevel {
		merged = append(merged, entries...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Time.Before(merged[j].Time)
	})
	return merged, nil
}
