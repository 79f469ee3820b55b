// Package filelog appends timestamped lines to one file per level inside a
// lazily created directory.
//
// Appends are not locked unless Config.SerializeWrites is set, and even then
// only within one process. Concurrent writers may interleave whole lines.
package filelog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/olusolaa/filelog/internal/core/domain"
	"github.com/olusolaa/filelog/internal/core/ports"
	"github.com/olusolaa/filelog/internal/errors"
	"github.com/olusolaa/filelog/internal/log"
)

type FileLogger struct {
	cfg    Config
	fs     afero.Fs
	now    func() time.Time
	loc    *time.Location
	logger ports.Logger

	mu  sync.Mutex
	dir string

	// nil unless cfg.SerializeWrites
	fileLocks map[domain.Level]*sync.Mutex
}

type Option func(*FileLogger)

func WithFs(fs afero.Fs) Option {
	return func(l *FileLogger) { l.fs = fs }
}

func WithClock(now func() time.Time) Option {
	return func(l *FileLogger) { l.now = now }
}

// WithLocation sets the zone timestamps are rendered and parsed in.
func WithLocation(loc *time.Location) Option {
	return func(l *FileLogger) { l.loc = loc }
}

func New(cfg Config, logger ports.Logger, opts ...Option) *FileLogger {
	if cfg.DirMode == 0 {
		cfg.DirMode = DefaultDirMode
	}
	if cfg.FileMode == 0 {
		cfg.FileMode = DefaultFileMode
	}
	if logger == nil {
		logger = log.Discard()
	}

	l := &FileLogger{
		cfg:    cfg,
		fs:     afero.NewOsFs(),
		now:    time.Now,
		loc:    time.Local,
		logger: logger,
	}
	for _, opt := range opts {
		opt(l)
	}

	if cfg.SerializeWrites {
		l.fileLocks = make(map[domain.Level]*sync.Mutex, len(domain.Levels()))
		for _, level := range domain.Levels() {
			l.fileLocks[level] = &sync.Mutex{}
		}
	}
	if cfg.Directory != "" {
		l.ConfigureDirectory(cfg.Directory)
	}
	return l
}

// ConfigureDirectory records the target directory for subsequent writes.
// Trailing separators are stripped and nothing touches the disk. An empty
// path restores the default.
func (l *FileLogger) ConfigureDirectory(path string) {
	dir := strings.TrimRight(path, "/"+string(filepath.Separator))
	if dir == "" && path != "" {
		dir = string(filepath.Separator)
	}

	l.mu.Lock()
	l.dir = dir
	l.mu.Unlock()
}

// Directory returns the configured or already resolved directory, or "" if
// the default has not been resolved yet.
func (l *FileLogger) Directory() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dir
}

func (l *FileLogger) Info(message string) error {
	return l.write(domain.LevelInfo, message)
}

func (l *FileLogger) Warning(message string) error {
	return l.write(domain.LevelWarning, message)
}

func (l *FileLogger) Error(message string) error {
	return l.write(domain.LevelError, message)
}

func (l *FileLogger) write(level domain.Level, message string) error {
	if !level.Valid() {
		return errors.Newf(errors.CodeInvalidLevel, "invalid log level: %s", level)
	}

	dir, err := l.ensureDirectory()
	if err != nil {
		return err
	}

	path := filepath.Join(dir, level.FileName())
	line := domain.NewEntry(level, message, l.now().In(l.loc)).Line()

	if lock := l.fileLocks[level]; lock != nil {
		lock.Lock()
		defer lock.Unlock()
	}
	return l.appendLine(path, line)
}

func (l *FileLogger) appendLine(path, line string) error {
	f, err := l.fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, l.cfg.FileMode)
	if err != nil {
		l.logger.Errorf(context.Background(), err, "failed to open log file %s", path)
		return errors.Wrap(err, errors.CodeFileWriteError, "failed to open log file "+path)
	}

	_, err = f.WriteString(line)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		l.logger.Errorf(context.Background(), err, "failed to append to log file %s", path)
		return errors.Wrap(err, errors.CodeFileWriteError, "failed to append to log file "+path)
	}
	return nil
}

// resolveDirectory fixes the default directory on first use.
func (l *FileLogger) resolveDirectory() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.dir != "" {
		return l.dir, nil
	}

	base := l.cfg.BaseDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, errors.CodeDirectoryCreateFailed, "failed to resolve default log directory")
		}
		base = wd
	}
	l.dir = filepath.Join(base, defaultSubdir)
	l.logger.Debugf(context.Background(), "resolved default log directory %s", l.dir)
	return l.dir, nil
}

func (l *FileLogger) ensureDirectory() (string, error) {
	dir, err := l.resolveDirectory()
	if err != nil {
		return "", err
	}

	if ok, _ := afero.DirExists(l.fs, dir); ok {
		return dir, nil
	}

	if err := l.fs.MkdirAll(dir, l.cfg.DirMode); err != nil {
		// Someone else may have created it in the meantime.
		if ok, _ := afero.DirExists(l.fs, dir); ok {
			return dir, nil
		}
		l.logger.Errorf(context.Background(), err, "failed to create log directory %s", dir)
		return "", errors.WrapUserFacing(err, errors.CodeDirectoryCreateFailed,
			"failed to create log directory: "+dir,
			"Check the permissions of the parent directory or choose another one with --dir.")
	}
	l.logger.Debugf(context.Background(), "created log directory %s", dir)
	return dir, nil
}
