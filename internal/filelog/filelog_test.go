package filelog_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"

	"github.com/olusolaa/filelog/internal/core/domain"
	portsmocks "github.com/olusolaa/filelog/internal/core/ports/mocks"
	"github.com/olusolaa/filelog/internal/errors"
	"github.com/olusolaa/filelog/internal/filelog"
	"github.com/olusolaa/filelog/internal/log"
)

var fixedTime = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

func newLogger(cfg filelog.Config, opts ...filelog.Option) *filelog.FileLogger {
	opts = append([]filelog.Option{filelog.WithClock(fixedClock), filelog.WithLocation(time.UTC)}, opts...)
	return filelog.New(cfg, log.Discard(), opts...)
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.SplitAfter(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

type FileLoggerTestSuite struct {
	suite.Suite
	dir    string
	logger *filelog.FileLogger
}

func (s *FileLoggerTestSuite) SetupTest() {
	s.dir = filepath.Join(s.T().TempDir(), "storage", "logs")
	s.logger = newLogger(filelog.DefaultConfig())
	s.logger.ConfigureDirectory(s.dir)
}

func (s *FileLoggerTestSuite) TestLevels() {
	tests := []struct {
		level domain.Level
		write func(string) error
		want  string
	}{
		{domain.LevelInfo, s.logger.Info, "[2025-01-02 03:04:05] INFO: This is an info message."},
		{domain.LevelWarning, s.logger.Warning, "[2025-01-02 03:04:05] WARNING: This is a warning message."},
		{domain.LevelError, s.logger.Error, "[2025-01-02 03:04:05] ERROR: This is an error message."},
	}
	for _, tt := range tests {
		msg := strings.TrimPrefix(tt.want, "[2025-01-02 03:04:05] "+tt.level.Upper()+": ")
		s.Require().NoError(tt.write(msg))

		path := filepath.Join(s.dir, tt.level.FileName())
		s.FileExists(path)
		data, err := os.ReadFile(path)
		s.Require().NoError(err)
		s.Equal(tt.want+"\n", string(data))
	}
}

func (s *FileLoggerTestSuite) TestLevelsDoNotShareFiles() {
	s.Require().NoError(s.logger.Info("only info"))
	s.NoFileExists(filepath.Join(s.dir, "warning.log"))
	s.NoFileExists(filepath.Join(s.dir, "error.log"))
}

func (s *FileLoggerTestSuite) TestAppendsWithoutTruncating() {
	s.Require().NoError(s.logger.Warning("first"))
	s.Require().NoError(s.logger.Warning("second"))

	lines := readLines(s.T(), filepath.Join(s.dir, "warning.log"))
	s.Require().Len(lines, 2)
	s.True(strings.HasSuffix(lines[0], "WARNING: first\n"))
	s.True(strings.HasSuffix(lines[1], "WARNING: second\n"))
}

func (s *FileLoggerTestSuite) TestMessageVerbatim() {
	msg := `tab	quote" unicode ✓ colon: [brackets]`
	s.Require().NoError(s.logger.Error(msg))
	lines := readLines(s.T(), filepath.Join(s.dir, "error.log"))
	s.Require().Len(lines, 1)
	s.Equal("[2025-01-02 03:04:05] ERROR: "+msg+"\n", lines[0])
}

func (s *FileLoggerTestSuite) TestCreatesNestedDirectory() {
	nested := filepath.Join(s.T().TempDir(), "non_existent_directory", "storage", "logs")
	s.logger.ConfigureDirectory(nested)
	s.Require().NoError(s.logger.Info("Testing log directory creation."))
	s.DirExists(nested)
	s.FileExists(filepath.Join(nested, "info.log"))
}

func (s *FileLoggerTestSuite) TestReconfigureAffectsLaterWritesOnly() {
	s.Require().NoError(s.logger.Info("before"))
	other := filepath.Join(s.T().TempDir(), "other")
	s.logger.ConfigureDirectory(other)
	s.Require().NoError(s.logger.Info("after"))

	s.Len(readLines(s.T(), filepath.Join(s.dir, "info.log")), 1)
	s.Len(readLines(s.T(), filepath.Join(other, "info.log")), 1)
}

func TestFileLoggerSuite(t *testing.T) {
	suite.Run(t, new(FileLoggerTestSuite))
}

func TestBootScenario(t *testing.T) {
	root := t.TempDir()
	logger := filelog.New(filelog.DefaultConfig(), nil)
	logger.ConfigureDirectory(filepath.Join(root, "x", "logs") + "/")

	require.NoError(t, logger.Info("boot ok"))

	path := filepath.Join(root, "x", "logs", "info.log")
	require.FileExists(t, path)
	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.True(t, strings.HasSuffix(lines[0], "INFO: boot ok\n"))
	assert.Regexp(t, `^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] INFO: boot ok\n$`, lines[0])
}

func TestConfigureDirectory(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"No Trailing Slash", "/var/log/app", "/var/log/app"},
		{"Trailing Slash", "/var/log/app/", "/var/log/app"},
		{"Repeated Trailing Slashes", "/var/log/app///", "/var/log/app"},
		{"Relative", "logs/", "logs"},
		{"Root", "/", "/"},
		{"Empty Restores Default", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := newLogger(filelog.DefaultConfig(), filelog.WithFs(afero.NewMemMapFs()))
			logger.ConfigureDirectory("/previous")
			logger.ConfigureDirectory(tt.in)
			assert.Equal(t, tt.want, logger.Directory())
		})
	}
}

func TestConfigDirectory(t *testing.T) {
	cfg := filelog.DefaultConfig()
	cfg.Directory = "/srv/logs/"
	logger := newLogger(cfg, filelog.WithFs(afero.NewMemMapFs()))
	assert.Equal(t, "/srv/logs", logger.Directory())
}

func TestDefaultDirectory(t *testing.T) {
	t.Run("Base Dir", func(t *testing.T) {
		base := t.TempDir()
		cfg := filelog.DefaultConfig()
		cfg.BaseDir = base
		logger := newLogger(cfg)
		assert.Empty(t, logger.Directory())

		require.NoError(t, logger.Error("default dir"))

		want := filepath.Join(base, "storage", "logs")
		assert.Equal(t, want, logger.Directory())
		assert.FileExists(t, filepath.Join(want, "error.log"))
	})

	t.Run("Working Directory", func(t *testing.T) {
		wd := t.TempDir()
		t.Chdir(wd)
		logger := newLogger(filelog.DefaultConfig())

		require.NoError(t, logger.Info("cwd default"))

		resolved, err := filepath.EvalSymlinks(logger.Directory())
		require.NoError(t, err)
		want, err := filepath.EvalSymlinks(filepath.Join(wd, "storage", "logs"))
		require.NoError(t, err)
		assert.Equal(t, want, resolved)
		assert.FileExists(t, filepath.Join(wd, "storage", "logs", "info.log"))
	})
}

func TestDirectoryCreateFailed(t *testing.T) {
	t.Run("File In The Way", func(t *testing.T) {
		root := t.TempDir()
		blocker := filepath.Join(root, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), 0o644))

		logger := newLogger(filelog.DefaultConfig())
		logger.ConfigureDirectory(filepath.Join(blocker, "logs"))

		err := logger.Info("never written")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.CodeDirectoryCreateFailed))
	})

	t.Run("Read Only Fs", func(t *testing.T) {
		fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
		logger := newLogger(filelog.DefaultConfig(), filelog.WithFs(fs))
		logger.ConfigureDirectory("/var/app/logs")

		err := logger.Warning("never written")
		require.Error(t, err)
		var appErr *errors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, errors.CodeDirectoryCreateFailed, appErr.Code)
		assert.True(t, appErr.IsUserFacing)
		assert.ErrorIs(t, err, syscall.EPERM)
	})
}

// racingFs reports a failed MkdirAll after another writer created the directory.
type racingFs struct {
	afero.Fs
}

func (r racingFs) MkdirAll(path string, perm os.FileMode) error {
	if err := r.Fs.MkdirAll(path, perm); err != nil {
		return err
	}
	return &os.PathError{Op: "mkdir", Path: path, Err: syscall.EEXIST}
}

func TestConcurrentDirectoryCreationIsNotAnError(t *testing.T) {
	mem := afero.NewMemMapFs()
	logger := newLogger(filelog.DefaultConfig(), filelog.WithFs(racingFs{Fs: mem}))
	logger.ConfigureDirectory("/var/app/logs")

	require.NoError(t, logger.Info("raced"))

	data, err := afero.ReadFile(mem, "/var/app/logs/info.log")
	require.NoError(t, err)
	assert.Equal(t, "[2025-01-02 03:04:05] INFO: raced\n", string(data))
}

func TestFileWriteError(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/var/app/logs", 0o755))
	logger := newLogger(filelog.DefaultConfig(), filelog.WithFs(afero.NewReadOnlyFs(mem)))
	logger.ConfigureDirectory("/var/app/logs")

	err := logger.Error("cannot append")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeFileWriteError))
}

func TestFileMode(t *testing.T) {
	mem := afero.NewMemMapFs()
	cfg := filelog.DefaultConfig()
	cfg.FileMode = 0o600
	logger := newLogger(cfg, filelog.WithFs(mem))
	logger.ConfigureDirectory("/logs")

	require.NoError(t, logger.Info("private"))

	info, err := mem.Stat("/logs/info.log")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestDiagnostics(t *testing.T) {
	mockLogger := portsmocks.NewLogger(t)
	mockLogger.On("Debugf", mock.Anything, "created log directory %s", "/var/app/logs").Once().Return()

	logger := filelog.New(filelog.DefaultConfig(), mockLogger,
		filelog.WithFs(afero.NewMemMapFs()), filelog.WithClock(fixedClock))
	logger.ConfigureDirectory("/var/app/logs")

	require.NoError(t, logger.Info("one"))
	require.NoError(t, logger.Info("two"))
}

func TestSerializeWrites(t *testing.T) {
	cfg := filelog.DefaultConfig()
	cfg.SerializeWrites = true
	dir := filepath.Join(t.TempDir(), "logs")
	logger := newLogger(cfg)
	logger.ConfigureDirectory(dir)

	const writers = 50
	var g errgroup.Group
	for i := range writers {
		g.Go(func() error {
			return logger.Info(fmt.Sprintf("writer %02d", i))
		})
	}
	require.NoError(t, g.Wait())

	lines := readLines(t, filepath.Join(dir, "info.log"))
	require.Len(t, lines, writers)
	for _, line := range lines {
		entry, err := domain.ParseLine(line, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, domain.LevelInfo, entry.Level)
		assert.True(t, strings.HasPrefix(entry.Message, "writer "))
	}
}
