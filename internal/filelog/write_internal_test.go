package filelog

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/filelog/internal/core/domain"
	"github.com/olusolaa/filelog/internal/errors"
)

func TestWrite_InvalidLevel(t *testing.T) {
	fs := afero.NewMemMapFs()
	l := New(DefaultConfig(), nil, WithFs(fs))
	l.ConfigureDirectory("/logs")

	require.NoError(t, l.Info("This is an info message."))

	for _, level := range []domain.Level{"invalid", "debug", "INFO", "", "info "} {
		for _, msg := range []string{"This should throw an exception", "", "[2025-01-01 00:00:00] INFO: forged"} {
			err := l.write(level, msg)
			require.Error(t, err, "level %q", level)
			assert.True(t, errors.Is(err, errors.CodeInvalidLevel), "level %q", level)
		}
	}

	entries, err := afero.ReadDir(fs, "/logs")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "info.log", entries[0].Name())
}

func TestWrite_InvalidLevelSkipsDirectoryCreation(t *testing.T) {
	fs := afero.NewMemMapFs()
	l := New(DefaultConfig(), nil, WithFs(fs))
	l.ConfigureDirectory("/never")

	err := l.write("verbose", "x")
	assert.True(t, errors.Is(err, errors.CodeInvalidLevel))

	exists, err := afero.DirExists(fs, "/never")
	require.NoError(t, err)
	assert.False(t, exists)
}
