package filelog

import (
	"os"
	"path/filepath"
)

const (
	DefaultDirMode  os.FileMode = 0o777
	DefaultFileMode os.FileMode = 0o666
)

// defaultSubdir is appended to BaseDir when no directory is configured.
var defaultSubdir = filepath.Join("storage", "logs")

type Config struct {
	// Directory is applied through ConfigureDirectory at construction.
	Directory string `mapstructure:"directory" yaml:"directory"`
	// BaseDir anchors the default directory; the working directory when empty.
	BaseDir         string      `mapstructure:"base_dir" yaml:"base_dir"`
	DirMode         os.FileMode `mapstructure:"dir_mode" yaml:"dir_mode"`
	FileMode        os.FileMode `mapstructure:"file_mode" yaml:"file_mode"`
	SerializeWrites bool        `mapstructure:"serialize_writes" yaml:"serialize_writes"`
}

func DefaultConfig() Config {
	return Config{
		DirMode:  DefaultDirMode,
		FileMode: DefaultFileMode,
	}
}
