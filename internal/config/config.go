package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/olusolaa/filelog/internal/errors"
	"github.com/olusolaa/filelog/internal/filelog"
	"github.com/olusolaa/filelog/internal/log"
	"github.com/olusolaa/filelog/internal/reporting/text"
)

type Config struct {
	Settings SettingsConfig `mapstructure:"settings" yaml:"settings"`
	Storage  filelog.Config `mapstructure:"storage" yaml:"storage"`
}

type SettingsConfig struct {
	LogLevel     log.Level  `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat    log.Format `mapstructure:"log_format" yaml:"log_format" validate:"oneof=text json"`
	ReporterType string     `mapstructure:"reporter" yaml:"reporter" validate:"oneof=text json"`
	NoColor      bool       `mapstructure:"no_color" yaml:"no_color"`
	// IngestRPS throttles ingest; 0 disables throttling.
	IngestRPS int `mapstructure:"ingest_rps" yaml:"ingest_rps" validate:"gte=0,lte=10000"`
}

func DefaultConfig() *Config {
	logCfg := log.DefaultConfig()
	return &Config{
		Settings: SettingsConfig{
			LogLevel:     logCfg.Level,
			LogFormat:    logCfg.Format,
			ReporterType: text.ReporterTypeText,
		},
		Storage: filelog.DefaultConfig(),
	}
}

// SetDefaults registers every key so AutomaticEnv can resolve it during
// Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("settings.log_level", string(d.Settings.LogLevel))
	v.SetDefault("settings.log_format", string(d.Settings.LogFormat))
	v.SetDefault("settings.reporter", d.Settings.ReporterType)
	v.SetDefault("settings.no_color", d.Settings.NoColor)
	v.SetDefault("settings.ingest_rps", d.Settings.IngestRPS)
	v.SetDefault("storage.directory", d.Storage.Directory)
	v.SetDefault("storage.base_dir", d.Storage.BaseDir)
	v.SetDefault("storage.dir_mode", FormatFileMode(d.Storage.DirMode))
	v.SetDefault("storage.file_mode", FormatFileMode(d.Storage.FileMode))
	v.SetDefault("storage.serialize_writes", d.Storage.SerializeWrites)
}

func Load(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg, viper.DecodeHook(FileModeHookFunc())); err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodeConfigParseError,
			"failed to parse configuration", "Check value types in the config file, environment and flags.")
	}
	return cfg, nil
}

func FormatFileMode(m os.FileMode) string {
	return fmt.Sprintf("%#o", uint32(m.Perm()))
}

// FileModeHookFunc decodes octal strings such as "0755" or "0o755" into
// os.FileMode. Integers are taken as-is.
func FileModeHookFunc() mapstructure.DecodeHookFuncType {
	modeType := reflect.TypeOf(os.FileMode(0))
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != modeType || from.Kind() != reflect.String {
			return data, nil
		}
		raw := reflect.ValueOf(data).String()
		if raw == "" {
			return os.FileMode(0), nil
		}
		n, err := strconv.ParseUint(raw, 0, 32)
		if err != nil || raw[0] != '0' {
			// modes are octal with or without the leading zero
			if n, err = strconv.ParseUint(raw, 8, 32); err != nil {
				return nil, fmt.Errorf("invalid file mode %q: %w", raw, err)
			}
		}
		if n > 0o7777 {
			return nil, fmt.Errorf("invalid file mode %q: out of range", raw)
		}
		return os.FileMode(n), nil
	}
}
