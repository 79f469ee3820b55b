package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/olusolaa/filelog/internal/app"
	"github.com/olusolaa/filelog/internal/config"
	apperrors "github.com/olusolaa/filelog/internal/errors"
)

var (
	cfgFile   string
	envFile   string
	logDir    string
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "filelog",
	Short: "Appends leveled, timestamped lines to per-level log files.",
	Long: `filelog writes "[YYYY-MM-DD HH:MM:SS] LEVEL: message" lines to info.log,
warning.log and error.log inside a log directory, creating the directory on
first use. It can also read the files back and report their entries.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file path (default is .filelog.yaml in the working or home directory)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file loaded before reading the environment, if present")
	rootCmd.PersistentFlags().StringVarP(&logDir, "dir", "d", "", "Log directory (default is ./storage/logs)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override diagnostic log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Override diagnostic log format (text, json)")

	viper.BindPFlag("storage.directory", rootCmd.PersistentFlags().Lookup("dir"))
	viper.BindPFlag("settings.log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("settings.log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	config.SetDefaults(viper.GetViper())
	viper.SetEnvPrefix("FILELOG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(newWriteCmd(), newIngestCmd(), newShowCmd())
}

func initializeConfig(cmd *cobra.Command) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return apperrors.WrapUserFacing(err, apperrors.CodeConfigReadError,
				"failed to load env file "+envFile, "Fix the dotenv syntax or pass --env-file=\"\".")
		}
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".filelog")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return apperrors.Wrap(err, apperrors.CodeConfigReadError, "failed to read config file")
		}
	}
	return nil
}

func buildApplication(cmd *cobra.Command) (*app.Application, error) {
	return app.BuildApplicationFromViper(cmd.Context(), viper.GetViper(), app.Streams{
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	})
}

func printError(err error) {
	userMsg, suggestion, ok := apperrors.GetUserFacingMessage(err)
	if !ok {
		userMsg = err.Error()
	}
	fmt.Fprintf(os.Stderr, "ERROR: %s\n", userMsg)
	if suggestion != "" && ok {
		fmt.Fprintf(os.Stderr, "Suggestion: %s\n", suggestion)
	}
}
