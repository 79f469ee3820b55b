package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/olusolaa/filelog/internal/core/domain"
)

func newWriteCmd() *cobra.Command {
	var level string
	cmd := &cobra.Command{
		Use:   "write [message...]",
		Short: "Append one entry to the file of a level",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := domain.ParseLevel(level)
			if err != nil {
				return err
			}
			application, err := buildApplication(cmd)
			if err != nil {
				return err
			}
			return application.Write(cmd.Context(), lvl, strings.Join(args, " "))
		},
	}
	cmd.Flags().StringVarP(&level, "level", "l", string(domain.LevelInfo), "Level: info, warning or error")
	return cmd
}

func newIngestCmd() *cobra.Command {
	var level string
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Append one entry per line read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := domain.ParseLevel(level)
			if err != nil {
				return err
			}
			application, err := buildApplication(cmd)
			if err != nil {
				return err
			}
			n, err := application.Ingest(cmd.Context(), lvl, cmd.InOrStdin())
			fmt.Fprintf(cmd.ErrOrStderr(), "%d entries written\n", n)
			return err
		},
	}
	cmd.Flags().StringVarP(&level, "level", "l", string(domain.LevelInfo), "Level: info, warning or error")
	cmd.Flags().Int("rps", 0, "Maximum entries per second (0 = unlimited)")
	viper.BindPFlag("settings.ingest_rps", cmd.Flags().Lookup("rps"))
	return cmd
}

func newShowCmd() *cobra.Command {
	var levels string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Report the entries of one or more level files ordered by time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := buildApplication(cmd)
			if err != nil {
				return err
			}
			return application.Show(cmd.Context(), levels)
		},
	}
	cmd.Flags().StringVar(&levels, "levels", "", "Comma separated levels to show (default all)")
	cmd.Flags().String("reporter", "", "Output format: text or json")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	viper.BindPFlag("settings.reporter", cmd.Flags().Lookup("reporter"))
	viper.BindPFlag("settings.no_color", cmd.Flags().Lookup("no-color"))
	return cmd
}
