// Copyright
// SPDX-License-Identifier: MIT
// paginator: infinite scroll pagination for terminal lists, plus a decision checker
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	cfg "paginator/internal/config"
	"paginator/internal/logger"
)

const Version = "0.3.0"

var (
	commit = "dev"
	date   = "unknown"
)

/* ---------- CLI ---------- */

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "paginator",
		Short: "Infinite scroll pagination for terminal lists",
		Long: `paginator watches a scrollable list and asks for the next page once the
remaining content drops below a number of screens ahead of the viewport.

Use 'paginator demo' to scroll a feed, or 'paginator check' to evaluate a
single scroll event.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringP("config", "c", "", fmt.Sprintf("config file (default is %s)", cfg.DefaultPath))
	root.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	root.PersistentFlags().String("log-file", "", "append logs to file")

	root.AddCommand(newDemoCmd(), newServeCmd(), newCheckCmd(), newInitCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "paginator version %s\n", Version)
			fmt.Fprintf(out, "commit: %s\n", commit)
			fmt.Fprintf(out, "built at: %s\n", date)
		},
	}
}

func newInitCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = cfg.DefaultPath
			}
			overwrite, _ := cmd.Flags().GetBool("overwrite")
			old, err := os.ReadFile(path)
			exists := err == nil
			if exists && !overwrite {
				return fmt.Errorf("%s already exists; use --overwrite to replace it", path)
			}
			data, err := cfg.Marshal(cfg.Default())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if exists {
				if d := cfg.Diff(string(old), string(data)); d != "" {
					fmt.Fprintf(out, "Replacing %s:\n%s", path, d)
				}
			}
			if err := cfg.Save(path, cfg.Default()); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintln(out, "Wrote", path)
			return nil
		},
	}
	c.Flags().Bool("overwrite", false, "replace an existing config file")
	return c
}

// loadSettings reads the config file and the flags bound to v, and builds the
// logger the command runs with.
func loadSettings(cmd *cobra.Command, v *viper.Viper) (*cfg.Config, *zap.Logger, error) {
	if err := v.BindPFlag("log_file", cmd.Flags().Lookup("log-file")); err != nil {
		return nil, nil, err
	}
	path, _ := cmd.Flags().GetString("config")
	c, err := cfg.Load(v, path)
	if err != nil {
		return nil, nil, err
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	var outputs []string
	if c.LogFile != "" {
		outputs = append(outputs, c.LogFile)
	}
	log, err := logger.New(verbose, outputs...)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return c, log, nil
}
