// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pagedump CLI. It prints the text
// of every page of a PDF document to standard output, one "=== PAGE n ==="
// section per page.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pagedump/internal/backend"
	"github.com/pdiddy/pagedump/internal/dump"
	"github.com/pdiddy/pagedump/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd dumps the PDF named by its argument or by the configured path.
var rootCmd = &cobra.Command{
	Use:   "pagedump [path]",
	Short: "Print the text of each page of a PDF",
	Long: `pagedump opens a PDF document and prints the text of every page to
standard output, in document order. Each page starts with a
"=== PAGE n ===" header and ends with a blank line; pages without
extractable text get the header and blank line only.

The document path comes from the argument, PAGEDUMP_PATH, or the "path"
key of the config file, in that order.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFromViper(args)
		if cfg.Path == "" {
			return fmt.Errorf("no PDF path given: pass it as an argument or set PAGEDUMP_PATH")
		}
		return dump.Run(cfg, cmd.OutOrStdout(), newLogger(cmd.ErrOrStderr()))
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pagedump.yaml or ~/.config/pagedump/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log per-page diagnostics to stderr")

	rootCmd.Flags().String("backend", string(types.BackendLedongthuc), "extraction backend: "+strings.Join(backend.Names(), ", "))
	rootCmd.Flags().String("format", string(types.FormatText), "output format: text, json, or yaml")
	rootCmd.Flags().String("encoding", "utf-8", "output encoding (WHATWG label); unrepresentable characters are replaced")

	for _, key := range []string{"backend", "format", "encoding"} {
		_ = viper.BindPFlag(key, rootCmd.Flags().Lookup(key))
	}
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pagedump")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pagedump"))
		}
	}

	viper.SetEnvPrefix("PAGEDUMP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// configFromViper assembles the run configuration. A positional argument
// takes precedence over the configured path.
func configFromViper(args []string) types.DumpConfig {
	cfg := types.DumpConfig{
		Path:     viper.GetString("path"),
		Backend:  types.Backend(viper.GetString("backend")),
		Format:   types.OutputFormat(viper.GetString("format")),
		Encoding: viper.GetString("encoding"),
	}
	if len(args) > 0 {
		cfg.Path = args[0]
	}
	return cfg
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pagedump:", err)
		os.Exit(1)
	}
}
