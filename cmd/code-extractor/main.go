// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the code-extractor CLI.
// It reads chat exports, meeting notes and Markdown files, extracts the code
// blocks they contain, and saves each block as a named file grouped by topic.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the code-extractor CLI.
var rootCmd = &cobra.Command{
	Use:   "code-extractor",
	Short: "Extract code blocks from documents into organized files",
	Long: `code-extractor scans free-form text documents (chat exports, meeting
notes, Markdown) for code. Fenced blocks are taken as-is; indented runs are
kept when they look like code. Each block is labelled with a language and
saved as code_NN_<language>_<hash>.<ext> under a directory named after the
document's topic.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./code-extractor.yaml or ~/.config/code-extractor/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("code-extractor")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "code-extractor"))
		}
	}

	viper.SetEnvPrefix("CODE_EXTRACTOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
