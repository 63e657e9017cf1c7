// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the collab-matcher CLI.
// The generate subcommand matches faculty to funding opportunities and
// writes suggested pairs and teams; show renders a written result file.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// usageError marks a command-line misuse that has already been reported to
// the user. It maps to exit status 2.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// rootCmd is the base command for the collab-matcher CLI.
var rootCmd = &cobra.Command{
	Use:   "collab-matcher",
	Short: "Suggest faculty collaborations for funding opportunities",
	Long: `collab-matcher reads a faculty index and a list of funding opportunities,
scores each faculty member against the most recent opportunities by shared
vocabulary, and writes suggested two-person pairs and larger teams with a short
rationale for each.

Inputs and output default to data/faculty_index.json, data/opportunities.json,
and data/teams.json. Settings can also come from collab-matcher.yaml or
COLLAB_MATCHER_* environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./collab-matcher.yaml or ~/.config/collab-matcher/collab-matcher.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "diagnostic log level: trace, debug, info, warn, error, off")
	rootCmd.PersistentFlags().String("log-format", "console", "diagnostic log format: console or json")

	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("collab-matcher")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "collab-matcher"))
		}
	}

	viper.SetEnvPrefix("COLLAB_MATCHER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue *usageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		var ue *usageError
		if !errors.As(err, &ue) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
	}
	os.Exit(exitCode(err))
}
