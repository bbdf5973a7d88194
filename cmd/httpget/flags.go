package main

import (
	"github.com/aleister1102/httpget/internal/config"
	"github.com/spf13/cobra"
)

// AppFlags holds command-line values that override the config file.
type AppFlags struct {
	ConfigFile         string
	Shape              string
	Input              string
	LogLevel           string
	LogFormat          string
	LogFile            string
	ConnectTimeoutSecs int
	TimeoutSecs        int
	StrictInput        bool
	ZeroExitOnFailure  bool
}

func bindPersistentFlags(cmd *cobra.Command, flags *AppFlags) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.ConfigFile, "config", "c", "", "Path to a YAML/JSON configuration file (or set "+config.ConfigPathEnv+")")
	pf.StringVar(&flags.LogLevel, "log-level", "", "Log level: trace, debug, info, warn, error, disabled")
	pf.StringVar(&flags.LogFormat, "log-format", "", "Log format: console, text, json")
	pf.StringVar(&flags.LogFile, "log-file", "", "Also write logs to this file, rotated")
	pf.IntVar(&flags.ConnectTimeoutSecs, "connect-timeout", config.DefaultHTTPConnectTimeoutSecs, "Connect timeout in seconds")
	pf.IntVar(&flags.TimeoutSecs, "timeout", config.DefaultHTTPTimeoutSecs, "Overall request timeout in seconds, 0 for none")
	pf.BoolVar(&flags.StrictInput, "strict", false, "Reject input that is not valid JSON instead of treating it as empty")
	pf.BoolVar(&flags.ZeroExitOnFailure, "zero-exit", false, "Exit 0 even when the request fails")
}

func bindInputFlag(cmd *cobra.Command, flags *AppFlags) {
	cmd.Flags().StringVarP(&flags.Input, "input", "i", "", "JSON payload to use instead of reading stdin")
}

// applyFlags copies explicitly set flags onto cfg.
func applyFlags(cmd *cobra.Command, flags *AppFlags, cfg *config.Config) {
	changed := cmd.Flags().Changed

	if changed("log-level") {
		cfg.LogConfig.LogLevel = flags.LogLevel
	}
	if changed("log-format") {
		cfg.LogConfig.LogFormat = flags.LogFormat
	}
	if changed("log-file") {
		cfg.LogConfig.LogFile = flags.LogFile
	}
	if changed("connect-timeout") {
		cfg.HTTPConfig.ConnectTimeoutSecs = flags.ConnectTimeoutSecs
	}
	if changed("timeout") {
		cfg.HTTPConfig.TimeoutSecs = flags.TimeoutSecs
	}
	if changed("strict") {
		cfg.StrictInput = flags.StrictInput
	}
	if changed("zero-exit") {
		cfg.ZeroExitOnFailure = flags.ZeroExitOnFailure
	}
	if changed("shape") {
		cfg.Shape = flags.Shape
	}
}
