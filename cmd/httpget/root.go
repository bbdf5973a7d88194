package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/aleister1102/httpget/internal/common"
	"github.com/aleister1102/httpget/internal/config"
	"github.com/aleister1102/httpget/internal/httpclient"
	"github.com/aleister1102/httpget/internal/logger"
	"github.com/aleister1102/httpget/internal/request"
	"github.com/aleister1102/httpget/internal/runner"
	"github.com/aleister1102/httpget/internal/starthub"
	"github.com/spf13/cobra"
)

// exitError carries the process exit status. Silent errors have already
// been reported on stderr.
type exitError struct {
	code   int
	err    error
	silent bool
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func newRootCmd() *cobra.Command {
	flags := &AppFlags{}

	rootCmd := &cobra.Command{
		Use:   "httpget",
		Short: "Perform one HTTP GET described by a JSON payload",
		Long: `Reads a JSON payload from stdin, performs a single GET request and
writes the status and body as JSON.

Each subcommand fixes the input and output convention:
	envelope  {"state":..,"params":{"url":..,"headers":{..}}}  -> ::starthub:state::{..}
	array     ["<url>", {headers}]                             -> [{"status":..,"body":..}]
	object    {"url":..,"headers":{..} or "<json>"}            -> {"status":..,"body":..}
	pairs     [{"url":..}, {headers}]                          -> [{"status":..},{"body":..}]`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	bindPersistentFlags(rootCmd, flags)

	for _, name := range request.ShapeNames() {
		rootCmd.AddCommand(newShapeCmd(name, flags))
	}
	rootCmd.AddCommand(newRunCmd(flags))
	rootCmd.AddCommand(newScrapeCmd())

	return rootCmd
}

func newShapeCmd(shape string, flags *AppFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   shape,
		Short: fmt.Sprintf("Fetch using the %s input/output convention", shape),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetch(cmd, flags, shape)
		},
	}
	bindInputFlag(cmd, flags)
	return cmd
}

func newRunCmd(flags *AppFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch using the shape from --shape or the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetch(cmd, flags, "")
		},
	}
	cmd.Flags().StringVarP(&flags.Shape, "shape", "s", "", "Shape: "+strings.Join(request.ShapeNames(), ", "))
	bindInputFlag(cmd, flags)
	return cmd
}

func newScrapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scrape",
		Short: "Extract the ::starthub:state:: payload from a mixed output stream on stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := starthub.ScrapeState(cmd.InOrStdin())
			if err != nil {
				return &exitError{code: 1, err: err}
			}

			var pretty bytes.Buffer
			if err := json.Indent(&pretty, payload, "", "  "); err != nil {
				return &exitError{code: 1, err: common.WrapError(err, "failed to format state")}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), pretty.String())
			return err
		},
	}
}

// fetch runs one invocation. shape overrides config and --shape when set.
func fetch(cmd *cobra.Command, flags *AppFlags, shape string) error {
	cfg, err := config.LoadConfig(flags.ConfigFile)
	if err != nil {
		return &exitError{code: 2, err: common.WrapError(err, "could not load config")}
	}
	applyFlags(cmd, flags, cfg)
	if shape != "" {
		cfg.Shape = shape
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return &exitError{code: 2, err: err}
	}

	zLogger, err := logger.New(cfg.LogConfig)
	if err != nil {
		return &exitError{code: 2, err: common.WrapError(err, "could not initialize logger")}
	}

	activeShape, err := request.ParseShape(cfg.Shape)
	if err != nil {
		return &exitError{code: 2, err: err}
	}
	zLogger.Debug().Str("shape", activeShape.String()).Msg("Configuration loaded")

	client, err := httpclient.NewHTTPClientBuilder(zLogger).
		WithConfig(cfg.HTTPConfig.ClientConfig()).
		Build()
	if err != nil {
		return &exitError{code: 2, err: common.WrapError(err, "could not create HTTP client")}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var in io.Reader = cmd.InOrStdin()
	if cmd.Flags().Changed("input") {
		in = strings.NewReader(flags.Input)
	}

	err = runner.New(activeShape, cfg.StrictInput, client, zLogger).
		Run(ctx, in, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err == nil {
		return nil
	}
	if common.IsTerminal(err) {
		if cfg.ZeroExitOnFailure {
			return nil
		}
		return &exitError{code: 1, err: err, silent: true}
	}
	return &exitError{code: 1, err: err}
}

// execute runs the CLI with args and returns the process exit status.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		if !exitErr.silent {
			fmt.Fprintf(stderr, "Error: %v\n", exitErr.err)
		}
		return exitErr.code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}
