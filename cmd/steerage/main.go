package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/steerage/internal/config"
	"github.com/crimson-sun/steerage/internal/ingest"
	"github.com/crimson-sun/steerage/internal/logging"
	"github.com/crimson-sun/steerage/internal/output"
	"github.com/crimson-sun/steerage/internal/output/file"
	"github.com/crimson-sun/steerage/internal/output/multi"
	"github.com/crimson-sun/steerage/internal/output/stdout"
	"github.com/crimson-sun/steerage/internal/pipeline"
)

var (
	cfgFile      string
	flagInput    string
	flagOutput   string
	flagOutFile  string
	flagFormat   string
	flagNoChart  bool
	flagLogLevel string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "steerage",
	Short: "Survival-rate analysis over messy passenger datasets",
	Long: `Steerage loads a delimited passenger dataset of unknown encoding and
delimiter, normalizes it, and reports survival rates by cabin class and
by age group.`,
	SilenceUsage: true,
	RunE:         run,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a steerage.yaml with the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "steerage.yaml"
		if cfgFile != "" {
			path = cfgFile
		}
		if err := config.Save(cfg, path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./steerage.yaml)")
	rootCmd.PersistentFlags().StringVarP(&flagInput, "input", "i", "", "dataset file path (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "report destination: stdout, file, or both (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagOutFile, "out-file", "", "report file path for file/both output (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "", "report format: table or json (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoChart, "no-chart", false, "omit bar charts from text reports")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	rootCmd.AddCommand(initCmd)
}

func main() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", diagnose(err))
		os.Exit(1)
	}
}

// loadConfig resolves config from file/env/defaults and applies CLI
// overrides. An explicitly named config file that cannot be read aborts.
func loadConfig() {
	c, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	cfg = c

	f := rootCmd.PersistentFlags()
	if f.Changed("input") {
		cfg.Input = flagInput
	}
	if f.Changed("output") {
		cfg.Output.Kind = flagOutput
	}
	if f.Changed("out-file") {
		cfg.Output.Path = flagOutFile
	}
	if f.Changed("format") {
		cfg.Output.Format = flagFormat
	}
	if flagNoChart {
		cfg.Output.Chart = false
	}
	if f.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
}

func run(cmd *cobra.Command, args []string) error {
	logging.Init(logging.ParseLevel(cfg.LogLevel), cfg.JSONLogs)

	cache, err := ingest.NewCache(cfg.Loader.CacheSize)
	if err != nil {
		return err
	}
	loader := ingest.NewLoader(
		ingest.WithCache(cache),
		ingest.WithMinColumns(cfg.Loader.MinColumns),
	)

	out, err := buildOutput(cfg.Output)
	if err != nil {
		return err
	}

	p := pipeline.New(loader, out)
	defer p.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return p.Run(ctx, cfg.Input)
}

func buildOutput(oc config.OutputConfig) (output.Output, error) {
	switch oc.Kind {
	case "stdout":
		return stdout.New(oc.Format, oc.Chart), nil
	case "file":
		return file.New(oc.Path, oc.Format, oc.Chart)
	case "both":
		f, err := file.New(oc.Path, oc.Format, oc.Chart)
		if err != nil {
			return nil, err
		}
		return multi.New(stdout.New(oc.Format, oc.Chart), f), nil
	}
	return nil, fmt.Errorf("unknown output kind %q (want stdout, file, or both)", oc.Kind)
}

// diagnose turns structured loader failures into actionable messages; the
// payloads carry everything needed without re-inspecting the file.
func diagnose(err error) string {
	var nf *ingest.NotFoundError
	var de *ingest.DecodeExhaustedError
	var mc *ingest.MissingColumnsError
	switch {
	case errors.As(err, &nf):
		return fmt.Sprintf("dataset %s does not exist; check the --input path", nf.Path)
	case errors.As(err, &de):
		return fmt.Sprintf("could not decode %s as a delimited table; tried: %s",
			de.Path, strings.Join(de.Tried, ", "))
	case errors.As(err, &mc):
		return fmt.Sprintf("dataset is missing required column(s) %s; columns found: %s",
			strings.Join(mc.Missing, ", "), strings.Join(mc.Present, ", "))
	}
	return err.Error()
}
