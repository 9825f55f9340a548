// Package cli wires the dcmfx subcommands into a kong command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/codeninja55/dcmfx/cmd/dcmfx/internal/build"
	"github.com/codeninja55/dcmfx/cmd/dcmfx/internal/commands"
)

const (
	appName        = "dcmfx"
	appDescription = "DICOM Part 10 streaming codec CLI"
)

// GlobalConfig holds flags shared by every subcommand.
type GlobalConfig struct {
	Debug    bool   `name:"debug" help:"Enable debug logging"`
	LogLevel string `name:"log-level" default:"info" enum:"trace,debug,info,warn,error,fatal" help:"Minimum log level"`
	Pretty   bool   `name:"pretty" default:"true" negatable:"" help:"Human-readable log output instead of JSON"`
}

// CLI is the root command structure.
type CLI struct {
	GlobalConfig

	Print        commands.PrintCmd     `cmd:"" name:"print" help:"Print a DICOM file's token stream"`
	Modify       commands.ModifyCmd    `cmd:"" name:"modify" help:"Delete tags and/or anonymize a DICOM file"`
	GetPixelData commands.PixelDataCmd `cmd:"" name:"get-pixel-data" help:"Extract pixel data frames to files"`
}

// Run parses os.Args and executes the selected subcommand.
func Run(version, commit, date string) error {
	build.SetBuildInfo(version, commit, date)

	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name(appName),
		kong.Description(appDescription),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version, "commit": commit, "date": date},
	)

	logger := setupLogger(&cli.GlobalConfig)
	logger.Debug("dcmfx starting", "version", version, "commit", commit, "build_date", date)

	if err := ctx.Run(); err != nil {
		logger.Error("command failed", "error", err)
		return err
	}
	return nil
}

func setupLogger(cfg *GlobalConfig) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})

	level := cfg.LogLevel
	if cfg.Debug {
		level = "debug"
	}
	switch level {
	case "trace", "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	case "fatal":
		logger.SetLevel(log.FatalLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	if !cfg.Pretty {
		logger.SetFormatter(log.JSONFormatter)
	}

	log.SetDefault(logger)
	return logger
}

// ParseArgs is a convenience entry point for tests: it parses args without
// executing the selected command.
func ParseArgs(args []string, version, commit, date string) (*CLI, *kong.Context, error) {
	build.SetBuildInfo(version, commit, date)

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name(appName),
		kong.Description(appDescription),
		kong.Vars{"version": version, "commit": commit, "date": date},
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create parser: %w", err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse arguments: %w", err)
	}
	return cli, ctx, nil
}
