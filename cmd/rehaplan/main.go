package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/asanchezgar/rehaplan/internal/cli"
	"github.com/asanchezgar/rehaplan/internal/cli/system"
	"github.com/asanchezgar/rehaplan/internal/config"
	"github.com/asanchezgar/rehaplan/internal/constants"
	apperrors "github.com/asanchezgar/rehaplan/internal/errors"
	"github.com/asanchezgar/rehaplan/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"string" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Now        cli.NowCmd       `cmd:"" help:"Show the current and next activity."`
	Week       cli.WeekCmd      `cmd:"" help:"Show the parsed weekly schedule."`
	Recognize  cli.RecognizeCmd `cmd:"" help:"Capture a frame, recognize the patient, and show today's context."`
	Kiosk      system.KioskCmd  `cmd:"" help:"Launch the full-screen kiosk." default:"1"`
	Simulate   cli.SimulateCmd  `cmd:"" help:"Resolve the context at an arbitrary day and time."`
	Doctor     system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	ShowConfig system.ConfigCmd `cmd:"" name:"config" help:"Print the effective configuration."`
	Keyring    struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store the webhook API key in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Check whether an API key is stored."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the API key from the OS keyring."`
	} `cmd:"" help:"Manage the webhook API key."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Rehabilitation-center weekly schedule companion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(config.ExpandPath(CLI.Config)),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{
		ConfigPath: config.ExpandPath(CLI.Config),
		Config:     cfg,
	}

	apperrors.Fatal(ctx.Run(appCtx))
}
