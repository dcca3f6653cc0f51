package system

import (
	"fmt"
	"strings"

	"github.com/asanchezgar/rehaplan/internal/cli"
)

// ConfigCmd prints the effective configuration.
type ConfigCmd struct{}

func (cmd *ConfigCmd) Run(ctx *cli.Context) error {
	cfg := ctx.Config
	fmt.Printf("Config file:       %s\n", ctx.ConfigPath)
	fmt.Printf("  Timezone:        %s\n", cfg.Timezone)
	fmt.Printf("  Webhook URL:     %s\n", valueOrUnset(cfg.WebhookURL))
	fmt.Printf("  Request timeout: %ds\n", cfg.RequestTimeoutSec)
	fmt.Printf("  Capture command: %s\n", strings.Join(cfg.CaptureCommand, " "))
	fmt.Printf("  Speak command:   %s\n", strings.Join(cfg.SpeakCommand, " "))
	fmt.Printf("  Schedule file:   %s\n", valueOrUnset(cfg.ScheduleFile))
	fmt.Printf("  Asset dir:       %s\n", cfg.AssetDir)
	return nil
}

func valueOrUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
