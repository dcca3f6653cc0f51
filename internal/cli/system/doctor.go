package system

import (
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/asanchezgar/rehaplan/internal/cli"
	"github.com/asanchezgar/rehaplan/internal/constants"
	"github.com/asanchezgar/rehaplan/internal/keyring"
	"github.com/asanchezgar/rehaplan/internal/recognition"
	"github.com/asanchezgar/rehaplan/internal/utils"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: timezone valid
	if !utils.ValidateTimezone(ctx.Config.Timezone) {
		fmt.Printf("❌ Timezone: FAIL\n")
		fmt.Printf("   Error: invalid timezone %q\n", ctx.Config.Timezone)
		hasError = true
	} else {
		fmt.Printf("✓ Timezone: OK (%s)\n", ctx.Config.Timezone)
	}

	// Check 2: clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock: OK\n")
	}

	// Check 3: webhook configured and reachable
	if err := checkWebhook(ctx); err != nil {
		fmt.Printf("⚠ Recognition webhook: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Recognition webhook: OK\n")
	}

	// Check 4: capture command on PATH
	if err := checkCommand(ctx.Config.CaptureCommand); err != nil {
		fmt.Printf("⚠ Capture command: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Capture command: OK (%s)\n", ctx.Config.CaptureCommand[0])
	}

	// Check 5: speak command on PATH
	if err := checkCommand(ctx.Config.SpeakCommand); err != nil {
		fmt.Printf("⚠ Speak command: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Speak command: OK (%s)\n", ctx.Config.SpeakCommand[0])
	}

	// Check 6: keyring availability
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   OS keyring unavailable; the webhook will be called without an API key\n")
	}

	// Check 7: schedule file parses, when configured
	if ctx.Config.ScheduleFile == "" {
		fmt.Printf("⊘ Schedule file: SKIPPED (not configured)\n")
	} else if _, err := recognition.LoadPatientFile(ctx.Config.ScheduleFile); err != nil {
		fmt.Printf("❌ Schedule file: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Schedule file: OK (%s)\n", ctx.Config.ScheduleFile)
	}

	// Check 8: duplicate kiosk instance
	if n, err := countInstances(); err != nil {
		fmt.Printf("⊘ Running instances: SKIPPED (%v)\n", err)
	} else if n > 1 {
		fmt.Printf("⚠ Running instances: WARNING\n")
		fmt.Printf("   %d %s processes found; a second kiosk will fight over the camera\n", n, constants.AppName)
	} else {
		fmt.Printf("✓ Running instances: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

// checkClock flags clocks that are obviously wrong, which would break every
// "what is happening now" answer. Kiosk devices without an RTC boot in 1970.
func checkClock() error {
	year := time.Now().Year()
	if year < 2020 || year > 2100 {
		return fmt.Errorf("system clock reports year %d; set the clock before trusting schedule output", year)
	}
	return nil
}

func checkWebhook(ctx *cli.Context) error {
	if ctx.Config.WebhookURL == "" {
		return fmt.Errorf("webhook_url not configured; only offline mode will work")
	}
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Head(ctx.Config.WebhookURL)
	if err != nil {
		return fmt.Errorf("webhook not reachable: %v", err)
	}
	resp.Body.Close()
	return nil
}

func checkCommand(command []string) error {
	if len(command) == 0 {
		return fmt.Errorf("command not configured")
	}
	if _, err := exec.LookPath(command[0]); err != nil {
		return fmt.Errorf("%s not found on PATH", command[0])
	}
	return nil
}

func countInstances() (int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, err
	}
	self := os.Getpid()
	count := 1
	for _, p := range procs {
		if p.Pid() != self && p.Executable() == constants.AppName {
			count++
		}
	}
	return count, nil
}
