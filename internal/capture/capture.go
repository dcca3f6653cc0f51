// Package capture produces JPEG frames for recognition, either from the
// configured camera command or from a file on disk.
package capture

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/asanchezgar/rehaplan/internal/logger"
)

// Grabber produces a single JPEG frame on demand.
type Grabber interface {
	Grab(ctx context.Context) ([]byte, error)
}

// CommandGrabber shells out to an external capture tool (libcamera-still,
// fswebcam, ...) that writes a JPEG to a path. The token "{file}" in the
// command is replaced with the output path; if no argument carries it, the
// path is appended.
type CommandGrabber struct {
	Command []string
}

// NewCommandGrabber creates a grabber around the given capture command.
func NewCommandGrabber(command []string) *CommandGrabber {
	return &CommandGrabber{Command: command}
}

// Grab runs the capture command into a temp file and returns its bytes.
func (g *CommandGrabber) Grab(ctx context.Context) ([]byte, error) {
	if len(g.Command) == 0 {
		return nil, fmt.Errorf("capture command is not configured")
	}

	dir, err := os.MkdirTemp("", "rehaplan-capture-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)
	outPath := filepath.Join(dir, "frame.jpg")

	args := make([]string, 0, len(g.Command))
	replaced := false
	for _, a := range g.Command[1:] {
		if a == "{file}" {
			a = outPath
			replaced = true
		}
		args = append(args, a)
	}
	if !replaced {
		args = append(args, outPath)
	}

	logger.Debug("Running capture command", "command", g.Command[0], "output", outPath)

	cmd := exec.CommandContext(ctx, g.Command[0], args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("capture command failed: %w (%s)", err, string(out))
	}

	jpeg, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("capture command produced no image: %w", err)
	}
	return jpeg, nil
}

// FileGrabber reads an already-captured JPEG from disk. Used by the --image
// flag and by tests.
type FileGrabber struct {
	Path string
}

// Grab returns the file contents.
func (g *FileGrabber) Grab(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(g.Path)
	if err != nil {
		return nil, fmt.Errorf("reading image file: %w", err)
	}
	return data, nil
}
