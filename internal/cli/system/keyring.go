package system

import (
	"errors"
	"fmt"

	"github.com/asanchezgar/rehaplan/internal/cli"
	"github.com/asanchezgar/rehaplan/internal/keyring"
)

// KeyringSetCmd stores the recognition webhook API key in the OS keyring.
type KeyringSetCmd struct {
	APIKey string `arg:"" help:"API key sent as a bearer token to the recognition webhook."`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	if err := keyring.SetAPIKey(cmd.APIKey); err != nil {
		return fmt.Errorf("failed to store API key in keyring: %w", err)
	}
	fmt.Println("✓ API key stored in OS keyring")
	return nil
}

// KeyringGetCmd reports whether an API key is stored, without printing it.
type KeyringGetCmd struct{}

func (cmd *KeyringGetCmd) Run(ctx *cli.Context) error {
	key, err := keyring.GetAPIKey()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no API key found in keyring. Use 'rehaplan keyring set' to store one")
		}
		return fmt.Errorf("failed to retrieve API key from keyring: %w", err)
	}
	fmt.Printf("API key present in keyring (%d characters)\n", len(key))
	return nil
}

// KeyringDeleteCmd removes the API key from the OS keyring.
type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no API key found in keyring")
		}
		return fmt.Errorf("failed to delete API key from keyring: %w", err)
	}
	fmt.Println("✓ API key removed from OS keyring")
	return nil
}
