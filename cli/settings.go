// ABOUTME: Settings CLI commands
// ABOUTME: Reads and writes key-value settings locally or on the remote sheet
package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/harperreed/shopbook/db"
	"github.com/harperreed/shopbook/sheets"
)

// GetSettingCommand reads a setting value
func GetSettingCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("get-setting", flag.ExitOnError)
	remote := fs.Bool("remote", false, "Read from the remote Settings sheet")
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: get-setting [--remote] <key>")
	}
	key := fs.Arg(0)

	var value string
	var found bool
	var err error

	if *remote {
		ctx := context.Background()
		adapter := sheets.New()
		if err := adapter.EnsureReady(ctx); err != nil {
			return fmt.Errorf("remote unavailable: %w", err)
		}
		if err := adapter.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("remote unavailable: %w", err)
		}
		value, found, err = adapter.GetSetting(ctx, key)
	} else {
		value, found, err = store.GetSetting(key)
	}
	if err != nil {
		return fmt.Errorf("failed to read setting: %w", err)
	}
	if !found {
		return fmt.Errorf("setting %q not found", key)
	}

	fmt.Println(value)
	return nil
}

// SetSettingCommand writes a setting value
func SetSettingCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("set-setting", flag.ExitOnError)
	remote := fs.Bool("remote", false, "Write to the remote Settings sheet")
	_ = fs.Parse(args)

	if fs.NArg() != 2 {
		return fmt.Errorf("usage: set-setting [--remote] <key> <value>")
	}
	key, value := fs.Arg(0), fs.Arg(1)

	if *remote {
		ctx := context.Background()
		adapter := sheets.New()
		if err := adapter.EnsureReady(ctx); err != nil {
			return fmt.Errorf("remote unavailable: %w", err)
		}
		if err := adapter.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("remote unavailable: %w", err)
		}
		if err := adapter.SetSetting(ctx, key, value); err != nil {
			return fmt.Errorf("failed to write setting: %w", err)
		}
	} else {
		if err := store.SetSetting(key, value); err != nil {
			return fmt.Errorf("failed to write setting: %w", err)
		}
	}

	fmt.Printf("✓ %s = %s\n", key, value)
	return nil
}
