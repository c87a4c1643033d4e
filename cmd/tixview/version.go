package main

import (
	"fmt"

	"github.com/wahlandcase/tixview/internal/config"
	"github.com/wahlandcase/tixview/internal/update"

	"github.com/spf13/cobra"
)

var checkUpdate bool

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the tixview version",
		RunE:  runVersion,
	}
	cmd.Flags().BoolVar(&checkUpdate, "check", false, "Check GitHub releases for a newer version")
	return cmd
}

func runVersion(cmd *cobra.Command, args []string) error {
	fmt.Println("tixview", version)
	if path, err := config.Path(); err == nil {
		fmt.Println("config:", path)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Honor the 24h throttle unless --check forces it
	if !checkUpdate && !cfg.ShouldCheckForUpdate() {
		return nil
	}

	release, err := update.CheckForUpdate(version, cfg.Update.Repo)
	cfg.RecordUpdateCheck()
	_ = cfg.Save()
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}
	if release == nil {
		fmt.Println("Up to date.")
		return nil
	}
	if !checkUpdate && release.TagName == cfg.Update.SkippedVersion {
		// The user skipped this one; --check still shows it
		return nil
	}

	fmt.Printf("Update available: %s (run 'tixview update' to install)\n",
		update.VersionDisplay(release.TagName))
	return nil
}
