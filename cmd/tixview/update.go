package main

import (
	"fmt"

	"github.com/wahlandcase/tixview/internal/config"
	"github.com/wahlandcase/tixview/internal/update"

	"github.com/spf13/cobra"
)

var skipRelease bool

func newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Download and install the latest release",
		RunE:  runUpdate,
	}
	cmd.Flags().BoolVar(&skipRelease, "skip", false, "Skip the latest release instead of installing it")
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	release, err := update.CheckForUpdate(version, cfg.Update.Repo)
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}
	if release == nil {
		fmt.Println("Already up to date.")
		return nil
	}

	if skipRelease {
		cfg.Update.SkippedVersion = release.TagName
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Printf("Skipping %s; the version check stays quiet about it.\n",
			update.VersionDisplay(release.TagName))
		return nil
	}

	fmt.Printf("Installing %s...\n", update.VersionDisplay(release.TagName))
	if err := update.DownloadAndInstall(release, cfg.Update.Repo); err != nil {
		return err
	}

	cfg.Update.SkippedVersion = ""
	cfg.RecordUpdateCheck()
	_ = cfg.Save()

	fmt.Println("Done. Restart tixview to use the new version.")
	return nil
}
