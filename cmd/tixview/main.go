package main

// Must be first import - fixes Warp terminal delay before lipgloss loads
import _ "github.com/wahlandcase/tixview/internal/termfix"

import (
	"fmt"
	"os"

	"github.com/wahlandcase/tixview/internal/app"
	"github.com/wahlandcase/tixview/internal/config"
	"github.com/wahlandcase/tixview/internal/logging"
	"github.com/wahlandcase/tixview/internal/svn"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags
var version = "dev"

var (
	svnPath string
	debug   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tixview",
		Short: "TUI for browsing svn changesets by ticket number",
		RunE:  run,
	}

	rootCmd.PersistentFlags().StringVar(&svnPath, "svn", "", "Path to the svn executable (default: config, then PATH)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write a debug log file")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newUpdateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads config and builds the svn client; closeLog is non-nil when a
// debug log file was opened
func setup() (*config.Config, *svn.Client, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.Nop()
	var closeLog func() error
	if debug {
		var logErr error
		logger, closeLog, logErr = logging.ToFile(logging.DefaultDebugPath())
		if logErr != nil {
			return nil, nil, nil, fmt.Errorf("failed to open debug log: %w", logErr)
		}
	}

	executable := cfg.SvnExecutable()
	if svnPath != "" {
		executable = svnPath
	}

	return cfg, svn.NewClient(executable, logger), closeLog, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, client, closeLog, err := setup()
	if err != nil {
		return err
	}
	if closeLog != nil {
		defer closeLog()
	}

	model := app.New(cfg, client, debug)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}
