package main

import (
	"errors"
	"fmt"

	"github.com/wahlandcase/tixview/internal/svn"
	"github.com/wahlandcase/tixview/internal/ui"

	"github.com/spf13/cobra"
)

var diffWorkingCopy string

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <ticket> <file>",
		Short: "Print the cumulative diff of a file across all revisions of a ticket",
		Args:  cobra.ExactArgs(2),
		RunE:  runDiff,
	}
	cmd.Flags().StringVar(&diffWorkingCopy, "wc", "", "Working copy path (default: walk up from the current directory)")
	return cmd
}

func runDiff(cmd *cobra.Command, args []string) error {
	_, client, closeLog, err := setup()
	if err != nil {
		return err
	}
	if closeLog != nil {
		defer closeLog()
	}

	wc, err := resolveWorkingCopy(client, diffWorkingCopy)
	if err != nil {
		return err
	}

	ticketID, target := args[0], args[1]
	changesets, err := client.SearchTicket(wc.Path, ticketID)
	if err != nil {
		return err
	}

	unified, err := client.FetchUnifiedDiff(wc.Path, target, changesets)
	if err != nil {
		if errors.Is(err, svn.ErrNoMatchingRevisions) {
			return fmt.Errorf("no changeset of #%s touches %s", ticketID, target)
		}
		return err
	}

	fmt.Printf("%s  %s\n\n", target, unified.Span.Display())
	fmt.Println(ui.RenderContentDiff(unified.Before, unified.After))

	return nil
}
