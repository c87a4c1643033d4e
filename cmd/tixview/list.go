package main

import (
	"fmt"
	"os"

	"github.com/wahlandcase/tixview/internal/models"
	"github.com/wahlandcase/tixview/internal/svn"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var listWorkingCopy string

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <ticket>",
		Short: "Print the changesets referencing a ticket as a table",
		Args:  cobra.ExactArgs(1),
		RunE:  runList,
	}
	cmd.Flags().StringVar(&listWorkingCopy, "wc", "", "Working copy path (default: walk up from the current directory)")
	return cmd
}

// resolveWorkingCopy picks the working copy from the flag or by walking up
// from the current directory
func resolveWorkingCopy(client *svn.Client, flag string) (*models.WorkingCopy, error) {
	if flag != "" {
		if !client.IsWorkingCopy(flag) {
			return nil, fmt.Errorf("%s is not an svn working copy", flag)
		}
		wc := models.NewWorkingCopy(flag, flag)
		return &wc, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	wc, err := client.FindWorkingCopy(cwd)
	if err != nil {
		return nil, fmt.Errorf("no svn working copy found under %s", cwd)
	}
	return wc, nil
}

func runList(cmd *cobra.Command, args []string) error {
	_, client, closeLog, err := setup()
	if err != nil {
		return err
	}
	if closeLog != nil {
		defer closeLog()
	}

	wc, err := resolveWorkingCopy(client, listWorkingCopy)
	if err != nil {
		return err
	}

	ticketID := args[0]
	changesets, err := client.SearchTicket(wc.Path, ticketID)
	if err != nil {
		return err
	}

	if len(changesets) == 0 {
		fmt.Printf("No changesets reference #%s in %s\n", ticketID, wc.Path)
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Revision", "Author", "Date", "Files", "Summary"})
	for _, cs := range changesets {
		t.AppendRow(table.Row{
			fmt.Sprintf("r%d", cs.Revision),
			cs.Author,
			cs.Date,
			len(cs.Files),
			cs.Summary(),
		})
	}

	// Plain borders when the terminal reports no color support
	if termenv.EnvColorProfile() == termenv.Ascii {
		t.SetStyle(table.StyleLight)
	} else {
		t.SetStyle(table.StyleColoredDark)
	}
	t.Render()

	return nil
}
