package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/paramfix/internal/domain"
	m "github.com/mouse-blink/paramfix/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [report]",
		Short: "View a previously written run report",
		Long:  viewLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			report := settings.Report
			if len(args) > 0 {
				report = args[0]
			}

			return workflow.View(domain.ViewArgs{Report: m.Path(report)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
