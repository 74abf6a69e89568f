package cmd

import (
	"github.com/spf13/cobra"

	"github.com/schemalab/symkit/internal/viewer"
)

var viewCmd = &cobra.Command{
	Use:   "view [script.sym]",
	Short: "Launch the interactive symbol viewer",
	Long: `Open the gio viewer. Without an argument it shows a gallery of the
whole catalog; with a layout script it shows the scripted drawing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		return viewer.New(path).Run()
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
