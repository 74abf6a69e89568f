package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "symkit",
	Short: "symkit - electronic schematic symbol toolkit",
	Long: `symkit generates electronic schematic symbols (tubes, transformers,
audio components) and works with them from the command line.

Examples:
  symkit list                         # List the symbol catalog
  symkit anchors 12ax7                # Show a symbol's anchors
  symkit export triode -o lib.kicad_sym
  symkit export amp.sym -o amp.kicad_sym
  symkit view amp.sym                 # Launch the interactive viewer`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
