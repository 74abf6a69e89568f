package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/schemalab/symkit/pkg/catalog"
	"github.com/schemalab/symkit/pkg/kicadsym"
	"github.com/schemalab/symkit/pkg/script"
)

var (
	exportOutput string
	exportOpts   []string
)

var exportCmd = &cobra.Command{
	Use:   "export <symbol|script.sym>",
	Short: "Export symbols as a KiCad symbol library",
	Long: `Export a catalog symbol, or every element of a layout script, as a
.kicad_sym symbol library.

Examples:
  symkit export triode -o triode.kicad_sym
  symkit export transformer --opt secondaries=2,2 -o out.kicad_sym
  symkit export amp.sym -o amp.kicad_sym`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default <name>.kicad_sym)")
	exportCmd.Flags().StringArrayVar(&exportOpts, "opt", nil, "construction option key=value (repeatable)")
}

func runExport(cmd *cobra.Command, args []string) error {
	source := args[0]

	entries, defaultOut, err := exportEntries(source)
	if err != nil {
		return err
	}

	output := exportOutput
	if output == "" {
		output = defaultOut
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	defer f.Close()

	if err := kicadsym.WriteLibrary(f, entries); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	fmt.Printf("Wrote %d symbols to %s\n", len(entries), output)
	return nil
}

// exportEntries resolves the export source: an existing file is a
// layout script, anything else a catalog name.
func exportEntries(source string) ([]kicadsym.Entry, string, error) {
	if _, err := os.Stat(source); err == nil {
		d, err := script.LoadFile(source)
		if err != nil {
			return nil, "", err
		}
		var entries []kicadsym.Entry
		for _, pl := range d.Placed() {
			entries = append(entries, kicadsym.Entry{Name: pl.Name, Symbol: pl.Symbol})
		}
		if len(entries) == 0 {
			return nil, "", fmt.Errorf("script %s places no symbols", source)
		}
		return entries, source + ".kicad_sym", nil
	}

	sym, err := catalog.Build(source, parseOpts(exportOpts))
	if err != nil {
		return nil, "", err
	}
	return []kicadsym.Entry{{Name: source, Symbol: sym}}, source + ".kicad_sym", nil
}
