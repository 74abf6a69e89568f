package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schemalab/symkit/pkg/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the symbol catalog",
	Long:  `List every registered symbol generator with its anchors.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	for _, name := range catalog.Names() {
		entry, _ := catalog.Get(name)
		sym, err := entry.Build(nil)
		if err != nil {
			return fmt.Errorf("building %s: %w", name, err)
		}

		anchors := sym.Anchors()
		names := make([]string, 0, len(anchors))
		for a := range anchors {
			names = append(names, a)
		}
		sort.Strings(names)

		fmt.Printf("%-12s %s\n", name, entry.Description)
		fmt.Printf("%-12s anchors: %s\n", "", strings.Join(names, ", "))
	}
	return nil
}
