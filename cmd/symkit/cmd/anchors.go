package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schemalab/symkit/pkg/catalog"
)

var anchorsOpts []string

var anchorsCmd = &cobra.Command{
	Use:   "anchors <symbol>",
	Short: "Show a symbol's anchors and drop point",
	Long: `Build a catalog symbol and print its anchor positions.

Construction options are passed with repeated --opt key=value flags:
  symkit anchors half12ax7 --opt half=right`,
	Args: cobra.ExactArgs(1),
	RunE: runAnchors,
}

func init() {
	rootCmd.AddCommand(anchorsCmd)
	anchorsCmd.Flags().StringArrayVar(&anchorsOpts, "opt", nil, "construction option key=value (repeatable)")
}

// parseOpts converts key=value flags to catalog options. A bare key is
// a flag option.
func parseOpts(raw []string) catalog.Options {
	opts := catalog.Options{}
	for _, kv := range raw {
		key, value, _ := strings.Cut(kv, "=")
		opts[key] = value
	}
	return opts
}

func runAnchors(cmd *cobra.Command, args []string) error {
	name := args[0]
	sym, err := catalog.Build(name, parseOpts(anchorsOpts))
	if err != nil {
		return err
	}

	anchors := sym.Anchors()
	names := make([]string, 0, len(anchors))
	for a := range anchors {
		names = append(names, a)
	}
	sort.Strings(names)

	fmt.Printf("Symbol: %s\n", name)
	for _, a := range names {
		p := anchors[a]
		fmt.Printf("  %-12s (%.4f, %.4f)\n", a, p.X, p.Y)
	}
	drop := sym.Drop()
	fmt.Printf("  %-12s (%.4f, %.4f)\n", "drop ->", drop.X, drop.Y)
	return nil
}
