package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/goliatone/go-stubgen/pkg/orchestrator"
	"github.com/spf13/cobra"
)

var listSource string

var listCmd = &cobra.Command{
	Use:       "list [generators|operations]",
	Short:     "List available generators or document operations",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"generators", "operations"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "generators":
			return listGenerators(cmd)
		case "operations":
			return listOperations(cmd)
		default:
			return fmt.Errorf("unknown list target %q", args[0])
		}
	},
}

func init() {
	listCmd.Flags().StringVarP(&listSource, "source", "s", "", "OpenAPI document path or URL (operations only)")
}

func listGenerators(cmd *cobra.Command) error {
	gen := orchestrator.New()
	for _, name := range gen.Generators() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func listOperations(cmd *cobra.Command) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if listSource != "" {
		cfg.Source = listSource
	}
	if cfg.Source == "" {
		return errors.New("a source document is required (--source or stubgen.yaml)")
	}
	source := parseSource(cfg.Source)
	if source == nil {
		return fmt.Errorf("invalid source %q", cfg.Source)
	}

	gen := orchestrator.New()
	operations, err := gen.Operations(cmd.Context(), orchestrator.Request{Source: source})
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(operations))
	for id := range operations {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		op := operations[id]
		fmt.Fprintf(cmd.OutOrStdout(), "%-40s %-7s %s\n", id, op.Method, op.Path)
	}
	return nil
}
