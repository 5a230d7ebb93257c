package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goliatone/go-stubgen/internal/openapi/loader"
	pkgopenapi "github.com/goliatone/go-stubgen/pkg/openapi"
	"github.com/goliatone/go-stubgen/pkg/orchestrator"
	"github.com/goliatone/go-stubgen/pkg/output"
	"github.com/goliatone/go-stubgen/pkg/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	generateSource    string
	generateGenerator string
	generateOutput    string
	generateNamespace string
	generateDryRun    bool
	generateKeep      bool
	generatePrune     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render server stubs for an OpenAPI document",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = cfg.merge(generateSource, generateGenerator, generateOutput, generateNamespace)

		files, err := renderStubs(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		result, err := writeStubs(cmd.Context(), cfg.Output, files)
		if err != nil {
			return err
		}

		reportResult(cmd, result)

		if generatePrune && !result.DryRun {
			removed, err := output.Prune(cfg.Output, result.Written)
			if err != nil {
				return err
			}
			for _, path := range removed {
				fmt.Fprintf(cmd.OutOrStdout(), "pruned  %s\n", path)
			}
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateSource, "source", "s", "", "OpenAPI document path or URL")
	generateCmd.Flags().StringVarP(&generateGenerator, "generator", "g", "", "framework template set (laravel, symfony, slim, lumen)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output directory")
	generateCmd.Flags().StringVarP(&generateNamespace, "namespace", "n", "", "root PHP namespace")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "report files without writing them")
	generateCmd.Flags().BoolVar(&generateKeep, "keep-existing", false, "never overwrite files already on disk")
	generateCmd.Flags().BoolVar(&generatePrune, "prune", false, "delete files from earlier runs that are no longer generated")
}

func renderStubs(ctx context.Context, cfg Config) (render.Files, error) {
	if cfg.Source == "" {
		return nil, errors.New("a source document is required (--source or stubgen.yaml)")
	}
	source := parseSource(cfg.Source)
	if source == nil {
		return nil, fmt.Errorf("invalid source %q", cfg.Source)
	}

	var options []orchestrator.Option
	if strings.HasPrefix(cfg.Source, "http://") || strings.HasPrefix(cfg.Source, "https://") {
		remote := loader.New(pkgopenapi.NewLoaderOptions(
			pkgopenapi.WithHTTPFallback(30 * time.Second),
		))
		options = append(options, orchestrator.WithLoader(remote))
	}
	if cfg.Preset != "" {
		data, err := os.ReadFile(cfg.Preset)
		if err != nil {
			return nil, fmt.Errorf("read preset %s: %w", cfg.Preset, err)
		}
		transformer, err := orchestrator.NewJSONPresetTransformer(data)
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithStubTransformer(transformer))
	}

	gen := orchestrator.New(options...)

	logger.Debug("generating stubs",
		zap.String("source", cfg.Source),
		zap.String("generator", cfg.Generator),
		zap.String("namespace", cfg.Namespace))

	files, err := gen.Generate(ctx, orchestrator.Request{
		Source:    source,
		Generator: cfg.Generator,
		RenderOptions: render.RenderOptions{
			Namespace:  cfg.Namespace,
			Properties: cfg.Properties,
		},
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("stubs rendered", zap.Int("files", len(files)))
	return files, nil
}

func writeStubs(ctx context.Context, root string, files render.Files) (output.Result, error) {
	ignore, err := output.LoadIgnore(root)
	if err != nil {
		return output.Result{}, err
	}
	if !ignore.Empty() {
		logger.Debug("ignore patterns loaded", zap.String("file", output.IgnoreFileName))
	}

	writer := output.NewWriter(
		output.WithDryRun(generateDryRun),
		output.WithOverwrite(!generateKeep),
		output.WithIgnore(ignore),
	)
	return writer.Write(ctx, root, files)
}

func reportResult(cmd *cobra.Command, result output.Result) {
	out := cmd.OutOrStdout()
	verb := "wrote"
	if result.DryRun {
		verb = "would write"
	}
	for _, path := range result.Written {
		fmt.Fprintf(out, "%s %s\n", verb, path)
	}
	for _, path := range result.Skipped {
		fmt.Fprintf(out, "skipped %s (exists)\n", path)
	}
	for _, path := range result.Ignored {
		fmt.Fprintf(out, "ignored %s\n", path)
	}
	fmt.Fprintf(out, "%d written, %d skipped, %d ignored\n",
		len(result.Written), len(result.Skipped), len(result.Ignored))
}
