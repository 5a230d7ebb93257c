package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const watchDebounce = 500 * time.Millisecond

var (
	watchSource    string
	watchGenerator string
	watchOutput    string
	watchNamespace string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate stubs whenever the source document changes",
	Long: `Watch monitors the OpenAPI document and reruns generation on every
change, debouncing rapid editor saves. Only file sources can be watched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = cfg.merge(watchSource, watchGenerator, watchOutput, watchNamespace)

		if cfg.Source == "" {
			return errors.New("a source document is required (--source or stubgen.yaml)")
		}
		if strings.HasPrefix(cfg.Source, "http://") || strings.HasPrefix(cfg.Source, "https://") {
			return errors.New("watch requires a file source")
		}

		return runWatch(cmd, cfg)
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchSource, "source", "s", "", "OpenAPI document path")
	watchCmd.Flags().StringVarP(&watchGenerator, "generator", "g", "", "framework template set")
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "output directory")
	watchCmd.Flags().StringVarP(&watchNamespace, "namespace", "n", "", "root PHP namespace")
}

func runWatch(cmd *cobra.Command, cfg Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: many editors replace files on
	// save, which drops a direct file watch.
	sourceDir := filepath.Dir(cfg.Source)
	sourceName := filepath.Base(cfg.Source)
	if err := watcher.Add(sourceDir); err != nil {
		return fmt.Errorf("watch %s: %w", sourceDir, err)
	}

	regenerate := func(ctx context.Context) {
		files, err := renderStubs(ctx, cfg)
		if err != nil {
			logger.Warn("generation failed", zap.Error(err))
			fmt.Fprintf(cmd.ErrOrStderr(), "generation failed: %v\n", err)
			return
		}
		result, err := writeStubs(ctx, cfg.Output, files)
		if err != nil {
			logger.Warn("write failed", zap.Error(err))
			fmt.Fprintf(cmd.ErrOrStderr(), "write failed: %v\n", err)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "regenerated: %d written, %d ignored\n",
			len(result.Written), len(result.Ignored))
	}

	ctx := cmd.Context()
	fmt.Fprintf(cmd.OutOrStdout(), "watching %s\n", cfg.Source)
	regenerate(ctx)

	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != sourceName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("source changed", zap.String("event", event.String()))
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case <-pending:
			regenerate(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		}
	}
}
