package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/goliatone/go-stubgen/pkg/checklist"
	"github.com/spf13/cobra"
)

var (
	scoreChecklist string
	scoreDir       string
	scoreMarkdown  bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score generated output against a quality checklist",
	Long: `Score evaluates an output directory against a YAML checklist of
weighted rules (file exists, contains, not-contains) and prints a report.
The command exits non-zero when any rule fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		if scoreChecklist != "" {
			cfg.Checklist = scoreChecklist
		}
		if scoreDir != "" {
			cfg.Output = scoreDir
		}
		if cfg.Checklist == "" {
			return errors.New("a checklist document is required (--checklist or stubgen.yaml)")
		}

		data, err := os.ReadFile(cfg.Checklist)
		if err != nil {
			return fmt.Errorf("read checklist %s: %w", cfg.Checklist, err)
		}
		doc, err := checklist.Parse(data)
		if err != nil {
			return err
		}

		report, err := checklist.Evaluate(doc, checklist.NewDirTarget(cfg.Output))
		if err != nil {
			return err
		}

		if scoreMarkdown {
			fmt.Fprint(cmd.OutOrStdout(), report.Markdown())
		} else {
			fmt.Fprint(cmd.OutOrStdout(), report.Text())
		}

		if !report.Passed() {
			return fmt.Errorf("checklist failed: %d/%d", report.Score, report.Max)
		}
		return nil
	},
}

func init() {
	scoreCmd.Flags().StringVar(&scoreChecklist, "checklist", "", "checklist YAML document")
	scoreCmd.Flags().StringVarP(&scoreDir, "dir", "d", "", "output directory to evaluate")
	scoreCmd.Flags().BoolVar(&scoreMarkdown, "markdown", false, "emit a Markdown report")
}
