package cli

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a stubgen.yaml config interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := configPath
		if target == "" {
			target = DefaultConfigFile
		}

		if !initForce {
			if _, err := os.Stat(target); err == nil {
				return fmt.Errorf("%s already exists, pass --force to overwrite", target)
			}
		}

		cfg := defaultConfig()

		questions := []*survey.Question{
			{
				Name: "source",
				Prompt: &survey.Input{
					Message: "OpenAPI document path or URL:",
					Default: "openapi.yaml",
				},
				Validate: survey.Required,
			},
			{
				Name: "generator",
				Prompt: &survey.Select{
					Message: "Framework template set:",
					Options: []string{"laravel", "symfony", "slim", "lumen"},
					Default: cfg.Generator,
				},
			},
			{
				Name: "output",
				Prompt: &survey.Input{
					Message: "Output directory:",
					Default: cfg.Output,
				},
			},
			{
				Name: "namespace",
				Prompt: &survey.Input{
					Message: "Root PHP namespace:",
					Default: cfg.Namespace,
				},
			},
		}

		answers := struct {
			Source    string
			Generator string
			Output    string
			Namespace string
		}{}
		if err := survey.Ask(questions, &answers); err != nil {
			return err
		}

		cfg.Source = answers.Source
		cfg.Generator = answers.Generator
		cfg.Output = answers.Output
		cfg.Namespace = answers.Namespace

		if err := writeConfig(target, cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", target)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
}
