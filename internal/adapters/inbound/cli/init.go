package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/lintgate/lintgate/internal/adapters/outbound/config"
	"github.com/lintgate/lintgate/internal/domain"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var (
		preset      string
		force       bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .lintgate.yaml configuration file",
		Long:  "Create a .lintgate.yaml with the chosen penalty preset.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			penalty := domain.PenaltyConfig{Preset: domain.PenaltyPreset(preset)}
			if interactive {
				penalty, err = promptPenalty()
				if err != nil {
					return err
				}
			}

			if !domain.IsValidPreset(penalty.Preset) {
				return fmt.Errorf("unknown preset %q (valid: none, fail-on-errors, fail-on-warnings, custom)", preset)
			}
			if penalty.Preset == domain.PresetCustom && (penalty.MaxErrors == nil || penalty.MaxWarnings == nil) {
				zero := 0
				penalty.MaxErrors, penalty.MaxWarnings = &zero, &zero
			}

			if err := os.WriteFile(dest, []byte(generateConfig(penalty)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&preset, "preset", string(domain.DefaultPreset), "Penalty preset (none, fail-on-errors, fail-on-warnings, custom)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .lintgate.yaml")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Choose the penalty interactively")

	return cmd
}

func generateConfig(p domain.PenaltyConfig) string {
	result := "# lintgate configuration\n\npenalty:\n"
	result += fmt.Sprintf("  preset: %s\n", p.Preset)
	if p.MaxErrors != nil {
		result += fmt.Sprintf("  max_errors: %d\n", *p.MaxErrors)
	}
	if p.MaxWarnings != nil {
		result += fmt.Sprintf("  max_warnings: %d\n", *p.MaxWarnings)
	}

	result += `
# Files written by the tool adapters, relative to the project root.
# violations:
#   - build/lintgate/violations.yaml

# ignore_tools:
#   - ktlint

# report_links: true
`
	return result
}

func promptPenalty() (domain.PenaltyConfig, error) {
	presets := []struct {
		Label       string
		Description string
		Value       domain.PenaltyPreset
	}{
		{"Fail on errors (recommended)", "Any error fails the build, warnings are reported", domain.PresetFailOnErrors},
		{"Fail on warnings", "Any error or warning fails the build", domain.PresetFailOnWarnings},
		{"Custom limits", "Choose the maximum errors and warnings", domain.PresetCustom},
		{"Never fail", "Only report violations", domain.PresetNone},
	}

	sel := promptui.Select{
		Label: "When should the build fail?",
		Items: presets,
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}",
			Active:   "\U0001F449 {{ .Label | cyan }} - {{ .Description | faint }}",
			Inactive: "   {{ .Label | white }} - {{ .Description | faint }}",
			Selected: "\U00002705 {{ .Label | green }}",
		},
	}

	idx, _, err := sel.Run()
	if err != nil {
		return domain.PenaltyConfig{}, fmt.Errorf("preset selection cancelled: %w", err)
	}

	penalty := domain.PenaltyConfig{Preset: presets[idx].Value}
	if penalty.Preset != domain.PresetCustom {
		return penalty, nil
	}

	if penalty.MaxErrors, err = promptLimit("Maximum errors"); err != nil {
		return domain.PenaltyConfig{}, err
	}
	if penalty.MaxWarnings, err = promptLimit("Maximum warnings"); err != nil {
		return domain.PenaltyConfig{}, err
	}
	return penalty, nil
}

func promptLimit(label string) (*int, error) {
	p := promptui.Prompt{
		Label:    label,
		Default:  "0",
		Validate: validateLimit,
	}
	out, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("%s input cancelled: %w", label, err)
	}
	n, err := strconv.Atoi(out)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func validateLimit(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if n < 0 {
		return fmt.Errorf("must be >= 0")
	}
	return nil
}
