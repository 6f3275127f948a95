package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/LanceVCS/claude-thinking-toggle/internal/config"
	"github.com/LanceVCS/claude-thinking-toggle/internal/patch"
	"github.com/LanceVCS/claude-thinking-toggle/internal/sites"
	"github.com/LanceVCS/claude-thinking-toggle/internal/target"
)

// Output formats for the check command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat indicates an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown format (want text, json, or yaml)")

// CheckCommand holds flags for the check command.
type CheckCommand struct {
	target       string
	headerColor  string
	contentColor string
	themeName    string
	themeFile    string
	configPath   string
	format       string
	noColor      bool
}

// checkReport is the machine-readable product of one check run.
type checkReport struct {
	Target         string       `json:"target" yaml:"target"`
	Size           int64        `json:"size" yaml:"size"`
	Grammar        string       `json:"grammar" yaml:"grammar"`
	AlreadyPatched bool         `json:"already_patched" yaml:"already_patched"`
	PlannedEdits   int          `json:"planned_edits" yaml:"planned_edits"`
	Sites          []siteReport `json:"sites" yaml:"sites"`
}

type siteReport struct {
	Site   string `json:"site" yaml:"site"`
	Status string `json:"status" yaml:"status"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
	Edits  int    `json:"edits" yaml:"edits"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	cc := &CheckCommand{format: FormatText}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report patch state without modifying anything",
		Long: "Check scans the target and reports, per site, whether it is already\n" +
			"patched, patchable, absent, or unrecognized. Nothing is written.",
		Args: cobra.NoArgs,
		RunE: cc.run,
	}

	cmd.Flags().StringVarP(&cc.target, "target", "t", "", "Path to cli.js (default: auto-discover)")
	cmd.Flags().StringVar(&cc.headerColor, "header-color", "", "Header color to plan for: preset name or #hex")
	cmd.Flags().StringVar(&cc.contentColor, "content-color", "", "Content color to plan for: preset name or #hex")
	cmd.Flags().StringVar(&cc.themeName, "theme", "", "Theme name supplying both colors")
	cmd.Flags().StringVar(&cc.themeFile, "theme-file", "", "JSON file with custom theme definitions")
	cmd.Flags().StringVar(&cc.configPath, "config", "", "Config file path")
	cmd.Flags().StringVar(&cc.format, "format", FormatText, "Output format: text, json, yaml")
	cmd.Flags().BoolVar(&cc.noColor, "no-color", false, "Disable colored output")

	return cmd
}

func (cc *CheckCommand) run(cmd *cobra.Command, _ []string) error {
	if cc.noColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	if cc.format != FormatText && cc.format != FormatJSON && cc.format != FormatYAML {
		return fmt.Errorf("%w: %s", ErrUnknownFormat, cc.format)
	}

	cfg, err := config.Load(cc.configPath)
	if err != nil {
		return err
	}

	header, content, err := resolveStyle(mergedStyle(cmd, cfg, cc.headerColor, cc.contentColor, cc.themeName, cc.themeFile))
	if err != nil {
		return err
	}

	goal := sites.Goal{ForceVisible: true, HeaderColor: header, ContentColor: content}

	path, err := target.Locate(stringSetting(cmd, "target", cc.target, cfg.Target))
	if err != nil {
		return err
	}

	src, info, err := target.Read(path)
	if err != nil {
		return err
	}

	outcome, err := patch.NewEngine().Plan(cmd.Context(), src, goal)
	if err != nil {
		return err
	}

	report := buildCheckReport(info, outcome)
	out := cmd.OutOrStdout()

	switch cc.format {
	case FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")

		return encoder.Encode(report)
	case FormatYAML:
		return yaml.NewEncoder(out).Encode(report)
	default:
		fmt.Fprintf(out, "target: %s (%s, grammar %s)\n", report.Target, humanize.Bytes(uint64(report.Size)), report.Grammar)
		resultsTable(out, outcome.Results)

		if report.AlreadyPatched {
			color.New(color.FgGreen).Fprintln(out, "target is already fully patched")
		} else {
			fmt.Fprintf(out, "planned edits: %d\n", report.PlannedEdits)
		}

		return nil
	}
}

func buildCheckReport(info target.Info, outcome *patch.Outcome) checkReport {
	report := checkReport{
		Target:         info.Path,
		Size:           info.Size,
		Grammar:        outcome.Grammar,
		AlreadyPatched: outcome.AlreadyPatched(),
		PlannedEdits:   len(outcome.Edits),
	}

	for _, result := range outcome.Results {
		report.Sites = append(report.Sites, siteReport{
			Site:   result.Site,
			Status: string(result.Status),
			Detail: result.Detail,
			Edits:  len(result.Edits),
		})
	}

	return report
}
