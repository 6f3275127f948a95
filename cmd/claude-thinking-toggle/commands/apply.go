package commands

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/LanceVCS/claude-thinking-toggle/internal/config"
	"github.com/LanceVCS/claude-thinking-toggle/internal/patch"
	"github.com/LanceVCS/claude-thinking-toggle/internal/safety"
	"github.com/LanceVCS/claude-thinking-toggle/internal/sites"
	"github.com/LanceVCS/claude-thinking-toggle/internal/target"
)

// ErrNoSites is returned when the target parses but none of the
// expected structural shapes exist in it, e.g. an incompatible build.
var ErrNoSites = errors.New("no patchable sites recognized")

// ApplyCommand holds flags for the apply command.
type ApplyCommand struct {
	target       string
	headerColor  string
	contentColor string
	themeName    string
	themeFile    string
	configPath   string
	dryRun       bool
	showDiff     bool
	noColor      bool
}

// NewApplyCommand creates the apply command.
func NewApplyCommand() *cobra.Command {
	ac := &ApplyCommand{}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Patch the target to keep the thinking panel visible",
		Long: "Apply locates the installed cli.js (or uses --target), forces the\n" +
			"thinking panel visible, and optionally recolors its header and body.\n" +
			"A one-time backup is written next to the target before the first edit.",
		Args: cobra.NoArgs,
		RunE: ac.run,
	}

	cmd.Flags().StringVarP(&ac.target, "target", "t", "", "Path to cli.js (default: auto-discover)")
	cmd.Flags().StringVar(&ac.headerColor, "header-color", "", "Header color: preset name or #hex")
	cmd.Flags().StringVar(&ac.contentColor, "content-color", "", "Content color: preset name or #hex")
	cmd.Flags().StringVar(&ac.themeName, "theme", "", "Theme name supplying both colors")
	cmd.Flags().StringVar(&ac.themeFile, "theme-file", "", "JSON file with custom theme definitions")
	cmd.Flags().StringVar(&ac.configPath, "config", "", "Config file path (default: .claude-thinking-toggle.yaml in CWD or $HOME)")
	cmd.Flags().BoolVarP(&ac.dryRun, "dry-run", "n", false, "Plan and verify but do not write the target")
	cmd.Flags().BoolVar(&ac.showDiff, "diff", false, "Show a character diff of the planned edits")
	cmd.Flags().BoolVar(&ac.noColor, "no-color", false, "Disable colored output")

	return cmd
}

func (ac *ApplyCommand) run(cmd *cobra.Command, _ []string) error {
	if ac.noColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	cfg, err := config.Load(ac.configPath)
	if err != nil {
		return err
	}

	header, content, err := resolveStyle(mergedStyle(cmd, cfg, ac.headerColor, ac.contentColor, ac.themeName, ac.themeFile))
	if err != nil {
		return err
	}

	goal := sites.Goal{ForceVisible: true, HeaderColor: header, ContentColor: content}

	path, err := target.Locate(stringSetting(cmd, "target", ac.target, cfg.Target))
	if err != nil {
		return err
	}

	src, info, err := target.Read(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "target: %s (%s, %s)\n", info.Path, humanize.Bytes(uint64(info.Size)), info.Language)

	run, err := patch.NewEngine().Run(cmd.Context(), src, goal)
	if err != nil {
		return err
	}

	printResults(out, run.Outcome.Results)

	if run.Outcome.AlreadyPatched() {
		return patch.ErrAlreadyPatched
	}

	if !run.Outcome.Changed() {
		return fmt.Errorf("%w in %s", ErrNoSites, info.Path)
	}

	if ac.showDiff {
		printDiff(out, src, run.Outcome.Edits)
	}

	if ac.dryRun {
		fmt.Fprintf(out, "dry run: %d edit(s) planned and verified, nothing written\n", len(run.Outcome.Edits))

		return nil
	}

	created, err := safety.EnsureBackup(path)
	if err != nil {
		return err
	}

	if created {
		fmt.Fprintf(out, "backup written: %s\n", safety.BackupPath(path))
	}

	err = safety.ReplaceTarget(path, run.Output)
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(out, "patched %s: %d edit(s), %s -> %s\n",
		info.Path, len(run.Outcome.Edits),
		humanize.Bytes(uint64(len(src))), humanize.Bytes(uint64(len(run.Output))))

	return nil
}
