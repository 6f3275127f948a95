package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LanceVCS/claude-thinking-toggle/internal/config"
	"github.com/LanceVCS/claude-thinking-toggle/internal/safety"
	"github.com/LanceVCS/claude-thinking-toggle/internal/target"
)

// RestoreCommand holds flags for the restore command.
type RestoreCommand struct {
	target     string
	configPath string
}

// NewRestoreCommand creates the restore command.
func NewRestoreCommand() *cobra.Command {
	rc := &RestoreCommand{}

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore the target from its backup",
		Long:  "Restore copies the backup written by apply back over the target, byte for byte.",
		Args:  cobra.NoArgs,
		RunE:  rc.run,
	}

	cmd.Flags().StringVarP(&rc.target, "target", "t", "", "Path to cli.js (default: auto-discover)")
	cmd.Flags().StringVar(&rc.configPath, "config", "", "Config file path")

	return cmd
}

func (rc *RestoreCommand) run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(rc.configPath)
	if err != nil {
		return err
	}

	path, err := target.Locate(stringSetting(cmd, "target", rc.target, cfg.Target))
	if err != nil {
		return err
	}

	err = safety.Restore(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "restored %s from %s\n", path, safety.BackupPath(path))

	return nil
}
