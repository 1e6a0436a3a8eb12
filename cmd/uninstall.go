package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skillhub-cli/skillhub/internal/config"
)

var flagUninstallYes bool

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <name>",
	Short: "Remove an installed skill",
	Args:  cobra.ExactArgs(1),
	RunE:  runUninstall,
}

func init() {
	uninstallCmd.Flags().BoolVarP(&flagUninstallYes, "yes", "y", false, "Remove without confirmation")
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cannot load config: %w\nRun 'skillhub init' first.", err)
	}
	name := args[0]
	dest := filepath.Join(cfg.InstallDir, name)

	info, err := os.Stat(dest)
	if err != nil {
		if os.IsNotExist(err) {
			printSkip(name, "not installed")
			return nil
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s exists but is not a skill directory", dest)
	}

	if !flagUninstallYes {
		fmt.Printf("Remove %s? [y/N] ", dest)
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			printSkip(name, "aborted")
			return nil
		}
	}

	if err := os.RemoveAll(dest); err != nil {
		return fmt.Errorf("cannot remove %s: %w", dest, err)
	}
	printOK(name, "uninstalled")
	return nil
}
