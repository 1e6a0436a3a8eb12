package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillhub-cli/skillhub/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the default skillhub configuration",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		printSkip("", fmt.Sprintf("config already exists: %s", path))
		return nil
	}

	cfg, err := config.DefaultConfig()
	if err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return err
	}
	for _, dir := range []string{cfg.RegistriesDir, cfg.InstallDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create %s: %w", dir, err)
		}
	}

	printSection("Init")
	printOK("", fmt.Sprintf("config written: %s", path))
	printOK("", fmt.Sprintf("registries dir: %s", cfg.RegistriesDir))
	printOK("", fmt.Sprintf("install dir:    %s", cfg.InstallDir))
	printInfo("", "Drop registry JSON files into the registries dir or add remotes to config.yaml, then run 'skillhub update'.")
	return nil
}
