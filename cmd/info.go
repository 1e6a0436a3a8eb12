package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skillhub-cli/skillhub/internal/config"
)

var infoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Show one skill's full metadata",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cannot load config: %w\nRun 'skillhub init' first.", err)
	}
	rec, err := findRecord(cmd, cfg, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("\n%s\n", rec.Name)
	fmt.Printf("  description: %s\n", rec.Description)
	fmt.Printf("  source:      %s\n", rec.Source)
	fmt.Printf("  registry:    %s\n", rec.Registry)
	if rec.Version != "" {
		fmt.Printf("  version:     %s\n", rec.Version)
	}
	if len(rec.Tags) > 0 {
		fmt.Printf("  tags:        %s\n", strings.Join(rec.Tags, ", "))
	}
	fmt.Printf("  verified:    %v\n", rec.Verified)
	return nil
}
