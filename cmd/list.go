package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillhub-cli/skillhub/internal/config"
	"github.com/skillhub-cli/skillhub/internal/index"
	"github.com/skillhub-cli/skillhub/internal/skill"
)

var flagListAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed skills (or everything in the index with --all)",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVarP(&flagListAll, "all", "a", false, "List every indexed skill instead of installed ones")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cannot load config: %w\nRun 'skillhub init' first.", err)
	}
	if flagListAll {
		return listIndexed(cmd, cfg)
	}
	return listInstalled(cfg)
}

func listInstalled(cfg *config.Config) error {
	installed, err := skill.ListInstalled(cfg.InstallDir)
	if err != nil {
		return fmt.Errorf("cannot scan install dir: %w", err)
	}
	if len(installed) == 0 {
		fmt.Println("No skills installed. Try 'skillhub search <query>'.")
		return nil
	}

	fmt.Printf("Installed skills (%d):\n", len(installed))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, s := range installed {
		version := s.Version
		if version == "" {
			version = "-"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", s.Name, version, s.Description)
	}
	return w.Flush()
}

func listIndexed(cmd *cobra.Command, cfg *config.Config) error {
	builder, err := index.NewBuilder(cfg)
	if err != nil {
		return err
	}
	res, err := builder.Build(cmd.Context(), index.BuildOptions{})
	if err != nil && res == nil {
		return err
	}
	reportSkipped(res.Skipped)

	fmt.Printf("Indexed skills (%d, from %d registries):\n", len(res.Index.Skills), len(res.Index.Registries))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, s := range res.Index.Skills {
		verified := ""
		if s.Verified {
			verified = "✓"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", s.Name, s.Registry, verified, s.Description)
	}
	return w.Flush()
}
