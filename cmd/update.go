package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillhub-cli/skillhub/internal/config"
	"github.com/skillhub-cli/skillhub/internal/index"
)

var (
	flagUpdateForce bool
	flagUpdateQuiet bool
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Rebuild the skill index from all configured registries",
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&flagUpdateForce, "force", false, "Rebuild even if the cached index is fresh")
	updateCmd.Flags().BoolVarP(&flagUpdateQuiet, "quiet", "q", false, "Suppress progress output (errors are still reported)")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cannot load config: %w\nRun 'skillhub init' first.", err)
	}
	quiet = flagUpdateQuiet

	builder, err := index.NewBuilder(cfg)
	if err != nil {
		return err
	}

	if !flagUpdateForce && builder.Cache.IsFresh() {
		printSkip("", fmt.Sprintf("index is fresh: %s (use --force to rebuild)", builder.Cache.Path()))
		return nil
	}

	printSection("Index")
	printInfo("", fmt.Sprintf("loading registries from %s (%d remote)", cfg.RegistriesDir, len(cfg.Remotes)))

	res, err := builder.Build(cmd.Context(), index.BuildOptions{Force: true})
	if res != nil {
		reportSkipped(res.Skipped)
	}
	if err != nil {
		return err
	}

	printOK("", fmt.Sprintf("indexed %d skills from %d registries", len(res.Index.Skills), len(res.Index.Registries)))
	printInfo("", fmt.Sprintf("index written: %s", builder.Cache.Path()))
	return nil
}
