package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skillhub-cli/skillhub/internal/config"
	"github.com/skillhub-cli/skillhub/internal/index"
	"github.com/skillhub-cli/skillhub/internal/registry"
)

var flagCatalogOut string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Render the index as a Markdown catalog",
	RunE:  runCatalog,
}

func init() {
	catalogCmd.Flags().StringVarP(&flagCatalogOut, "out", "o", "", "Write to a file instead of stdout")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cannot load config: %w\nRun 'skillhub init' first.", err)
	}
	builder, err := index.NewBuilder(cfg)
	if err != nil {
		return err
	}
	res, err := builder.Build(cmd.Context(), index.BuildOptions{})
	if err != nil && res == nil {
		return err
	}
	reportSkipped(res.Skipped)

	md := renderCatalog(res.Index)
	if flagCatalogOut == "" {
		fmt.Print(md)
		return nil
	}
	if err := os.WriteFile(flagCatalogOut, []byte(md), 0o644); err != nil {
		return fmt.Errorf("cannot write catalog: %w", err)
	}
	printOK("", fmt.Sprintf("catalog written: %s", flagCatalogOut))
	return nil
}

// renderCatalog groups indexed skills by registry, registries and skills
// both in name order.
func renderCatalog(idx *index.Index) string {
	byRegistry := make(map[string][]registry.SkillRecord)
	for _, s := range idx.Skills {
		byRegistry[s.Registry] = append(byRegistry[s.Registry], s)
	}
	names := make([]string, 0, len(idx.Registries))
	for n := range idx.Registries {
		names = append(names, n)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "# Skill Catalog\n\n")
	fmt.Fprintf(&b, "%d skills across %d registries. Updated %s.\n", len(idx.Skills), len(idx.Registries), idx.UpdatedAt.Format("2006-01-02"))
	for _, n := range names {
		skills := byRegistry[n]
		fmt.Fprintf(&b, "\n## %s (%d)\n\n", n, len(skills))
		if len(skills) == 0 {
			fmt.Fprintf(&b, "_No skills._\n")
			continue
		}
		for _, s := range skills {
			mark := ""
			if s.Verified {
				mark = " ✓"
			}
			fmt.Fprintf(&b, "- **%s**%s — %s", s.Name, mark, s.Description)
			if len(s.Tags) > 0 {
				fmt.Fprintf(&b, " _(%s)_", strings.Join(s.Tags, ", "))
			}
			fmt.Fprintf(&b, "\n")
		}
	}
	return b.String()
}
