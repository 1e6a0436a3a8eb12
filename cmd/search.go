package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/skillhub-cli/skillhub/internal/config"
	"github.com/skillhub-cli/skillhub/internal/index"
	"github.com/skillhub-cli/skillhub/internal/registry"
	"github.com/skillhub-cli/skillhub/internal/search"
)

var (
	flagSearchRebuild bool
	flagSearchOnline  bool
	flagSearchLimit   int
	flagSearchJSON    bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search indexed skills by name, tags, and description",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&flagSearchRebuild, "rebuild", false, "Force an index rebuild before searching")
	searchCmd.Flags().BoolVar(&flagSearchOnline, "online", false, "Bypass the cache and fetch registries for this search")
	searchCmd.Flags().IntVar(&flagSearchLimit, "limit", search.DefaultLimit, "Maximum number of results")
	searchCmd.Flags().BoolVar(&flagSearchJSON, "json", false, "Emit results as JSON")
	rootCmd.AddCommand(searchCmd)
}

// searchResponse is the machine-readable shape emitted by --json.
type searchResponse struct {
	Results   []searchResultJSON `json:"results"`
	ElapsedMS int64              `json:"elapsed_ms"`
	FromCache bool               `json:"from_cache"`
}

type searchResultJSON struct {
	registry.SkillRecord
	Score int `json:"score"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cannot load config: %w\nRun 'skillhub init' first.", err)
	}
	query := strings.Join(args, " ")

	builder, err := index.NewBuilder(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := builder.Build(cmd.Context(), index.BuildOptions{
		Force:  flagSearchRebuild,
		Online: flagSearchOnline,
	})
	if err != nil {
		if res == nil {
			return err
		}
		// Cache write failed; the in-memory index still serves this
		// invocation.
		printWarn("", fmt.Sprintf("index could not be cached: %v", err))
	}
	reportSkipped(res.Skipped)

	results := search.Search(res.Index, query, flagSearchLimit)
	elapsed := time.Since(start)

	if flagSearchJSON {
		return printSearchJSON(results, elapsed, res.FromCache)
	}
	printSearchResults(query, results, elapsed, res.FromCache)
	return nil
}

// reportSkipped names every source dropped from a build cycle. A partial
// index is never presented silently.
func reportSkipped(skipped []registry.SourceError) {
	for _, e := range skipped {
		printErr(e.Name, fmt.Sprintf("source skipped: %v", e.Err))
	}
}

func printSearchJSON(results []search.Result, elapsed time.Duration, fromCache bool) error {
	resp := searchResponse{
		Results:   make([]searchResultJSON, 0, len(results)),
		ElapsedMS: elapsed.Milliseconds(),
		FromCache: fromCache,
	}
	for _, r := range results {
		resp.Results = append(resp.Results, searchResultJSON{SkillRecord: r.Skill, Score: r.Score})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func printSearchResults(query string, results []search.Result, elapsed time.Duration, fromCache bool) {
	source := "cache"
	if !fromCache {
		source = "rebuild"
	}
	fmt.Printf("\nskillhub search %q  (%d found, %dms, %s)\n\n", query, len(results), elapsed.Milliseconds(), source)
	if len(results) == 0 {
		fmt.Println("No matching skills.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, r := range results {
		verified := ""
		if r.Skill.Verified {
			verified = "✓"
		}
		fmt.Fprintf(w, "  %d.\t[%d]\t%s\t%s\t%s\n", i+1, r.Score, r.Skill.Name, r.Skill.Registry, verified)
		if d := strings.TrimSpace(r.Skill.Description); d != "" {
			fmt.Fprintf(w, "  \t\t%s\n", d)
		}
	}
	_ = w.Flush()
}

// findRecord resolves one skill by exact name against a usable index.
func findRecord(cmd *cobra.Command, cfg *config.Config, name string) (*registry.SkillRecord, error) {
	builder, err := index.NewBuilder(cfg)
	if err != nil {
		return nil, err
	}
	res, err := builder.Build(cmd.Context(), index.BuildOptions{})
	if err != nil && res == nil {
		return nil, err
	}
	reportSkipped(res.Skipped)
	for i := range res.Index.Skills {
		if res.Index.Skills[i].Name == name {
			return &res.Index.Skills[i], nil
		}
	}
	return nil, errNotInIndex(name)
}

func errNotInIndex(name string) error {
	return fmt.Errorf("skill %q not found in index (try 'skillhub update')", name)
}
