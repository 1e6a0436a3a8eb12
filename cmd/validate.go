package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/skillhub-cli/skillhub/internal/skill"
)

var validateCmd = &cobra.Command{
	Use:   "validate <registry.json>...",
	Short: "Check registry files for structural problems",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	printSection("Validate")
	failed := 0
	for _, path := range args {
		problems, err := skill.ValidateRegistryFile(path)
		if err != nil {
			printErr(path, err.Error())
			failed++
			continue
		}
		if len(problems) == 0 {
			printOK(path, "ok")
			continue
		}
		failed++
		names := make([]string, 0, len(problems))
		for n := range problems {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			for _, e := range problems[n] {
				printErr(path, fmt.Sprintf("%s: %v", n, e))
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed validation", failed, len(args))
	}
	return nil
}
