package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/GaneshChandgude/llm-selection-workbench/internal/guide"
)

func newGuideCommand() *cobra.Command {
	var (
		asHTML   string
		mistakes bool
		triggers bool
	)

	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Print the model selection guide",
		Long: `Print the model selection guide: the recommended workflow, common
selection mistakes, and the situations that warrant re-evaluating a choice.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if mistakes {
				for _, m := range guide.Mistakes() {
					fmt.Printf("%s\n  %s\n  %s\n\n", m.Title, m.AntiPattern, m.Recommended)
				}
				return nil
			}
			if triggers {
				all := guide.ReevaluationTriggers()
				keys := make([]string, 0, len(all))
				for k := range all {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Printf("- %s: %s\n", k, all[k])
				}
				return nil
			}
			if asHTML != "" {
				html, err := guide.RenderHTML()
				if err != nil {
					return err
				}
				return os.WriteFile(asHTML, html, 0o644)
			}
			os.Stdout.Write(guide.Markdown()) //nolint:errcheck
			return nil
		},
	}

	cmd.Flags().StringVar(&asHTML, "html", "", "Write the guide as HTML to the given file")
	cmd.Flags().BoolVar(&mistakes, "mistakes", false, "Print only the common mistakes")
	cmd.Flags().BoolVar(&triggers, "triggers", false, "Print only the re-evaluation triggers")

	return cmd
}
