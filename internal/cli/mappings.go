package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rubicon/gylr-go/internal/classify"
	"github.com/rubicon/gylr-go/internal/models"
)

var mappingsFromTitle bool

var mappingsCmd = &cobra.Command{
	Use:   "mappings",
	Short: "Manage title-pattern to category mappings",
	Long: `Mappings are remembered categorizations: a short title pattern
tied to a category. They take priority over keyword matching.`,
}

var mappingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored mappings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mappings := store.Load(context.Background())
		if len(mappings) == 0 {
			fmt.Println("No mappings stored.")
			return nil
		}
		for _, m := range mappings {
			fmt.Printf("%-30s -> %-10s (added %s)\n",
				m.Pattern, m.Category.Label(), m.CreatedAt.Format("2006-01-02"))
		}
		return nil
	},
}

var mappingsAddCmd = &cobra.Command{
	Use:   "add <pattern> <category>",
	Short: "Add or replace a mapping",
	Long: `Add a mapping from a title pattern to a category. Saving an
existing pattern replaces it.

With --from-title the first argument is treated as a full event title
and a pattern is extracted from it (up to 3 significant words).

Examples:
  gylr mappings add "team standup" work
  gylr mappings add --from-title "Team Standup Meeting" work`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := args[0]
		if mappingsFromTitle {
			pattern = classify.ExtractPattern(args[0])
			if pattern == "" {
				return fmt.Errorf("no usable pattern in title %q", args[0])
			}
		}

		category, err := models.ParseCategory(args[1])
		if err != nil {
			return err
		}
		if category == models.CategoryUncategorized {
			return fmt.Errorf("cannot map a pattern to uncategorized")
		}

		mapping := store.Save(context.Background(), pattern, category)
		fmt.Printf("Saved: %q -> %s\n", mapping.Pattern, mapping.Category.Label())
		return nil
	},
}

var mappingsRemoveCmd = &cobra.Command{
	Use:   "remove <pattern>",
	Short: "Remove a mapping",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store.Remove(context.Background(), args[0])
		fmt.Printf("Removed: %q\n", args[0])
		return nil
	},
}

var mappingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all mappings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store.Clear(context.Background())
		fmt.Println("All mappings cleared.")
		return nil
	},
}

func init() {
	mappingsAddCmd.Flags().BoolVar(&mappingsFromTitle, "from-title", false, "extract the pattern from a full event title")

	mappingsCmd.AddCommand(mappingsListCmd)
	mappingsCmd.AddCommand(mappingsAddCmd)
	mappingsCmd.AddCommand(mappingsRemoveCmd)
	mappingsCmd.AddCommand(mappingsClearCmd)
}
