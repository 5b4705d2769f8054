package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rubicon/gylr-go/internal/allocation"
	"github.com/rubicon/gylr-go/internal/judge"
	"github.com/rubicon/gylr-go/internal/llm"
	"github.com/rubicon/gylr-go/internal/models"
)

var (
	roastPersonality string
	roastForce       bool
)

var roastCmd = &cobra.Command{
	Use:   "roast",
	Short: "Get an AI-generated roast of your time allocation",
	Long: `Send the period's time allocation to the judge and get roasted.

Pick a judge personality with --personality:
  sarcastic_friend     Playful teasing with love
  cruel_comedian       No filter, maximum roast
  disappointed_parent  Guilt trips and heavy sighs

Examples:
  gylr roast
  gylr roast --personality cruel_comedian --period month
  gylr roast --force`,
	Args: cobra.NoArgs,
	RunE: runRoast,
}

func init() {
	roastCmd.Flags().StringVar(&roastPersonality, "personality", "", "judge personality")
	roastCmd.Flags().BoolVar(&roastForce, "force", false, "bypass cache and rate limit")
}

func runRoast(cmd *cobra.Command, args []string) error {
	period, err := activePeriod()
	if err != nil {
		return err
	}

	rawPersonality := roastPersonality
	if rawPersonality == "" {
		rawPersonality = cfg.Personality
	}
	personality, err := models.ParsePersonality(rawPersonality)
	if err != nil {
		return err
	}

	ctx := context.Background()
	events, err := fetchCategorized(ctx, period)
	if err != nil {
		return fmt.Errorf("fetch events: %w", err)
	}

	if !allocation.HasEnoughData(events) {
		fmt.Printf("Nothing to roast %s: no categorized events.\n", period.Label())
		return nil
	}
	allocations := allocation.Calculate(events)

	var gen judge.Generator
	if cfg.Configured() {
		model, err := llm.NewModel(cfg)
		if err != nil {
			return fmt.Errorf("init judge model: %w", err)
		}
		gen = model
	}

	coordinator := judge.NewCoordinator(gen, judge.Options{
		Logger:      logger,
		Metrics:     collector,
		Personality: personality,
	})

	fmt.Println(judge.RandomLoadingMessage())
	text, err := coordinator.RequestJudgment(ctx, allocations, period, personality, roastForce)
	if err != nil {
		logger.Warn("roast request failed", "code", judge.Code(err))
		return err
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#E85D75")).
		Padding(1, 2).
		Width(60)
	fmt.Println()
	fmt.Println(boxStyle.Render(text))
	fmt.Printf("\n— %s\n", personality.Name())

	if verbose {
		snap := collector.Snapshot()
		if snap.LLMGenerate != nil {
			logger.Info("judge call stats",
				"count", snap.LLMGenerate.Count,
				"avg_ms", snap.LLMGenerate.AvgTimeMs,
				"cache_hits", snap.CacheHits,
				"cache_misses", snap.CacheMisses)
		}
	}
	return nil
}
