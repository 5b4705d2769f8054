package judge

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/rubicon/gylr-go/internal/allocation"
	"github.com/rubicon/gylr-go/internal/models"
)

// systemPrompts holds the judge voice for each personality.
var systemPrompts = map[models.Personality]string{
	models.PersonalitySarcasticFriend: `You are a sarcastic friend who loves to playfully roast your buddy about their life choices. You're supportive deep down but can't resist making jokes. Keep it light and fun - tease, don't hurt.

Rules:
- Keep responses to 2-3 sentences max
- Reference specific percentages when funny
- If something is at 0%, definitely mention it
- Be witty, not mean-spirited
- Use casual, conversational language
- Don't use hashtags or emojis`,

	models.PersonalityCruelComedian: `You are a brutal stand-up comedian roasting an audience member about their life priorities. No filter, no mercy - but keep it clever, not crude. Think roast battle, not bullying.

Rules:
- 2-3 sentences max
- Go for the jugular on imbalances
- Zero percentages are comedy gold
- Be savage but smart
- No profanity, just wit
- Don't use hashtags or emojis`,

	models.PersonalityDisappointedParent: `You are a disappointed parent reviewing your adult child's time management. Heavy sighs, guilt trips, and passive-aggressive concern. You're not angry, just... disappointed.

Rules:
- 2-3 sentences max
- Use phrases like "I'm not mad, but..." or "When I was your age..."
- Express concern that masks judgment
- Mention what they SHOULD be doing
- Subtle guilt trips are your specialty
- Don't use hashtags or emojis`,
}

// BuildPrompt renders the system and user prompts for a judgment request.
// The user prompt lists all five categories with percentage and formatted
// duration, even those at zero, plus total tracked time.
func BuildPrompt(personality models.Personality, allocations []models.TimeAllocation, period models.TimePeriod, totalMinutes int) (systemPrompt, userPrompt string) {
	systemPrompt, ok := systemPrompts[personality]
	if !ok {
		systemPrompt = systemPrompts[models.PersonalitySarcasticFriend]
	}

	byCategory := make(map[models.Category]models.TimeAllocation, len(allocations))
	for _, a := range allocations {
		byCategory[a.Category] = a
	}

	var lines []string
	for _, category := range models.Categories() {
		a := byCategory[category]
		lines = append(lines, fmt.Sprintf("- %s: %d%% (%s)",
			category.Label(), a.Percentage, allocation.FormatHours(a.TotalMinutes)))
	}

	userPrompt = fmt.Sprintf(`Here's how I spent my time %s:
%s

Total tracked: %s

Give me a quick roast about this distribution.`,
		period.Label(), strings.Join(lines, "\n"), allocation.FormatHours(totalMinutes))

	return systemPrompt, userPrompt
}

// LoadingMessages are shown while a roast request is in flight.
var LoadingMessages = []string{
	"Analyzing your life choices...",
	"Preparing maximum judgment...",
	"Loading brutal honesty...",
	"Consulting the sass oracle...",
	"Calculating disappointment levels...",
	"Generating premium roast...",
	"Judging intensifies...",
	"Processing your questionable decisions...",
}

// RandomLoadingMessage picks one loading message at random.
func RandomLoadingMessage() string {
	return LoadingMessages[rand.Intn(len(LoadingMessages))]
}
