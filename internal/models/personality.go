package models

import "fmt"

// Personality selects the voice of the roast judge.
type Personality string

const (
	PersonalitySarcasticFriend    Personality = "sarcastic_friend"
	PersonalityCruelComedian      Personality = "cruel_comedian"
	PersonalityDisappointedParent Personality = "disappointed_parent"
)

// Personalities returns all judge personalities in display order.
func Personalities() []Personality {
	return []Personality{
		PersonalitySarcasticFriend,
		PersonalityCruelComedian,
		PersonalityDisappointedParent,
	}
}

// ParsePersonality converts a string into a Personality.
func ParsePersonality(s string) (Personality, error) {
	switch Personality(s) {
	case PersonalitySarcasticFriend, PersonalityCruelComedian, PersonalityDisappointedParent:
		return Personality(s), nil
	}
	return "", fmt.Errorf("unknown personality: %q", s)
}

// Name returns the display name of the personality.
func (p Personality) Name() string {
	switch p {
	case PersonalitySarcasticFriend:
		return "Sarcastic Friend"
	case PersonalityCruelComedian:
		return "Cruel Comedian"
	case PersonalityDisappointedParent:
		return "Disappointed Parent"
	}
	return string(p)
}

// Description returns the one-line tagline shown in pickers.
func (p Personality) Description() string {
	switch p {
	case PersonalitySarcasticFriend:
		return "Playful teasing with love"
	case PersonalityCruelComedian:
		return "No filter, maximum roast"
	case PersonalityDisappointedParent:
		return "Guilt trips and heavy sighs"
	}
	return ""
}
