package domain

import "strings"

const (
	// Score bounds
	MinScore = 0
	MaxScore = 100

	// Title length term: min(words, TitleWordCap) * TitleWordWeight
	TitleWordWeight = 2
	TitleWordCap    = 5

	// Keyword-in-title term: per-keyword bonus for the first
	// ScoredKeywords extracted keywords found in the title.
	KeywordInTitleBonus = 5
	ScoredKeywords      = 3

	// Description length terms
	LongDescriptionWords   = 200
	MediumDescriptionWords = 100
	LongDescriptionBonus   = 10
	MediumDescriptionBonus = 5

	// Provider terms
	RichTagCount        = 5
	RichTagsBonus       = 5
	ActiveCommentCount  = 10
	ActiveCommentsBonus = 5
)

// Score combines text features and provider statistics into a bounded
// SEO score. Each term is computed independently and summed; the result
// is clamped to [MinScore, MaxScore]. stats may be nil when the provider
// was unavailable.
func Score(title, description string, keywords []string, stats *VideoStats) int {
	score := 0

	// Title length
	titleWords := len(strings.Fields(title))
	if titleWords > TitleWordCap {
		titleWords = TitleWordCap
	}
	score += titleWords * TitleWordWeight

	// Keywords present in the title (case-insensitive substring match,
	// first ScoredKeywords only, each evaluated independently)
	lowerTitle := strings.ToLower(title)
	scored := keywords
	if len(scored) > ScoredKeywords {
		scored = scored[:ScoredKeywords]
	}
	for _, kw := range scored {
		if strings.Contains(lowerTitle, strings.ToLower(kw)) {
			score += KeywordInTitleBonus
		}
	}

	// Description length
	descWords := len(strings.Fields(description))
	switch {
	case descWords > LongDescriptionWords:
		score += LongDescriptionBonus
	case descWords > MediumDescriptionWords:
		score += MediumDescriptionBonus
	}

	// Provider richness and engagement
	if stats != nil {
		if len(stats.Tags) > RichTagCount {
			score += RichTagsBonus
		}
		if stats.Comments > ActiveCommentCount {
			score += ActiveCommentsBonus
		}
	}

	return clampScore(score)
}

// EngagementRate returns (likes + comments) / views * 100, or 0 when
// views are zero or stats are unavailable.
func EngagementRate(stats *VideoStats) float64 {
	if stats == nil || stats.Views == 0 {
		return 0
	}
	return float64(stats.Likes+stats.Comments) / float64(stats.Views) * 100
}

func clampScore(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
