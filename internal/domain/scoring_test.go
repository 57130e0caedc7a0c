package domain

import (
	"strings"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		keywords    []string
		stats       *VideoStats
		want        int
	}{
		{
			name: "empty input",
			want: 0,
		},
		{
			name:  "title length capped at five words",
			title: "one two three four five six seven",
			want:  10,
		},
		{
			name:     "keyword in title bonus",
			title:    "Cats compilation",
			keywords: []string{"cats", "compilation"},
			want:     4 + 10, // 2 title words + 2 keyword hits
		},
		{
			name:     "only first three keywords scored",
			title:    "alpha beta gamma delta",
			keywords: []string{"alpha", "beta", "gamma", "delta"},
			want:     8 + 15, // 4 title words + 3 keyword hits (delta not considered)
		},
		{
			name:        "medium description bonus",
			title:       "x",
			description: strings.Repeat("word ", 150),
			want:        2 + 5,
		},
		{
			name:        "long description bonus",
			title:       "x",
			description: strings.Repeat("word ", 201),
			want:        2 + 10,
		},
		{
			name:        "exactly 200 words is medium tier",
			title:       "x",
			description: strings.Repeat("word ", 200),
			want:        2 + 5,
		},
		{
			name:        "exactly 100 words has no bonus",
			title:       "x",
			description: strings.Repeat("word ", 100),
			want:        2,
		},
		{
			name:  "provider richness and engagement",
			title: "x",
			stats: &VideoStats{
				Tags:     []string{"a", "b", "c", "d", "e", "f"},
				Comments: 11,
			},
			want: 2 + 5 + 5,
		},
		{
			name:  "provider thresholds are strict",
			title: "x",
			stats: &VideoStats{
				Tags:     []string{"a", "b", "c", "d", "e"},
				Comments: 10,
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.title, tt.description, tt.keywords, tt.stats)
			if got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestScoreFullScenario walks the complete rule: a five-word title whose
// first three extracted keywords all appear in it, a 250-word note, six
// provider tags and fifteen comments.
func TestScoreFullScenario(t *testing.T) {
	title := "Funny Cats and Dogs Compilation"
	notes := strings.Repeat("word ", 250)
	keywords := ExtractKeywords(title + " " + notes)

	if len(keywords) == 0 || keywords[0] != "funny" {
		t.Fatalf("unexpected keyword extraction: %v", keywords)
	}

	stats := &VideoStats{
		Views:    1000,
		Likes:    50,
		Comments: 15,
		Tags:     []string{"cats", "dogs", "funny", "pets", "animals", "compilation"},
	}

	got := Score(title, notes, keywords, stats)
	want := 10 + 15 + 10 + 5 + 5 // title + keywords-in-title + description + tags + comments
	if got != want {
		t.Errorf("Score() = %d, want %d", got, want)
	}

	rate := EngagementRate(stats)
	if rate != 6.5 {
		t.Errorf("EngagementRate() = %v, want 6.5", rate)
	}
}

func TestScoreIsBounded(t *testing.T) {
	// Nothing in the additive rule can exceed 45, but the clamp is part
	// of the contract.
	title := "alpha beta gamma delta epsilon"
	notes := strings.Repeat("alpha ", 300)
	keywords := ExtractKeywords(title)
	stats := &VideoStats{
		Tags:     make([]string, 20),
		Comments: 1000,
	}

	got := Score(title, notes, keywords, stats)
	if got < MinScore || got > MaxScore {
		t.Errorf("Score() = %d, outside [%d, %d]", got, MinScore, MaxScore)
	}
}

func TestEngagementRate(t *testing.T) {
	tests := []struct {
		name  string
		stats *VideoStats
		want  float64
	}{
		{
			name: "nil stats",
			want: 0,
		},
		{
			name:  "zero views",
			stats: &VideoStats{Likes: 10, Comments: 5},
			want:  0,
		},
		{
			name:  "normal ratio",
			stats: &VideoStats{Views: 200, Likes: 10, Comments: 10},
			want:  10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EngagementRate(tt.stats); got != tt.want {
				t.Errorf("EngagementRate() = %v, want %v", got, tt.want)
			}
		})
	}
}
