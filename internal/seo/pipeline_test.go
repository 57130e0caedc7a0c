package seo

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipshelf/clipshelf/internal/domain"
	"github.com/clipshelf/clipshelf/internal/logger"
)

// fakeSource is a canned provider response.
type fakeSource struct {
	stats *domain.VideoStats
	ok    bool
	calls int
}

func (f *fakeSource) Stats(_ context.Context, _ string) (*domain.VideoStats, bool) {
	f.calls++
	return f.stats, f.ok
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestAnalyzeWithProvider(t *testing.T) {
	source := &fakeSource{
		stats: &domain.VideoStats{
			Views:    1000,
			Likes:    50,
			Comments: 15,
			Tags:     []string{"cats", "dogs", "funny", "pets", "animals", "compilation"},
		},
		ok: true,
	}

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := New(source, logger.Nop(), 6*time.Hour).WithClock(fixedClock(now))

	profile := p.Analyze(context.Background(),
		"https://www.youtube.com/watch?v=abc123",
		"Funny Cats and Dogs Compilation",
		strings.Repeat("word ", 250),
	)

	assert.Equal(t, 45, profile.Score)
	assert.Equal(t, 6.5, profile.EngagementRate)
	assert.Equal(t, int64(1000), profile.Views)
	assert.Len(t, profile.Tags, 6)
	require.NotNil(t, profile.LastAnalyzed)
	assert.Equal(t, now, *profile.LastAnalyzed)
	assert.Equal(t, 1, source.calls)

	// Impressions and CTR are not computable without ad-platform data.
	assert.Zero(t, profile.Impressions)
	assert.Zero(t, profile.CTR)
}

func TestAnalyzeDegradesWhenProviderUnavailable(t *testing.T) {
	source := &fakeSource{ok: false}
	p := New(source, logger.Nop(), 6*time.Hour)

	profile := p.Analyze(context.Background(),
		"https://youtu.be/abc123",
		"Cats Compilation",
		"",
	)

	// Text-only analysis: provider fields zeroed, score from text terms.
	assert.Equal(t, int64(0), profile.Views)
	assert.Empty(t, profile.Tags)
	assert.Equal(t, float64(0), profile.EngagementRate)
	assert.Equal(t, 4+10, profile.Score) // 2 title words + 2 keyword hits
	assert.NotNil(t, profile.LastAnalyzed)
}

func TestAnalyzeSkipsProviderForUnresolvedURL(t *testing.T) {
	source := &fakeSource{ok: true, stats: &domain.VideoStats{Views: 1}}
	p := New(source, logger.Nop(), 6*time.Hour)

	p.Analyze(context.Background(), "https://example.com/page", "title", "")
	assert.Zero(t, source.calls, "unresolved URL must not hit the provider")

	p.Analyze(context.Background(), "", "title", "")
	assert.Zero(t, source.calls, "empty URL must not hit the provider")
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	source := &fakeSource{
		stats: &domain.VideoStats{Views: 500, Likes: 20, Comments: 12, Tags: []string{"go"}},
		ok:    true,
	}
	p := New(source, logger.Nop(), 6*time.Hour)

	first := p.Analyze(context.Background(), "https://youtu.be/xyz", "Go concurrency patterns", "notes about channels")
	second := p.Analyze(context.Background(), "https://youtu.be/xyz", "Go concurrency patterns", "notes about channels")

	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Keywords, second.Keywords)
	assert.Equal(t, first.SuggestedKeywords, second.SuggestedKeywords)
	assert.Equal(t, first.EngagementRate, second.EngagementRate)
}

func TestAnalyzeCapsProfileKeywords(t *testing.T) {
	p := New(nil, logger.Nop(), 6*time.Hour)

	words := make([]string, 0, 14)
	for i := 0; i < 14; i++ {
		words = append(words, "keyword"+strings.Repeat("z", i+1))
	}
	profile := p.Analyze(context.Background(), "", "title", strings.Join(words, " "))

	assert.LessOrEqual(t, len(profile.Keywords), MaxProfileKeywords)
	assert.LessOrEqual(t, len(profile.SuggestedKeywords), domain.MaxSuggestedKeywords)
}

func TestStale(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	interval := 6 * time.Hour
	p := New(nil, logger.Nop(), interval).WithClock(fixedClock(now))

	at := func(t time.Time) *time.Time { return &t }

	tests := []struct {
		name    string
		profile domain.SeoProfile
		stale   bool
	}{
		{
			name:    "never analyzed",
			profile: domain.SeoProfile{},
			stale:   true,
		},
		{
			name:    "fresh",
			profile: domain.SeoProfile{LastAnalyzed: at(now.Add(-time.Hour))},
			stale:   false,
		},
		{
			name:    "one unit inside the boundary",
			profile: domain.SeoProfile{LastAnalyzed: at(now.Add(-interval + time.Nanosecond))},
			stale:   false,
		},
		{
			name:    "exactly at the boundary",
			profile: domain.SeoProfile{LastAnalyzed: at(now.Add(-interval))},
			stale:   true,
		},
		{
			name:    "beyond the boundary",
			profile: domain.SeoProfile{LastAnalyzed: at(now.Add(-interval - time.Hour))},
			stale:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.stale, p.Stale(tt.profile))
		})
	}
}

func TestEmptyProfile(t *testing.T) {
	profile := EmptyProfile()

	assert.Zero(t, profile.Score)
	assert.Nil(t, profile.LastAnalyzed)
	assert.Empty(t, profile.Keywords)
	assert.Empty(t, profile.Tags)
	assert.Empty(t, profile.SuggestedKeywords)
	assert.Zero(t, profile.Views)
	assert.Zero(t, profile.EngagementRate)
}
