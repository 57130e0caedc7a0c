package seo

import (
	"context"
	"time"

	"github.com/clipshelf/clipshelf/internal/domain"
	"github.com/clipshelf/clipshelf/internal/logger"
)

// MaxProfileKeywords bounds the keyword list stored on a profile.
const MaxProfileKeywords = 10

// MetadataSource is the provider lookup consumed by the pipeline.
// The second return value is false when the provider is unavailable;
// the pipeline then treats all statistics as zero and tags as empty.
type MetadataSource interface {
	Stats(ctx context.Context, videoID string) (*domain.VideoStats, bool)
}

// Pipeline produces complete SEO profiles for catalog records.
//
// Analyze never fails: resolution failures, provider failures and scoring
// anomalies all degrade to the best available partial result.
type Pipeline struct {
	source   MetadataSource
	logger   logger.Logger
	interval time.Duration
	now      func() time.Time
}

// New creates a pipeline. interval is the staleness threshold used by
// Stale; a profile older than (or exactly as old as) the interval is
// eligible for re-analysis.
func New(source MetadataSource, log logger.Logger, interval time.Duration) *Pipeline {
	return &Pipeline{
		source:   source,
		logger:   log,
		interval: interval,
		now:      time.Now,
	}
}

// WithClock overrides the pipeline clock. Intended for tests.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

// Analyze computes a fresh profile for (url, title, notes).
//
// Steps: resolve the URL to a video ID, fetch provider statistics (best
// effort), extract keywords from title + notes, score, derive suggestions,
// stamp last_analyzed.
func (p *Pipeline) Analyze(ctx context.Context, rawURL, title, notes string) domain.SeoProfile {
	var stats *domain.VideoStats

	videoID, resolved := domain.ResolveVideoID(rawURL)
	if resolved && p.source != nil {
		var ok bool
		stats, ok = p.source.Stats(ctx, videoID)
		if !ok {
			p.logger.Debug("provider unavailable, using text-only analysis",
				logger.String("video_id", videoID))
			stats = nil
		}
	} else if rawURL != "" {
		p.logger.Debug("url did not resolve to a video reference",
			logger.String("url", rawURL))
	}

	keywords := domain.ExtractKeywords(title + " " + notes)

	profileKeywords := keywords
	if len(profileKeywords) > MaxProfileKeywords {
		profileKeywords = profileKeywords[:MaxProfileKeywords]
	}

	analyzed := p.now()
	profile := domain.SeoProfile{
		Keywords:          profileKeywords,
		Score:             domain.Score(title, notes, keywords, stats),
		LastAnalyzed:      &analyzed,
		EngagementRate:    domain.EngagementRate(stats),
		SuggestedKeywords: domain.SuggestKeywords(keywords),
		Tags:              []string{},
	}

	if stats != nil {
		profile.Views = stats.Views
		if stats.Tags != nil {
			profile.Tags = stats.Tags
		}
	}

	// Impressions and CTR need ad-platform data this system has no access
	// to; both are always reported as 0.

	return profile
}

// Stale reports whether a profile is eligible for re-analysis: never
// analyzed, or last analyzed at least the refresh interval ago.
func (p *Pipeline) Stale(profile domain.SeoProfile) bool {
	if profile.LastAnalyzed == nil {
		return true
	}
	return p.now().Sub(*profile.LastAnalyzed) >= p.interval
}

// EmptyProfile is the default profile attached to records that were
// never analyzed (e.g. created without a URL).
func EmptyProfile() domain.SeoProfile {
	return domain.SeoProfile{
		Keywords:          []string{},
		Tags:              []string{},
		SuggestedKeywords: []string{},
	}
}
