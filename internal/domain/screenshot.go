package domain

import "time"

// Screenshot represents one cataloged media item.
//
// It is the canonical runtime truth of a record: all inputs (uploads,
// API mutations, SEO enrichment) are merged into this structure.
// The JSON tags define the persisted snapshot document.
type Screenshot struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier, assigned at creation.
	ID string `json:"id"`

	// Image is the public path of the stored media asset.
	// Immutable after creation; the catalog never interprets its content.
	Image string `json:"image"`

	// CreatedAt is fixed at creation.
	CreatedAt time.Time `json:"created_at"`

	// ─────────────────────────────
	// User-editable fields
	// ─────────────────────────────

	Title string `json:"title"`
	URL   string `json:"url"`
	Notes string `json:"notes"`
	Likes int    `json:"likes"`
	Liked bool   `json:"liked"`
	Saved bool   `json:"saved"`

	// ─────────────────────────────
	// Derived state
	// ─────────────────────────────

	// Seo is the most recent enrichment result. It is replaced as a
	// whole unit by the enrichment pipeline, never partially mutated.
	Seo SeoProfile `json:"seo_profile"`
}

// SeoProfile bundles the derived discoverability metrics for a screenshot.
type SeoProfile struct {
	// Keywords extracted from title + notes, at most 10, original order.
	Keywords []string `json:"keywords"`

	// Score is always within [0, 100].
	Score int `json:"score"`

	// LastAnalyzed is nil when the record was never enriched.
	LastAnalyzed *time.Time `json:"last_analyzed,omitempty"`

	// Provider-sourced statistics; zero when the provider was unavailable.
	Views       int64 `json:"views"`
	Impressions int64 `json:"impressions"`

	EngagementRate float64 `json:"engagement_rate"`
	CTR            float64 `json:"ctr"`

	// Tags supplied by the provider (possibly empty).
	Tags []string `json:"tags"`

	// SuggestedKeywords holds up to 5 derived phrases.
	SuggestedKeywords []string `json:"suggested_keywords"`
}

// VideoStats holds the statistics and tags returned by the external
// video metadata provider for a resolved video ID.
type VideoStats struct {
	Views    int64
	Likes    int64
	Comments int64
	Tags     []string
}

// Clone returns a deep copy of the screenshot. The catalog store hands
// out clones so callers can never alias its internal state.
func (s *Screenshot) Clone() *Screenshot {
	c := *s
	c.Seo = s.Seo.Clone()
	return &c
}

// Clone returns a deep copy of the profile.
func (p SeoProfile) Clone() SeoProfile {
	c := p
	if p.LastAnalyzed != nil {
		t := *p.LastAnalyzed
		c.LastAnalyzed = &t
	}
	c.Keywords = cloneStrings(p.Keywords)
	c.Tags = cloneStrings(p.Tags)
	c.SuggestedKeywords = cloneStrings(p.SuggestedKeywords)
	return c
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
