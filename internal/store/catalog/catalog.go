package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/renameio/v2"
	"github.com/google/uuid"

	"github.com/clipshelf/clipshelf/internal/domain"
	"github.com/clipshelf/clipshelf/internal/logger"
	"github.com/clipshelf/clipshelf/internal/seo"
)

var (
	// ErrNotFound is returned when the referenced screenshot ID does not
	// exist in the collection.
	ErrNotFound = errors.New("screenshot not found")

	// ErrValidation is returned when required creation input is missing.
	ErrValidation = errors.New("invalid screenshot input")
)

// Sort keys accepted by List.
const (
	SortRecent     = "recent"
	SortOldest     = "oldest"
	SortLikes      = "likes"
	SortSeoScore   = "seo_score"
	SortViews      = "views"
	SortEngagement = "engagement"
)

// Fields carries a partial mutation. Nil pointers mean "leave unchanged".
type Fields struct {
	Title *string `json:"title,omitempty"`
	URL   *string `json:"url,omitempty"`
	Notes *string `json:"notes,omitempty"`
	Likes *int    `json:"likes,omitempty"`
	Liked *bool   `json:"liked,omitempty"`
	Saved *bool   `json:"saved,omitempty"`
}

// Store owns the durable screenshot collection.
//
// The on-disk representation is a single JSON document holding the
// complete ordered collection; every save writes the full snapshot to a
// pending file and atomically replaces the primary, so a partial write
// is never observable. The store is the sole owner of all Screenshot
// values: callers always receive deep copies.
type Store struct {
	mu       sync.Mutex
	path     string
	pipeline *seo.Pipeline
	logger   logger.Logger

	shots map[string]*domain.Screenshot // ID -> screenshot
	order []string                      // insertion order of IDs

	now   func() time.Time
	newID func() string
}

// Open loads (or initializes) the catalog at path.
//
// A missing file yields an empty collection. A corrupt file is renamed
// aside to <path>.corrupt-<unix> and the store starts empty: corruption
// is logged loudly but never propagated to callers, and the damaged
// snapshot is preserved for manual recovery.
func Open(path string, pipeline *seo.Pipeline, log logger.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	s := &Store{
		path:     path,
		pipeline: pipeline,
		logger:   log,
		shots:    make(map[string]*domain.Screenshot),
		now:      time.Now,
		newID:    uuid.NewString,
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("no existing catalog, starting empty",
				logger.String("path", s.path))
			return nil
		}
		return fmt.Errorf("failed to read catalog: %w", err)
	}

	var list []*domain.Screenshot
	if err := json.Unmarshal(data, &list); err != nil {
		backup := fmt.Sprintf("%s.corrupt-%d", s.path, s.now().Unix())
		if renameErr := os.Rename(s.path, backup); renameErr != nil {
			s.logger.Error("failed to move corrupt catalog aside",
				logger.Error(renameErr))
		}
		s.logger.Error("catalog snapshot is corrupt, starting empty",
			logger.String("path", s.path),
			logger.String("backup", backup),
			logger.Error(err))
		return nil
	}

	for _, shot := range list {
		if shot.ID == "" {
			continue
		}
		if _, dup := s.shots[shot.ID]; dup {
			s.logger.Warn("dropping duplicate screenshot id from snapshot",
				logger.String("id", shot.ID))
			continue
		}
		s.shots[shot.ID] = shot
		s.order = append(s.order, shot.ID)
	}

	s.logger.Info("catalog loaded",
		logger.String("path", s.path),
		logger.Int("count", len(s.order)))
	return nil
}

// persistLocked writes the complete collection atomically.
// Callers must hold s.mu.
func (s *Store) persistLocked() error {
	list := make([]*domain.Screenshot, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.shots[id])
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	// renameio handles: temp file creation, fsync, atomic rename,
	// cleanup on error
	pending, err := renameio.NewPendingFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to create pending catalog file: %w", err)
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			s.logger.Debug("cleanup pending catalog file", logger.Error(err))
		}
	}()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to replace catalog: %w", err)
	}

	return nil
}

// Count returns the number of screenshots in the collection.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// List returns all screenshots ordered by sortKey (SortRecent when the
// key is empty or unknown). Stale profiles of records with a URL are
// re-enriched first; if any record was refreshed the collection is
// persisted exactly once.
func (s *Store) List(ctx context.Context, sortKey string) ([]*domain.Screenshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	refreshed, err := s.refreshStaleLocked(ctx)
	if err != nil {
		return nil, err
	}
	if refreshed > 0 {
		s.logger.Info("refreshed stale SEO profiles",
			logger.Int("count", refreshed))
	}

	list := make([]*domain.Screenshot, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.shots[id].Clone())
	}

	sortScreenshots(list, sortKey)
	return list, nil
}

// refreshStaleLocked re-enriches every record with a URL and a stale
// profile, then persists once. On a persist failure all refreshed
// profiles are rolled back so the in-memory state matches the durable
// snapshot. Callers must hold s.mu.
func (s *Store) refreshStaleLocked(ctx context.Context) (int, error) {
	previous := make(map[string]domain.SeoProfile)

	for _, id := range s.order {
		shot := s.shots[id]
		if shot.URL == "" || !s.pipeline.Stale(shot.Seo) {
			continue
		}
		previous[id] = shot.Seo
		shot.Seo = s.pipeline.Analyze(ctx, shot.URL, shot.Title, shot.Notes)
	}

	if len(previous) == 0 {
		return 0, nil
	}

	if err := s.persistLocked(); err != nil {
		for id, profile := range previous {
			s.shots[id].Seo = profile
		}
		return 0, err
	}

	return len(previous), nil
}

// Get returns one screenshot by ID, refreshing its profile first when
// stale. Returns ErrNotFound if the ID is absent.
func (s *Store) Get(ctx context.Context, id string) (*domain.Screenshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shot, ok := s.shots[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if shot.URL != "" && s.pipeline.Stale(shot.Seo) {
		previous := shot.Seo
		shot.Seo = s.pipeline.Analyze(ctx, shot.URL, shot.Title, shot.Notes)
		if err := s.persistLocked(); err != nil {
			shot.Seo = previous
			return nil, err
		}
	}

	return shot.Clone(), nil
}

// Create builds a new screenshot from fields and the stored image
// reference, computes its initial profile and persists the collection.
// imageRef is required; everything else has defaults.
func (s *Store) Create(ctx context.Context, fields Fields, imageRef string) (*domain.Screenshot, error) {
	if imageRef == "" {
		return nil, fmt.Errorf("%w: image reference is required", ErrValidation)
	}

	shot := &domain.Screenshot{
		ID:        s.newID(),
		Image:     imageRef,
		CreatedAt: s.now(),
		Title:     "Untitled",
		Seo:       seo.EmptyProfile(),
	}
	applyFields(shot, fields)

	if shot.URL != "" {
		shot.Seo = s.pipeline.Analyze(ctx, shot.URL, shot.Title, shot.Notes)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.shots[shot.ID] = shot
	s.order = append(s.order, shot.ID)

	if err := s.persistLocked(); err != nil {
		delete(s.shots, shot.ID)
		s.order = s.order[:len(s.order)-1]
		return nil, err
	}

	s.logger.Info("screenshot created",
		logger.String("id", shot.ID),
		logger.String("title", shot.Title),
		logger.Int("seo_score", shot.Seo.Score))

	return shot.Clone(), nil
}

// Update applies the present fields to the matching screenshot. When the
// URL changes, the profile is fully recomputed with the updated title and
// notes. Returns ErrNotFound if the ID is absent.
func (s *Store) Update(ctx context.Context, id string, fields Fields) (*domain.Screenshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.shots[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	updated := current.Clone()
	applyFields(updated, fields)

	if fields.URL != nil && *fields.URL != current.URL {
		updated.Seo = s.pipeline.Analyze(ctx, updated.URL, updated.Title, updated.Notes)
	}

	s.shots[id] = updated
	if err := s.persistLocked(); err != nil {
		s.shots[id] = current
		return nil, err
	}

	return updated.Clone(), nil
}

// Delete removes the screenshot and persists the result.
// Returns ErrNotFound (with no write performed) if the ID is absent.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.shots[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	removed := s.shots[id]
	pos := indexOf(s.order, id)

	delete(s.shots, id)
	s.order = append(s.order[:pos], s.order[pos+1:]...)

	if err := s.persistLocked(); err != nil {
		s.shots[id] = removed
		s.order = append(s.order, "")
		copy(s.order[pos+1:], s.order[pos:])
		s.order[pos] = id
		return err
	}

	s.logger.Info("screenshot deleted", logger.String("id", id))
	return nil
}

// RefreshSeo forces full re-enrichment regardless of staleness and
// persists the new profile. Returns ErrNotFound if the ID is absent.
func (s *Store) RefreshSeo(ctx context.Context, id string) (domain.SeoProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shot, ok := s.shots[id]
	if !ok {
		return domain.SeoProfile{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	previous := shot.Seo
	shot.Seo = s.pipeline.Analyze(ctx, shot.URL, shot.Title, shot.Notes)

	if err := s.persistLocked(); err != nil {
		shot.Seo = previous
		return domain.SeoProfile{}, err
	}

	return shot.Seo.Clone(), nil
}

func applyFields(shot *domain.Screenshot, fields Fields) {
	if fields.Title != nil {
		shot.Title = *fields.Title
	}
	if fields.URL != nil {
		shot.URL = *fields.URL
	}
	if fields.Notes != nil {
		shot.Notes = *fields.Notes
	}
	if fields.Likes != nil && *fields.Likes >= 0 {
		shot.Likes = *fields.Likes
	}
	if fields.Liked != nil {
		shot.Liked = *fields.Liked
	}
	if fields.Saved != nil {
		shot.Saved = *fields.Saved
	}
}

func sortScreenshots(list []*domain.Screenshot, sortKey string) {
	switch sortKey {
	case SortOldest:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		})
	case SortLikes:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Likes > list[j].Likes
		})
	case SortSeoScore:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Seo.Score > list[j].Seo.Score
		})
	case SortViews:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Seo.Views > list[j].Seo.Views
		})
	case SortEngagement:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Seo.EngagementRate > list[j].Seo.EngagementRate
		})
	default: // SortRecent
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		})
	}
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
