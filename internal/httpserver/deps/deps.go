package deps

import (
	"time"

	"github.com/clipshelf/clipshelf/internal/logger"
	"github.com/clipshelf/clipshelf/internal/store/catalog"
	"github.com/clipshelf/clipshelf/internal/uploads"
	"github.com/clipshelf/clipshelf/internal/youtube"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	Catalog *catalog.Store  // sole owner of the durable collection
	Uploads *uploads.Saver  // image storage collaborator
	Gateway *youtube.Client // metadata provider (may be disabled)

	RateLimitBurst  int
	RateLimitPerMin int
	TrustProxy      bool // true if running behind a trusted reverse proxy
}
