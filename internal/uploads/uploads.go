package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// ErrInvalidFile is returned for empty filenames or disallowed extensions.
var ErrInvalidFile = errors.New("invalid image file")

// PublicPrefix is the URL path under which stored images are served.
const PublicPrefix = "/static/uploads"

// Saver stores uploaded images under a single directory.
//
// Filenames are sanitized and prefixed with a nanosecond timestamp so
// concurrent uploads of the same name never collide. The saver only
// stores bytes; it never interprets image content.
type Saver struct {
	dir     string
	allowed map[string]struct{}
	now     func() time.Time
}

// NewSaver creates the upload directory if needed. exts are allowed
// extensions without the leading dot (e.g. "png", "jpg").
func NewSaver(dir string, exts []string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	allowed := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}

	return &Saver{
		dir:     dir,
		allowed: allowed,
		now:     time.Now,
	}, nil
}

// Save writes the upload to disk and returns the public path to store
// on the screenshot record.
func (s *Saver) Save(filename string, r io.Reader) (string, error) {
	name, err := s.targetName(filename)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close upload: %w", err)
	}

	return path.Join(PublicPrefix, name), nil
}

// Dir returns the storage directory (used to serve files back).
func (s *Saver) Dir() string {
	return s.dir
}

func (s *Saver) targetName(filename string) (string, error) {
	base := sanitize(filepath.Base(filename))
	if base == "" || base == "." {
		return "", fmt.Errorf("%w: empty filename", ErrInvalidFile)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(base), "."))
	if ext == "" {
		return "", fmt.Errorf("%w: missing extension", ErrInvalidFile)
	}
	if _, ok := s.allowed[ext]; !ok {
		return "", fmt.Errorf("%w: extension %q not allowed", ErrInvalidFile, ext)
	}

	return fmt.Sprintf("%d_%s", s.now().UnixNano(), base), nil
}

// sanitize keeps letters, digits, dots, dashes and underscores; every
// other rune becomes an underscore. Leading dots are stripped so a
// stored name can never be hidden or escape the directory.
func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.TrimLeft(b.String(), ".")
}
