package domain

import (
	"net/url"
	"strings"
)

// ResolveVideoID extracts the canonical YouTube video ID from a content URL.
//
// Recognized forms:
//   - https://youtu.be/<id>                 (short link, first path segment)
//   - https://www.youtube.com/watch?v=<id>  (canonical watch page)
//   - https://www.youtube.com/embed/<id>    (embed player)
//   - https://www.youtube.com/v/<id>        (legacy direct play)
//   - https://www.youtube.com/shorts/<id>   (shorts)
//
// Any other host or malformed URL returns ("", false). This is not an
// error: enrichment simply falls back to text-only analysis.
func ResolveVideoID(rawURL string) (string, bool) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", false
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	host := strings.ToLower(u.Hostname())

	if host == "youtu.be" {
		return firstPathSegment(u.Path)
	}

	if !isYouTubeHost(host) {
		return "", false
	}

	if u.Path == "/watch" {
		id := u.Query().Get("v")
		if id == "" {
			return "", false
		}
		return id, true
	}

	// Embed and direct-play forms carry the ID as the trailing segment.
	for _, prefix := range []string{"/embed/", "/v/", "/shorts/"} {
		if strings.HasPrefix(u.Path, prefix) {
			return lastPathSegment(u.Path)
		}
	}

	return "", false
}

func isYouTubeHost(host string) bool {
	return host == "youtube.com" || strings.HasSuffix(host, ".youtube.com")
}

func firstPathSegment(path string) (string, bool) {
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			return seg, true
		}
	}
	return "", false
}

func lastPathSegment(path string) (string, bool) {
	segs := strings.Split(strings.Trim(path, "/"), "/")
	last := segs[len(segs)-1]
	if last == "" {
		return "", false
	}
	return last, true
}
