package domain

import "testing"

func TestResolveVideoID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantID   string
		resolved bool
	}{
		{
			name:     "short link",
			url:      "https://youtu.be/dQw4w9WgXcQ",
			wantID:   "dQw4w9WgXcQ",
			resolved: true,
		},
		{
			name:     "short link with query",
			url:      "https://youtu.be/dQw4w9WgXcQ?t=42",
			wantID:   "dQw4w9WgXcQ",
			resolved: true,
		},
		{
			name:     "watch page",
			url:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			wantID:   "dQw4w9WgXcQ",
			resolved: true,
		},
		{
			name:     "watch page without www",
			url:      "https://youtube.com/watch?v=abc123",
			wantID:   "abc123",
			resolved: true,
		},
		{
			name:     "mobile watch page",
			url:      "https://m.youtube.com/watch?v=abc123",
			wantID:   "abc123",
			resolved: true,
		},
		{
			name:     "embed form",
			url:      "https://www.youtube.com/embed/dQw4w9WgXcQ",
			wantID:   "dQw4w9WgXcQ",
			resolved: true,
		},
		{
			name:     "legacy direct play",
			url:      "https://www.youtube.com/v/dQw4w9WgXcQ",
			wantID:   "dQw4w9WgXcQ",
			resolved: true,
		},
		{
			name:     "shorts",
			url:      "https://www.youtube.com/shorts/xyz789",
			wantID:   "xyz789",
			resolved: true,
		},
		{
			name:     "watch page without v param",
			url:      "https://www.youtube.com/watch?list=PL123",
			resolved: false,
		},
		{
			name:     "other host",
			url:      "https://vimeo.com/12345678",
			resolved: false,
		},
		{
			name:     "lookalike host",
			url:      "https://notyoutube.com/watch?v=abc",
			resolved: false,
		},
		{
			name:     "empty string",
			url:      "",
			resolved: false,
		},
		{
			name:     "not a url",
			url:      "just some text",
			resolved: false,
		},
		{
			name:     "empty short link path",
			url:      "https://youtu.be/",
			resolved: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ResolveVideoID(tt.url)

			if ok != tt.resolved {
				t.Fatalf("ResolveVideoID(%q) resolved = %v, want %v", tt.url, ok, tt.resolved)
			}
			if ok && id != tt.wantID {
				t.Errorf("ResolveVideoID(%q) = %q, want %q", tt.url, id, tt.wantID)
			}
		})
	}
}
