package domain

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and drops stop words",
			text: "The Quick Brown Fox and a Lazy Dog",
			want: []string{"quick", "brown", "fox", "lazy", "dog"},
		},
		{
			name: "drops tokens with digits or punctuation",
			text: "golang v1.22 rocks! tutorial",
			want: []string{"golang", "tutorial"},
		},
		{
			name: "keeps duplicates in original order",
			text: "cats love cats",
			want: []string{"cats", "love", "cats"},
		},
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
		{
			name: "only stop words",
			text: "the and of in",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeywords(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractKeywords(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractKeywordsTruncates(t *testing.T) {
	// 30 distinct alphabetic words, none of them stop words
	words := make([]string, 0, 30)
	for i := 0; i < 30; i++ {
		words = append(words, "word"+strings.Repeat("x", i+1))
	}

	got := ExtractKeywords(strings.Join(words, " "))
	if len(got) != MaxExtractedKeywords {
		t.Fatalf("expected %d keywords, got %d", MaxExtractedKeywords, len(got))
	}
	if got[0] != words[0] || got[len(got)-1] != words[MaxExtractedKeywords-1] {
		t.Error("truncation did not preserve original order")
	}
}

func TestSuggestKeywords(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		want     []string
	}{
		{
			name:     "single keyword yields three templates",
			keywords: []string{"cats"},
			want:     []string{"cats tutorial", "best cats", "cats tips"},
		},
		{
			name:     "two keywords truncate at five",
			keywords: []string{"cats", "dogs"},
			want:     []string{"cats tutorial", "best cats", "cats tips", "dogs tutorial", "best dogs"},
		},
		{
			name:     "only first three keywords are used",
			keywords: []string{"a", "b", "c", "d", "e"},
			want:     []string{"a tutorial", "best a", "a tips", "b tutorial", "best b"},
		},
		{
			name:     "no keywords",
			keywords: nil,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestKeywords(tt.keywords)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SuggestKeywords(%v) = %v, want %v", tt.keywords, got, tt.want)
			}
			if len(got) > MaxSuggestedKeywords {
				t.Errorf("suggestion list exceeds cap: %d", len(got))
			}
		})
	}
}
