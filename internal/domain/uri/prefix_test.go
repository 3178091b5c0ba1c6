package uri

import (
	"errors"
	"testing"
)

func TestBasePrefix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "typical document base",
			input: "https://example.com/app/index.html",
			want:  "https://example.com/app",
		},
		{
			name:  "trailing slash drops only the slash",
			input: "https://example.com/app/",
			want:  "https://example.com/app",
		},
		{
			name:  "scheme-only authority keeps double slash remainder",
			input: "https://example.com",
			want:  "https:/",
		},
		{
			name:  "no slash at all",
			input: "about:blank",
			want:  "",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "bare path",
			input: "/app/index.html",
			want:  "/app",
		},
		{
			name:  "single slash",
			input: "/",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BasePrefix(tt.input); got != tt.want {
				t.Errorf("BasePrefix(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBasePrefixIsIdempotentOnItsOwnOutput(t *testing.T) {
	// Same input always yields the same output; calling twice must not drift.
	in := "https://example.com/app/index.html"
	first := BasePrefix(in)
	second := BasePrefix(in)
	if first != second {
		t.Fatalf("BasePrefix not stable: %q vs %q", first, second)
	}
}

func TestBaseRelative(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		absolute string
		want     string
		wantErr  bool
	}{
		{
			name:     "exact match maps to root",
			prefix:   "https://example.com/app",
			absolute: "https://example.com/app",
			want:     "/",
		},
		{
			name:     "child path keeps leading slash",
			prefix:   "/app",
			absolute: "/app/page",
			want:     "/page",
		},
		{
			name:     "deep child path",
			prefix:   "https://example.com/app",
			absolute: "https://example.com/app/docs/intro?x=1",
			want:     "/docs/intro?x=1",
		},
		{
			name:     "shared string prefix at non-slash boundary rejected",
			prefix:   "/app",
			absolute: "/application",
			wantErr:  true,
		},
		{
			name:     "unrelated path rejected",
			prefix:   "/app",
			absolute: "/other",
			wantErr:  true,
		},
		{
			name:     "empty prefix accepts any rooted path",
			prefix:   "",
			absolute: "/anything",
			want:     "/anything",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BaseRelative(tt.prefix, tt.absolute)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("BaseRelative(%q, %q) = %q, want error", tt.prefix, tt.absolute, got)
				}
				if !errors.Is(err, ErrNotContained) {
					t.Errorf("error = %v, want ErrNotContained", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("BaseRelative(%q, %q) unexpected error: %v", tt.prefix, tt.absolute, err)
			}
			if got != tt.want {
				t.Errorf("BaseRelative(%q, %q) = %q, want %q", tt.prefix, tt.absolute, got, tt.want)
			}
		})
	}
}
