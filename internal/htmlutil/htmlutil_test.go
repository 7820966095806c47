package htmlutil

import "testing"

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		nil_ bool
	}{
		{"plain", "서울시청", "서울시청", false},
		{"surrounding whitespace", "  광명 체육관\n", "광명 체육관", false},
		{"empty", "", "", true},
		{"whitespace only", " \t\n ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Text(tt.in)
			if tt.nil_ {
				if got != nil {
					t.Fatalf("Text(%q) = %q, want nil", tt.in, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("Text(%q) = nil, want %q", tt.in, tt.want)
			}
			if *got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.in, *got, tt.want)
			}
		})
	}
}

func TestResolveURL(t *testing.T) {
	const base = "https://www.koreahandball.com"

	tests := []struct {
		name string
		ref  string
		want string
		nil_ bool
	}{
		{"empty ref", "", "", true},
		{"absolute http", "http://cdn.example.com/logo.png", "http://cdn.example.com/logo.png", false},
		{"absolute https", "https://cdn.example.com/logo.png", "https://cdn.example.com/logo.png", false},
		{"relative with leading slash", "/images/logo.png", base + "/images/logo.png", false},
		{"relative without leading slash", "images/logo.png", base + "/images/logo.png", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveURL(base, tt.ref)
			if tt.nil_ {
				if got != nil {
					t.Fatalf("ResolveURL(%q) = %q, want nil", tt.ref, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ResolveURL(%q) = nil, want %q", tt.ref, tt.want)
			}
			if *got != tt.want {
				t.Errorf("ResolveURL(%q) = %q, want %q", tt.ref, *got, tt.want)
			}
		})
	}
}

func TestResolveURLTrailingSlashBase(t *testing.T) {
	got := ResolveURL("https://www.koreahandball.com/", "/images/logo.png")
	if got == nil || *got != "https://www.koreahandball.com/images/logo.png" {
		t.Errorf("expected single separator, got %v", got)
	}
}
