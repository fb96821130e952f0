package middleware

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/health", "/health"},
		{"/metrics", "/metrics"},
		{"/api/v1/files", "/api/v1/files"},
		{"/api/v1/ledgers", "/api/v1/ledgers"},
		{"/api/v1/ledgers/", "/api/v1/ledgers/"},
		{"/api/v1/ledgers/Personal", "/api/v1/ledgers/:name"},
		{"/api/v1/ledgers/Acme Consulting/summary", "/api/v1/ledgers/:name/summary"},
		{"/api/v1/overview/personal", "/api/v1/overview/personal"},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.path); got != tt.want {
			t.Errorf("normalizePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
