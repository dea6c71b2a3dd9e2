package ui

import (
	"errors"
	"testing"
)

func TestClassifyConnectionError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{errors.New("dial tcp: connection refused"), "OFFLINE"},
		{errors.New("lookup feed: no such host"), "HOST NOT FOUND"},
		{errors.New("context deadline exceeded (Client.Timeout exceeded while awaiting headers) timeout"), "TIMEOUT"},
		{errors.New("GET /api/items: status 500"), "ERROR"},
	}
	for _, tt := range tests {
		if got := classifyConnectionError(tt.err); got != tt.want {
			t.Fatalf("classifyConnectionError(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"hello", 3, "hel"},
		{"  padded  ", 6, "padded"},
		{"anything", 0, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestDominant(t *testing.T) {
	a := newRegion("a", true)
	b := newRegion("b", true)
	c := newRegion("c", false)

	a.SetAlpha(0.3)
	b.SetAlpha(0.7)
	if got := dominant(a, b, c); got != b {
		t.Fatalf("dominant = %v, want b", got.name)
	}

	b.SetVisible(false)
	if got := dominant(a, b, c); got != a {
		t.Fatalf("dominant = %v, want a", got.name)
	}

	a.SetVisible(false)
	if got := dominant(a, b, c); got != nil {
		t.Fatalf("dominant = %v, want nil", got.name)
	}
}

func TestRegionAlphaClamped(t *testing.T) {
	r := newRegion("r", true)
	r.SetAlpha(-1)
	if r.alpha != 0 {
		t.Fatalf("alpha = %v, want 0", r.alpha)
	}
	r.SetAlpha(3)
	if r.alpha != 1 {
		t.Fatalf("alpha = %v, want 1", r.alpha)
	}
}
