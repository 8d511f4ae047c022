package http

import (
	stdhttp "net/http"
	"strings"
	"testing"
	"time"
)

func TestHealth(t *testing.T) {
	s := newServer(t)
	before := time.Now().UTC().Add(-time.Second)

	r := s.do(t, stdhttp.MethodGet, "/health", nil, nil)
	if r.code != stdhttp.StatusOK || r.str("status") != "ok" {
		t.Fatalf("health: %d %s", r.code, r.raw)
	}

	raw := r.str("time")
	at, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		t.Fatalf("time %q: %v", raw, err)
	}
	if !strings.HasSuffix(raw, "Z") {
		t.Fatalf("time %q is not UTC", raw)
	}
	if at.Before(before) || at.After(time.Now().UTC().Add(time.Second)) {
		t.Fatalf("time %v outside request window", at)
	}
}
