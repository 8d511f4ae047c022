package id

import (
	"encoding/hex"
	"regexp"
	"testing"
)

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

func TestNewID32_FormatAndDecode(t *testing.T) {
	got := NewID32()

	// length
	if len(got) != 32 {
		t.Fatalf("length = %d, want 32 (got=%q)", len(got), got)
	}
	// lowercase hex only (no separators/prefixes)
	if !reHex32.MatchString(got) {
		t.Fatalf("not 32-char lowercase hex: %q", got)
	}
	// decodes to exactly 16 bytes
	b, err := hex.DecodeString(got)
	if err != nil {
		t.Fatalf("hex.DecodeString error: %v", err)
	}
	if len(b) != 16 {
		t.Fatalf("decoded bytes = %d, want 16", len(b))
	}
}

func TestNewID32_Uniqueness(t *testing.T) {
	const n = 200
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NewID32()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id after %d iterations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestNewID32_NoUppercaseOrHyphen(t *testing.T) {
	id := NewID32()
	for _, r := range id {
		if r >= 'A' && r <= 'Z' {
			t.Fatalf("found uppercase letter in id: %q", id)
		}
		if r == '-' {
			t.Fatalf("found hyphen in id: %q", id)
		}
	}
}

var reContractID = regexp.MustCompile(`^\d{8}$`)

func TestNewContractID_RangeAndFormat(t *testing.T) {
	for i := 0; i < 500; i++ {
		got := NewContractID()
		if !reContractID.MatchString(got) {
			t.Fatalf("not 8 digits: %q", got)
		}
		if got[0] == '0' {
			t.Fatalf("leading zero not allowed: %q", got)
		}
		if got < "10000000" || got > "99999999" {
			t.Fatalf("out of range: %q", got)
		}
	}
}

func TestNewContractID_TwoCallsDiffer(t *testing.T) {
	// 90M values; a repeat in a short loop means the generator is broken
	const n = 100
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		c := NewContractID()
		if _, ok := seen[c]; ok {
			t.Fatalf("duplicate contract id after %d iterations: %q", i, c)
		}
		seen[c] = struct{}{}
	}
}

func TestNewULID_SortableAndUnique(t *testing.T) {
	a := NewULID()
	b := NewULID()
	if len(a) != 26 || len(b) != 26 {
		t.Fatalf("ulid length: %d %d", len(a), len(b))
	}
	if a == b {
		t.Fatalf("ulids must differ: %s", a)
	}
	if a > b {
		t.Fatalf("ulids must be monotonic: %s > %s", a, b)
	}
}
