package util

import "testing"

func TestParseIntDefault(t *testing.T) {
    if got := ParseIntDefault("42", 7); got != 42 {
        t.Fatalf("expected 42, got %d", got)
    }
    if got := ParseIntDefault("", 7); got != 7 {
        t.Fatalf("expected default, got %d", got)
    }
    if got := ParseIntDefault("nope", 7); got != 7 {
        t.Fatalf("expected default on invalid, got %d", got)
    }
}

func TestParseFloatDefault(t *testing.T) {
    if got := ParseFloatDefault("0.25", 0.5); got != 0.25 {
        t.Fatalf("expected 0.25, got %v", got)
    }
    if got := ParseFloatDefault("", 0.5); got != 0.5 {
        t.Fatalf("expected default, got %v", got)
    }
    if got := ParseFloatDefault("x", 0.5); got != 0.5 {
        t.Fatalf("expected default on invalid, got %v", got)
    }
}
