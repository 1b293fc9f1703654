package util

import (
	"testing"
	"time"
)

func TestParseDatePlain(t *testing.T) {
	got, ok := ParseDate("2024-10-10")
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Year() != 2024 || got.Month() != time.October || got.Day() != 10 {
		t.Fatalf("unexpected date %v", got)
	}
}

func TestParseDateRFC3339(t *testing.T) {
	s := "2024-10-10T10:10:10Z"
	got, ok := ParseDate(s)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.UTC().Format(time.RFC3339) != s {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseDateDefault(t *testing.T) {
	def := time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC)
	if got := ParseDateDefault("", def); !got.Equal(def) {
		t.Fatalf("expected default")
	}
	if got := ParseDateDefault("not-a-date", def); !got.Equal(def) {
		t.Fatalf("expected default for garbage")
	}
}

func TestParseIntDefault(t *testing.T) {
	if got := ParseIntDefault("25", 10); got != 25 {
		t.Fatalf("got %d", got)
	}
	if got := ParseIntDefault("", 10); got != 10 {
		t.Fatalf("got %d", got)
	}
	if got := ParseIntDefault("x", 10); got != 10 {
		t.Fatalf("got %d", got)
	}
}
