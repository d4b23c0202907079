package validator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validate(t *testing.T, body string) ValidationResults {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cards.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	results, err := NewValidator(path).Validate()
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	return results
}

func hasMessage(msgs []string, sub string) bool {
	for _, m := range msgs {
		if strings.Contains(m, sub) {
			return true
		}
	}
	return false
}

func TestValidCatalog(t *testing.T) {
	r := validate(t, `
name = "ok"
[[card]]
name = "gub"
count = 8
category = "playable"
`)
	if !r.Valid() || len(r.Warnings) != 0 {
		t.Fatalf("expected clean results, got %+v", r)
	}
}

func TestReportsAllErrors(t *testing.T) {
	r := validate(t, `
name = "bad"
[[card]]
name = "gub"
count = -2
category = "playable"

[[card]]
name = "gub"
count = 1
category = "letter"

[[card]]
count = 1
category = "event"
`)
	if r.Valid() {
		t.Fatal("expected errors")
	}
	for _, want := range []string{"must not be negative", "duplicate name", "unknown category", "name is required"} {
		if !hasMessage(r.Errors, want) {
			t.Errorf("missing error %q in %v", want, r.Errors)
		}
	}
}

func TestWarnings(t *testing.T) {
	r := validate(t, `
colour = "green"
[[card]]
name = "gub"
count = 0
category = "playable"
`)
	if !r.Valid() {
		t.Fatalf("unexpected errors %v", r.Errors)
	}
	for _, want := range []string{"name is not set", "count is 0", "empty deck", "unknown key: colour"} {
		if !hasMessage(r.Warnings, want) {
			t.Errorf("missing warning %q in %v", want, r.Warnings)
		}
	}
}

func TestMissingFile(t *testing.T) {
	_, err := NewValidator(filepath.Join(t.TempDir(), "missing.toml")).Validate()
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
