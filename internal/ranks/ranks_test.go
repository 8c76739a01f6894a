package ranks

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestDefaultCatalog(t *testing.T) {
	entries := Default()
	if len(entries) < 4 {
		t.Fatalf("default catalog has %d entries, want at least 4", len(entries))
	}
	if err := Validate(entries); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
	for _, e := range entries {
		if e.Insignia == "" {
			t.Errorf("entry %q has no insignia reference", e.Name)
		}
		if e.Description == "" {
			t.Errorf("entry %q has no description", e.Name)
		}
	}
}

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	entries, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(entries) != len(Default()) {
		t.Errorf("len = %d, want %d", len(entries), len(Default()))
	}
}

func TestLoad_YAML(t *testing.T) {
	p := writeFile(t, "ranks.yaml", `
- name: Ensign
  insignia: ens.png
- name: Lieutenant
  insignia: lt.png
`)
	entries, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[1].Name != "Lieutenant" || entries[1].Insignia != "lt.png" {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}

func TestLoad_JSON(t *testing.T) {
	p := writeFile(t, "ranks.json", `[
		{"name": "Ensign", "insignia": "ens.png"},
		{"name": "Lieutenant", "insignia": "lt.png", "description": "Two stripes"}
	]`)
	entries, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[1].Description != "Two stripes" {
		t.Errorf("description = %q, want %q", entries[1].Description, "Two stripes")
	}
}

func TestLoad_JSONSchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty array", `[]`},
		{"missing insignia", `[{"name": "Ensign"}]`},
		{"empty name", `[{"name": "", "insignia": "x.png"}]`},
		{"unknown field", `[{"name": "Ensign", "insignia": "x.png", "rank": 1}]`},
		{"not an array", `{"name": "Ensign"}`},
		{"malformed", `[{"name": `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeFile(t, "ranks.json", tt.content)
			if _, err := Load(p); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad_DuplicateNames(t *testing.T) {
	p := writeFile(t, "ranks.yaml", `
- name: Ensign
  insignia: a.png
- name: Ensign
  insignia: b.png
`)
	_, err := Load(p)
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("err = %v, want ErrDuplicateName", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(nil); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("nil: err = %v, want ErrEmptyCatalog", err)
	}
	if err := Validate([]Entry{{Name: "  "}}); !errors.Is(err, ErrBlankName) {
		t.Errorf("blank: err = %v, want ErrBlankName", err)
	}
	if err := Validate([]Entry{{Name: "A"}, {Name: "B"}}); err != nil {
		t.Errorf("valid: unexpected error %v", err)
	}
}

func TestNames(t *testing.T) {
	got := Names([]Entry{{Name: "A"}, {Name: "B"}})
	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("Names = %v", got)
	}
}
