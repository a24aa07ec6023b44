package seed

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sandeepkv93/shoplist/internal/model"
)

func TestLoadDefault(t *testing.T) {
	got, err := Load("")
	if err != nil {
		t.Fatalf("load default: %v", err)
	}
	if diff := cmp.Diff(model.DefaultSeed(), got); diff != "" {
		t.Fatalf("default seed mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.yaml")
	body := "items:\n  - name: coffee\n  - name: \" tea \"\n    checked: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []model.SeedItem{{Name: "coffee"}, {Name: "tea", Checked: true}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("seed mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("items: [")); err == nil {
		t.Fatal("expected yaml error")
	}
	_, err := Parse([]byte("items:\n  - checked: true\n"))
	if !errors.Is(err, model.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
