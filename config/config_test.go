package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rjkroege/semibox/edit"
)

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), c); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPartialFile(t *testing.T) {
	// Unset fields keep their defaults.
	path := filepath.Join(t.TempDir(), "style.toml")
	doc := "side = \"> \"\nfill-width = 60\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	want.Side = "> "
	want.FillWidth = 60
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.toml")
	if err := os.WriteFile(path, []byte("side = [not toml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("malformed file: got nil error")
	}
}

func TestStyleIsUsable(t *testing.T) {
	// A loaded style drives the box operations directly.
	path := filepath.Join(t.TempDir(), "style.toml")
	doc := "top-corner = \"/\"\nbottom-corner = \"\\\\\"\ntop-and-tail = \"===\"\nside = \"> \"\ntitle-format = \"< %s >\"\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s := c.Style()
	tb := edit.NewTextBuffer("quoted\n")
	if _, err := s.Decorate(tb, 0, tb.Nc()); err != nil {
		t.Fatalf("Decorate: %v", err)
	}
	if got, want := tb.String(), "/===\n> quoted\n\\===\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
