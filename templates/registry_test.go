package templates

import "testing"

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	t.Run("All returns the full catalog in stable order", func(t *testing.T) {
		all := r.All()
		if len(all) != 7 {
			t.Fatalf("Expected 7 templates, got %d", len(all))
		}
		if all[0].ID != "simple" {
			t.Errorf("Expected catalog to start with simple, got %s", all[0].ID)
		}
	})

	t.Run("Get finds known ids", func(t *testing.T) {
		tmpl, ok := r.Get("novel")
		if !ok {
			t.Fatal("novel should exist")
		}
		if tmpl.ID != "novel" {
			t.Errorf("Wrong template returned: %s", tmpl.ID)
		}
	})

	t.Run("Get reports unknown ids", func(t *testing.T) {
		if _, ok := r.Get("nonexistent"); ok {
			t.Error("Unknown id should not resolve via Get")
		}
	})

	t.Run("Resolve falls back to the default", func(t *testing.T) {
		got := r.Resolve("nonexistent")
		want := r.Default()
		if got.ID != want.ID {
			t.Errorf("Expected fallback to %s, got %s", want.ID, got.ID)
		}
	})

	t.Run("Resolve of empty id yields the default", func(t *testing.T) {
		if got := r.Resolve(""); got.ID != r.Default().ID {
			t.Errorf("Empty id resolved to %s", got.ID)
		}
	})

	t.Run("Every template ships CSS", func(t *testing.T) {
		for _, tmpl := range r.All() {
			if tmpl.CSSStyles == "" {
				t.Errorf("Template %s has no stylesheet", tmpl.ID)
			}
		}
	})

	t.Run("Paged flag set only on page-per-fragment templates", func(t *testing.T) {
		paged := map[string]bool{"essay": true, "satomata-life-lessons": true}
		for _, tmpl := range r.All() {
			if tmpl.Paged != paged[tmpl.ID] {
				t.Errorf("Template %s: Paged = %v", tmpl.ID, tmpl.Paged)
			}
		}
	})

	t.Run("Print templates declare a page setup", func(t *testing.T) {
		tmpl, _ := r.Get("a4-print")
		if tmpl.PageSetup == nil || tmpl.PageSetup.Size != "A4" {
			t.Errorf("a4-print should target A4, got %+v", tmpl.PageSetup)
		}
	})
}
