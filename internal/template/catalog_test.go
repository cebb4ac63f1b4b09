package template

import "testing"

func TestCatalog_SizeAndUniqueIDs(t *testing.T) {
	templates := Catalog()
	if len(templates) != 10 {
		t.Fatalf("expected 10 templates got %d", len(templates))
	}

	seen := make(map[string]bool, len(templates))
	for _, tmpl := range templates {
		if seen[tmpl.ID] {
			t.Fatalf("duplicate template id %q", tmpl.ID)
		}
		seen[tmpl.ID] = true
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	first := Catalog()
	first[0].Name = "mutated"

	second := Catalog()
	if second[0].Name == "mutated" {
		t.Fatal("catalog mutation leaked into shared state")
	}
}
