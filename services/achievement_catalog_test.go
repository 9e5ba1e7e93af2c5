package services

import "testing"

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool, len(AchievementCatalog))
	for _, def := range AchievementCatalog {
		if def.ID == "" {
			t.Fatalf("catalog entry %q has empty id", def.Title)
		}
		if seen[def.ID] {
			t.Fatalf("duplicate catalog id %q", def.ID)
		}
		seen[def.ID] = true
	}
}

func TestCatalogEntriesAreComplete(t *testing.T) {
	for _, def := range AchievementCatalog {
		if def.Check == nil {
			t.Fatalf("catalog entry %q has no check", def.ID)
		}
		if def.Title == "" || def.Description == "" || def.Icon == "" {
			t.Fatalf("catalog entry %q is missing display metadata", def.ID)
		}
	}
}
