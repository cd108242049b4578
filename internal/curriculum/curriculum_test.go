package curriculum

import "testing"

func TestCurriculumShape(t *testing.T) {
	mods := Modules()
	if len(mods) != 8 {
		t.Fatalf("curriculum has %d modules, want 8", len(mods))
	}
	if Total() != len(mods) {
		t.Fatalf("Total() = %d, want %d", Total(), len(mods))
	}

	seen := make(map[string]bool)
	for _, m := range mods {
		if m.ID == "" || m.Title == "" {
			t.Fatalf("module missing id or title: %+v", m)
		}
		if seen[m.ID] {
			t.Fatalf("duplicate module id %q", m.ID)
		}
		seen[m.ID] = true
		if m.EstimatedMinutes <= 0 {
			t.Fatalf("module %s has no duration estimate", m.ID)
		}
	}
}

func TestByID(t *testing.T) {
	want := Modules()[2]
	got, ok := ByID(want.ID)
	if !ok || got.Title != want.Title {
		t.Fatalf("ByID(%q) = %+v, %v", want.ID, got, ok)
	}

	if _, ok := ByID("nope"); ok {
		t.Fatal("ByID must miss on unknown ids")
	}
}
