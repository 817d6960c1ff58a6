package game

import "testing"

func TestDefaultRaceIsBalanced(t *testing.T) {
	r := DefaultRace()
	if r.Name != "Human" {
		t.Fatalf("default race = %q, want Human", r.Name)
	}
	if r.Size != SizeMedium {
		t.Errorf("Human size = %s, want medium", r.Size)
	}

	// Human modifiers are neutral, so class stats pass through.
	for _, c := range DefaultClasses() {
		base := c.Apply()
		if got := r.Modify(base); got != base {
			t.Errorf("%s stats changed by Human race: %+v -> %+v", c.Name, base, got)
		}
	}
}

func TestRaceModify(t *testing.T) {
	r := Race{Name: "Troll", Size: SizeLarge, Modifiers: StatModifiers{HP: 30, Stamina: -10, Attack: 4}}
	got := r.Modify(Stats{HP: 100, Stamina: 100, Attack: 10})
	want := Stats{HP: 130, Stamina: 90, Attack: 14}
	if got != want {
		t.Errorf("Modify = %+v, want %+v", got, want)
	}
}

func TestSizeString(t *testing.T) {
	tests := []struct {
		size Size
		want string
	}{
		{SizeMiniature, "miniature"},
		{SizeMedium, "medium"},
		{SizeHumongous, "humongous"},
		{Size(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.size.String(); got != tt.want {
			t.Errorf("Size(%d).String() = %q, want %q", tt.size, got, tt.want)
		}
	}
}
