package schedule

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Memorial Stadium", "memorial-stadium"},
		{"Colorado State", "colorado-state"},
		{"  Lincoln, Neb.  ", "lincoln-neb"},
		{"GEHA Field at Arrowhead Stadium", "geha-field-at-arrowhead-stadium"},
		{"Husker Power!!!", "husker-power"},
		{"--already--slugged--", "already-slugged"},
		{"", ""},
		{"???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Memorial Stadium", "Fort Collins, Colo.", "L&B Stadium (West)"}
	for _, input := range inputs {
		once := Slugify(input)
		if twice := Slugify(once); twice != once {
			t.Errorf("Slugify not idempotent for %q: %q != %q", input, twice, once)
		}
	}
}

func TestVenueSlug(t *testing.T) {
	tests := []struct {
		name     string
		venue    string
		city     string
		aliases  Aliases
		expected string
	}{
		{
			name:     "venue with city tag",
			venue:    "Memorial Stadium",
			city:     "Lincoln, Neb.",
			expected: "memorial-stadium-lincoln",
		},
		{
			name:     "city tag already in base slug",
			venue:    "Memorial Stadium (Lincoln)",
			city:     "Lincoln, Neb.",
			expected: "memorial-stadium-lincoln",
		},
		{
			name:     "state suffix stripped from tag",
			venue:    "Canvas Stadium",
			city:     "Fort Collins, Colo.",
			expected: "canvas-stadium-fort-collins",
		},
		{
			name:     "alias short-circuits regardless of city",
			venue:    "Arrowhead Stadium",
			city:     "Kansas City, Mo.",
			aliases:  Aliases{"Arrowhead Stadium": "arrowhead"},
			expected: "arrowhead",
		},
		{
			name:     "no venue falls back to city",
			venue:    "",
			city:     "Lincoln, Neb.",
			expected: "lincoln-neb",
		},
		{
			name:     "nothing at all",
			venue:    "",
			city:     "",
			expected: "stadium",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VenueSlug(tt.venue, tt.city, tt.aliases); got != tt.expected {
				t.Errorf("VenueSlug(%q, %q) = %q, expected %q", tt.venue, tt.city, got, tt.expected)
			}
		})
	}
}

func TestVenueSlugDeterministic(t *testing.T) {
	aliases := Aliases{"Arrowhead Stadium": "arrowhead"}
	first := VenueSlug("Canvas Stadium", "Fort Collins, Colo.", aliases)
	for i := 0; i < 10; i++ {
		if got := VenueSlug("Canvas Stadium", "Fort Collins, Colo.", aliases); got != first {
			t.Fatalf("VenueSlug not stable: %q != %q", got, first)
		}
	}
}
