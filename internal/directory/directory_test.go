package directory

import (
	"testing"

	"go.uber.org/zap"

	"tripcarbon/internal/domain"
)

func TestFindDistance_KnownRoute(t *testing.T) {
	d := New(zap.NewNop())

	km, ok := d.FindDistance("São Paulo, SP", "Rio de Janeiro, RJ")
	if !ok {
		t.Fatal("expected route to be found")
	}
	if km != 430 {
		t.Errorf("expected 430 km, got %v", km)
	}
}

func TestFindDistance_Symmetric(t *testing.T) {
	d := New(zap.NewNop())

	for _, r := range d.Routes() {
		forward, okForward := d.FindDistance(r.Origin, r.Destination)
		reverse, okReverse := d.FindDistance(r.Destination, r.Origin)

		if !okForward || !okReverse {
			t.Fatalf("route %s -> %s not found in both directions", r.Origin, r.Destination)
		}
		if forward != reverse {
			t.Errorf("route %s -> %s: forward %v != reverse %v", r.Origin, r.Destination, forward, reverse)
		}
	}
}

func TestFindDistance_CaseAndWhitespaceInsensitive(t *testing.T) {
	d := New(zap.NewNop())

	km, ok := d.FindDistance("  são paulo, sp  ", "RIO DE JANEIRO, RJ")
	if !ok {
		t.Fatal("expected normalized lookup to find the route")
	}
	if km != 430 {
		t.Errorf("expected 430 km, got %v", km)
	}
}

func TestFindDistance_BlankInputIsMiss(t *testing.T) {
	d := New(zap.NewNop())

	cases := []struct {
		name                string
		origin, destination string
	}{
		{"empty origin", "", "Rio de Janeiro, RJ"},
		{"empty destination", "São Paulo, SP", ""},
		{"whitespace only", "   ", "Rio de Janeiro, RJ"},
		{"both empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := d.FindDistance(tc.origin, tc.destination); ok {
				t.Error("expected blank input to report not found")
			}
		})
	}
}

func TestFindDistance_UnknownPair(t *testing.T) {
	d := New(zap.NewNop())

	if _, ok := d.FindDistance("São Paulo, SP", "Manaus, AM"); ok {
		t.Error("expected unknown pair to report not found")
	}
}

func TestFindDistance_DuplicateFirstMatchWins(t *testing.T) {
	routes := []domain.Route{
		{Origin: "A, XX", Destination: "B, YY", DistanceKm: 100},
		{Origin: "B, YY", Destination: "A, XX", DistanceKm: 999},
	}
	d := NewWithRoutes(zap.NewNop(), routes)

	km, ok := d.FindDistance("A, XX", "B, YY")
	if !ok {
		t.Fatal("expected route to be found")
	}
	if km != 100 {
		t.Errorf("expected first stored entry (100) to win, got %v", km)
	}
}

func TestAllCities_UniqueAndCollated(t *testing.T) {
	d := New(zap.NewNop())

	cities := d.AllCities()
	if len(cities) == 0 {
		t.Fatal("expected at least one city")
	}

	seen := make(map[string]bool, len(cities))
	for _, city := range cities {
		if seen[city] {
			t.Errorf("city %q listed twice", city)
		}
		seen[city] = true
	}

	// Every route endpoint must be present.
	for _, r := range d.Routes() {
		if !seen[r.Origin] || !seen[r.Destination] {
			t.Errorf("route endpoints %q/%q missing from city list", r.Origin, r.Destination)
		}
	}

	// Collation orders accented names with their base letter, so São
	// Paulo sorts between Santos and anything after S, not past Z.
	indexOf := func(name string) int {
		for i, c := range cities {
			if c == name {
				return i
			}
		}
		t.Fatalf("city %q not found", name)
		return -1
	}
	if indexOf("Santos, SP") > indexOf("São Paulo, SP") {
		t.Error("expected Santos, SP to collate before São Paulo, SP")
	}
	if indexOf("Brasília, DF") > indexOf("Curitiba, PR") {
		t.Error("expected Brasília, DF to collate before Curitiba, PR")
	}
}
