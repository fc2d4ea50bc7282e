package catalog

import (
	"slices"
	"testing"
)

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("catalog validation failed: %v", err)
	}
}

func TestGet(t *testing.T) {
	c, ok := Get("linear_equations")
	if !ok {
		t.Fatal("linear_equations not in catalog")
	}
	if c.Name != "Linear Equations" {
		t.Errorf("Name = %q, want Linear Equations", c.Name)
	}

	if _, ok := Get("no-such-concept"); ok {
		t.Error("Get returned ok for unknown ID")
	}
}

func TestPrerequisitesAreAcyclicOverSeed(t *testing.T) {
	// Walk every concept's prerequisite chain; the seed must not loop.
	for _, c := range All() {
		visited := map[string]bool{}
		var walk func(id string, depth int)
		walk = func(id string, depth int) {
			if depth > len(All()) {
				t.Fatalf("prerequisite chain from %q exceeds catalog size", c.ID)
			}
			if visited[id] {
				return
			}
			visited[id] = true
			for _, p := range Prerequisites(id) {
				walk(p, depth+1)
			}
		}
		walk(c.ID, 0)
	}
}

func TestRelatedSymmetricClosure(t *testing.T) {
	// fractions declares decimals as related; the closure must also
	// expose fractions from decimals.
	if !slices.Contains(Related("fractions"), "decimals") {
		t.Error("fractions should relate to decimals")
	}
	if !slices.Contains(Related("decimals"), "fractions") {
		t.Error("decimals should relate back to fractions (symmetric closure)")
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		typ  string
		want []string
	}{
		{
			name: "linear equation",
			text: "Solve for x: 2x + 3 = 11",
			want: []string{"linear_equations"},
		},
		{
			name: "fraction slash",
			text: "What is 3/4 of 20?",
			want: []string{"fractions"},
		},
		{
			name: "declared type included when in catalog",
			text: "A mystery problem with no keywords",
			typ:  "quadratic_equations",
			want: []string{"quadratic_equations"},
		},
		{
			name: "declared type skipped when not in catalog",
			text: "A mystery problem with no keywords",
			typ:  "word_problem",
			want: nil,
		},
		{
			name: "percent",
			text: "A jacket is discounted 25%. What is the sale price of a $80 jacket?",
			want: []string{"percentages"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.text, tt.typ)
			for _, w := range tt.want {
				if !slices.Contains(got, w) {
					t.Errorf("Detect(%q) = %v, missing %q", tt.text, got, w)
				}
			}
			if tt.want == nil && len(got) != 0 {
				t.Errorf("Detect(%q) = %v, want none", tt.text, got)
			}
		})
	}
}

func TestDetectDeterministicOrder(t *testing.T) {
	text := "Solve for x: x^2 + 2x + 1 = 0 using the quadratic formula"
	first := Detect(text, "")
	for range 10 {
		if got := Detect(text, ""); !slices.Equal(got, first) {
			t.Fatalf("Detect order not stable: %v vs %v", got, first)
		}
	}
}

func TestDefaultStarterSet(t *testing.T) {
	for _, id := range DefaultStarterSet() {
		if _, ok := Get(id); !ok {
			t.Errorf("starter set references unknown concept %q", id)
		}
	}
}
