package tree

import "testing"

func TestArenaChildOrderStable(t *testing.T) {
	a := NewArena()
	root := a.New(Rectangle, "page-1", -1, "")
	c1 := a.New(Text, "page-1", root.Index(), "")
	c2 := a.New(Text, "page-1", root.Index(), "")
	c3 := a.New(Text, "page-1", root.Index(), "")

	got := a.Elem(root.Index()).Children
	want := []int{c1.Index(), c2.Index(), c3.Index()}
	if len(got) != len(want) {
		t.Fatalf("children = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("child order mismatch at %d: got %v want %v", i, got, want)
		}
	}
}

func TestArenaAutoID(t *testing.T) {
	a := NewArena()
	e1 := a.New(Rectangle, "page-1", -1, "")
	e2 := a.New(Rectangle, "page-1", -1, "")
	if e1.ID == e2.ID || e1.ID == "" || e2.ID == "" {
		t.Fatalf("expected distinct auto-generated ids, got %q and %q", e1.ID, e2.ID)
	}
}

func TestArenaExplicitID(t *testing.T) {
	a := NewArena()
	e := a.New(Rectangle, "page-1", -1, "header")
	if e.ID != "header" {
		t.Fatalf("ID = %q, want %q", e.ID, "header")
	}
}

func TestArenaRoots(t *testing.T) {
	a := NewArena()
	r1 := a.New(Rectangle, "page-1", -1, "")
	a.New(Text, "page-1", r1.Index(), "")
	r2 := a.New(Rectangle, "page-2", -1, "")

	roots := a.Roots()
	if len(roots) != 2 || roots[0] != r1.Index() || roots[1] != r2.Index() {
		t.Fatalf("Roots() = %v, want [%d %d]", roots, r1.Index(), r2.Index())
	}
}

func TestResolvedLineHeightDefaultsAndOverride(t *testing.T) {
	tc := TextConfig{FontSize: 10, LineSpacingFactor: 1.2}
	if got := tc.ResolvedLineHeight(); got != 12 {
		t.Fatalf("ResolvedLineHeight() = %v, want 12", got)
	}
	override := 20.0
	tc.LineHeight = &override
	if got := tc.ResolvedLineHeight(); got != 20 {
		t.Fatalf("ResolvedLineHeight() with override = %v, want 20", got)
	}
}
