package core

import (
	"strings"
	"testing"
)

func TestGridBounds(t *testing.T) {
	g := NewGrid[uint8](4, 3)
	if len(g.Cells()) != 12 {
		t.Fatalf("expected 12 cells, got %d", len(g.Cells()))
	}
	if g.Set(4, 0, 1) || g.Set(0, 3, 1) || g.Set(-1, 0, 1) {
		t.Fatal("out-of-bounds Set must be rejected")
	}
	if _, ok := g.At(-1, -1); ok {
		t.Fatal("At(-1,-1) must report out of bounds")
	}
	if !g.Set(3, 2, 7) {
		t.Fatal("in-bounds Set failed")
	}
	if v, ok := g.At(3, 2); !ok || v != 7 {
		t.Fatalf("At(3,2) = %d,%v want 7,true", v, ok)
	}
	if g.Cells()[g.Index(3, 2)] != 7 {
		t.Fatal("row-major index mismatch")
	}
}

func TestNewGridNonPositive(t *testing.T) {
	g := NewGrid[uint8](0, 5)
	if g.W != 0 || g.H != 0 || len(g.Cells()) != 0 {
		t.Fatalf("expected empty grid, got %dx%d with %d cells", g.W, g.H, len(g.Cells()))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid[uint8](2, 2)
	g.Fill(1)
	c := g.Clone()
	c.Set(0, 0, 9)
	if v, _ := g.At(0, 0); v != 1 {
		t.Fatal("mutating a clone changed the original")
	}
}

func TestMooreNeighborsCorner(t *testing.T) {
	got := MooreNeighbors(Position{}, Size{W: 5, H: 5})
	if len(got) != 3 {
		t.Fatalf("corner should have 3 neighbours, got %d", len(got))
	}
	for _, p := range got {
		if p.X < 0 || p.Y < 0 {
			t.Fatalf("neighbour %v has a negative coordinate", p)
		}
	}
	if n := len(MooreNeighbors(Position{X: 2, Y: 2}, Size{W: 5, H: 5})); n != 8 {
		t.Fatalf("interior cell should have 8 neighbours, got %d", n)
	}
	if n := len(MooreNeighbors(Position{X: 2, Y: 0}, Size{W: 5, H: 5})); n != 5 {
		t.Fatalf("edge cell should have 5 neighbours, got %d", n)
	}
}

func TestParameterSnapshotWriteTo(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{{
		Name:   "Map",
		Params: []Parameter{IntParam("w", "Width", 40), FloatParam("p", "Chance", 0.5)},
	}}}
	var sb strings.Builder
	if _, err := snap.WriteTo(&sb); err != nil {
		t.Fatal(err)
	}
	want := "Map\n  w = 40\n  p = 0.5\n"
	if sb.String() != want {
		t.Fatalf("got %q want %q", sb.String(), want)
	}
}

func TestSimNamesSorted(t *testing.T) {
	Register("zz-test", func(map[string]string) Sim { return nil })
	Register("aa-test", func(map[string]string) Sim { return nil })
	Register("", func(map[string]string) Sim { return nil })
	names := SimNames()
	ia, iz := -1, -1
	for i, n := range names {
		if n == "" {
			t.Fatal("empty name must not be registered")
		}
		if n == "aa-test" {
			ia = i
		}
		if n == "zz-test" {
			iz = i
		}
	}
	if ia < 0 || iz < 0 || ia > iz {
		t.Fatalf("unexpected order %v", names)
	}
}
