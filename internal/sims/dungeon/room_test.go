package dungeon

import (
	"testing"

	"procgrid/internal/core"
)

func TestPlaceRoomInsideBounds(t *testing.T) {
	r := PlaceRoom(core.Position{X: 2, Y: 2}, 5, core.Size{W: 10, H: 10})
	if r.Width != 5 || r.Height != 5 || r.Len() != 25 {
		t.Fatalf("room = %dx%d (%d cells), want 5x5", r.Width, r.Height, r.Len())
	}
	cells := r.Cells()
	if cells[0] != (core.Position{X: 2, Y: 2}) || cells[len(cells)-1] != (core.Position{X: 6, Y: 6}) {
		t.Fatalf("unexpected first/last cells %v %v", cells[0], cells[len(cells)-1])
	}
	if cells[1] != (core.Position{X: 3, Y: 2}) {
		t.Fatalf("cells must be row-major, got %v", cells[1])
	}
}

func TestPlaceRoomClipsToRing(t *testing.T) {
	bounds := core.Size{W: 10, H: 8}
	cases := []struct {
		origin        core.Position
		width, height int
	}{
		{origin: core.Position{X: 4, Y: 2}, width: 5, height: 5},
		{origin: core.Position{X: 5, Y: 3}, width: 4, height: 4},
		{origin: core.Position{X: 7, Y: 6}, width: 2, height: 1},
		{origin: core.Position{X: 8, Y: 6}, width: 1, height: 1},
		{origin: core.Position{X: 9, Y: 7}, width: 0, height: 0},
		{origin: core.Position{X: 12, Y: 2}, width: 0, height: 5},
	}
	for _, tc := range cases {
		r := PlaceRoom(tc.origin, 5, bounds)
		if r.Width != tc.width || r.Height != tc.height {
			t.Fatalf("origin %v: got %dx%d, want %dx%d", tc.origin, r.Width, r.Height, tc.width, tc.height)
		}
		for _, p := range r.Cells() {
			if p.X >= bounds.W-1 || p.Y >= bounds.H-1 || p.X < 0 || p.Y < 0 {
				t.Fatalf("origin %v: cell %v reaches the boundary ring", tc.origin, p)
			}
		}
	}
}

func TestPlaceRoomAtLastColumnIsEmpty(t *testing.T) {
	r := PlaceRoom(core.Position{X: 9, Y: 0}, 5, core.Size{W: 10, H: 10})
	if !r.Empty() || r.Width != 0 {
		t.Fatalf("expected empty room, got %dx%d", r.Width, r.Height)
	}
	if r.Contains(core.Position{X: 9, Y: 0}) {
		t.Fatal("empty room must contain nothing")
	}
}

func TestPlaceRoomClampsNegativeOrigin(t *testing.T) {
	r := PlaceRoom(core.Position{X: -3, Y: -1}, 5, core.Size{W: 10, H: 10})
	if r.Origin != (core.Position{}) || r.Width != 2 || r.Height != 4 {
		t.Fatalf("room = %+v, want 2x4 at origin", r)
	}
	if !r.Contains(core.Position{X: 1, Y: 3}) || r.Contains(core.Position{X: 2, Y: 0}) {
		t.Fatal("membership does not match the clipped rectangle")
	}
}

func TestConnectAnchorsSweepsRowAndColumn(t *testing.T) {
	g := core.NewGrid[Tile](5, 4)
	g.Fill(TileWall)
	ConnectAnchors(g, []core.Position{{X: 1, Y: 2}})
	markers := 0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			v, _ := g.At(x, y)
			want := x == 1 || y == 2
			if (v == TileMarker) != want {
				t.Fatalf("(%d,%d) = %v", x, y, v)
			}
			if v == TileMarker {
				markers++
			}
		}
	}
	if markers != 8 {
		t.Fatalf("marked %d cells, want 8", markers)
	}
}

func TestConnectLShapedBetweenAnchors(t *testing.T) {
	g := core.NewGrid[Tile](10, 10)
	g.Fill(TileFloor)
	ConnectLShaped(g, []core.Position{{X: 2, Y: 2}, {X: 6, Y: 5}})
	for x := 2; x <= 6; x++ {
		if v, _ := g.At(x, 2); v != TileMarker {
			t.Fatalf("(%d,2) = %v, want marker", x, v)
		}
	}
	for y := 2; y <= 5; y++ {
		if v, _ := g.At(6, y); v != TileMarker {
			t.Fatalf("(6,%d) = %v, want marker", y, v)
		}
	}
	if v, _ := g.At(7, 2); v != TileFloor {
		t.Fatal("horizontal segment ran past the anchor")
	}
	if v, _ := g.At(6, 6); v != TileFloor {
		t.Fatal("vertical segment ran past the anchor")
	}
}

func TestStampBoundary(t *testing.T) {
	g := core.NewGrid[Tile](4, 3)
	g.Fill(TileMarker)
	StampBoundary(g)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			v, _ := g.At(x, y)
			inner := x > 0 && x < 3 && y == 1
			if inner != (v == TileMarker) {
				t.Fatalf("(%d,%d) = %v", x, y, v)
			}
		}
	}
}

func TestGlyphMapping(t *testing.T) {
	for _, tile := range []Tile{TileWall, TileFloor, TileMarker} {
		back, err := TileFromGlyph(tile.Glyph())
		if err != nil || back != tile {
			t.Fatalf("%v: glyph %q mapped back to %v (%v)", tile, tile.Glyph(), back, err)
		}
	}
	if TileWall.Glyph() != '#' || TileFloor.Glyph() != '.' || TileMarker.Glyph() != 'X' {
		t.Fatal("glyphs must match the reference rendering")
	}
	if _, err := TileFromGlyph('o'); err == nil {
		t.Fatal("unknown glyph accepted")
	}
}
