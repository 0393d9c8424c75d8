package dungeon

import "procgrid/internal/core"

// StampBoundary overwrites the outermost ring of g with TileWall.
func StampBoundary(g *core.Grid[Tile]) {
	if g.W == 0 || g.H == 0 {
		return
	}
	for x := 0; x < g.W; x++ {
		g.Set(x, 0, TileWall)
		g.Set(x, g.H-1, TileWall)
	}
	for y := 0; y < g.H; y++ {
		g.Set(0, y, TileWall)
		g.Set(g.W-1, y, TileWall)
	}
}
