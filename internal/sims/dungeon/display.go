package dungeon

import "image/color"

var dungeonPalette = []color.RGBA{
	TileWall:   {R: 0, G: 0, B: 0, A: 255},
	TileFloor:  {R: 255, G: 255, B: 255, A: 255},
	TileMarker: {R: 255, G: 255, B: 255, A: 255},
}

// Palette maps tile values to colors, indexed by Tile.
func (d *Dungeon) Palette() []color.RGBA {
	return dungeonPalette
}
