package world

// Contour returns the marching-squares case of every 2x2 window of the grid,
// indexed [row][col] by the window's bottom-left tile. Each case packs the
// four corners as bottomLeft*8 + topLeft*4 + topRight*2 + bottomRight, where
// "top" is the row with the larger y. Downstream wall builders map cases to
// wall pieces; case 0 means no wall and 15 a solid block.
//
// Grids with fewer than two rows or columns have no windows and return nil.
func (g *Grid) Contour() [][]int {
	if g.rows < 2 || g.cols < 2 {
		return nil
	}
	out := make([][]int, g.rows-1)
	for row := 0; row < g.rows-1; row++ {
		out[row] = make([]int, g.cols-1)
		for col := 0; col < g.cols-1; col++ {
			bottomLeft := int(g.tiles[row][col])
			bottomRight := int(g.tiles[row][col+1])
			topLeft := int(g.tiles[row+1][col])
			topRight := int(g.tiles[row+1][col+1])
			out[row][col] = bottomLeft*8 + topLeft*4 + topRight*2 + bottomRight
		}
	}
	return out
}
