package world

// Camera is a follow viewport over the grid, clamped to world bounds. It
// exists so the render consumer can ask for visible tiles only.
type Camera struct {
	X     float64
	Y     float64
	ViewW float64
	ViewH float64

	worldW float64
	worldH float64
}

func NewCamera(viewW, viewH float64, grid *Grid) *Camera {
	cam := &Camera{ViewW: viewW, ViewH: viewH}
	if grid != nil {
		cam.worldW = float64(grid.Width * TileSize)
		cam.worldH = float64(grid.Height * TileSize)
	}
	return cam
}

// Follow centers the viewport on a world position, clamped so the view
// never leaves the world.
func (c *Camera) Follow(wx, wy float64) {
	c.X = clampOffset(wx-c.ViewW/2, c.worldW-c.ViewW)
	c.Y = clampOffset(wy-c.ViewH/2, c.worldH-c.ViewH)
}

func clampOffset(v, max float64) float64 {
	if max < 0 {
		max = 0
	}
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// VisibleTileBounds returns the inclusive tile rectangle covered by the
// viewport, clamped to the grid.
func (c *Camera) VisibleTileBounds(grid *Grid) (minTX, minTY, maxTX, maxTY int) {
	if grid == nil {
		return 0, 0, -1, -1
	}
	minTX = int(c.X) / TileSize
	minTY = int(c.Y) / TileSize
	maxTX = int(c.X+c.ViewW-1) / TileSize
	maxTY = int(c.Y+c.ViewH-1) / TileSize
	if minTX < 0 {
		minTX = 0
	}
	if minTY < 0 {
		minTY = 0
	}
	if maxTX >= grid.Width {
		maxTX = grid.Width - 1
	}
	if maxTY >= grid.Height {
		maxTY = grid.Height - 1
	}
	return minTX, minTY, maxTX, maxTY
}
