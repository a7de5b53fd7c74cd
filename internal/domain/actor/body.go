package actor

import "math"

type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

const animationDelay = 0.1

// WalkableFunc answers collision queries. Injected so bodies never reach
// for the world themselves.
type WalkableFunc func(wx, wy float64) bool

// MovableBody is the shared movement component: continuous position,
// facing, speed, and the walking animation phase. Player and NPC state
// each hold one.
type MovableBody struct {
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Direction Direction `json:"direction"`
	Speed     float64   `json:"speed"`
	Moving    bool      `json:"moving"`
	Frame     int       `json:"frame"`

	animTime float64
}

func NewBody(x, y, speed float64) MovableBody {
	return MovableBody{X: x, Y: y, Speed: speed, Direction: DirDown}
}

// Move applies a normalized direction vector for dt seconds, sliding along
// blocked axes independently. A nil walkable check means open ground.
func (b *MovableBody) Move(dx, dy, dt float64, walkable WalkableFunc) {
	if dx == 0 && dy == 0 {
		b.Moving = false
		return
	}
	if dx != 0 && dy != 0 {
		inv := 1 / math.Sqrt2
		dx *= inv
		dy *= inv
	}
	b.face(dx, dy)
	b.Moving = true

	nx := b.X + dx*b.Speed*dt
	ny := b.Y + dy*b.Speed*dt
	if walkable == nil || walkable(nx, b.Y) {
		b.X = nx
	}
	if walkable == nil || walkable(b.X, ny) {
		b.Y = ny
	}
	b.advanceAnimation(dt)
}

func (b *MovableBody) face(dx, dy float64) {
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			b.Direction = DirRight
		} else {
			b.Direction = DirLeft
		}
		return
	}
	if dy > 0 {
		b.Direction = DirDown
	} else if dy < 0 {
		b.Direction = DirUp
	}
}

func (b *MovableBody) advanceAnimation(dt float64) {
	b.animTime += dt
	for b.animTime >= animationDelay {
		b.animTime -= animationDelay
		b.Frame++
	}
}

// Halt stops movement and resets the walk cycle.
func (b *MovableBody) Halt() {
	b.Moving = false
	b.Frame = 0
	b.animTime = 0
}

func (b *MovableBody) DistanceTo(x, y float64) float64 {
	return math.Hypot(x-b.X, y-b.Y)
}
